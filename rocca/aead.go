package rocca

import (
	"crypto/cipher"
	"errors"
)

// ErrInvalidKeySize is returned by New when key is not KeySize bytes.
var ErrInvalidKeySize = errors.New("rocca: invalid key size")

// ErrOpen is returned by AEAD.Open when the ciphertext is shorter than
// Overhead or fails authentication. The two are never distinguished,
// matching Seal/Open's single-failure-signal policy. A bad nonce length
// panics instead.
var ErrOpen = errors.New("rocca: message authentication failed")

// AEAD adapts Seal and Open to the standard cipher.AEAD interface for
// callers that want the familiar contract instead of the panic-free,
// boolean-result primitives above. Unlike Seal/Open, its Seal and Open
// methods panic on a bad nonce length, matching cipher.AEAD's documented
// behavior.
type AEAD struct {
	key [KeySize]byte
}

// New constructs an AEAD bound to key, which must be exactly KeySize
// bytes.
func New(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	a := &AEAD{}
	copy(a.key[:], key)
	return a, nil
}

func (a *AEAD) NonceSize() int { return NonceSize }
func (a *AEAD) Overhead() int  { return Overhead }

func (a *AEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic("rocca: bad nonce length")
	}

	sealed := make([]byte, len(plaintext)+Overhead)
	out, ok := Seal(sealed, a.key[:], nonce, plaintext, additionalData)
	if !ok {
		panic("rocca: seal failed with validated arguments")
	}
	return append(dst, out...)
}

func (a *AEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("rocca: bad nonce length")
	}
	if len(ciphertext) < Overhead {
		return nil, ErrOpen
	}

	opened := make([]byte, len(ciphertext)-Overhead)
	out, ok := Open(opened, a.key[:], nonce, ciphertext, additionalData)
	if !ok {
		return nil, ErrOpen
	}
	return append(dst, out...), nil
}
