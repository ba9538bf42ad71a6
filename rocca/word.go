// Package rocca implements the Rocca authenticated encryption construction,
// a sealed-box AEAD built by driving eight 128-bit lanes through a round
// function composed of single AES rounds.
package rocca

import "crypto/subtle"

// lane is one 128-bit word of internal state.
type lane [16]byte

func loadLane(b []byte) lane {
	var l lane
	copy(l[:], b)
	return l
}

func storeLane(dst []byte, l lane) {
	copy(dst, l[:])
}

func xorLane(a, b lane) lane {
	var out lane
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// ctEqLane reports whether a and b are equal, in time independent of their
// contents.
func ctEqLane(a, b lane) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

// aesRound computes one AES encryption round: SubBytes, ShiftRows,
// MixColumns, then XOR with rk. It is swapped at init time for a hardware
// implementation when the running CPU supports one.
var aesRound = softwareAESRound

func init() {
	if hw, ok := detectHardwareAESRound(); ok {
		aesRound = hw
	}
}
