package rocca

// absorb authenticates ad against the state, one 32-byte block at a time.
// A trailing partial block is zero-padded into a scratch buffer before
// being absorbed; an empty ad absorbs nothing at all, not even a padding
// block.
func (s *state) absorb(ad []byte) {
	full := len(ad) / blockSize
	for i := 0; i < full; i++ {
		block := ad[i*blockSize : (i+1)*blockSize]
		s.update(loadLane(block[:16]), loadLane(block[16:]))
	}

	if r := len(ad) % blockSize; r != 0 {
		var pad [blockSize]byte
		copy(pad[:], ad[full*blockSize:])
		s.update(loadLane(pad[:16]), loadLane(pad[16:]))
		wipe(pad[:])
	}
}

// encBlock encrypts one full 32-byte plaintext block from src into dst and
// advances the state with the plaintext halves.
func (s *state) encBlock(dst, src []byte) {
	m0 := loadLane(src[:16])
	m1 := loadLane(src[16:])

	c0 := xorLane(aesRound(s[1], s[5]), m0)
	c1 := xorLane(aesRound(xorLane(s[0], s[4]), s[2]), m1)

	storeLane(dst[:16], c0)
	storeLane(dst[16:], c1)

	s.update(m0, m1)
}

// encPartial encrypts the final r-byte (1 <= r <= 31) plaintext block. The
// state is advanced with the zero-padded plaintext, not the raw r bytes.
func (s *state) encPartial(dst []byte, r int, src []byte) {
	var pad [blockSize]byte
	copy(pad[:], src[:r])

	var out [blockSize]byte
	s.encBlock(out[:], pad[:])
	copy(dst[:r], out[:r])

	wipe(pad[:])
	wipe(out[:])
}

// decBlock decrypts one full 32-byte ciphertext block from src into dst
// and advances the state with the recovered plaintext halves.
func (s *state) decBlock(dst, src []byte) {
	c0 := loadLane(src[:16])
	c1 := loadLane(src[16:])

	m0 := xorLane(aesRound(s[1], s[5]), c0)
	m1 := xorLane(aesRound(xorLane(s[0], s[4]), s[2]), c1)

	storeLane(dst[:16], m0)
	storeLane(dst[16:], m1)

	s.update(m0, m1)
}

// decPartial decrypts the final r-byte (1 <= r <= 31) ciphertext block. It
// writes r plaintext bytes to dst but, per the construction's padding
// rule, absorbs the zero-padded plaintext (not the raw decrypted bytes)
// into the state so that seal and open remain symmetric on the tag.
func (s *state) decPartial(dst []byte, r int, src []byte) {
	var padded [blockSize]byte
	copy(padded[:], src[:r])

	c0 := loadLane(padded[:16])
	c1 := loadLane(padded[16:])

	m0 := xorLane(aesRound(s[1], s[5]), c0)
	m1 := xorLane(aesRound(xorLane(s[0], s[4]), s[2]), c1)

	var plain [blockSize]byte
	storeLane(plain[:16], m0)
	storeLane(plain[16:], m1)
	for i := r; i < blockSize; i++ {
		plain[i] = 0
	}
	copy(dst[:r], plain[:r])

	s.update(loadLane(plain[:16]), loadLane(plain[16:]))

	wipe(padded[:])
	wipe(plain[:])
}

// mac runs the finalization rounds and returns the 128-bit authentication
// tag over the absorbed AD and processed message of the given lengths.
func (s *state) mac(adLen, msgLen int) lane {
	var adBlock, msgBlock [16]byte
	putUint64LE(adBlock[:8], uint64(adLen)*8)
	putUint64LE(msgBlock[:8], uint64(msgLen)*8)

	adBits := loadLane(adBlock[:])
	msgBits := loadLane(msgBlock[:])

	for i := 0; i < rounds; i++ {
		s.update(adBits, msgBits)
	}

	tag := s[0]
	for i := 1; i < 8; i++ {
		tag = xorLane(tag, s[i])
	}
	return tag
}

func putUint64LE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}
