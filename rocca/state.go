package rocca

const (
	// blockSize is the absorption/encryption unit: two 128-bit lanes.
	blockSize = 32
	// rounds is the number of R applications used by both init and mac.
	rounds = 20
)

// z0 and z1 are the same 128-bit constants used as IV words in SHA-256 and
// SHA-512, stored least-significant-byte first.
var (
	z0 = lane{0xcd, 0x65, 0xef, 0x23, 0x91, 0x44, 0x37, 0x71, 0x22, 0xae, 0x28, 0xd7, 0x98, 0x2f, 0x8a, 0x42}
	z1 = lane{0xbc, 0xdb, 0x89, 0x81, 0xa5, 0xdb, 0xb5, 0xe9, 0x2f, 0x3b, 0x4d, 0xec, 0xcf, 0xfb, 0xc0, 0xb5}
)

// state holds the eight 128-bit lanes mutated by every phase of a single
// seal or open call. It is created by initState and never outlives the
// call that created it.
type state [8]lane

// update applies the round function R(S, X0, X1) in place. Every read of
// the old state happens before any write, matching the all-reads-then-all-
// writes structure the construction depends on.
func (s *state) update(x0, x1 lane) {
	t0 := xorLane(s[7], x0)
	t1 := aesRound(s[0], s[7])
	t2 := xorLane(s[1], s[6])
	t3 := aesRound(s[2], s[1])
	t4 := xorLane(s[3], x1)
	t5 := aesRound(s[4], s[3])
	t6 := aesRound(s[5], s[4])
	t7 := xorLane(s[0], s[6])

	s[0], s[1], s[2], s[3] = t0, t1, t2, t3
	s[4], s[5], s[6], s[7] = t4, t5, t6, t7
}

// initState builds the initial state from a 32-byte key and 16-byte nonce
// and runs the key/nonce absorption schedule.
func initState(key, nonce []byte) state {
	k0 := loadLane(key[:16])
	k1 := loadLane(key[16:32])
	n := loadLane(nonce)

	s := state{
		k1,
		n,
		z0,
		z1,
		xorLane(n, k1),
		lane{},
		k0,
		lane{},
	}
	for i := 0; i < rounds; i++ {
		s.update(z0, z1)
	}
	return s
}
