//go:build !amd64 && !arm64

package rocca

// detectHardwareAESRound reports false on architectures this package has
// no assembly for; softwareAESRound carries the whole load there.
func detectHardwareAESRound() (func(in, rk lane) lane, bool) {
	return nil, false
}
