//go:build arm64

package rocca

import "golang.org/x/sys/cpu"

// detectHardwareAESRound returns the ARMv8 Cryptography Extension backed
// round function when the running CPU advertises AES support.
func detectHardwareAESRound() (func(in, rk lane) lane, bool) {
	if !cpu.ARM64.HasAES {
		return nil, false
	}
	return hardwareAESRound, true
}

func hardwareAESRound(in, rk lane) lane {
	var out lane
	aeseAsm((*[16]byte)(&in), (*[16]byte)(&rk), (*[16]byte)(&out))
	return out
}

// aeseAsm computes AESMC(AESE(state, 0)) ^ roundKey into out, matching the
// semantics of the x86 AESENC instruction.
//
//go:noescape
func aeseAsm(state, roundKey, out *[16]byte)
