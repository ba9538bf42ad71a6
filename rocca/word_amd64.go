//go:build amd64

package rocca

import "golang.org/x/sys/cpu"

// detectHardwareAESRound returns the AES-NI backed round function when the
// running CPU advertises AES support.
func detectHardwareAESRound() (func(in, rk lane) lane, bool) {
	if !cpu.X86.HasAES {
		return nil, false
	}
	return hardwareAESRound, true
}

func hardwareAESRound(in, rk lane) lane {
	var out lane
	aesencAsm((*[16]byte)(&in), (*[16]byte)(&rk), (*[16]byte)(&out))
	return out
}

// aesencAsm computes one AESENC round of state over roundKey into out.
//
//go:noescape
func aesencAsm(state, roundKey, out *[16]byte)
