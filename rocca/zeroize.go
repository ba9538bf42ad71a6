package rocca

import "runtime"

// wipe overwrites b with zeros. It scrubs scratch buffers that briefly
// held plaintext, keystream, or padding before a Seal/Open call returns.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
