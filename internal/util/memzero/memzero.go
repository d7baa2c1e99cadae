// Package memzero wipes buffers that held secrets, such as request bodies
// carrying a password.
package memzero

import "runtime"

// Zero overwrites every buffer in bufs. Nil and empty buffers are skipped.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
		// Keep b reachable until the writes above have happened.
		runtime.KeepAlive(b)
	}
}
