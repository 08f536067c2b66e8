package common

// WipeByteArray zeroes the contents of buf. It is used to scrub passwords
// from memory once they are no longer needed. Safe to call with nil.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
