package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Used to drop passwords from memory as soon as they are consumed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
