package common

import "strings"

// WipeByteArray overwrites the contents of b with zeros. Used for the
// password buffer read from the terminal once the request is done. Only b
// itself is cleared; strings or request bodies built from it are not.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// UsernameFromEmail returns the local part of an email address, i.e.
// everything before the first '@'. An address without '@' is returned as is.
func UsernameFromEmail(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return local
}
