// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

var hexDigits = "0123456789ABCDEF"

// toBytes returns the little-endian encoding of value using the
// requested number of bytes (1, 2, or 4).
func toBytes(width int, value int) []byte {
	switch width {
	case 1:
		return []byte{byte(value)}
	case 2:
		return []byte{byte(value), byte(value >> 8)}
	default:
		return []byte{byte(value), byte(value >> 8), byte(value >> 16), byte(value >> 24)}
	}
}

// byteString renders a byte slice as a space-separated hex string, used
// by the verbose trace and by the tests to compare emitted bytes.
func byteString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	s := make([]byte, len(b)*3-1)
	i, j := 0, 0
	for n := len(b) - 1; i < n; i, j = i+1, j+3 {
		s[j] = hexDigits[b[i]>>4]
		s[j+1] = hexDigits[b[i]&0xf]
		s[j+2] = ' '
	}
	s[j] = hexDigits[b[len(b)-1]>>4]
	s[j+1] = hexDigits[b[len(b)-1]&0xf]
	return string(s)
}
