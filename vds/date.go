package vds

import (
	"fmt"
	"time"
)

// EncodeDate packs t into 3 bytes: the decimal number MMDDYYYY stored as a
// 24-bit big-endian value. Any realistic calendar year fits.
func EncodeDate(t time.Time) [3]byte {
	n := uint32(int(t.Month())*1000000 + t.Day()*10000 + t.Year())
	return [3]byte{byte(n >> 16), byte(n >> 8), byte(n)}
}

// DecodeDate unpacks a 3-byte seal date.
func DecodeDate(b []byte) (time.Time, error) {
	if len(b) < 3 {
		return time.Time{}, &LengthMismatchError{Declared: 3, Actual: len(b)}
	}
	n := uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
	month := int(n / 1000000)
	day := int(n / 10000 % 100)
	year := int(n % 10000)
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, &FormatError{Msg: fmt.Sprintf("impossible packed date %08d", n)}
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}
