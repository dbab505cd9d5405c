package vds

import "encoding/binary"

// maxDERLengthBytes caps the long form at 4 length bytes, well above any
// seal payload.
const maxDERLengthBytes = 4

// DERLength encodes n in BER/DER definite-length form: a single byte below
// 128, otherwise 0x80|k followed by k big-endian length bytes.
func DERLength(n int) ([]byte, error) {
	if n < 0 {
		return nil, &ValidationError{Field: "der length", Msg: "must not be negative"}
	}
	if n < 0x80 {
		return []byte{byte(n)}, nil
	}
	if uint64(n) > 0xFFFFFFFF {
		return nil, &ValidationError{Field: "der length", Msg: "too large for this context"}
	}
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(n))
	i := 0
	for buf[i] == 0 {
		i++
	}
	out := make([]byte, 0, 5-i)
	out = append(out, 0x80|byte(4-i))
	return append(out, buf[i:]...), nil
}

// ParseDERLength decodes a definite-length prefix and returns the length and
// the number of bytes consumed.
func ParseDERLength(b []byte) (length, consumed int, err error) {
	if len(b) == 0 {
		return 0, 0, &LengthMismatchError{Declared: 1, Actual: 0}
	}
	first := b[0]
	if first < 0x80 {
		return int(first), 1, nil
	}
	k := int(first & 0x7F)
	if k == 0 || k > maxDERLengthBytes {
		return 0, 0, &ValidationError{Field: "der length", Msg: "unsupported length-of-length"}
	}
	if len(b) < 1+k {
		return 0, 0, &LengthMismatchError{Declared: 1 + k, Actual: len(b)}
	}
	n := 0
	for _, v := range b[1 : 1+k] {
		n = n<<8 | int(v)
	}
	return n, 1 + k, nil
}
