package document

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/openmrtd/sealcodec/vds"
)

// setHexFeature stores a hex-coded integer under tag. The value is padded to
// 8 hex characters, then leading zero byte pairs are stripped; a value of
// zero keeps exactly one 00 byte.
func setHexFeature(seal *vds.Seal, tag byte, value string) error {
	value = strings.ToUpper(value)
	if len(value) == 0 || len(value) > 8 {
		return &vds.ValidationError{Field: "feature value", Msg: "must be 1 to 8 hex characters"}
	}
	padded := strings.Repeat("0", 8-len(value)) + value
	b, err := hex.DecodeString(padded)
	if err != nil {
		return &vds.ValidationError{Field: "feature value", Msg: fmt.Sprintf("%q is not hex", value)}
	}
	i := 0
	for i < len(b)-1 && b[i] == 0 {
		i++
	}
	return seal.SetFeature(tag, b[i:])
}

// hexFeature reads a hex-coded integer feature back as an uppercase hex
// string.
func hexFeature(seal *vds.Seal, tag byte) (string, bool) {
	b, ok := seal.Feature(tag)
	if !ok {
		return "", false
	}
	return strings.ToUpper(hex.EncodeToString(b)), true
}
