package vds

import "fmt"

// MessageZone derives the message bytes: one tag, raw one-byte length and
// value per feature, in insertion order.
func (s *Seal) MessageZone() []byte {
	n := 0
	for _, f := range s.features {
		n += 2 + len(f.Value)
	}
	out := make([]byte, 0, n)
	for _, f := range s.features {
		out = append(out, f.Tag, byte(len(f.Value)))
		out = append(out, f.Value...)
	}
	return out
}

// parseMessage walks TLV entries from the front of b. With stopAtSignature
// set the walk ends at the signature marker; otherwise the marker is a
// malformed tag.
func parseMessage(b []byte, stopAtSignature bool) ([]Feature, int, error) {
	var features []Feature
	i := 0
	for i < len(b) {
		tag := b[i]
		if tag == signatureMarker {
			if stopAtSignature {
				break
			}
			return nil, 0, &FormatError{Msg: "unexpected signature marker inside message zone"}
		}
		if tag == 0x00 {
			return nil, 0, &FormatError{Msg: "feature tag 0x00 is reserved"}
		}
		if i+2 > len(b) {
			return nil, 0, &LengthMismatchError{Declared: i + 2, Actual: len(b)}
		}
		length := int(b[i+1])
		if i+2+length > len(b) {
			return nil, 0, &LengthMismatchError{Declared: length, Actual: len(b) - i - 2}
		}
		value := append([]byte(nil), b[i+2:i+2+length]...)
		for _, f := range features {
			if f.Tag == tag {
				return nil, 0, &FormatError{Msg: fmt.Sprintf("duplicate feature tag %#x", tag)}
			}
		}
		features = append(features, Feature{Tag: tag, Value: value})
		i += 2 + length
	}
	return features, i, nil
}

// SetMessageZone parses b as a complete bare message zone and, on success,
// replaces the feature map atomically.
func (s *Seal) SetMessageZone(b []byte) error {
	features, consumed, err := parseMessage(b, false)
	if err != nil {
		return err
	}
	if consumed != len(b) {
		return &LengthMismatchError{Declared: consumed, Actual: len(b)}
	}
	s.features = features
	return nil
}
