package vds

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Formatter renders seal state for display.
type Formatter struct{}

// NewFormatter creates a new formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

const sealDateLayout = "2006-01-02"

// FormatSeal renders the seal as indented text.
func (f *Formatter) FormatSeal(s *Seal) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Version: %d (byte %#02x)\n", sealProfileNumber(s.version), byte(s.version)))
	sb.WriteString(fmt.Sprintf("Authority: %s\n", s.AuthorityCode()))
	sb.WriteString(fmt.Sprintf("Signer Identifier: %s\n", s.IdentifierCode()))
	sb.WriteString(fmt.Sprintf("Certificate Reference: %s\n", s.CertReference()))
	sb.WriteString(fmt.Sprintf("Issue Date: %s\n", s.IssueDate().Format(sealDateLayout)))
	sb.WriteString(fmt.Sprintf("Signature Date: %s\n", s.SignatureDate().Format(sealDateLayout)))
	sb.WriteString(fmt.Sprintf("Feature Definition: %d\n", s.FeatureDefinition()))
	sb.WriteString(fmt.Sprintf("Type Category: %d\n", s.TypeCategory()))
	sb.WriteString("Features:\n")
	for _, feat := range s.Features() {
		sb.WriteString(fmt.Sprintf("  [%#02x] %s\n", feat.Tag, hex.EncodeToString(feat.Value)))
	}
	if sig := s.SignatureData(); len(sig) > 0 {
		sb.WriteString(fmt.Sprintf("Signature: %s\n", hex.EncodeToString(sig)))
	}
	return sb.String()
}

// FormatSealJSON renders the seal as a map ready for JSON output.
func (f *Formatter) FormatSealJSON(s *Seal) map[string]any {
	features := make([]map[string]any, 0, len(s.Features()))
	for _, feat := range s.Features() {
		features = append(features, map[string]any{
			"tag":   fmt.Sprintf("%#02x", feat.Tag),
			"value": hex.EncodeToString(feat.Value),
		})
	}
	return map[string]any{
		"version":           sealProfileNumber(s.version),
		"authority":         s.AuthorityCode(),
		"signerIdentifier":  s.IdentifierCode(),
		"certReference":     s.CertReference(),
		"issueDate":         s.IssueDate().Format(sealDateLayout),
		"signatureDate":     s.SignatureDate().Format(sealDateLayout),
		"featureDefinition": s.FeatureDefinition(),
		"typeCategory":      s.TypeCategory(),
		"features":          features,
		"signature":         hex.EncodeToString(s.SignatureData()),
	}
}

// FormatZones renders each wire zone of the seal as labelled hex.
func (f *Formatter) FormatZones(s *Seal) (string, error) {
	header, err := s.HeaderZone()
	if err != nil {
		return "", err
	}
	signature, err := s.SignatureZone()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Header Zone:    %s\n", hex.EncodeToString(header)))
	sb.WriteString(fmt.Sprintf("Message Zone:   %s\n", hex.EncodeToString(s.MessageZone())))
	sb.WriteString(fmt.Sprintf("Signature Zone: %s\n", hex.EncodeToString(signature)))
	return sb.String(), nil
}

// sealProfileNumber maps a version byte to the profile number people use in
// conversation: byte 0x02 is seal version 3, byte 0x03 version 4.
func sealProfileNumber(v Version) int {
	return int(v) + 1
}
