package document

import (
	"fmt"

	"github.com/openmrtd/sealcodec/mrz"
	"github.com/openmrtd/sealcodec/vds"
)

// Message-zone tags used by the events profiles.
const (
	featureEventCode       = 0x02
	featureNumberOfEntries = 0x02
	featureDurationOfStay  = 0x03
	featurePassportNumber  = 0x04
)

// EventsPassport is a TD3-sized event passport sealed with a version 4 seal.
// Feature 0x02 carries the hex-coded event code.
type EventsPassport struct {
	adapter
}

// NewEventsPassport returns a passport pre-filled with valid sample data.
func NewEventsPassport() *EventsPassport {
	return &EventsPassport{adapter: newTD3Adapter(vds.V4)}
}

// SetEventCode stores the hex-coded event code under feature 0x02.
func (p *EventsPassport) SetEventCode(code string) error {
	return setHexFeature(p.seal, featureEventCode, code)
}

// EventCode returns the hex-coded event code, if set.
func (p *EventsPassport) EventCode() (string, bool) {
	return hexFeature(p.seal, featureEventCode)
}

// EventsVisa is a TD3-sized event visa sealed with a version 4 seal. It
// carries the number of entries under 0x02, the duration of stay in days
// under 0x03 and the C40-compacted passport number under 0x04.
type EventsVisa struct {
	adapter
}

// NewEventsVisa returns a visa pre-filled with valid sample data.
func NewEventsVisa() *EventsVisa {
	return &EventsVisa{adapter: newTD3Adapter(vds.V4)}
}

// SetNumberOfEntries stores the hex-coded number of entries under 0x02.
func (v *EventsVisa) SetNumberOfEntries(entries string) error {
	return setHexFeature(v.seal, featureNumberOfEntries, entries)
}

// NumberOfEntries returns the hex-coded number of entries, if set.
func (v *EventsVisa) NumberOfEntries() (string, bool) {
	return hexFeature(v.seal, featureNumberOfEntries)
}

// SetDurationOfStay stores the hex-coded duration of stay in days under 0x03.
func (v *EventsVisa) SetDurationOfStay(days string) error {
	return setHexFeature(v.seal, featureDurationOfStay, days)
}

// DurationOfStay returns the hex-coded duration of stay, if set.
func (v *EventsVisa) DurationOfStay() (string, bool) {
	return hexFeature(v.seal, featureDurationOfStay)
}

// SetPassportNumber stores the C40-compacted passport number under 0x04.
func (v *EventsVisa) SetPassportNumber(number string) error {
	encoded, err := vds.C40Encode(mrz.Normalize(number))
	if err != nil {
		return fmt.Errorf("failed to set passport number: %w", err)
	}
	return v.seal.SetFeature(featurePassportNumber, encoded)
}

// PassportNumber returns the passport number, if set.
func (v *EventsVisa) PassportNumber() (string, bool) {
	value, ok := v.seal.Feature(featurePassportNumber)
	if !ok {
		return "", false
	}
	number, err := vds.C40Decode(value)
	if err != nil {
		return "", false
	}
	return number, true
}

// newTD3Adapter pairs a specimen TD3 document with a fresh seal and runs the
// initial field sync.
func newTD3Adapter(v vds.Version) adapter {
	seal, err := vds.NewSeal(v)
	if err != nil {
		panic(fmt.Sprintf("document: bad built-in seal version: %v", err))
	}
	a := adapter{doc: mrz.NewTD3(), seal: seal}
	if err := a.fieldsToSeal(); err != nil {
		panic(fmt.Sprintf("document: specimen defaults failed to sync: %v", err))
	}
	return a
}
