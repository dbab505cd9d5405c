package document

import (
	"fmt"

	"github.com/openmrtd/sealcodec/mrz"
	"github.com/openmrtd/sealcodec/vds"
)

// Message-zone tags used by the crew document profiles, alongside the shared
// MRZ feature.
const (
	featureEmployerCode  = 0x02
	featurePrivilegeCode = 0x02
)

// CrewCertificate is a TD1-sized crew member certificate sealed with a
// version 4 seal. Feature 0x02 carries the hex-coded employer code.
type CrewCertificate struct {
	adapter
}

// NewCrewCertificate returns a certificate pre-filled with valid sample data.
func NewCrewCertificate() *CrewCertificate {
	return &CrewCertificate{adapter: newTD1Adapter(vds.V4)}
}

// SetEmployerCode stores the hex-coded employer code under feature 0x02.
func (c *CrewCertificate) SetEmployerCode(code string) error {
	return setHexFeature(c.seal, featureEmployerCode, code)
}

// EmployerCode returns the hex-coded employer code, if set.
func (c *CrewCertificate) EmployerCode() (string, bool) {
	return hexFeature(c.seal, featureEmployerCode)
}

// CrewID is a TD1-sized crew identity card sealed with a version 3 seal.
// Feature 0x02 carries the hex-coded employer code.
type CrewID struct {
	adapter
}

// NewCrewID returns a crew ID pre-filled with valid sample data.
func NewCrewID() *CrewID {
	return &CrewID{adapter: newTD1Adapter(vds.V3)}
}

// SetEmployerCode stores the hex-coded employer code under feature 0x02.
func (c *CrewID) SetEmployerCode(code string) error {
	return setHexFeature(c.seal, featureEmployerCode, code)
}

// EmployerCode returns the hex-coded employer code, if set.
func (c *CrewID) EmployerCode() (string, bool) {
	return hexFeature(c.seal, featureEmployerCode)
}

// CrewLicense is a TD1-sized crew license sealed with a version 3 seal.
// Feature 0x02 carries the hex-coded privilege code.
type CrewLicense struct {
	adapter
}

// NewCrewLicense returns a license pre-filled with valid sample data.
func NewCrewLicense() *CrewLicense {
	return &CrewLicense{adapter: newTD1Adapter(vds.V3)}
}

// SetPrivilegeCode stores the hex-coded privilege code under feature 0x02.
func (c *CrewLicense) SetPrivilegeCode(code string) error {
	return setHexFeature(c.seal, featurePrivilegeCode, code)
}

// PrivilegeCode returns the hex-coded privilege code, if set.
func (c *CrewLicense) PrivilegeCode() (string, bool) {
	return hexFeature(c.seal, featurePrivilegeCode)
}

// newTD1Adapter pairs a specimen TD1 document with a fresh seal and runs the
// initial field sync. Specimen defaults are valid, so construction cannot
// fail.
func newTD1Adapter(v vds.Version) adapter {
	seal, err := vds.NewSeal(v)
	if err != nil {
		panic(fmt.Sprintf("document: bad built-in seal version: %v", err))
	}
	a := adapter{doc: mrz.NewTD1(), seal: seal}
	if err := a.fieldsToSeal(); err != nil {
		panic(fmt.Sprintf("document: specimen defaults failed to sync: %v", err))
	}
	return a
}
