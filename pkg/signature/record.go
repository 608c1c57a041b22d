// Package signature turns raw Google Workspace directory records into
// rendered HTML email signatures. It is pure: no I/O, no shared state,
// safe to call concurrently across records.
package signature

// DirectoryRecord is the subset of a directory user entry consumed by the
// relevance filter and the profile normalizer. Missing data is represented
// by zero values; every function in this package is total over any record
// shape.
type DirectoryRecord struct {
	PrimaryEmail string
	Suspended    bool
	Archived     bool
	OrgUnitPath  string
	Name         RecordName
	Phones       []Phone
	Addresses    []Address
	Orgs         []Organization
	Custom       CustomSchemas
}

type RecordName struct {
	GivenName  string
	FamilyName string
}

// Phone is a typed phone entry. Known types are "work" and "mobile".
type Phone struct {
	Type  string
	Value string
}

// Address is a typed postal address entry. Only "work" entries are used.
type Address struct {
	Type      string
	Formatted string
}

type Organization struct {
	Title      string
	Department string
}

// CustomSchemas mirrors the custom attribute groups maintained in the
// directory for signature rendering.
type CustomSchemas struct {
	PersonalInformation    PersonalInformation
	ContractualInformation ContractualInformation
}

type PersonalInformation struct {
	Pronouns   string
	GernePerDu string
}

type ContractualInformation struct {
	ManagementRole string
}

// firstPhoneByType returns the value of the first phone entry with the
// given type tag, or "" if none exists.
func firstPhoneByType(phones []Phone, typ string) string {
	for _, p := range phones {
		if p.Type == typ {
			return p.Value
		}
	}
	return ""
}

func firstAddressByType(addresses []Address, typ string) string {
	for _, a := range addresses {
		if a.Type == typ {
			return a.Formatted
		}
	}
	return ""
}
