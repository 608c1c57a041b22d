package signature

import "strconv"

// Template keywords recognized by the engine. The assembler drives
// rendering by an explicit list of these; the engine never scans a
// template for markers on its own.
const (
	KeywordEmail           = "email"
	KeywordFirstName       = "firstName"
	KeywordLastName        = "lastName"
	KeywordJobTitle        = "jobTitle"
	KeywordDepartment      = "department"
	KeywordAddress         = "address"
	KeywordPhone           = "phone"
	KeywordMobile          = "mobile"
	KeywordPronouns        = "pronouns"
	KeywordGernePerDu      = "gernePerDu"
	KeywordShowPronounLine = "showPronounLine"
	KeywordManagementRole  = "managementRole"

	KeywordCompany = "company"
	KeywordWeb     = "web"
)

// Profile is the normalized, template-ready representation of one
// directory record. It has exactly two shapes: EmployeeProfile for people
// and TechnicalProfile for non-human service accounts, which carry a
// reduced field set. The interface is sealed so no third shape can exist.
type Profile interface {
	// Email returns the primary address the signature belongs to.
	Email() string

	// Technical reports whether the profile is a technical account.
	Technical() bool

	// lookup resolves a template keyword against the profile. ok is false
	// when the keyword is not part of this profile's shape; in-shape fields
	// with no data resolve to an empty value instead.
	lookup(keyword string) (fieldValue, bool)
}

// EmployeeProfile is the standard profile shape for a person.
type EmployeeProfile struct {
	PrimaryEmail   string
	FirstName      string
	LastName       string
	JobTitle       string
	Department     string
	Address        string
	Phone          string
	Mobile         string
	Pronouns       string
	GernePerDu     bool
	ManagementRole string

	// ShowPronounLine gates the pronoun line of the template. It is derived:
	// false only when both Pronouns is empty and GernePerDu is false.
	ShowPronounLine bool
}

// TechnicalProfile is the reduced shape for service identities. Fields
// beyond these do not exist for technical accounts; they are absent, not
// empty.
type TechnicalProfile struct {
	PrimaryEmail string
	LastName     string
	Address      string
	Phone        string
}

// Normalize converts a raw directory record into its template-ready
// profile. It is deterministic and total: absent values map to empty
// strings or false, never to an error. The first matching entry wins for
// typed phone and address lists.
func Normalize(r DirectoryRecord) Profile {
	email := r.PrimaryEmail
	lastName := r.Name.FamilyName
	address := firstAddressByType(r.Addresses, "work")
	phone := firstPhoneByType(r.Phones, "work")

	if r.OrgUnitPath == OrgUnitTechnicalAccounts {
		return TechnicalProfile{
			PrimaryEmail: email,
			LastName:     lastName,
			Address:      address,
			Phone:        phone,
		}
	}

	var jobTitle, department string
	if len(r.Orgs) > 0 {
		jobTitle = r.Orgs[0].Title
		department = r.Orgs[0].Department
	}

	pronouns := r.Custom.PersonalInformation.Pronouns
	gernePerDu := r.Custom.PersonalInformation.GernePerDu == "yes"

	return EmployeeProfile{
		PrimaryEmail:    email,
		FirstName:       r.Name.GivenName,
		LastName:        lastName,
		JobTitle:        jobTitle,
		Department:      department,
		Address:         address,
		Phone:           phone,
		Mobile:          firstPhoneByType(r.Phones, "mobile"),
		Pronouns:        pronouns,
		GernePerDu:      gernePerDu,
		ShowPronounLine: !(pronouns == "" && !gernePerDu),
		ManagementRole:  r.Custom.ContractualInformation.ManagementRole,
	}
}

// fieldValue is the value a keyword resolves to: either a string or a
// boolean flag.
type fieldValue struct {
	text   string
	flag   bool
	isFlag bool
}

func stringValue(s string) fieldValue { return fieldValue{text: s} }
func flagValue(b bool) fieldValue     { return fieldValue{flag: b, isFlag: true} }

// String renders the value the way it is substituted into a template.
func (v fieldValue) String() string {
	if v.isFlag {
		return strconv.FormatBool(v.flag)
	}
	return v.text
}

// truthy decides whether a conditional block is kept: non-empty string or
// true flag.
func (v fieldValue) truthy() bool {
	if v.isFlag {
		return v.flag
	}
	return v.text != ""
}

func (p EmployeeProfile) Email() string   { return p.PrimaryEmail }
func (p EmployeeProfile) Technical() bool { return false }

func (p EmployeeProfile) lookup(keyword string) (fieldValue, bool) {
	switch keyword {
	case KeywordEmail:
		return stringValue(p.PrimaryEmail), true
	case KeywordFirstName:
		return stringValue(p.FirstName), true
	case KeywordLastName:
		return stringValue(p.LastName), true
	case KeywordJobTitle:
		return stringValue(p.JobTitle), true
	case KeywordDepartment:
		return stringValue(p.Department), true
	case KeywordAddress:
		return stringValue(p.Address), true
	case KeywordPhone:
		return stringValue(p.Phone), true
	case KeywordMobile:
		return stringValue(p.Mobile), true
	case KeywordPronouns:
		return stringValue(p.Pronouns), true
	case KeywordGernePerDu:
		return flagValue(p.GernePerDu), true
	case KeywordShowPronounLine:
		return flagValue(p.ShowPronounLine), true
	case KeywordManagementRole:
		return stringValue(p.ManagementRole), true
	}
	return fieldValue{}, false
}

func (p TechnicalProfile) Email() string   { return p.PrimaryEmail }
func (p TechnicalProfile) Technical() bool { return true }

func (p TechnicalProfile) lookup(keyword string) (fieldValue, bool) {
	switch keyword {
	case KeywordEmail:
		return stringValue(p.PrimaryEmail), true
	case KeywordLastName:
		return stringValue(p.LastName), true
	case KeywordAddress:
		return stringValue(p.Address), true
	case KeywordPhone:
		return stringValue(p.Phone), true
	}
	return fieldValue{}, false
}
