package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRecord() DirectoryRecord {
	return DirectoryRecord{
		PrimaryEmail: "ana.schmidt@kaiser-x.com",
		OrgUnitPath:  "/Employees",
		Name:         RecordName{GivenName: "Ana", FamilyName: "Schmidt"},
		Phones: []Phone{
			{Type: "work", Value: "+49 89 1234"},
			{Type: "mobile", Value: "+49 170 5678"},
		},
		Addresses: []Address{
			{Type: "home", Formatted: "Somewhere 1, Munich"},
			{Type: "work", Formatted: "Dachauer Str. 44, Munich"},
		},
		Orgs: []Organization{
			{Title: "Software Engineer", Department: "Engineering"},
		},
		Custom: CustomSchemas{
			PersonalInformation:    PersonalInformation{Pronouns: "she/her", GernePerDu: "yes"},
			ContractualInformation: ContractualInformation{ManagementRole: "Team Lead"},
		},
	}
}

func TestNormalizeEmployee(t *testing.T) {
	profile := Normalize(fullRecord())

	employee, ok := profile.(EmployeeProfile)
	require.True(t, ok)
	assert.False(t, profile.Technical())

	assert.Equal(t, "ana.schmidt@kaiser-x.com", employee.PrimaryEmail)
	assert.Equal(t, "Ana", employee.FirstName)
	assert.Equal(t, "Schmidt", employee.LastName)
	assert.Equal(t, "Software Engineer", employee.JobTitle)
	assert.Equal(t, "Engineering", employee.Department)
	assert.Equal(t, "Dachauer Str. 44, Munich", employee.Address)
	assert.Equal(t, "+49 89 1234", employee.Phone)
	assert.Equal(t, "+49 170 5678", employee.Mobile)
	assert.Equal(t, "she/her", employee.Pronouns)
	assert.True(t, employee.GernePerDu)
	assert.True(t, employee.ShowPronounLine)
	assert.Equal(t, "Team Lead", employee.ManagementRole)
}

func TestNormalizeTechnicalAccount(t *testing.T) {
	record := fullRecord()
	record.OrgUnitPath = OrgUnitTechnicalAccounts
	record.PrimaryEmail = "noc@kaiser-x.com"

	profile := Normalize(record)

	technical, ok := profile.(TechnicalProfile)
	require.True(t, ok)
	assert.True(t, profile.Technical())

	assert.Equal(t, "noc@kaiser-x.com", technical.PrimaryEmail)
	assert.Equal(t, "Schmidt", technical.LastName)
	assert.Equal(t, "Dachauer Str. 44, Munich", technical.Address)
	assert.Equal(t, "+49 89 1234", technical.Phone)

	// The reduced shape owns only the common keywords.
	for _, keyword := range []string{KeywordFirstName, KeywordJobTitle, KeywordDepartment, KeywordMobile, KeywordPronouns, KeywordGernePerDu, KeywordShowPronounLine, KeywordManagementRole} {
		_, ok := technical.lookup(keyword)
		assert.False(t, ok, "keyword %q must be absent for technical accounts", keyword)
	}
}

func TestNormalizeEmptyRecord(t *testing.T) {
	profile := Normalize(DirectoryRecord{})

	employee, ok := profile.(EmployeeProfile)
	require.True(t, ok)

	assert.Empty(t, employee.PrimaryEmail)
	assert.Empty(t, employee.FirstName)
	assert.Empty(t, employee.LastName)
	assert.Empty(t, employee.JobTitle)
	assert.Empty(t, employee.Department)
	assert.Empty(t, employee.Address)
	assert.Empty(t, employee.Phone)
	assert.Empty(t, employee.Mobile)
	assert.Empty(t, employee.Pronouns)
	assert.False(t, employee.GernePerDu)
	assert.False(t, employee.ShowPronounLine)
	assert.Empty(t, employee.ManagementRole)
}

func TestNormalizeFirstMatchWins(t *testing.T) {
	record := DirectoryRecord{
		Phones: []Phone{
			{Type: "work", Value: "first-work"},
			{Type: "work", Value: "second-work"},
			{Type: "mobile", Value: "first-mobile"},
			{Type: "mobile", Value: "second-mobile"},
		},
		Addresses: []Address{
			{Type: "work", Formatted: "first-address"},
			{Type: "work", Formatted: "second-address"},
		},
	}

	employee := Normalize(record).(EmployeeProfile)
	assert.Equal(t, "first-work", employee.Phone)
	assert.Equal(t, "first-mobile", employee.Mobile)
	assert.Equal(t, "first-address", employee.Address)
}

func TestNormalizeShowPronounLine(t *testing.T) {
	tests := []struct {
		name       string
		pronouns   string
		gernePerDu string
		expected   bool
	}{
		{"no pronouns, not per du", "", "", false},
		{"no pronouns, explicit no", "", "no", false},
		{"pronouns only", "they/them", "", true},
		{"per du only", "", "yes", true},
		{"both", "she/her", "yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := DirectoryRecord{
				Custom: CustomSchemas{
					PersonalInformation: PersonalInformation{Pronouns: tt.pronouns, GernePerDu: tt.gernePerDu},
				},
			}

			employee := Normalize(record).(EmployeeProfile)
			assert.Equal(t, tt.expected, employee.ShowPronounLine)
			assert.Equal(t, tt.gernePerDu == "yes", employee.GernePerDu)
		})
	}
}

func TestNormalizeNoOrganizations(t *testing.T) {
	record := fullRecord()
	record.Orgs = nil

	employee := Normalize(record).(EmployeeProfile)
	assert.Empty(t, employee.JobTitle)
	assert.Empty(t, employee.Department)
}
