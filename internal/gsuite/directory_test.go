package gsuite

import (
	"testing"

	"github.com/KaiserXLabs/kxl-gmail-signature-update/pkg/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	admin "google.golang.org/api/admin/directory/v1"
	"google.golang.org/api/googleapi"
)

func TestToDirectoryRecord(t *testing.T) {
	user := &admin.User{
		PrimaryEmail: "ana.schmidt@kaiser-x.com",
		OrgUnitPath:  "/Employees",
		Name:         &admin.UserName{GivenName: "Ana", FamilyName: "Schmidt"},
		Phones: []any{
			map[string]any{"type": "work", "value": "+49 89 1234"},
			map[string]any{"type": "mobile", "value": "+49 170 5678"},
		},
		Addresses: []any{
			map[string]any{"type": "work", "formatted": "Dachauer Str. 44, Munich"},
		},
		Organizations: []any{
			map[string]any{"title": "Software Engineer", "department": "Engineering"},
		},
		CustomSchemas: map[string]googleapi.RawMessage{
			"Personal_Information":    []byte(`{"Pronouns":"she/her","GernePerDu":"yes"}`),
			"Contractual_Information": []byte(`{"Management_Role":"Team Lead"}`),
		},
	}

	record, err := ToDirectoryRecord(user)
	require.NoError(t, err)

	assert.Equal(t, "ana.schmidt@kaiser-x.com", record.PrimaryEmail)
	assert.Equal(t, "/Employees", record.OrgUnitPath)
	assert.Equal(t, signature.RecordName{GivenName: "Ana", FamilyName: "Schmidt"}, record.Name)
	assert.Equal(t, []signature.Phone{
		{Type: "work", Value: "+49 89 1234"},
		{Type: "mobile", Value: "+49 170 5678"},
	}, record.Phones)
	assert.Equal(t, []signature.Address{
		{Type: "work", Formatted: "Dachauer Str. 44, Munich"},
	}, record.Addresses)
	assert.Equal(t, []signature.Organization{
		{Title: "Software Engineer", Department: "Engineering"},
	}, record.Orgs)
	assert.Equal(t, "she/her", record.Custom.PersonalInformation.Pronouns)
	assert.Equal(t, "yes", record.Custom.PersonalInformation.GernePerDu)
	assert.Equal(t, "Team Lead", record.Custom.ContractualInformation.ManagementRole)
}

func TestToDirectoryRecordSparseUser(t *testing.T) {
	record, err := ToDirectoryRecord(&admin.User{PrimaryEmail: "noc@kaiser-x.com"})
	require.NoError(t, err)

	assert.Equal(t, "noc@kaiser-x.com", record.PrimaryEmail)
	assert.Empty(t, record.Name.GivenName)
	assert.Empty(t, record.Phones)
	assert.Empty(t, record.Addresses)
	assert.Empty(t, record.Orgs)
	assert.Empty(t, record.Custom.PersonalInformation.Pronouns)

	// A sparse record still normalizes to a complete profile.
	profile := signature.Normalize(record)
	assert.False(t, profile.Technical())
	assert.Equal(t, "noc@kaiser-x.com", profile.Email())
}
