package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRelevant(t *testing.T) {
	tests := []struct {
		name     string
		record   DirectoryRecord
		relevant bool
	}{
		{
			name:     "regular employee",
			record:   DirectoryRecord{PrimaryEmail: "ana.schmidt@kaiser-x.com", OrgUnitPath: "/Employees"},
			relevant: true,
		},
		{
			name:     "technical account stays relevant",
			record:   DirectoryRecord{PrimaryEmail: "noc@kaiser-x.com", OrgUnitPath: "/Orga Accounts"},
			relevant: true,
		},
		{
			name:     "suspended",
			record:   DirectoryRecord{PrimaryEmail: "a@kaiser-x.com", OrgUnitPath: "/Employees", Suspended: true},
			relevant: false,
		},
		{
			name:     "archived",
			record:   DirectoryRecord{PrimaryEmail: "a@kaiser-x.com", OrgUnitPath: "/Employees", Archived: true},
			relevant: false,
		},
		{
			name:     "deactivated org unit",
			record:   DirectoryRecord{PrimaryEmail: "a@kaiser-x.com", OrgUnitPath: "/Deactivated/2023"},
			relevant: false,
		},
		{
			name:     "cloud identities org unit",
			record:   DirectoryRecord{PrimaryEmail: "a@kaiser-x.com", OrgUnitPath: "/Cloud Identities/Robots"},
			relevant: false,
		},
		{
			name:     "external no-drive org unit",
			record:   DirectoryRecord{PrimaryEmail: "a@kaiser-x.com", OrgUnitPath: "/Xternal/No drive"},
			relevant: false,
		},
		{
			name:     "root org unit",
			record:   DirectoryRecord{PrimaryEmail: "a@kaiser-x.com", OrgUnitPath: "/"},
			relevant: false,
		},
		{
			name:     "external in email",
			record:   DirectoryRecord{PrimaryEmail: "jane.external@kaiser-x.com", OrgUnitPath: "/Employees"},
			relevant: false,
		},
		{
			name:     "reserved service account",
			record:   DirectoryRecord{PrimaryEmail: "kaiser.soze@kaiser-x.com", OrgUnitPath: "/Employees"},
			relevant: false,
		},
		{
			name:     "reserved tech account",
			record:   DirectoryRecord{PrimaryEmail: "google_tech@kaiser-x.com", OrgUnitPath: "/Employees"},
			relevant: false,
		},
		{
			name:     "empty record",
			record:   DirectoryRecord{},
			relevant: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.relevant, IsRelevant(tt.record))
		})
	}
}

func TestFilterRelevant(t *testing.T) {
	records := []DirectoryRecord{
		{PrimaryEmail: "keep@kaiser-x.com", OrgUnitPath: "/Employees"},
		{PrimaryEmail: "drop@kaiser-x.com", OrgUnitPath: "/Employees", Suspended: true},
		{PrimaryEmail: "also.keep@kaiser-x.com", OrgUnitPath: "/Employees/Design"},
	}

	relevant := FilterRelevant(records)

	assert.Len(t, relevant, 2)
	assert.Equal(t, "keep@kaiser-x.com", relevant[0].PrimaryEmail)
	assert.Equal(t, "also.keep@kaiser-x.com", relevant[1].PrimaryEmail)
}
