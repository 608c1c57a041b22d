package signature

import "strings"

// Reserved organizational units and accounts excluded from signature
// generation. These mirror the directory layout and are not configurable.
const (
	OrgUnitTechnicalAccounts = "/Orga Accounts"

	orgUnitPrefixDeactivated     = "/Deactivated"
	orgUnitPrefixCloudIdentities = "/Cloud Identities"
	orgUnitExternalNoDrive       = "/Xternal/No drive"
	orgUnitRoot                  = "/"
)

var reservedAccounts = []string{
	"kaiser.soze@kaiser-x.com",
	"google_tech@kaiser-x.com",
}

// IsRelevant reports whether a directory record participates in signature
// generation at all. It is a pure predicate and never fails on missing
// fields.
func IsRelevant(r DirectoryRecord) bool {
	if r.Suspended || r.Archived {
		return false
	}
	if strings.HasPrefix(r.OrgUnitPath, orgUnitPrefixDeactivated) ||
		strings.HasPrefix(r.OrgUnitPath, orgUnitPrefixCloudIdentities) {
		return false
	}
	if r.OrgUnitPath == orgUnitExternalNoDrive || r.OrgUnitPath == orgUnitRoot {
		return false
	}
	if strings.Contains(r.PrimaryEmail, "external") {
		return false
	}
	for _, reserved := range reservedAccounts {
		if r.PrimaryEmail == reserved {
			return false
		}
	}
	return true
}

// FilterRelevant returns the records that pass IsRelevant, preserving
// order.
func FilterRelevant(records []DirectoryRecord) []DirectoryRecord {
	relevant := make([]DirectoryRecord, 0, len(records))
	for _, r := range records {
		if IsRelevant(r) {
			relevant = append(relevant, r)
		}
	}
	return relevant
}
