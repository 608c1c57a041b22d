package gsuite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KaiserXLabs/kxl-gmail-signature-update/pkg/signature"
	"golang.org/x/oauth2"
	admin "google.golang.org/api/admin/directory/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// requiredFields is the directory field mask: everything signature
// generation consumes, nothing more.
var requiredFields = []string{
	"nextPageToken",
	"users/primaryEmail",
	"users/suspended",
	"users/archived",
	"users/orgUnitPath",
	"users/name/givenName",
	"users/name/familyName",
	"users/phones",
	"users/addresses",
	"users/organizations",
	"users/customSchemas/Personal_Information/Pronouns",
	"users/customSchemas/Personal_Information/GernePerDu",
	"users/customSchemas/Contractual_Information/Management_Role",
}

const directoryPageSize = 100

func NewDirectoryService(ctx context.Context, ts oauth2.TokenSource) (*admin.Service, error) {
	svc, err := admin.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create directory service: %w", err)
	}
	return svc, nil
}

// ListEmployees pages through every directory user of the domain, ordered
// by email, and converts each entry into a DirectoryRecord.
func ListEmployees(ctx context.Context, svc *admin.Service, domain string) ([]signature.DirectoryRecord, error) {
	var records []signature.DirectoryRecord
	pageToken := ""

	for {
		call := svc.Users.List().
			Domain(domain).
			Fields(googleapi.Field(strings.Join(requiredFields, ","))).
			Projection("full").
			MaxResults(directoryPageSize).
			OrderBy("email").
			SortOrder("ASCENDING").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list directory users: %w", err)
		}

		for _, user := range resp.Users {
			record, err := ToDirectoryRecord(user)
			if err != nil {
				return nil, fmt.Errorf("failed to decode directory user %s: %w", user.PrimaryEmail, err)
			}
			records = append(records, record)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return records, nil
}

// directoryPhone et al. mirror the Admin SDK JSON for the untyped
// interface{} fields of admin.User.
type directoryPhone struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type directoryAddress struct {
	Type      string `json:"type"`
	Formatted string `json:"formatted"`
}

type directoryOrganization struct {
	Title      string `json:"title"`
	Department string `json:"department"`
}

type personalInformationSchema struct {
	Pronouns   string `json:"Pronouns"`
	GernePerDu string `json:"GernePerDu"`
}

type contractualInformationSchema struct {
	ManagementRole string `json:"Management_Role"`
}

// ToDirectoryRecord converts an Admin SDK user into the typed record the
// signature core consumes. The SDK models phones, addresses and
// organizations as interface{}; they are decoded through a JSON
// round-trip. Missing or malformed sub-structures decode to zero values.
func ToDirectoryRecord(user *admin.User) (signature.DirectoryRecord, error) {
	record := signature.DirectoryRecord{
		PrimaryEmail: user.PrimaryEmail,
		Suspended:    user.Suspended,
		Archived:     user.Archived,
		OrgUnitPath:  user.OrgUnitPath,
	}

	if user.Name != nil {
		record.Name = signature.RecordName{
			GivenName:  user.Name.GivenName,
			FamilyName: user.Name.FamilyName,
		}
	}

	var phones []directoryPhone
	if err := decodeInto(user.Phones, &phones); err != nil {
		return record, err
	}
	for _, p := range phones {
		record.Phones = append(record.Phones, signature.Phone{Type: p.Type, Value: p.Value})
	}

	var addresses []directoryAddress
	if err := decodeInto(user.Addresses, &addresses); err != nil {
		return record, err
	}
	for _, a := range addresses {
		record.Addresses = append(record.Addresses, signature.Address{Type: a.Type, Formatted: a.Formatted})
	}

	var orgs []directoryOrganization
	if err := decodeInto(user.Organizations, &orgs); err != nil {
		return record, err
	}
	for _, o := range orgs {
		record.Orgs = append(record.Orgs, signature.Organization{Title: o.Title, Department: o.Department})
	}

	if raw, ok := user.CustomSchemas["Personal_Information"]; ok {
		var personal personalInformationSchema
		if err := json.Unmarshal(raw, &personal); err != nil {
			return record, err
		}
		record.Custom.PersonalInformation = signature.PersonalInformation{
			Pronouns:   personal.Pronouns,
			GernePerDu: personal.GernePerDu,
		}
	}

	if raw, ok := user.CustomSchemas["Contractual_Information"]; ok {
		var contractual contractualInformationSchema
		if err := json.Unmarshal(raw, &contractual); err != nil {
			return record, err
		}
		record.Custom.ContractualInformation = signature.ContractualInformation{
			ManagementRole: contractual.ManagementRole,
		}
	}

	return record, nil
}

func decodeInto(src interface{}, dst any) error {
	if src == nil {
		return nil
	}

	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
