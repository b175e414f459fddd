package convert

import (
	"github.com/spachava753/rolodex/contact"
	"github.com/spachava753/rolodex/provider"
)

// fieldSpec binds one high-level field to the data columns it projects and
// the kind tag that selects its rows.
type fieldSpec struct {
	kind    provider.Kind
	columns []string
}

// readFields is the fixed declaration order of the readable fields. The write
// path iterates the same order with displayName appended; order matters only
// for determinism, not correctness.
var readFields = []contact.Field{
	contact.FieldNickname,
	contact.FieldNote,
	contact.FieldBirthday,
	contact.FieldName,
	contact.FieldEmails,
	contact.FieldPhoneNumbers,
	contact.FieldAddresses,
	contact.FieldIMs,
	contact.FieldURLs,
	contact.FieldOrganizations,
	contact.FieldPhotos,
}

var writeFields = append(append([]contact.Field{}, readFields...), contact.FieldDisplayName)

var fieldSpecs = map[contact.Field]fieldSpec{
	contact.FieldNickname: {
		kind:    provider.KindNickname,
		columns: []string{provider.KeyNicknameName},
	},
	contact.FieldNote: {
		kind:    provider.KindNote,
		columns: []string{provider.KeyNoteText},
	},
	contact.FieldBirthday: {
		kind:    provider.KindEvent,
		columns: []string{provider.KeyEventStartDate, provider.KeyEventType},
	},
	contact.FieldName: {
		kind: provider.KindName,
		columns: []string{
			provider.KeyNameFamily,
			provider.KeyNameDisplay,
			provider.KeyNameGiven,
			provider.KeyNamePrefix,
			provider.KeyNameSuffix,
			provider.KeyNameMiddle,
		},
	},
	contact.FieldEmails: {
		kind:    provider.KindEmail,
		columns: []string{provider.KeyEmailAddress, provider.KeyEmailType, provider.KeyEmailLabel},
	},
	contact.FieldPhoneNumbers: {
		kind:    provider.KindPhone,
		columns: []string{provider.KeyPhoneNumber, provider.KeyPhoneType, provider.KeyPhoneLabel},
	},
	contact.FieldAddresses: {
		kind: provider.KindPostal,
		columns: []string{
			provider.KeyPostalFormatted,
			provider.KeyPostalType,
			provider.KeyPostalLabel,
			provider.KeyPostalStreet,
			provider.KeyPostalCity,
			provider.KeyPostalRegion,
			provider.KeyPostalPostcode,
			provider.KeyPostalCountry,
		},
	},
	contact.FieldIMs: {
		kind:    provider.KindIM,
		columns: []string{provider.KeyIMData, provider.KeyIMProtocol, provider.KeyIMCustomProtocol},
	},
	contact.FieldURLs: {
		kind:    provider.KindWebsite,
		columns: []string{provider.KeyWebsiteURL, provider.KeyWebsiteType, provider.KeyWebsiteLabel},
	},
	contact.FieldOrganizations: {
		kind: provider.KindOrganization,
		columns: []string{
			provider.KeyOrgCompany,
			provider.KeyOrgType,
			provider.KeyOrgLabel,
			provider.KeyOrgDepartment,
			provider.KeyOrgTitle,
		},
	},
	contact.FieldPhotos: {
		kind:    provider.KindPhoto,
		columns: []string{provider.KeyPhotoBlob},
	},
}

// ReadFields returns the full readable field set in declaration order.
func ReadFields() []contact.Field {
	return append([]contact.Field{}, readFields...)
}

// WriteFields returns the writable field set: the readable fields plus
// displayName, in the order the write path iterates them.
func WriteFields() []contact.Field {
	return append([]contact.Field{}, writeFields...)
}
