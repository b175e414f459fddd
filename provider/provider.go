// Package provider defines the flat attribute-store wire contract: the kind
// discriminators, column vocabulary, and per-kind type codes of the external
// address-book provider, plus the insert-operation batch model used to write
// into it.
//
// Every stored sub-record is one flat row tagged by a kind and linked to its
// owning contact. The column names and type code values below are a wire
// contract with the provider and must match its projection exactly; they are
// not free to change.
package provider

// Kind discriminates which structured sub-record an attribute row represents.
//
// Wire values are the provider's MIME item types.
type Kind string

const (
	// KindName tags structured name rows.
	KindName Kind = "vnd.android.cursor.item/name"
	// KindNickname tags nickname rows.
	KindNickname Kind = "vnd.android.cursor.item/nickname"
	// KindPhone tags phone number rows.
	KindPhone Kind = "vnd.android.cursor.item/phone_v2"
	// KindEmail tags email rows.
	KindEmail Kind = "vnd.android.cursor.item/email_v2"
	// KindPostal tags postal address rows.
	KindPostal Kind = "vnd.android.cursor.item/postal-address_v2"
	// KindIM tags instant-messaging handle rows.
	KindIM Kind = "vnd.android.cursor.item/im"
	// KindOrganization tags organization rows.
	KindOrganization Kind = "vnd.android.cursor.item/organization"
	// KindWebsite tags web link rows.
	KindWebsite Kind = "vnd.android.cursor.item/website"
	// KindNote tags note rows.
	KindNote Kind = "vnd.android.cursor.item/note"
	// KindEvent tags event rows; only the birthday subtype is honored by the
	// conversion engine.
	KindEvent Kind = "vnd.android.cursor.item/contact_event"
	// KindPhoto tags photo rows carrying an opaque binary payload.
	KindPhoto Kind = "vnd.android.cursor.item/photo"
)

// Bookkeeping columns present on every data row.
const (
	// KeyRowID is the row's own storage identifier.
	KeyRowID = "_id"
	// KeyContactID is the owning contact identifier.
	KeyContactID = "contact_id"
	// KeyLookup is the provider's stable lookup key for the contact.
	KeyLookup = "lookup"
	// KeyDisplayName is the contact-level display name.
	KeyDisplayName = "display_name"
	// KeyMimetype is the kind discriminator column.
	KeyMimetype = "mimetype"
	// KeyRawContactID links a child insert to its parent contact.
	KeyRawContactID = "raw_contact_id"
)

// Parent (contact creation) columns.
const (
	// KeyAccountType is the destination account namespace type.
	KeyAccountType = "account_type"
	// KeyAccountName is the destination account namespace name.
	KeyAccountName = "account_name"
)

// Generic data columns. Each kind aliases a subset of these.
const (
	KeyData1  = "data1"
	KeyData2  = "data2"
	KeyData3  = "data3"
	KeyData4  = "data4"
	KeyData5  = "data5"
	KeyData6  = "data6"
	KeyData7  = "data7"
	KeyData8  = "data8"
	KeyData9  = "data9"
	KeyData10 = "data10"
	KeyData15 = "data15"
)

// Structured name column aliases.
const (
	KeyNameDisplay  = KeyData1
	KeyNameGiven    = KeyData2
	KeyNameFamily   = KeyData3
	KeyNamePrefix   = KeyData4
	KeyNameMiddle   = KeyData5
	KeyNameSuffix   = KeyData6
	KeyNicknameName = KeyData1
)

// Phone, email, and website column aliases. These three kinds share the
// value/type/label layout.
const (
	KeyPhoneNumber  = KeyData1
	KeyPhoneType    = KeyData2
	KeyPhoneLabel   = KeyData3
	KeyEmailAddress = KeyData1
	KeyEmailType    = KeyData2
	KeyEmailLabel   = KeyData3
	KeyWebsiteURL   = KeyData1
	KeyWebsiteType  = KeyData2
	KeyWebsiteLabel = KeyData3
)

// Postal address column aliases.
const (
	KeyPostalFormatted = KeyData1
	KeyPostalType      = KeyData2
	KeyPostalLabel     = KeyData3
	KeyPostalStreet    = KeyData4
	KeyPostalCity      = KeyData7
	KeyPostalRegion    = KeyData8
	KeyPostalPostcode  = KeyData9
	KeyPostalCountry   = KeyData10
)

// IM column aliases. The type/label pair exists on the wire but the
// conversion engine maps the document's type onto the protocol pair instead.
const (
	KeyIMData           = KeyData1
	KeyIMProtocol       = KeyData5
	KeyIMCustomProtocol = KeyData6
)

// Organization column aliases.
const (
	KeyOrgCompany    = KeyData1
	KeyOrgType       = KeyData2
	KeyOrgLabel      = KeyData3
	KeyOrgTitle      = KeyData4
	KeyOrgDepartment = KeyData5
)

// Event and note column aliases.
const (
	KeyEventStartDate = KeyData1
	KeyEventType      = KeyData2
	KeyNoteText       = KeyData1
)

// Photo column alias. The payload is opaque binary, not a string column.
const KeyPhotoBlob = KeyData15

// Row is one flat attribute record from the store: exactly one owning contact,
// exactly one kind, and the kind's named string attributes. Photo rows carry
// their payload in Blob rather than Values.
type Row struct {
	ID          string
	ContactID   string
	DisplayName string
	Kind        Kind
	Values      map[string]string
	Blob        []byte
}

// Value returns the named attribute, or an empty string when absent.
func (r Row) Value(key string) string {
	if r.Values == nil {
		return ""
	}
	return r.Values[key]
}
