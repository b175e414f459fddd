// Package contact defines the canonical W3C-style contact document exchanged
// with callers of this module.
//
// A Document is a nested, field-named record: scalar fields (note, birthday,
// display name), one singleton structured name, and ordered sequences of
// structured sub-records (emails, phone numbers, addresses, IM handles, web
// links, organizations, photos). Sub-records in multi-valued sequences carry
// an optional type label and a preferred flag; nothing in this module ever
// sets the preferred flag to true.
//
// Documents have a JSON face (github.com/goccy/go-json). Unknown JSON fields
// are ignored on parse, never rejected.
package contact

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Field names a high-level contact document field.
type Field string

const (
	// FieldNickname is the scalar nickname field.
	FieldNickname Field = "nickname"
	// FieldNote is the scalar free-text note field.
	FieldNote Field = "note"
	// FieldBirthday is the scalar birthday date field.
	FieldBirthday Field = "birthday"
	// FieldName is the singleton structured name field.
	FieldName Field = "name"
	// FieldEmails is the multi-valued email field.
	FieldEmails Field = "emails"
	// FieldPhoneNumbers is the multi-valued phone number field.
	FieldPhoneNumbers Field = "phoneNumbers"
	// FieldAddresses is the multi-valued postal address field.
	FieldAddresses Field = "addresses"
	// FieldIMs is the multi-valued instant-messaging handle field.
	FieldIMs Field = "ims"
	// FieldURLs is the multi-valued web link field.
	FieldURLs Field = "urls"
	// FieldOrganizations is the multi-valued organization field.
	FieldOrganizations Field = "organizations"
	// FieldPhotos is the multi-valued photo field.
	FieldPhotos Field = "photos"
	// FieldDisplayName is the scalar display name field. It is write-only:
	// reads surface the display name through Document.DisplayName bookkeeping,
	// not as a requestable field.
	FieldDisplayName Field = "displayName"
)

// Label is a tri-state type label attached to a multi-valued sub-record.
//
// A nil *Label means type data was never requested or never decoded. A Label
// with Valid false is an explicit null: the stored type code was recognized as
// present but matched no table entry. A Label with Valid true carries either a
// canonical lowercase label or a verbatim custom label.
type Label struct {
	Label string
	Valid bool
}

// NewLabel returns a valid label pointer for value.
func NewLabel(value string) *Label {
	return &Label{Label: value, Valid: true}
}

// NullLabel returns an explicit-null label pointer.
func NullLabel() *Label {
	return &Label{}
}

// MarshalJSON encodes a valid label as a JSON string and an explicit null as
// JSON null.
func (l Label) MarshalJSON() ([]byte, error) {
	if !l.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(l.Label)
}

// UnmarshalJSON decodes a JSON string into a valid label and JSON null into an
// explicit null.
func (l *Label) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = Label{}
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("contact: invalid type label: %w", err)
	}
	*l = Label{Label: value, Valid: true}
	return nil
}

// Name is the singleton structured name record.
//
// Absent attributes are empty strings and are omitted from JSON entirely.
type Name struct {
	Formatted       string `json:"formatted,omitempty"`
	FamilyName      string `json:"familyName,omitempty"`
	GivenName       string `json:"givenName,omitempty"`
	MiddleName      string `json:"middleName,omitempty"`
	HonorificPrefix string `json:"honorificPrefix,omitempty"`
	HonorificSuffix string `json:"honorificSuffix,omitempty"`
}

// IsZero reports whether no name attribute is present.
func (n Name) IsZero() bool {
	return n == Name{}
}

// Entry is one element of a simple multi-valued field: emails, phone numbers,
// IM handles, web links, and photos.
type Entry struct {
	Value string `json:"value,omitempty"`
	Type  *Label `json:"type,omitempty"`
	Pref  bool   `json:"pref"`
}

// Address is one element of the postal address field.
type Address struct {
	Formatted     string `json:"formatted,omitempty"`
	StreetAddress string `json:"streetAddress,omitempty"`
	Locality      string `json:"locality,omitempty"`
	Region        string `json:"region,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	Country       string `json:"country,omitempty"`
	Type          *Label `json:"type,omitempty"`
	Pref          bool   `json:"pref"`
}

// Organization is one element of the organization field.
type Organization struct {
	Name       string `json:"name,omitempty"`
	Department string `json:"department,omitempty"`
	Title      string `json:"title,omitempty"`
	Type       *Label `json:"type,omitempty"`
	Pref       bool   `json:"pref"`
}

// Document is the canonical nested contact record.
//
// Zero values mean "field absent". ID and DisplayName are bookkeeping set by
// the read path; DisplayName is also honored by the write path, where it
// merges into the structured name record.
type Document struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"`

	Nickname string `json:"nickname,omitempty"`
	Note     string `json:"note,omitempty"`
	Birthday string `json:"birthday,omitempty"`

	Name *Name `json:"name,omitempty"`

	Emails        []Entry        `json:"emails,omitempty"`
	PhoneNumbers  []Entry        `json:"phoneNumbers,omitempty"`
	Addresses     []Address      `json:"addresses,omitempty"`
	IMs           []Entry        `json:"ims,omitempty"`
	URLs          []Entry        `json:"urls,omitempty"`
	Organizations []Organization `json:"organizations,omitempty"`
	Photos        []Entry        `json:"photos,omitempty"`
}

// MarshalDocument renders doc as JSON.
func MarshalDocument(doc Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("contact: encoding document failed: %w", err)
	}
	return data, nil
}

// ParseDocument parses a JSON contact document.
//
// Unknown JSON fields are ignored. A JSON null type label parses the same as
// an absent one; the null/absent distinction is only meaningful in memory on
// the read path.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("contact: parsing document failed: %w", err)
	}
	return doc, nil
}
