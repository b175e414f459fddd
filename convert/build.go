package convert

import (
	"github.com/spachava753/rolodex/contact"
	"github.com/spachava753/rolodex/provider"
)

// insertOp accumulates column values for one child insert and remembers
// whether any value-bearing attribute was set. Type attributes never mark the
// operation as meaningful on their own: a type with no value must not produce
// a bare row.
type insertOp struct {
	op       provider.Operation
	needsAdd bool
}

func newInsertOp(kind provider.Kind, parent provider.BackRef) *insertOp {
	return &insertOp{op: provider.NewChildInsert(kind, parent)}
}

// checkField copies value into key when non-empty and marks the operation as
// carrying data.
func (b *insertOp) checkField(value string, key string) {
	if value == "" {
		return
	}
	b.op.Set(key, value)
	b.needsAdd = true
}

// setInt stores an integer column without marking the operation as carrying
// data.
func (b *insertOp) setInt(key string, value int) {
	b.op.SetInt(key, value)
}

// mapType encodes the element's type label onto the kind's type column, with
// the sideband label column populated only on the custom path. A nil,
// explicit-null, or empty label emits no type attributes at all.
func (b *insertOp) mapType(label *contact.Label, typeKey string, labelKey string) {
	if label == nil || !label.Valid {
		return
	}
	code, custom, ok := EncodeType(b.op.Kind, label.Label)
	if !ok {
		return
	}
	b.op.SetInt(typeKey, code)
	if custom != "" {
		b.op.Set(labelKey, custom)
	}
}

// done appends the operation to ops if it carries any value.
func (b *insertOp) done(ops []provider.Operation) []provider.Operation {
	if !b.needsAdd {
		return ops
	}
	return append(ops, b.op)
}

// BuildOps decomposes one canonical document into an ordered insert batch for
// the given account namespace.
//
// The contact-creation insert is always at index 0 and every child insert's
// back-reference names that index. Fields are processed in the catalog's
// write order, multi-valued fields in document sequence order. The name and
// displayName document fields merge into a single structured-name insert,
// finalized after every other field so it accumulates both contributions
// regardless of field order. At most one organization insert is emitted; any
// further elements are dropped. Operations with no value-bearing attributes
// are elided entirely. Nickname and photo entries are read-side data; the
// write path emits no rows for them.
func BuildOps(accountType string, accountName string, doc contact.Document) []provider.Operation {
	ops := make([]provider.Operation, 0, 8)
	parentRef := provider.BackRef(len(ops))
	ops = append(ops, provider.NewParentInsert(accountType, accountName))

	// name and displayName are disjoint document fields that land in the same
	// structured-name row, so this builder stays open until the end.
	nameOp := newInsertOp(provider.KindName, parentRef)

	for _, field := range writeFields {
		switch field {
		case contact.FieldName:
			if doc.Name == nil {
				continue
			}
			nameOp.checkField(doc.Name.FamilyName, provider.KeyNameFamily)
			nameOp.checkField(doc.Name.GivenName, provider.KeyNameGiven)
			nameOp.checkField(doc.Name.MiddleName, provider.KeyNameMiddle)
			nameOp.checkField(doc.Name.HonorificPrefix, provider.KeyNamePrefix)
			nameOp.checkField(doc.Name.HonorificSuffix, provider.KeyNameSuffix)
		case contact.FieldDisplayName:
			nameOp.checkField(doc.DisplayName, provider.KeyNameDisplay)
		case contact.FieldBirthday:
			op := newInsertOp(provider.KindEvent, parentRef)
			op.checkField(doc.Birthday, provider.KeyEventStartDate)
			op.setInt(provider.KeyEventType, provider.EventTypeBirthday)
			ops = op.done(ops)
		case contact.FieldNote:
			op := newInsertOp(provider.KindNote, parentRef)
			op.checkField(doc.Note, provider.KeyNoteText)
			ops = op.done(ops)
		case contact.FieldOrganizations:
			for i, org := range doc.Organizations {
				if i >= 1 {
					break
				}
				op := newInsertOp(provider.KindOrganization, parentRef)
				op.checkField(org.Name, provider.KeyOrgCompany)
				op.checkField(org.Department, provider.KeyOrgDepartment)
				op.checkField(org.Title, provider.KeyOrgTitle)
				op.mapType(org.Type, provider.KeyOrgType, provider.KeyOrgLabel)
				ops = op.done(ops)
			}
		case contact.FieldPhoneNumbers:
			for _, phone := range doc.PhoneNumbers {
				op := newInsertOp(provider.KindPhone, parentRef)
				op.checkField(phone.Value, provider.KeyPhoneNumber)
				op.mapType(phone.Type, provider.KeyPhoneType, provider.KeyPhoneLabel)
				ops = op.done(ops)
			}
		case contact.FieldAddresses:
			for _, address := range doc.Addresses {
				op := newInsertOp(provider.KindPostal, parentRef)
				op.checkField(address.Formatted, provider.KeyPostalFormatted)
				op.checkField(address.StreetAddress, provider.KeyPostalStreet)
				op.checkField(address.Locality, provider.KeyPostalCity)
				op.checkField(address.Region, provider.KeyPostalRegion)
				op.checkField(address.PostalCode, provider.KeyPostalPostcode)
				op.checkField(address.Country, provider.KeyPostalCountry)
				op.mapType(address.Type, provider.KeyPostalType, provider.KeyPostalLabel)
				ops = op.done(ops)
			}
		case contact.FieldEmails:
			for _, email := range doc.Emails {
				op := newInsertOp(provider.KindEmail, parentRef)
				op.checkField(email.Value, provider.KeyEmailAddress)
				op.mapType(email.Type, provider.KeyEmailType, provider.KeyEmailLabel)
				ops = op.done(ops)
			}
		case contact.FieldIMs:
			for _, im := range doc.IMs {
				op := newInsertOp(provider.KindIM, parentRef)
				op.checkField(im.Value, provider.KeyIMData)
				op.mapType(im.Type, provider.KeyIMProtocol, provider.KeyIMCustomProtocol)
				ops = op.done(ops)
			}
		case contact.FieldURLs:
			for _, url := range doc.URLs {
				op := newInsertOp(provider.KindWebsite, parentRef)
				op.checkField(url.Value, provider.KeyWebsiteURL)
				op.mapType(url.Type, provider.KeyWebsiteType, provider.KeyWebsiteLabel)
				ops = op.done(ops)
			}
		}
	}

	return nameOp.done(ops)
}
