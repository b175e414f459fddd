package convert

import (
	"encoding/base64"

	"github.com/spachava753/rolodex/contact"
	"github.com/spachava753/rolodex/provider"
)

// photoDataPrefix is the self-describing prefix for encoded photo payloads:
// fixed media type, then base64 with no line wrapping.
const photoDataPrefix = "data:image/jpg;base64,"

// Fold consumes a stream of attribute rows and folds them into one canonical
// document per contact id.
//
// Rows for the same contact must be contiguous-by-grouping in the input (the
// store delivers them that way); rows within a contact may arrive in any kind
// order and a kind may repeat. Multi-valued sequences preserve row arrival
// order. Repeated singleton-kind rows (two note rows, say) resolve to the
// last non-empty value seen; upstream is expected to store at most one row
// per singleton kind, so this is a degradation path, not a contract.
//
// Folding never fails: malformed rows degrade to partial data for that row
// only.
func Fold(rows []provider.Row) map[string]contact.Document {
	docs := map[string]*contact.Document{}
	for _, row := range rows {
		doc, ok := docs[row.ContactID]
		if !ok {
			doc = &contact.Document{ID: row.ContactID, DisplayName: row.DisplayName}
			docs[row.ContactID] = doc
		}
		foldRow(doc, row)
	}

	out := make(map[string]contact.Document, len(docs))
	for id, doc := range docs {
		out[id] = *doc
	}
	return out
}

// FoldOne folds rows belonging to a single contact into one document. Rows
// for other contacts are ignored; the first row seen fixes the contact.
func FoldOne(rows []provider.Row) contact.Document {
	var doc contact.Document
	for _, row := range rows {
		if doc.ID == "" {
			doc.ID = row.ContactID
			doc.DisplayName = row.DisplayName
		} else if row.ContactID != doc.ID {
			continue
		}
		foldRow(&doc, row)
	}
	return doc
}

func foldRow(doc *contact.Document, row provider.Row) {
	switch row.Kind {
	case provider.KindNickname:
		if value := row.Value(provider.KeyNicknameName); value != "" {
			doc.Nickname = value
		}
	case provider.KindNote:
		if value := row.Value(provider.KeyNoteText); value != "" {
			doc.Note = value
		}
	case provider.KindEvent:
		// Only birthday events map to the document; other subtypes drop.
		if parseCode(row.Value(provider.KeyEventType)) != provider.EventTypeBirthday {
			return
		}
		if value := row.Value(provider.KeyEventStartDate); value != "" {
			doc.Birthday = value
		}
	case provider.KindName:
		doc.Name = &contact.Name{
			FamilyName:      row.Value(provider.KeyNameFamily),
			Formatted:       row.Value(provider.KeyNameDisplay),
			GivenName:       row.Value(provider.KeyNameGiven),
			HonorificPrefix: row.Value(provider.KeyNamePrefix),
			HonorificSuffix: row.Value(provider.KeyNameSuffix),
			MiddleName:      row.Value(provider.KeyNameMiddle),
		}
	case provider.KindEmail:
		doc.Emails = append(doc.Emails, contact.Entry{
			Value: row.Value(provider.KeyEmailAddress),
			Type:  DecodeType(row.Kind, row.Value(provider.KeyEmailType), row.Value(provider.KeyEmailLabel)),
		})
	case provider.KindPhone:
		doc.PhoneNumbers = append(doc.PhoneNumbers, contact.Entry{
			Value: row.Value(provider.KeyPhoneNumber),
			Type:  DecodeType(row.Kind, row.Value(provider.KeyPhoneType), row.Value(provider.KeyPhoneLabel)),
		})
	case provider.KindPostal:
		doc.Addresses = append(doc.Addresses, contact.Address{
			Formatted:     row.Value(provider.KeyPostalFormatted),
			StreetAddress: row.Value(provider.KeyPostalStreet),
			Locality:      row.Value(provider.KeyPostalCity),
			Region:        row.Value(provider.KeyPostalRegion),
			PostalCode:    row.Value(provider.KeyPostalPostcode),
			Country:       row.Value(provider.KeyPostalCountry),
			Type:          DecodeType(row.Kind, row.Value(provider.KeyPostalType), row.Value(provider.KeyPostalLabel)),
		})
	case provider.KindIM:
		doc.IMs = append(doc.IMs, contact.Entry{
			Value: row.Value(provider.KeyIMData),
			Type:  DecodeType(row.Kind, row.Value(provider.KeyIMProtocol), row.Value(provider.KeyIMCustomProtocol)),
		})
	case provider.KindWebsite:
		doc.URLs = append(doc.URLs, contact.Entry{
			Value: row.Value(provider.KeyWebsiteURL),
			Type:  DecodeType(row.Kind, row.Value(provider.KeyWebsiteType), row.Value(provider.KeyWebsiteLabel)),
		})
	case provider.KindOrganization:
		doc.Organizations = append(doc.Organizations, contact.Organization{
			Name:       row.Value(provider.KeyOrgCompany),
			Department: row.Value(provider.KeyOrgDepartment),
			Title:      row.Value(provider.KeyOrgTitle),
			Type:       DecodeType(row.Kind, row.Value(provider.KeyOrgType), row.Value(provider.KeyOrgLabel)),
		})
	case provider.KindPhoto:
		// Rows without a payload contribute nothing beyond bookkeeping.
		if len(row.Blob) == 0 {
			return
		}
		doc.Photos = append(doc.Photos, contact.Entry{
			Value: photoDataPrefix + base64.StdEncoding.EncodeToString(row.Blob),
		})
	}
}
