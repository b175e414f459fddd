package mailbox

import (
	"strings"

	"github.com/spachava753/rolodex/contact"
)

const vcardFoldWidth = 75

// EncodeVCard renders doc as a vCard 3.0 string with CRLF line endings.
//
// Canonical and custom type labels become TYPE parameters, preferred entries
// carry TYPE=PREF, and inline base64 photos become embedded PHOTO properties.
// Lines longer than 75 octets are folded per RFC 2426.
func EncodeVCard(doc contact.Document) string {
	lines := []string{"BEGIN:VCARD", "VERSION:3.0"}

	lines = append(lines, "FN:"+escapeVCardText(formattedName(doc)))
	if doc.Name != nil && !doc.Name.IsZero() {
		lines = append(lines, "N:"+strings.Join([]string{
			escapeVCardText(doc.Name.FamilyName),
			escapeVCardText(doc.Name.GivenName),
			escapeVCardText(doc.Name.MiddleName),
			escapeVCardText(doc.Name.HonorificPrefix),
			escapeVCardText(doc.Name.HonorificSuffix),
		}, ";"))
	}
	if doc.Nickname != "" {
		lines = append(lines, "NICKNAME:"+escapeVCardText(doc.Nickname))
	}
	if doc.Birthday != "" {
		lines = append(lines, "BDAY:"+escapeVCardText(doc.Birthday))
	}

	for _, entry := range doc.Emails {
		if entry.Value == "" {
			continue
		}
		lines = append(lines, "EMAIL"+typeParam(entry.Type, entry.Pref)+":"+escapeVCardText(entry.Value))
	}
	for _, entry := range doc.PhoneNumbers {
		if entry.Value == "" {
			continue
		}
		lines = append(lines, "TEL"+typeParam(entry.Type, entry.Pref)+":"+escapeVCardText(entry.Value))
	}
	for _, address := range doc.Addresses {
		if line, ok := encodeAddress(address); ok {
			lines = append(lines, line)
		}
	}
	for _, entry := range doc.IMs {
		if entry.Value == "" {
			continue
		}
		lines = append(lines, "IMPP"+typeParam(entry.Type, entry.Pref)+":"+escapeVCardText(entry.Value))
	}
	for _, entry := range doc.URLs {
		if entry.Value == "" {
			continue
		}
		lines = append(lines, "URL"+typeParam(entry.Type, entry.Pref)+":"+escapeVCardText(entry.Value))
	}
	for _, org := range doc.Organizations {
		if org.Name == "" && org.Department == "" {
			continue
		}
		lines = append(lines, "ORG:"+escapeVCardText(org.Name)+";"+escapeVCardText(org.Department))
		if org.Title != "" {
			lines = append(lines, "TITLE:"+escapeVCardText(org.Title))
		}
	}
	if doc.Note != "" {
		lines = append(lines, "NOTE:"+escapeVCardText(doc.Note))
	}
	for _, photo := range doc.Photos {
		if line, ok := encodePhoto(photo.Value); ok {
			lines = append(lines, line)
		}
	}

	lines = append(lines, "END:VCARD")

	var builder strings.Builder
	for _, line := range lines {
		builder.WriteString(foldVCardLine(line))
		builder.WriteString("\r\n")
	}
	return builder.String()
}

func formattedName(doc contact.Document) string {
	if doc.DisplayName != "" {
		return doc.DisplayName
	}
	if doc.Name != nil {
		if doc.Name.Formatted != "" {
			return doc.Name.Formatted
		}
		parts := make([]string, 0, 2)
		if doc.Name.GivenName != "" {
			parts = append(parts, doc.Name.GivenName)
		}
		if doc.Name.FamilyName != "" {
			parts = append(parts, doc.Name.FamilyName)
		}
		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}
	}
	return "Unknown"
}

// typeParam renders a TYPE parameter from an entry's label and pref flag.
// Absent and explicit-null labels contribute no TYPE value.
func typeParam(label *contact.Label, pref bool) string {
	types := make([]string, 0, 2)
	if label != nil && label.Valid && label.Label != "" {
		types = append(types, sanitizeParam(strings.ToUpper(label.Label)))
	}
	if pref {
		types = append(types, "PREF")
	}
	if len(types) == 0 {
		return ""
	}
	return ";TYPE=" + strings.Join(types, ",")
}

func encodeAddress(address contact.Address) (string, bool) {
	if address.StreetAddress == "" && address.Locality == "" && address.Region == "" &&
		address.PostalCode == "" && address.Country == "" && address.Formatted == "" {
		return "", false
	}

	street := address.StreetAddress
	if street == "" {
		street = address.Formatted
	}
	components := strings.Join([]string{
		"", // post office box
		"", // extended address
		escapeVCardText(street),
		escapeVCardText(address.Locality),
		escapeVCardText(address.Region),
		escapeVCardText(address.PostalCode),
		escapeVCardText(address.Country),
	}, ";")
	return "ADR" + typeParam(address.Type, address.Pref) + ":" + components, true
}

func encodePhoto(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	if encoded, ok := strings.CutPrefix(value, photoDataPrefix); ok {
		return "PHOTO;ENCODING=b;TYPE=JPEG:" + encoded, true
	}
	return "PHOTO;VALUE=URI:" + escapeVCardText(value), true
}

// photoDataPrefix matches the data URL prefix produced when folding stored
// photo rows into a document.
const photoDataPrefix = "data:image/jpg;base64,"

func escapeVCardText(value string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		"\n", "\\n",
		"\r", "",
		",", "\\,",
		";", "\\;",
	)
	return replacer.Replace(value)
}

func sanitizeParam(value string) string {
	replacer := strings.NewReplacer(",", "-", ";", "-", ":", "-", "\"", "", "\n", "", "\r", "")
	return strings.TrimSpace(replacer.Replace(value))
}

// foldVCardLine breaks a content line into 75-octet segments, continuation
// lines prefixed with a single space.
func foldVCardLine(line string) string {
	if len(line) <= vcardFoldWidth {
		return line
	}

	var builder strings.Builder
	builder.WriteString(line[:vcardFoldWidth])
	rest := line[vcardFoldWidth:]
	for len(rest) > vcardFoldWidth-1 {
		builder.WriteString("\r\n ")
		builder.WriteString(rest[:vcardFoldWidth-1])
		rest = rest[vcardFoldWidth-1:]
	}
	if len(rest) > 0 {
		builder.WriteString("\r\n ")
		builder.WriteString(rest)
	}
	return builder.String()
}
