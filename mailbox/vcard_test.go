package mailbox

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/spachava753/rolodex/contact"
)

func TestEncodeVCardBasics(t *testing.T) {
	card := EncodeVCard(contact.Document{
		DisplayName: "Ada Lovelace",
		Nickname:    "Countess",
		Birthday:    "1815-12-10",
		Name: &contact.Name{
			GivenName:  "Ada",
			FamilyName: "Lovelace",
		},
		Emails: []contact.Entry{
			{Value: "ada@x.com", Type: contact.NewLabel("home")},
		},
		PhoneNumbers: []contact.Entry{
			{Value: "+44 20 0000 0000", Type: contact.NewLabel("work"), Pref: true},
		},
		Organizations: []contact.Organization{
			{Name: "Analytical Engines", Title: "Programmer"},
		},
	})

	lines := strings.Split(strings.TrimSuffix(card, "\r\n"), "\r\n")
	be.Equal(t, lines[0], "BEGIN:VCARD")
	be.Equal(t, lines[1], "VERSION:3.0")
	be.Equal(t, lines[len(lines)-1], "END:VCARD")

	be.True(t, strings.Contains(card, "FN:Ada Lovelace\r\n"))
	be.True(t, strings.Contains(card, "N:Lovelace;Ada;;;\r\n"))
	be.True(t, strings.Contains(card, "NICKNAME:Countess\r\n"))
	be.True(t, strings.Contains(card, "BDAY:1815-12-10\r\n"))
	be.True(t, strings.Contains(card, "EMAIL;TYPE=HOME:ada@x.com\r\n"))
	be.True(t, strings.Contains(card, "TEL;TYPE=WORK,PREF:+44 20 0000 0000\r\n"))
	be.True(t, strings.Contains(card, "ORG:Analytical Engines;\r\n"))
	be.True(t, strings.Contains(card, "TITLE:Programmer\r\n"))
}

func TestEncodeVCardFallsBackToStructuredName(t *testing.T) {
	card := EncodeVCard(contact.Document{
		Name: &contact.Name{GivenName: "Ada", FamilyName: "Lovelace"},
	})
	be.True(t, strings.Contains(card, "FN:Ada Lovelace\r\n"))

	card = EncodeVCard(contact.Document{})
	be.True(t, strings.Contains(card, "FN:Unknown\r\n"))
}

func TestEncodeVCardEscapesText(t *testing.T) {
	card := EncodeVCard(contact.Document{
		DisplayName: "Ada",
		Note:        "first, among equals; truly",
	})
	be.True(t, strings.Contains(card, `NOTE:first\, among equals\; truly`))
}

func TestEncodeVCardSkipsValuelessEntries(t *testing.T) {
	card := EncodeVCard(contact.Document{
		DisplayName: "Ada",
		Emails:      []contact.Entry{{Type: contact.NewLabel("home")}},
	})
	be.True(t, !strings.Contains(card, "EMAIL"))
}

func TestEncodeVCardNullTypeHasNoParameter(t *testing.T) {
	card := EncodeVCard(contact.Document{
		DisplayName: "Ada",
		Emails: []contact.Entry{
			{Value: "ada@x.com", Type: contact.NullLabel()},
		},
	})
	be.True(t, strings.Contains(card, "EMAIL:ada@x.com\r\n"))
}

func TestEncodeVCardAddress(t *testing.T) {
	card := EncodeVCard(contact.Document{
		DisplayName: "Ada",
		Addresses: []contact.Address{
			{
				StreetAddress: "12 St James's Square",
				Locality:      "London",
				PostalCode:    "SW1Y 4JH",
				Country:       "UK",
				Type:          contact.NewLabel("home"),
			},
		},
	})
	be.True(t, strings.Contains(card, "ADR;TYPE=HOME:;;12 St James's Square;London;;SW1Y 4JH;UK"))
}

func TestEncodeVCardEmbedsInlinePhoto(t *testing.T) {
	card := EncodeVCard(contact.Document{
		DisplayName: "Ada",
		Photos: []contact.Entry{
			{Value: "data:image/jpg;base64,AAECAw=="},
		},
	})
	be.True(t, strings.Contains(card, "PHOTO;ENCODING=b;TYPE=JPEG:AAECAw=="))
}

func TestEncodeVCardFoldsLongLines(t *testing.T) {
	card := EncodeVCard(contact.Document{
		DisplayName: "Ada",
		Note:        strings.Repeat("x", 300),
	})

	for _, line := range strings.Split(card, "\r\n") {
		be.True(t, len(line) <= vcardFoldWidth)
	}

	// Unfolding restores the original content line.
	unfolded := strings.ReplaceAll(card, "\r\n ", "")
	be.True(t, strings.Contains(unfolded, "NOTE:"+strings.Repeat("x", 300)))
}
