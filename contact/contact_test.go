package contact

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestDocumentJSONRoundTrip(t *testing.T) {
	in := Document{
		ID:          "42",
		DisplayName: "Ada Lovelace",
		Note:        "pioneer",
		Name: &Name{
			GivenName:  "Ada",
			FamilyName: "Lovelace",
		},
		Emails: []Entry{
			{Value: "a@x.com", Type: NewLabel("home")},
		},
	}

	data, err := MarshalDocument(in)
	be.Err(t, err, nil)

	out, err := ParseDocument(data)
	be.Err(t, err, nil)
	be.Equal(t, out, in)
}

func TestDocumentJSONOmitsAbsentFields(t *testing.T) {
	data, err := MarshalDocument(Document{Note: "only a note"})
	be.Err(t, err, nil)

	encoded := string(data)
	be.True(t, strings.Contains(encoded, `"note":"only a note"`))
	be.True(t, !strings.Contains(encoded, "name"))
	be.True(t, !strings.Contains(encoded, "emails"))
}

func TestLabelJSONTriState(t *testing.T) {
	data, err := MarshalDocument(Document{
		Emails: []Entry{
			{Value: "a@x.com", Type: NewLabel("home")},
			{Value: "b@x.com", Type: NullLabel()},
			{Value: "c@x.com"},
		},
	})
	be.Err(t, err, nil)

	encoded := string(data)
	be.True(t, strings.Contains(encoded, `"type":"home"`))
	be.True(t, strings.Contains(encoded, `"type":null`))
	// The third entry never had type data; the key is absent.
	be.Equal(t, strings.Count(encoded, `"type"`), 2)
}

func TestParseDocumentIgnoresUnknownFields(t *testing.T) {
	doc, err := ParseDocument([]byte(`{
		"note": "hello",
		"favoriteColor": "mauve",
		"phoneNumbers": [{"value": "555", "type": "work", "pref": false}]
	}`))
	be.Err(t, err, nil)
	be.Equal(t, doc.Note, "hello")
	be.Equal(t, len(doc.PhoneNumbers), 1)
	be.Equal(t, doc.PhoneNumbers[0].Type.Label, "work")
}

func TestParseDocumentRejectsMalformedJSON(t *testing.T) {
	_, err := ParseDocument([]byte(`{`))
	be.True(t, err != nil)
}

func TestNameIsZero(t *testing.T) {
	be.True(t, Name{}.IsZero())
	be.True(t, !Name{GivenName: "Ada"}.IsZero())
}
