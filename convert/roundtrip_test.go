package convert

import (
	"strconv"
	"testing"

	"github.com/nalgeon/be"

	"github.com/spachava753/rolodex/contact"
	"github.com/spachava753/rolodex/provider"
)

// rowsFromOps synthesizes the row stream a committed batch would read back as,
// assigning the given contact id to every child insert.
func rowsFromOps(contactID string, displayName string, ops []provider.Operation) []provider.Row {
	rows := make([]provider.Row, 0, len(ops))
	for i, op := range ops {
		if op.Parent {
			continue
		}
		rows = append(rows, provider.Row{
			ID:          strconv.Itoa(i),
			ContactID:   contactID,
			DisplayName: displayName,
			Kind:        op.Kind,
			Values:      op.Values,
			Blob:        op.Blob,
		})
	}
	return rows
}

func TestRoundTripScalars(t *testing.T) {
	in := contact.Document{
		DisplayName: "Ada Lovelace",
		Note:        "hello",
		Birthday:    "1815-12-10",
	}

	ops := BuildOps("com.example", "primary", in)
	out := FoldOne(rowsFromOps("42", "Ada Lovelace", ops))

	be.Equal(t, out.ID, "42")
	be.Equal(t, out.Note, "hello")
	be.Equal(t, out.Birthday, "1815-12-10")
	be.True(t, out.Name != nil)
	be.Equal(t, out.Name.Formatted, "Ada Lovelace")
}

func TestRoundTripCanonicalTypes(t *testing.T) {
	in := contact.Document{
		Emails: []contact.Entry{
			{Value: "a@x.com", Type: contact.NewLabel("HOME")},
			{Value: "b@x.com", Type: contact.NewLabel("work")},
		},
		Addresses: []contact.Address{
			{
				StreetAddress: "12 St James's Square",
				Locality:      "London",
				Country:       "UK",
				Type:          contact.NewLabel("home"),
			},
		},
	}

	ops := BuildOps("com.example", "primary", in)
	out := FoldOne(rowsFromOps("42", "", ops))

	be.Equal(t, len(out.Emails), 2)
	// Canonical labels come back in lowercase canonical form.
	be.Equal(t, out.Emails[0].Type.Label, "home")
	be.Equal(t, out.Emails[1].Type.Label, "work")

	be.Equal(t, len(out.Addresses), 1)
	be.Equal(t, out.Addresses[0].StreetAddress, "12 St James's Square")
	be.Equal(t, out.Addresses[0].Locality, "London")
	be.Equal(t, out.Addresses[0].Country, "UK")
	be.Equal(t, out.Addresses[0].Type.Label, "home")
}

func TestRoundTripCustomTypePreservesCase(t *testing.T) {
	in := contact.Document{
		PhoneNumbers: []contact.Entry{
			{Value: "555", Type: contact.NewLabel("Moon-Base")},
		},
		IMs: []contact.Entry{
			{Value: "ada@chat", Type: contact.NewLabel("Matrix")},
		},
	}

	ops := BuildOps("com.example", "primary", in)
	out := FoldOne(rowsFromOps("42", "", ops))

	be.Equal(t, len(out.PhoneNumbers), 1)
	be.Equal(t, out.PhoneNumbers[0].Type.Label, "Moon-Base")
	be.Equal(t, len(out.IMs), 1)
	be.Equal(t, out.IMs[0].Type.Label, "Matrix")
}

func TestRoundTripSequenceOrder(t *testing.T) {
	in := contact.Document{
		URLs: []contact.Entry{
			{Value: "https://one.test", Type: contact.NewLabel("blog")},
			{Value: "https://two.test", Type: contact.NewLabel("homepage")},
			{Value: "https://three.test"},
		},
	}

	ops := BuildOps("com.example", "primary", in)
	out := FoldOne(rowsFromOps("42", "", ops))

	be.Equal(t, len(out.URLs), 3)
	be.Equal(t, out.URLs[0].Value, "https://one.test")
	be.Equal(t, out.URLs[1].Value, "https://two.test")
	be.Equal(t, out.URLs[2].Value, "https://three.test")
	be.Equal(t, out.URLs[0].Type.Label, "blog")
	be.Equal(t, out.URLs[1].Type.Label, "homepage")
	// No stored type code decodes to an explicit null, not a label.
	be.True(t, out.URLs[2].Type != nil)
	be.True(t, !out.URLs[2].Type.Valid)
}
