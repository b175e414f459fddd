package convert

import (
	"encoding/base64"
	"strconv"
	"testing"

	"github.com/nalgeon/be"

	"github.com/spachava753/rolodex/provider"
)

func row(contactID string, kind provider.Kind, values map[string]string) provider.Row {
	return provider.Row{
		ID:          strconv.Itoa(len(values) + 1),
		ContactID:   contactID,
		DisplayName: "Ada Lovelace",
		Kind:        kind,
		Values:      values,
	}
}

func TestFoldGroupsRowsByContact(t *testing.T) {
	rows := []provider.Row{
		row("42", provider.KindName, map[string]string{provider.KeyNameGiven: "Ada"}),
		row("42", provider.KindEmail, map[string]string{
			provider.KeyEmailAddress: "a@x.com",
			provider.KeyEmailType:    strconv.Itoa(provider.EmailTypeHome),
		}),
		row("42", provider.KindEmail, map[string]string{
			provider.KeyEmailAddress: "b@x.com",
			provider.KeyEmailType:    strconv.Itoa(provider.EmailTypeWork),
		}),
	}

	docs := Fold(rows)
	be.Equal(t, len(docs), 1)

	doc := docs["42"]
	be.Equal(t, doc.ID, "42")
	be.Equal(t, doc.DisplayName, "Ada Lovelace")
	be.True(t, doc.Name != nil)
	be.Equal(t, doc.Name.GivenName, "Ada")

	be.Equal(t, len(doc.Emails), 2)
	be.Equal(t, doc.Emails[0].Value, "a@x.com")
	be.Equal(t, doc.Emails[0].Type.Label, "home")
	be.Equal(t, doc.Emails[1].Value, "b@x.com")
	be.Equal(t, doc.Emails[1].Type.Label, "work")
}

func TestFoldIndependentContacts(t *testing.T) {
	rows := []provider.Row{
		row("1", provider.KindNote, map[string]string{provider.KeyNoteText: "first"}),
		row("2", provider.KindNote, map[string]string{provider.KeyNoteText: "second"}),
	}

	docs := Fold(rows)
	be.Equal(t, len(docs), 2)
	be.Equal(t, docs["1"].Note, "first")
	be.Equal(t, docs["2"].Note, "second")
}

func TestFoldSingletonLastNonEmptyWins(t *testing.T) {
	rows := []provider.Row{
		row("7", provider.KindNote, map[string]string{provider.KeyNoteText: "early"}),
		row("7", provider.KindNote, map[string]string{provider.KeyNoteText: "late"}),
		row("7", provider.KindNote, map[string]string{}),
	}

	doc := FoldOne(rows)
	be.Equal(t, doc.Note, "late")
}

func TestFoldEventHonorsOnlyBirthdays(t *testing.T) {
	rows := []provider.Row{
		row("7", provider.KindEvent, map[string]string{
			provider.KeyEventStartDate: "2001-02-03",
			provider.KeyEventType:      "1",
		}),
	}
	be.Equal(t, FoldOne(rows).Birthday, "")

	rows = []provider.Row{
		row("7", provider.KindEvent, map[string]string{
			provider.KeyEventStartDate: "2001-02-03",
			provider.KeyEventType:      strconv.Itoa(provider.EventTypeBirthday),
		}),
	}
	be.Equal(t, FoldOne(rows).Birthday, "2001-02-03")
}

func TestFoldUnknownTypeCodeDecodesToNull(t *testing.T) {
	rows := []provider.Row{
		row("7", provider.KindEmail, map[string]string{
			provider.KeyEmailAddress: "a@x.com",
			provider.KeyEmailType:    "99",
		}),
	}

	doc := FoldOne(rows)
	be.Equal(t, len(doc.Emails), 1)
	be.True(t, doc.Emails[0].Type != nil)
	be.True(t, !doc.Emails[0].Type.Valid)
}

func TestFoldPhotoEncodesDataURL(t *testing.T) {
	payload := []byte{0x01, 0x02, 0xff}
	rows := []provider.Row{
		{ContactID: "7", Kind: provider.KindPhoto, Blob: payload},
		{ContactID: "7", Kind: provider.KindPhoto},
	}

	doc := FoldOne(rows)
	be.Equal(t, len(doc.Photos), 1)
	be.Equal(t, doc.Photos[0].Value, "data:image/jpg;base64,"+base64.StdEncoding.EncodeToString(payload))
}

func TestFoldPreservesRowArrivalOrder(t *testing.T) {
	rows := []provider.Row{
		row("7", provider.KindPhone, map[string]string{provider.KeyPhoneNumber: "111"}),
		row("7", provider.KindWebsite, map[string]string{provider.KeyWebsiteURL: "https://x.test"}),
		row("7", provider.KindPhone, map[string]string{provider.KeyPhoneNumber: "222"}),
	}

	doc := FoldOne(rows)
	be.Equal(t, len(doc.PhoneNumbers), 2)
	be.Equal(t, doc.PhoneNumbers[0].Value, "111")
	be.Equal(t, doc.PhoneNumbers[1].Value, "222")
	be.Equal(t, len(doc.URLs), 1)
}
