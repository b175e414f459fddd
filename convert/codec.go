package convert

import (
	"strconv"
	"strings"

	"github.com/spachava753/rolodex/contact"
	"github.com/spachava753/rolodex/provider"
)

// typeTable is one kind's invertible canonical-label/type-code mapping plus
// its reserved custom code. Every mapping here is one-to-one.
type typeTable struct {
	custom      int
	codeToLabel map[int]string
	labelToCode map[string]int
}

func newTypeTable(custom int, labels map[string]int) typeTable {
	codes := make(map[int]string, len(labels))
	for label, code := range labels {
		codes[code] = label
	}
	return typeTable{custom: custom, codeToLabel: codes, labelToCode: labels}
}

var typeTables = map[provider.Kind]typeTable{
	provider.KindEmail: newTypeTable(provider.TypeCustom, map[string]int{
		"home":   provider.EmailTypeHome,
		"mobile": provider.EmailTypeMobile,
		"other":  provider.EmailTypeOther,
		"work":   provider.EmailTypeWork,
	}),
	provider.KindPhone: newTypeTable(provider.TypeCustom, map[string]int{
		"assistant":    provider.PhoneTypeAssistant,
		"callback":     provider.PhoneTypeCallback,
		"car":          provider.PhoneTypeCar,
		"company_main": provider.PhoneTypeCompanyMain,
		"fax_home":     provider.PhoneTypeFaxHome,
		"fax_work":     provider.PhoneTypeFaxWork,
		"home":         provider.PhoneTypeHome,
		"isdn":         provider.PhoneTypeISDN,
		"main":         provider.PhoneTypeMain,
		"mms":          provider.PhoneTypeMMS,
		"mobile":       provider.PhoneTypeMobile,
		"other":        provider.PhoneTypeOther,
		"other_fax":    provider.PhoneTypeOtherFax,
		"pager":        provider.PhoneTypePager,
		"radio":        provider.PhoneTypeRadio,
		"telex":        provider.PhoneTypeTelex,
		"tty_tdd":      provider.PhoneTypeTTYTDD,
		"work":         provider.PhoneTypeWork,
		"work_mobile":  provider.PhoneTypeWorkMobile,
		"work_pager":   provider.PhoneTypeWorkPager,
	}),
	provider.KindPostal: newTypeTable(provider.TypeCustom, map[string]int{
		"home":  provider.PostalTypeHome,
		"other": provider.PostalTypeOther,
		"work":  provider.PostalTypeWork,
	}),
	provider.KindOrganization: newTypeTable(provider.TypeCustom, map[string]int{
		"other": provider.OrgTypeOther,
		"work":  provider.OrgTypeWork,
	}),
	provider.KindWebsite: newTypeTable(provider.TypeCustom, map[string]int{
		"blog":     provider.WebsiteTypeBlog,
		"ftp":      provider.WebsiteTypeFTP,
		"home":     provider.WebsiteTypeHome,
		"homepage": provider.WebsiteTypeHomepage,
		"other":    provider.WebsiteTypeOther,
		"profile":  provider.WebsiteTypeProfile,
		"work":     provider.WebsiteTypeWork,
	}),
	// The document's "type" for an IM handle is really the protocol; the
	// wire's own type/label pair is ignored.
	provider.KindIM: newTypeTable(provider.ProtocolCustom, map[string]int{
		"aim":         provider.ProtocolAIM,
		"msn":         provider.ProtocolMSN,
		"yahoo":       provider.ProtocolYahoo,
		"skype":       provider.ProtocolSkype,
		"qq":          provider.ProtocolQQ,
		"google_talk": provider.ProtocolGoogleTalk,
		"icq":         provider.ProtocolICQ,
		"jabber":      provider.ProtocolJabber,
		"netmeeting":  provider.ProtocolNetMeeting,
	}),
}

// DecodeType decodes a stored type code for kind into a label.
//
// A code found in the kind's table yields its canonical lowercase label. The
// kind's custom code yields the sideband customLabel verbatim, case preserved;
// an empty sideband label yields nil (type absent). Any other code, including
// an empty or malformed raw value for most kinds, yields an explicit null
// label, never an error. Kinds without a type table yield nil.
func DecodeType(kind provider.Kind, raw string, customLabel string) *contact.Label {
	table, ok := typeTables[kind]
	if !ok {
		return nil
	}

	code := parseCode(raw)
	if code == table.custom {
		if customLabel == "" {
			return nil
		}
		return contact.NewLabel(customLabel)
	}
	if label, hit := table.codeToLabel[code]; hit {
		return contact.NewLabel(label)
	}
	return contact.NullLabel()
}

// EncodeType encodes a document label into kind's type code.
//
// Canonical labels match case-insensitively and return their table code with
// an empty sideband label. Any other non-empty label returns the kind's custom
// code plus the label verbatim as the sideband. An empty label returns
// ok false: the caller must skip emitting type attributes entirely rather
// than write a custom code with an empty label.
func EncodeType(kind provider.Kind, label string) (code int, customLabel string, ok bool) {
	if label == "" {
		return 0, "", false
	}
	table, tok := typeTables[kind]
	if !tok {
		return 0, "", false
	}
	if mapped, hit := table.labelToCode[strings.ToLower(label)]; hit {
		return mapped, "", true
	}
	return table.custom, label, true
}

// parseCode parses a stored type code column. Absent or malformed values
// parse to -1, which no table maps for any kind except the IM protocol table,
// where -1 is the custom code itself.
func parseCode(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return -1
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return code
}
