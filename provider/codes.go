package provider

// TypeCustom is the reserved type code meaning "label not in the canonical
// table; see the kind's sideband label column". It applies to every kind
// except IM protocols, which reserve ProtocolCustom instead.
const TypeCustom = 0

// Email type codes.
const (
	EmailTypeHome   = 1
	EmailTypeWork   = 2
	EmailTypeOther  = 3
	EmailTypeMobile = 4
)

// Phone type codes.
const (
	PhoneTypeHome        = 1
	PhoneTypeMobile      = 2
	PhoneTypeWork        = 3
	PhoneTypeFaxWork     = 4
	PhoneTypeFaxHome     = 5
	PhoneTypePager       = 6
	PhoneTypeOther       = 7
	PhoneTypeCallback    = 8
	PhoneTypeCar         = 9
	PhoneTypeCompanyMain = 10
	PhoneTypeISDN        = 11
	PhoneTypeMain        = 12
	PhoneTypeOtherFax    = 13
	PhoneTypeRadio       = 14
	PhoneTypeTelex       = 15
	PhoneTypeTTYTDD      = 16
	PhoneTypeWorkMobile  = 17
	PhoneTypeWorkPager   = 18
	PhoneTypeAssistant   = 19
	PhoneTypeMMS         = 20
)

// Postal address type codes.
const (
	PostalTypeHome  = 1
	PostalTypeWork  = 2
	PostalTypeOther = 3
)

// Organization type codes.
const (
	OrgTypeWork  = 1
	OrgTypeOther = 2
)

// Website type codes.
const (
	WebsiteTypeHomepage = 1
	WebsiteTypeBlog     = 2
	WebsiteTypeProfile  = 3
	WebsiteTypeHome     = 4
	WebsiteTypeWork     = 5
	WebsiteTypeFTP      = 6
	WebsiteTypeOther    = 7
)

// IM protocol codes. The custom code is negative on this wire, unlike every
// other kind.
const (
	ProtocolCustom     = -1
	ProtocolAIM        = 0
	ProtocolMSN        = 1
	ProtocolYahoo      = 2
	ProtocolSkype      = 3
	ProtocolQQ         = 4
	ProtocolGoogleTalk = 5
	ProtocolICQ        = 6
	ProtocolJabber     = 7
	ProtocolNetMeeting = 8
)

// EventTypeBirthday is the event subtype honored by the conversion engine.
const EventTypeBirthday = 3
