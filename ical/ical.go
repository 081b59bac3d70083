// Package ical builds and serializes iCalendar objects as defined by
// RFC 5545: nested BEGIN/END component blocks of property content lines,
// folded at 75 octets and terminated by CRLF.
//
// The package covers only the generation side of the format. Callers
// assemble a component tree, add properties and serialize it:
//
//	cal := ical.New(ical.ComponentVCalendar)
//	cal.AddProperty(ical.PropertyVersion, "2.0")
//	text := cal.Serialize()
package ical

// ComponentType enumerates the component names defined in RFC 5545 section 3.6.
type ComponentType string

const (
	// ComponentVCalendar is the VCALENDAR container component.
	ComponentVCalendar ComponentType = "VCALENDAR"
	// ComponentVEvent represents a VEVENT component.
	ComponentVEvent ComponentType = "VEVENT"
)

// Property enumerates the iCalendar property names this package's callers
// emit. Each constant is the textual property name defined in RFC 5545
// section 3.7 (calendar properties) or 3.8 (component properties); the X-WR
// names are widely deployed extensions. Components accept any name, so an
// unlisted property is expressed as Property("NAME").
type Property string

const (
	// PropertyCalscale corresponds to CALSCALE (section 3.7.1).
	PropertyCalscale Property = "CALSCALE"
	// PropertyMethod corresponds to METHOD (section 3.7.2).
	PropertyMethod Property = "METHOD"
	// PropertyProductId corresponds to PRODID (section 3.7.3).
	PropertyProductId Property = "PRODID"
	// PropertyVersion corresponds to VERSION (section 3.7.4).
	PropertyVersion Property = "VERSION"
	// PropertyAttach adds a binary or URI attachment (section 3.8.1.1).
	PropertyAttach Property = "ATTACH"
	// PropertyDescription corresponds to DESCRIPTION (section 3.8.1.5).
	PropertyDescription Property = "DESCRIPTION"
	// PropertyLocation corresponds to LOCATION (section 3.8.1.7).
	PropertyLocation Property = "LOCATION"
	// PropertyStatus corresponds to STATUS (section 3.8.1.11).
	PropertyStatus Property = "STATUS"
	// PropertySummary corresponds to SUMMARY (section 3.8.1.12).
	PropertySummary Property = "SUMMARY"
	// PropertyDtend corresponds to DTEND (section 3.8.2.2).
	PropertyDtend Property = "DTEND"
	// PropertyDtstart corresponds to DTSTART (section 3.8.2.4).
	PropertyDtstart Property = "DTSTART"
	// PropertyTransp corresponds to TRANSP (section 3.8.2.7).
	PropertyTransp Property = "TRANSP"
	// PropertyUrl corresponds to URL (section 3.8.4.6).
	PropertyUrl Property = "URL"
	// PropertyUid corresponds to UID (section 3.8.4.7).
	PropertyUid Property = "UID"
	// PropertyDtstamp corresponds to DTSTAMP (section 3.8.7.2).
	PropertyDtstamp Property = "DTSTAMP"
	// PropertySequence corresponds to SEQUENCE (section 3.8.7.4).
	PropertySequence Property = "SEQUENCE"
	// PropertyXWRCalName is the X-WR-CALNAME calendar name extension.
	PropertyXWRCalName Property = "X-WR-CALNAME"
	// PropertyXWRCalDesc is the X-WR-CALDESC calendar description extension.
	PropertyXWRCalDesc Property = "X-WR-CALDESC"
	// PropertyXWRTimezone is the X-WR-TIMEZONE calendar timezone extension.
	PropertyXWRTimezone Property = "X-WR-TIMEZONE"
)

// Parameter enumerates property parameter names (RFC 5545 section 3.2).
type Parameter string

const (
	// ParameterEncoding is the inline encoding parameter (section 3.2.7).
	ParameterEncoding Parameter = "ENCODING"
	// ParameterFmttype is the format type parameter (section 3.2.8).
	ParameterFmttype Parameter = "FMTTYPE"
	// ParameterTzid is the time zone identifier parameter (section 3.2.19).
	ParameterTzid Parameter = "TZID"
	// ParameterValue is the value data type parameter (section 3.2.20).
	ParameterValue Parameter = "VALUE"
)

type Method string

// Method enumerates METHOD property values used with scheduling messages
// (RFC 5545 section 3.7.2).
const (
	// MethodPublish publishes a calendar.
	MethodPublish Method = "PUBLISH"
	// MethodRequest requests scheduling.
	MethodRequest Method = "REQUEST"
	// MethodReply sends a scheduling reply.
	MethodReply Method = "REPLY"
	// MethodCancel cancels a previously scheduled object.
	MethodCancel Method = "CANCEL"
)

type TimeTransparency string

// TimeTransparency enumerates TRANSP property values (RFC 5545 section 3.8.2.7).
const (
	// TransparencyOpaque blocks the event's time in busy time searches.
	TransparencyOpaque TimeTransparency = "OPAQUE"
	// TransparencyTransparent hides the event from busy time searches.
	TransparencyTransparent TimeTransparency = "TRANSPARENT"
)
