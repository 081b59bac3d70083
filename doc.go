// Package icsfeed renders calendar-level properties and event records as an
// RFC 5545 iCalendar document, ready to be served as a text/calendar HTTP
// response.
//
// A host configures a base property set once at startup and renders per
// request:
//
//	base := icsfeed.Configure(nil, "teamcal", "cal.example.org", "CET")
//	renderer := icsfeed.New(base, "cal.example.org")
//	text, err := renderer.Render(nil, []icsfeed.Event{
//		{"summary": "Team sync", "dtstart": "20240101T090000Z"},
//	})
//
// Property and field names may be written in snake form ("x_wr_calname") or
// wire form ("X-WR-CALNAME"); both normalize to wire form in the output.
// Values are raw text, the renderer escapes them and fills in DTSTAMP,
// SEQUENCE, TRANSP and UID whenever an event does not bring its own.
package icsfeed
