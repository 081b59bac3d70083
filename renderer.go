package icsfeed

import (
	"fmt"
	"io"
	"time"

	"github.com/icsfeed/icsfeed/ical"
)

// ContentType is the MIME type registered for iCalendar documents
// (RFC 5545 section 8.1).
const ContentType = "text/calendar"

// Renderer turns calendar properties and event records into iCalendar text.
// Construct one at startup with the Configure result; it is safe for
// concurrent use.
type Renderer struct {
	base     Properties
	hostName string
	now      func() time.Time
	serOpts  []any
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock overrides the time source used for defaulted DTSTAMP fields.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithSerializationOptions forwards options to the serializer, e.g.
// ical.WithNewLineUnix.
func WithSerializationOptions(ops ...any) Option {
	return func(r *Renderer) { r.serOpts = ops }
}

// New returns a Renderer over a configured base property set. hostName
// becomes the domain part of generated UIDs.
func New(base Properties, hostName string, opts ...Option) *Renderer {
	r := &Renderer{
		base:     base,
		hostName: hostName,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Document assembles the calendar as a component tree. Calendar properties
// are the base set layered with overrides; every event becomes one VEVENT
// child, in input order. Values are escaped here, so callers pass raw text.
func (r *Renderer) Document(overrides Properties, events []Event) (*ical.Component, error) {
	cal := ical.New(ical.ComponentVCalendar)
	merged := mergeProperties(r.base, overrides)
	for _, k := range sortedKeys(merged) {
		cal.AddProperty(ical.Property(k), ical.EscapeText(merged[k]))
	}

	for i, event := range events {
		fields, err := normalizeEvent(event)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		r.applyEventDefaults(fields)

		ev := ical.New(ical.ComponentVEvent)
		for _, name := range sortedKeys(fields) {
			ev.AddProperty(ical.Property(name), ical.EscapeText(fields[name]))
		}
		cal.AddChild(ev)
	}
	return cal, nil
}

// applyEventDefaults fills in the fields every VEVENT needs when the record
// does not bring its own. The UID comes last so its digest covers the other
// defaulted fields.
func (r *Renderer) applyEventDefaults(fields map[string]string) {
	if _, ok := fields[string(ical.PropertyDtstamp)]; !ok {
		fields[string(ical.PropertyDtstamp)] = r.now().UTC().Format(icalTimestampFormatUtc)
	}
	if v, ok := fields[string(ical.PropertySequence)]; !ok || v == "" {
		fields[string(ical.PropertySequence)] = "0"
	}
	if _, ok := fields[string(ical.PropertyTransp)]; !ok {
		fields[string(ical.PropertyTransp)] = string(ical.TransparencyOpaque)
	}
	if _, ok := fields[string(ical.PropertyUid)]; !ok {
		fields[string(ical.PropertyUid)] = eventDigest(fields) + "@" + r.hostName
	}
}

// Render produces the document as iCalendar text. When any event carries an
// unrenderable value no text is returned at all.
func (r *Renderer) Render(overrides Properties, events []Event) (string, error) {
	cal, err := r.Document(overrides, events)
	if err != nil {
		return "", err
	}
	return cal.Serialize(r.serOpts...), nil
}

// RenderTo writes the document to w. The document is assembled completely
// before the first byte is written, so a field error never leaves partial
// output behind.
func (r *Renderer) RenderTo(w io.Writer, overrides Properties, events []Event) error {
	cal, err := r.Document(overrides, events)
	if err != nil {
		return err
	}
	return cal.SerializeTo(w, r.serOpts...)
}
