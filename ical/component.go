package ical

import (
	"io"
	"strings"
)

// Component is a node in an iCalendar object tree: a typed BEGIN/END block
// holding content lines and nested components (RFC 5545 section 3.4).
// Properties and children serialize in the order they were added.
type Component struct {
	Type       ComponentType
	Properties []BaseProperty
	Children   []*Component
}

// New returns an empty component of the given type.
func New(componentType ComponentType) *Component {
	return &Component{Type: componentType}
}

// AddChild appends a nested component.
func (c *Component) AddChild(child *Component) {
	c.Children = append(c.Children, child)
}

// AddProperty appends a property, keeping any existing properties with the
// same name.
func (c *Component) AddProperty(property Property, value string, params ...PropertyParameter) {
	r := BaseProperty{
		IANAToken:      string(property),
		Value:          value,
		ICalParameters: map[string][]string{},
	}
	for _, p := range params {
		k, v := p.KeyValue()
		r.ICalParameters[k] = v
	}
	c.Properties = append(c.Properties, r)
}

// SetProperty replaces the first property with the same name, or adds it when
// none exists.
func (c *Component) SetProperty(property Property, value string, params ...PropertyParameter) {
	for i := range c.Properties {
		if c.Properties[i].IANAToken != string(property) {
			continue
		}
		c.Properties[i].Value = value
		c.Properties[i].ICalParameters = map[string][]string{}
		for _, p := range params {
			k, v := p.KeyValue()
			c.Properties[i].ICalParameters[k] = v
		}
		return
	}
	c.AddProperty(property, value, params...)
}

// GetProperty returns the first property with the given name, or nil when the
// component has none.
func (c *Component) GetProperty(property Property) *BaseProperty {
	for i := range c.Properties {
		if c.Properties[i].IANAToken == string(property) {
			return &c.Properties[i]
		}
	}
	return nil
}

// HasProperty reports whether the component carries a property with the given
// name.
func (c *Component) HasProperty(property Property) bool {
	return c.GetProperty(property) != nil
}

// Serialize renders the component and everything nested inside it as
// iCalendar text. It accepts the same options as SerializeTo; on option
// misuse it returns the empty string.
func (c *Component) Serialize(ops ...any) string {
	b := &strings.Builder{}
	_ = c.SerializeTo(b, ops...)
	return b.String()
}

// SerializeTo writes the component tree as iCalendar text. Options may be a
// WithLineLength, a WithNewLine or a *SerializationConfiguration.
func (c *Component) SerializeTo(w io.Writer, ops ...any) error {
	serialConfig, err := parseSerializeOps(ops)
	if err != nil {
		return err
	}
	return c.serialize(w, serialConfig)
}

func (c *Component) serialize(w io.Writer, serialConfig *SerializationConfiguration) error {
	if _, err := io.WriteString(w, "BEGIN:"+string(c.Type)+serialConfig.NewLine); err != nil {
		return err
	}
	for i := range c.Properties {
		if err := c.Properties[i].serialize(w, serialConfig); err != nil {
			return err
		}
	}
	for _, child := range c.Children {
		if err := child.serialize(w, serialConfig); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "END:"+string(c.Type)+serialConfig.NewLine)
	return err
}
