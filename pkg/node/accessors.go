package node

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/goecospold/ecospold/pkg/coerce"
	"github.com/goecospold/ecospold/pkg/schema"
)

// Typed accessors over raw-text storage.
//
// A field value lives either in an attribute or, failing that, in the
// text of the single child element with the field's name (EcoSpold 2
// keeps a handful of values as child text). Getters never fail: an absent
// value or one that does not parse as the declared type reads as the
// field's schema default, so callers can assign syntactically invalid
// text without an error and the next read quietly falls back. Callers
// needing visibility into that fallback use the Strict variants, which
// report absence and coercion failures but never touch the stored text.
//
// Setters always succeed: they canonicalize the value and overwrite the
// single targeted raw-text cell. Nothing else in the tree is recomputed.

// raw returns the stored text for name and whether it is present.
func (n *Node) raw(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	if a := n.el.SelectAttr(name); a != nil {
		return a.Value, true
	}
	if c := n.el.SelectElement(name); c != nil {
		return c.Text(), true
	}
	return "", false
}

// setRaw stores text in the cell backing name. An existing cell is
// overwritten in place; a new cell is created in the storage form the
// schema declares for the field, so element-backed fields (V1 timePeriod
// dates, exchange input/output groups) never gain a schema-invalid
// attribute.
func (n *Node) setRaw(name, text string) {
	if n == nil {
		return
	}
	if a := n.el.SelectAttr(name); a != nil {
		a.Value = text
		return
	}
	if c := n.el.SelectElement(name); c != nil {
		c.SetText(text)
		return
	}
	if f, ok := n.field(name); ok && f.Elem {
		n.insertChild(name, text)
		return
	}
	n.el.CreateAttr(name, text)
}

// insertChild creates the element cell for name at a position that keeps
// the schema's child sequence: before the first declared element-backed
// sibling that follows name, at the end otherwise.
func (n *Node) insertChild(name, text string) {
	child := etree.NewElement(name)
	child.SetText(text)

	rank := n.desc.ElemIndex(name)
	for _, sib := range n.el.ChildElements() {
		if i := n.desc.ElemIndex(sib.Tag); i > rank {
			n.el.InsertChildAt(sib.Index(), child)
			return
		}
	}
	n.el.AddChild(child)
}

// field returns the declared field for name; generic nodes declare none.
func (n *Node) field(name string) (schema.Field, bool) {
	if n == nil || n.desc == nil {
		return schema.Field{}, false
	}
	return n.desc.Field(name)
}

// SetRaw stores text verbatim, bypassing canonical formatting. The next
// typed read coerces it; if it does not parse, the read returns the
// field's default.
func (n *Node) SetRaw(name, text string) {
	n.setRaw(name, text)
}

// Raw returns the stored text for name and whether it is present,
// without coercion.
func (n *Node) Raw(name string) (string, bool) {
	return n.raw(name)
}

// Attr returns the string value of name, or the field's schema default
// when absent.
func (n *Node) Attr(name string) string {
	if raw, ok := n.raw(name); ok {
		return raw
	}
	if f, ok := n.field(name); ok {
		return f.Default
	}
	return ""
}

// SetAttr stores a string value.
func (n *Node) SetAttr(name, value string) {
	n.setRaw(name, value)
}

// Float64 returns the float value of name. Absent or uncoercible text
// reads as the field's schema default (0 when none is declared).
func (n *Node) Float64(name string) float64 {
	if raw, ok := n.raw(name); ok {
		if v, err := coerce.Float64(raw); err == nil {
			return v
		}
	}
	return n.defaultFloat64(name)
}

// SetFloat64 stores a float value in canonical form.
func (n *Node) SetFloat64(name string, v float64) {
	n.setRaw(name, coerce.FormatFloat64(v))
}

// Int returns the integer value of name. Absent or uncoercible text
// reads as the field's schema default (0 when none is declared).
func (n *Node) Int(name string) int {
	if raw, ok := n.raw(name); ok {
		if v, err := coerce.Int(raw); err == nil {
			return v
		}
	}
	return n.defaultInt(name)
}

// SetInt stores an integer value in canonical form.
func (n *Node) SetInt(name string, v int) {
	n.setRaw(name, coerce.FormatInt(v))
}

// Bool returns the boolean value of name. Absent or uncoercible text
// reads as the field's schema default (false when none is declared).
func (n *Node) Bool(name string) bool {
	if raw, ok := n.raw(name); ok {
		if v, err := coerce.Bool(raw); err == nil {
			return v
		}
	}
	return n.defaultBool(name)
}

// SetBool stores a boolean value as lowercase true/false.
func (n *Node) SetBool(name string, v bool) {
	n.setRaw(name, coerce.FormatBool(v))
}

// Date returns the date value of name. Absent or uncoercible text reads
// as the field's schema default (the zero time when none is declared).
func (n *Node) Date(name string) time.Time {
	if raw, ok := n.raw(name); ok {
		if v, err := coerce.Date(raw); err == nil {
			return v
		}
	}
	return n.defaultDate(name)
}

// SetDate stores a date value in canonical YYYY-MM-DD form.
func (n *Node) SetDate(name string, t time.Time) {
	n.setRaw(name, coerce.FormatDate(t))
}

// Timestamp returns the dateTime value of name. Absent or uncoercible
// text reads as the field's schema default (the zero time when none is
// declared).
func (n *Node) Timestamp(name string) time.Time {
	if raw, ok := n.raw(name); ok {
		if v, err := coerce.Timestamp(raw); err == nil {
			return v
		}
	}
	return n.defaultTimestamp(name)
}

// SetTimestamp stores a dateTime value in canonical form.
func (n *Node) SetTimestamp(name string, t time.Time) {
	n.setRaw(name, coerce.FormatTimestamp(t))
}

// Strict variants. These never modify the stored text and never fall
// back: absence and coercion failure both surface as errors.

// Float64Strict returns the float value of name or an explicit error.
func (n *Node) Float64Strict(name string) (float64, error) {
	raw, ok := n.raw(name)
	if !ok {
		return 0, fmt.Errorf("field %q not set", name)
	}
	return coerce.Float64(raw)
}

// IntStrict returns the integer value of name or an explicit error.
func (n *Node) IntStrict(name string) (int, error) {
	raw, ok := n.raw(name)
	if !ok {
		return 0, fmt.Errorf("field %q not set", name)
	}
	return coerce.Int(raw)
}

// BoolStrict returns the boolean value of name or an explicit error.
func (n *Node) BoolStrict(name string) (bool, error) {
	raw, ok := n.raw(name)
	if !ok {
		return false, fmt.Errorf("field %q not set", name)
	}
	return coerce.Bool(raw)
}

// DateStrict returns the date value of name or an explicit error.
func (n *Node) DateStrict(name string) (time.Time, error) {
	raw, ok := n.raw(name)
	if !ok {
		return time.Time{}, fmt.Errorf("field %q not set", name)
	}
	return coerce.Date(raw)
}

// TimestampStrict returns the dateTime value of name or an explicit error.
func (n *Node) TimestampStrict(name string) (time.Time, error) {
	raw, ok := n.raw(name)
	if !ok {
		return time.Time{}, fmt.Errorf("field %q not set", name)
	}
	return coerce.Timestamp(raw)
}

// Schema defaults, coerced through the same parsers as stored values.
// Catalog defaults are canonical text, so these parses cannot fail; a
// malformed declaration degrades to the zero value rather than panicking.

func (n *Node) defaultFloat64(name string) float64 {
	if f, ok := n.field(name); ok && f.Default != "" {
		if v, err := coerce.Float64(f.Default); err == nil {
			return v
		}
	}
	return 0
}

func (n *Node) defaultInt(name string) int {
	if f, ok := n.field(name); ok && f.Default != "" {
		if v, err := coerce.Int(f.Default); err == nil {
			return v
		}
	}
	return 0
}

func (n *Node) defaultBool(name string) bool {
	if f, ok := n.field(name); ok && f.Default != "" {
		if v, err := coerce.Bool(f.Default); err == nil {
			return v
		}
	}
	return false
}

func (n *Node) defaultDate(name string) time.Time {
	if f, ok := n.field(name); ok && f.Default != "" {
		if v, err := coerce.Date(f.Default); err == nil {
			return v
		}
	}
	return time.Time{}
}

func (n *Node) defaultTimestamp(name string) time.Time {
	if f, ok := n.field(name); ok && f.Default != "" {
		if v, err := coerce.Timestamp(f.Default); err == nil {
			return v
		}
	}
	return time.Time{}
}
