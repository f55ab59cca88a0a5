// Package schema defines the per-version EcoSpold element catalogs.
//
// A catalog is a fixed, read-only mapping from an element tag name to the
// descriptor that backs it: the set of typed fields (attributes or
// single-child text values) the element carries, each with a declared
// kind and an optional schema default. Catalogs are built once at package
// initialization and are safe for concurrent reads.
package schema

import (
	"github.com/goecospold/ecospold"
)

// Kind is the declared domain type of a field.
type Kind int

// Field kinds.
const (
	KindString Kind = iota
	KindFloat
	KindInt
	KindBool
	KindDate
	KindTimestamp
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// Field describes one typed field of an element: its name, declared kind,
// and schema default. Default holds the canonical raw-text form and is
// coerced on read through the same code path as any stored value; an
// empty Default means the kind's zero value. Elem marks fields the schema
// stores as the text of a single child element rather than an attribute
// (V1 timePeriod dates, exchange input/output groups); setters route new
// values by this flag so mutated documents stay schema-valid.
type Field struct {
	Name    string
	Kind    Kind
	Default string
	Elem    bool
}

// Descriptor describes one schema element: its catalog name and the
// fields it carries. Elements without typed fields (pure containers)
// still get a descriptor so their nodes are catalog-typed.
type Descriptor struct {
	Name   string
	Fields map[string]Field

	// elemOrder lists the element-backed fields in their schema sequence
	// order, so setters can insert a new child at a valid position.
	elemOrder []string
}

// Field returns the named field and whether it is declared.
func (d *Descriptor) Field(name string) (Field, bool) {
	f, ok := d.Fields[name]
	return f, ok
}

// ElemIndex returns the position of an element-backed field in the
// schema's child sequence, or -1 for attributes and undeclared names.
func (d *Descriptor) ElemIndex(name string) int {
	for i, n := range d.elemOrder {
		if n == name {
			return i
		}
	}
	return -1
}

// Catalog is a read-only tag-to-descriptor mapping for one schema version.
type Catalog struct {
	version ecospold.SchemaVersion
	byTag   map[string]*Descriptor
}

// Version returns the schema version this catalog serves.
func (c *Catalog) Version() ecospold.SchemaVersion {
	return c.version
}

// Lookup resolves a tag name to its descriptor. A miss is a legitimate
// outcome, not an error: the caller falls back to a generic node.
func (c *Catalog) Lookup(tag string) (*Descriptor, bool) {
	d, ok := c.byTag[tag]
	return d, ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.byTag)
}

// ForVersion returns the catalog for the given schema version.
// The returned catalog is shared, read-only package data.
func ForVersion(v ecospold.SchemaVersion) *Catalog {
	switch v {
	case ecospold.V1:
		return catalogV1
	case ecospold.V2:
		return catalogV2
	default:
		return nil
	}
}

// describe builds a Descriptor from a field list. Element-backed fields
// must be declared in their schema sequence order.
func describe(name string, fields ...Field) *Descriptor {
	d := &Descriptor{
		Name:   name,
		Fields: make(map[string]Field, len(fields)),
	}
	for _, f := range fields {
		d.Fields[f.Name] = f
		if f.Elem {
			d.elemOrder = append(d.elemOrder, f.Name)
		}
	}
	return d
}

// attr declares an attribute-backed field with no schema default.
func attr(name string, kind Kind) Field {
	return Field{Name: name, Kind: kind}
}

// attrDefault declares an attribute-backed field whose default is the
// given canonical text.
func attrDefault(name string, kind Kind, def string) Field {
	return Field{Name: name, Kind: kind, Default: def}
}

// elem declares a field stored as single-child element text.
func elem(name string, kind Kind) Field {
	return Field{Name: name, Kind: kind, Elem: true}
}
