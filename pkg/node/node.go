// Package node exposes a parsed EcoSpold element as a typed node: raw
// text storage (attributes and child text) with domain-typed accessors
// resolved through a version-fixed catalog.
//
// etree offers no per-element instantiation hook, so typing happens as a
// rewrite over the generic parse tree: the root is wrapped once and
// descendants are wrapped as they are navigated. Resolution is
// deterministic, so lazy wrapping yields the same types an eager pass
// would.
//
// Navigation and accessor methods are safe on a nil *Node: lookups return
// nil and getters return the type's zero value, which keeps path chains
// like root.First("dataset").First("metaInformation") total.
package node

import (
	"github.com/beevik/etree"

	"github.com/goecospold/ecospold/pkg/schema"
)

// Node is one element of a parsed document, backed by raw text and typed
// through its catalog descriptor. A node whose tag is absent from the
// catalog carries no descriptor and supports only the generic accessors.
type Node struct {
	el       *etree.Element
	desc     *schema.Descriptor
	resolver *Resolver
	doc      *etree.Document
}

// Wrap types a single element under the resolver's schema version.
func Wrap(el *etree.Element, r *Resolver) *Node {
	if el == nil || r == nil {
		return nil
	}
	return &Node{el: el, desc: r.Resolve(el.Tag), resolver: r}
}

// WrapDocument types the root element of a document, retaining the
// document handle so serialization can preserve its prolog.
func WrapDocument(doc *etree.Document, r *Resolver) *Node {
	if doc == nil {
		return nil
	}
	n := Wrap(doc.Root(), r)
	if n != nil {
		n.doc = doc
	}
	return n
}

// Element returns the underlying etree element.
func (n *Node) Element() *etree.Element {
	if n == nil {
		return nil
	}
	return n.el
}

// Document returns the owning etree document, if this node was wrapped
// from one.
func (n *Node) Document() *etree.Document {
	if n == nil {
		return nil
	}
	return n.doc
}

// Tag returns the element tag name.
func (n *Node) Tag() string {
	if n == nil {
		return ""
	}
	return n.el.Tag
}

// IsGeneric reports whether this node's tag missed the catalog and the
// node fell back to the untyped contract.
func (n *Node) IsGeneric() bool {
	return n == nil || n.desc == nil
}

// Descriptor returns the catalog descriptor backing this node, or nil
// for a generic node.
func (n *Node) Descriptor() *schema.Descriptor {
	if n == nil {
		return nil
	}
	return n.desc
}

// DescriptorName returns the catalog name backing this node, or "" for a
// generic node.
func (n *Node) DescriptorName() string {
	if n == nil || n.desc == nil {
		return ""
	}
	return n.desc.Name
}

// Text returns the element's own text content.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.el.Text()
}

// SetText replaces the element's text content.
func (n *Node) SetText(text string) {
	if n == nil {
		return
	}
	n.el.SetText(text)
}

// Children returns all child elements, wrapped, in document order.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	kids := n.el.ChildElements()
	out := make([]*Node, 0, len(kids))
	for _, el := range kids {
		out = append(out, n.wrapChild(el))
	}
	return out
}

// First returns the first child element with the given tag, or nil.
func (n *Node) First(tag string) *Node {
	if n == nil {
		return nil
	}
	el := n.el.SelectElement(tag)
	if el == nil {
		return nil
	}
	return n.wrapChild(el)
}

// All returns every child element with the given tag, in document order.
func (n *Node) All(tag string) []*Node {
	if n == nil {
		return nil
	}
	kids := n.el.SelectElements(tag)
	out := make([]*Node, 0, len(kids))
	for _, el := range kids {
		out = append(out, n.wrapChild(el))
	}
	return out
}

// wrapChild types a descendant under this node's resolver.
func (n *Node) wrapChild(el *etree.Element) *Node {
	return &Node{el: el, desc: n.resolver.Resolve(el.Tag), resolver: n.resolver}
}
