package node

import (
	"strings"

	"github.com/beevik/etree"
)

// Snapshot is a plain-value view of a subtree: tag, attributes, trimmed
// text, and children in document order. Two parses of equivalent
// documents produce equal snapshots regardless of indentation, which is
// what round-trip comparisons care about.
type Snapshot struct {
	Tag      string
	Attr     map[string]string
	Text     string
	Children []Snapshot
}

// Snapshot captures the node's subtree as plain values.
func (n *Node) Snapshot() Snapshot {
	if n == nil {
		return Snapshot{}
	}
	return snapshotElement(n.el)
}

func snapshotElement(el *etree.Element) Snapshot {
	s := Snapshot{
		Tag:  el.Tag,
		Text: strings.TrimSpace(el.Text()),
	}
	if len(el.Attr) > 0 {
		s.Attr = make(map[string]string, len(el.Attr))
		for _, a := range el.Attr {
			s.Attr[a.FullKey()] = a.Value
		}
	}
	for _, c := range el.ChildElements() {
		s.Children = append(s.Children, snapshotElement(c))
	}
	return s
}
