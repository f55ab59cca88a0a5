package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"

	"github.com/goecospold/ecospold/pkg/node"
)

// Serialize writes the tree rooted at root to w as indented UTF-8 XML
// with an XML declaration. Child order and all stored raw text are
// written exactly as they stand; the tree itself is never mutated (the
// output is built from a copy, since indentation inserts whitespace
// tokens).
func Serialize(root *node.Node, w io.Writer) error {
	el := root.Element()
	if el == nil {
		return fmt.Errorf("serialize: nil root")
	}

	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	out.SetRoot(el.Copy())
	out.Indent(2)

	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	return nil
}

// SaveFile writes the tree rooted at root to path.
func SaveFile(root *node.Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Serialize(root, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// SaveFile writes the tree to path and records the serialization.
func (p *Parser) SaveFile(root *node.Node, path string) error {
	if err := SaveFile(root, path); err != nil {
		return err
	}
	p.metrics.RecordSerialization()
	return nil
}
