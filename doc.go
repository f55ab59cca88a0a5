// Package ecospold provides parsing, validation, and serialization of
// EcoSpold life-cycle-inventory XML documents (versions 1 and 2).
//
// Documents are validated against the applicable XSD schema and exposed
// as a tree of typed nodes mirroring the schema's element hierarchy.
// Attribute and text values are stored as raw text and coerced to their
// domain types (float, int, bool, date) on read, with a lenient fallback:
// a value that cannot be coerced behaves as if absent and reads as the
// field's schema default.
//
// # Quick Start
//
//	import "github.com/goecospold/ecospold/engine"
//
//	root, err := engine.ParseFileV1("dataset.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ref := root.First("dataset").
//	    First("metaInformation").
//	    First("processInformation").
//	    First("referenceFunction")
//	fmt.Println(ref.Attr("name"), ref.Float64("amount"))
//
// Validation without building the tree:
//
//	rep, err := engine.ValidateFileV1("dataset.xml")
//	if err != nil {
//	    log.Fatal(err) // unreadable or malformed input
//	}
//	for _, d := range rep {
//	    fmt.Println(d)
//	}
//
// # Architecture
//
//   - pkg/schema: per-version catalogs mapping element tags to field
//     descriptors (declared type and default per field)
//   - pkg/node: the typed node layer over an etree document, with a
//     version-fixed resolver deciding which descriptor backs each tag
//   - pkg/coerce: lexical coercion and canonical text formatting
//   - pkg/report: ordered schema diagnostics
//   - engine: parse/validate/serialize orchestration and directory batches
//
// Schema validation is delegated to github.com/jacoelho/xsd and the XML
// tree itself to github.com/beevik/etree; this package implements neither
// an XML parser nor a schema validator.
package ecospold
