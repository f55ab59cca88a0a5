package ecospold

import (
	"embed"
	"io/fs"
)

// The EcoSpold XSDs are external, versioned assets. The copies embedded
// here cover the element set the catalogs describe; callers working
// against the full official schemas point a Parser at them with
// WithSchemaPath or WithSchemaFS.
//
//go:embed schemas/v1/EcoSpold01.xsd schemas/v2/EcoSpold02.xsd
var schemaFS embed.FS

// DefaultSchemaFS returns the filesystem holding the embedded default
// XSD assets, addressed by SchemaVersion.SchemaFile paths.
func DefaultSchemaFS() fs.FS {
	return schemaFS
}
