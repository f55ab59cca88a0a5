package node

import (
	"github.com/goecospold/ecospold"
	"github.com/goecospold/ecospold/pkg/schema"
)

// Resolver decides which descriptor backs an element tag. It is fixed to
// one schema version at construction, so a V1 resolver can never consult
// the V2 catalog. Resolution is deterministic and side-effect-free: the
// same tag always resolves to the same descriptor for the resolver's
// lifetime.
type Resolver struct {
	version ecospold.SchemaVersion
	catalog *schema.Catalog
}

// NewResolver creates a resolver for the given schema version.
// It returns nil for an unsupported version.
func NewResolver(v ecospold.SchemaVersion) *Resolver {
	c := schema.ForVersion(v)
	if c == nil {
		return nil
	}
	return &Resolver{version: v, catalog: c}
}

// Version returns the schema version this resolver serves.
func (r *Resolver) Version() ecospold.SchemaVersion {
	return r.version
}

// Resolve returns the descriptor for tag, or nil when the tag is not in
// the catalog. A nil result is the generic-node sentinel, not an error.
func (r *Resolver) Resolve(tag string) *schema.Descriptor {
	d, ok := r.catalog.Lookup(tag)
	if !ok {
		return nil
	}
	return d
}
