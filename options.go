package ecospold

import (
	"io/fs"

	"go.uber.org/zap"
)

// Option configures a Parser.
type Option func(*Options)

// Options holds all configuration for a Parser.
type Options struct {
	// SchemaPath overrides the embedded XSD with a schema loaded from
	// the filesystem. Empty means the version's embedded default.
	SchemaPath string

	// SchemaFS, together with SchemaLocation, overrides the embedded XSD
	// with a schema loaded from an fs.FS (for example an embed.FS holding
	// the full official EcoSpold schemas).
	SchemaFS       fs.FS
	SchemaLocation string

	// Suffixes is the directory-scan allow-list, matched case-insensitively.
	Suffixes []string

	// WorkerCount bounds directory-batch parallelism. Values <= 1 keep
	// the batch sequential.
	WorkerCount int

	// Logger receives parse/validate/serialize diagnostics.
	Logger *zap.Logger
}

// DefaultSuffixes is the default directory-scan allow-list.
func DefaultSuffixes() []string {
	return []string{".xml", ".spold"}
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		Suffixes:    DefaultSuffixes(),
		WorkerCount: 1,
		Logger:      zap.NewNop(),
	}
}

// WithSchemaPath loads the XSD from the given file path instead of the
// embedded default.
func WithSchemaPath(path string) Option {
	return func(o *Options) {
		o.SchemaPath = path
	}
}

// WithSchemaFS loads the XSD from fsys at location instead of the
// embedded default.
func WithSchemaFS(fsys fs.FS, location string) Option {
	return func(o *Options) {
		o.SchemaFS = fsys
		o.SchemaLocation = location
	}
}

// WithSuffixes replaces the directory-scan suffix allow-list.
func WithSuffixes(suffixes ...string) Option {
	return func(o *Options) {
		if len(suffixes) > 0 {
			o.Suffixes = suffixes
		}
	}
}

// WithWorkerCount sets the directory-batch worker count. Counts above 1
// parse files in parallel; failure semantics are unchanged.
func WithWorkerCount(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.WorkerCount = n
		}
	}
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
