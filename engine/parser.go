// Package engine wires the XSD schema, the element-class resolver, and
// the XML tree library together into the parse, validate, serialize, and
// directory-batch operations.
package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/jacoelho/xsd"
	"go.uber.org/zap"

	"github.com/goecospold/ecospold"
	"github.com/goecospold/ecospold/pkg/node"
	"github.com/goecospold/ecospold/pkg/report"
)

// Entry pairs a parsed file with its typed root.
type Entry struct {
	Path string
	Root *node.Node
}

// Parser parses, validates, and batch-processes EcoSpold documents of
// one schema version. It owns its compiled schema handle and a resolver
// fixed to that version; nothing mutable is shared between parses, so a
// Parser is safe for concurrent use.
type Parser struct {
	version  ecospold.SchemaVersion
	options  *ecospold.Options
	engine   *xsd.Engine
	resolver *node.Resolver
	metrics  *ecospold.Metrics
	log      *zap.Logger
}

// New creates a Parser for the given schema version. The version's XSD
// is compiled once, from the embedded default unless an option points at
// another copy.
func New(version ecospold.SchemaVersion, opts ...ecospold.Option) (*Parser, error) {
	if !version.IsValid() {
		return nil, fmt.Errorf("unsupported schema version %q", version)
	}

	options := ecospold.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	engine, err := compileSchema(context.Background(), version, options)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Parser{
		version:  version,
		options:  options,
		engine:   engine,
		resolver: node.NewResolver(version),
		metrics:  ecospold.NewMetrics(),
		log:      options.Logger,
	}, nil
}

// compileSchema compiles the XSD selected by the options into an
// immutable validation engine.
func compileSchema(ctx context.Context, version ecospold.SchemaVersion, options *ecospold.Options) (*xsd.Engine, error) {
	switch {
	case options.SchemaPath != "":
		return xsd.Compile(ctx, xsd.File(options.SchemaPath))
	case options.SchemaFS != nil:
		return xsd.Compile(ctx, fsSource(options.SchemaFS, options.SchemaLocation))
	default:
		return xsd.Compile(ctx, fsSource(ecospold.DefaultSchemaFS(), version.SchemaFile()))
	}
}

// fsSource adapts a schema document in an fs.FS to a compile source.
// Includes and imports resolve within the same filesystem, relative to
// the including document.
func fsSource(fsys fs.FS, location string) xsd.SchemaSource {
	return xsd.Open(location, func(context.Context) (io.ReadCloser, error) {
		return fsys.Open(location)
	}).WithResolver(fsResolver{fsys: fsys})
}

type fsResolver struct {
	fsys fs.FS
}

// ResolveSchema opens an include/import location relative to the
// including document's directory within the filesystem.
func (r fsResolver) ResolveSchema(_ context.Context, base, location string) (xsd.SchemaSource, error) {
	resolved := path.Join(path.Dir(base), location)
	return xsd.Open(resolved, func(context.Context) (io.ReadCloser, error) {
		return r.fsys.Open(resolved)
	}), nil
}

// Version returns the schema version this parser is configured for.
func (p *Parser) Version() ecospold.SchemaVersion {
	return p.version
}

// Metrics returns the parser's metrics.
func (p *Parser) Metrics() *ecospold.Metrics {
	return p.metrics
}

// Parse validates the document and builds its typed tree. A schema
// violation returns a *SchemaError carrying the full ordered report;
// input that is not well-formed XML returns a *MalformedError.
func (p *Parser) Parse(r io.Reader) (*node.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return p.parseBytes(data, "")
}

// ParseFile validates and parses a single file.
func (p *Parser) ParseFile(path string) (*node.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return p.parseBytes(data, path)
}

func (p *Parser) parseBytes(data []byte, path string) (*node.Node, error) {
	start := time.Now()

	if err := p.engine.Validate(context.Background(), bytes.NewReader(data)); err != nil {
		p.metrics.RecordParse(time.Since(start), false)
		rep, ok := report.FromValidation(err)
		if !ok {
			return nil, fmt.Errorf("validate: %w", err)
		}
		if rep.Malformed() {
			return nil, &MalformedError{Path: path, Err: err}
		}
		return nil, &SchemaError{Path: path, Report: rep}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		p.metrics.RecordParse(time.Since(start), false)
		return nil, &MalformedError{Path: path, Err: err}
	}

	root := node.WrapDocument(doc, p.resolver)
	if root == nil {
		p.metrics.RecordParse(time.Since(start), false)
		return nil, &MalformedError{Path: path, Err: fmt.Errorf("document has no root element")}
	}

	p.metrics.RecordParse(time.Since(start), true)
	p.log.Debug("parsed document",
		zap.String("path", path),
		zap.String("version", p.version.String()),
		zap.Duration("took", time.Since(start)))
	return root, nil
}

// Validate checks the document against the schema without building the
// typed tree. A nil report means the document conforms. The error is
// reserved for unreadable or malformed input; schema violations are not
// an error here.
func (p *Parser) Validate(r io.Reader) (report.Report, error) {
	err := p.engine.Validate(context.Background(), r)
	if err == nil {
		p.metrics.RecordValidation(true)
		return nil, nil
	}

	rep, ok := report.FromValidation(err)
	if !ok {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if rep.Malformed() {
		// Malformed input is still a failed validation attempt.
		p.metrics.RecordValidation(false)
		return nil, &MalformedError{Err: err}
	}
	p.metrics.RecordValidation(false)
	return rep, nil
}

// ValidateFile checks a single file against the schema.
func (p *Parser) ValidateFile(path string) (report.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rep, err := p.Validate(f)
	if err != nil {
		var malformed *MalformedError
		if errors.As(err, &malformed) {
			malformed.Path = path
		}
		return nil, err
	}
	return rep, nil
}

// ParseDirectory parses every matching regular file directly in dir
// (non-recursive). Suffix matching is case-insensitive against the
// configured allow-list. Any failure aborts the whole batch: no partial
// results are returned. Entries come back in filename order.
func (p *Parser) ParseDirectory(dir string) ([]Entry, error) {
	paths, err := p.scanDirectory(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, nil
	}

	start := time.Now()
	var entries []Entry
	if p.options.WorkerCount > 1 {
		entries, err = p.parseBatch(paths)
	} else {
		entries, err = p.parseSequential(paths)
	}
	if err != nil {
		return nil, err
	}

	p.log.Info("parsed directory",
		zap.String("dir", dir),
		zap.Int("files", len(entries)),
		zap.Duration("took", time.Since(start)))
	return entries, nil
}

// scanDirectory lists the regular files in dir whose suffix is allowed.
func (p *Parser) scanDirectory(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var paths []string
	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}
		if !p.suffixAllowed(de.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, de.Name()))
	}
	return paths, nil
}

func (p *Parser) suffixAllowed(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, s := range p.options.Suffixes {
		if ext == strings.ToLower(s) {
			return true
		}
	}
	return false
}

func (p *Parser) parseSequential(paths []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		root, err := p.ParseFile(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Path: path, Root: root})
	}
	return entries, nil
}

// parseBatch parses the batch with a bounded number of goroutines. The
// failure contract matches the sequential path: all workers join, the
// first error in filename order wins, and no entries are returned on
// failure.
func (p *Parser) parseBatch(paths []string) ([]Entry, error) {
	type result struct {
		root *node.Node
		err  error
	}

	results := make([]result, len(paths))
	sem := make(chan struct{}, p.options.WorkerCount)
	done := make(chan int, len(paths))

	for i, path := range paths {
		go func(idx int, path string) {
			sem <- struct{}{}
			defer func() { <-sem }()

			root, err := p.ParseFile(path)
			results[idx] = result{root: root, err: err}
			done <- idx
		}(i, path)
	}
	for range paths {
		<-done
	}

	entries := make([]Entry, 0, len(paths))
	for i, res := range results {
		if res.err != nil {
			return nil, res.err
		}
		entries = append(entries, Entry{Path: paths[i], Root: res.root})
	}
	return entries, nil
}
