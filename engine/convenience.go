package engine

import (
	"github.com/goecospold/ecospold"
	"github.com/goecospold/ecospold/pkg/node"
	"github.com/goecospold/ecospold/pkg/report"
)

// Fixed-version entry points. Each call builds its own Parser (and so
// its own compiled schema handle) with default options; long-running
// callers should construct one Parser and reuse it.

// ParseFileV1 parses an EcoSpold version 1 file.
func ParseFileV1(path string) (*node.Node, error) {
	p, err := New(ecospold.V1)
	if err != nil {
		return nil, err
	}
	return p.ParseFile(path)
}

// ParseFileV2 parses an EcoSpold version 2 file.
func ParseFileV2(path string) (*node.Node, error) {
	p, err := New(ecospold.V2)
	if err != nil {
		return nil, err
	}
	return p.ParseFile(path)
}

// ValidateFileV1 checks a file against the EcoSpold version 1 schema.
func ValidateFileV1(path string) (report.Report, error) {
	p, err := New(ecospold.V1)
	if err != nil {
		return nil, err
	}
	return p.ValidateFile(path)
}

// ValidateFileV2 checks a file against the EcoSpold version 2 schema.
func ValidateFileV2(path string) (report.Report, error) {
	p, err := New(ecospold.V2)
	if err != nil {
		return nil, err
	}
	return p.ValidateFile(path)
}

// ParseDirectoryV1 parses a directory of EcoSpold version 1 files.
func ParseDirectoryV1(dir string) ([]Entry, error) {
	p, err := New(ecospold.V1)
	if err != nil {
		return nil, err
	}
	return p.ParseDirectory(dir)
}

// ParseDirectoryV2 parses a directory of EcoSpold version 2 files.
func ParseDirectoryV2(dir string) ([]Entry, error) {
	p, err := New(ecospold.V2)
	if err != nil {
		return nil, err
	}
	return p.ParseDirectory(dir)
}
