// Package main implements the ecospold CLI tool for validating and
// inspecting EcoSpold XML files.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/goecospold/ecospold"
	"github.com/goecospold/ecospold/engine"
)

const (
	version = "0.1.0"
	usage   = `ecospold - EcoSpold XML validator

Usage:
  ecospold [options] <file>...
  ecospold [options] -dir <directory>

Examples:
  ecospold dataset.xml
  ecospold -version 2 activity.spold
  ecospold -version 1 -dir ./datasets
  ecospold -schema ./EcoSpold01Dataset.xsd dataset.xml
  ecospold -output json dataset.xml

Options:
`
)

// OutputFormat specifies the output format.
type OutputFormat string

// Output format constants.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// Config holds CLI configuration.
type Config struct {
	Version     string
	SchemaPath  string
	Output      OutputFormat
	Dir         bool
	Workers     int
	Quiet       bool
	Verbose     bool
	ShowVersion bool
	Args        []string
}

// FileOutput represents one input in JSON output.
type FileOutput struct {
	File     string   `json:"file"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Duration string   `json:"duration"`
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("ecospold v%s\n", version)
		os.Exit(0)
	}

	if len(config.Args) == 0 {
		flag.Usage()
		os.Exit(0)
	}

	os.Exit(run(config))
}

func parseFlags() *Config {
	config := &Config{}
	var output string

	flag.StringVar(&config.Version, "version", "1", "EcoSpold schema version (1, 2)")
	flag.StringVar(&config.SchemaPath, "schema", "", "XSD file to validate against (default: embedded schema)")
	flag.StringVar(&output, "output", "text", "Output format: text, json")
	flag.BoolVar(&config.Dir, "dir", false, "Treat arguments as directories of datasets")
	flag.IntVar(&config.Workers, "workers", 1, "Parallel workers for directory parsing")
	flag.BoolVar(&config.Quiet, "quiet", false, "Only report failures")
	flag.BoolVar(&config.Verbose, "verbose", false, "Show engine debug logging")
	flag.BoolVar(&config.ShowVersion, "v", false, "Show version")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	switch strings.ToLower(output) {
	case "json":
		config.Output = OutputJSON
	default:
		config.Output = OutputText
	}

	config.Args = flag.Args()
	return config
}

func schemaVersion(s string) (ecospold.SchemaVersion, error) {
	switch s {
	case "1", "v1", "V1":
		return ecospold.V1, nil
	case "2", "v2", "V2":
		return ecospold.V2, nil
	default:
		return "", fmt.Errorf("unknown schema version %q (want 1 or 2)", s)
	}
}

func run(config *Config) int {
	ver, err := schemaVersion(config.Version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	opts := []ecospold.Option{
		ecospold.WithWorkerCount(config.Workers),
	}
	if config.SchemaPath != "" {
		opts = append(opts, ecospold.WithSchemaPath(config.SchemaPath))
	}
	if config.Verbose {
		logger, lerr := zap.NewDevelopment()
		if lerr == nil {
			defer logger.Sync()
			opts = append(opts, ecospold.WithLogger(logger))
		}
	}

	p, err := engine.New(ver, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load schema: %v\n", err)
		return 2
	}

	failures := 0
	var outputs []FileOutput
	for _, arg := range config.Args {
		if config.Dir {
			outs, bad := runDirectory(p, arg)
			outputs = append(outputs, outs...)
			failures += bad
			continue
		}
		out := validateOne(p, arg)
		outputs = append(outputs, out)
		if !out.Valid {
			failures++
		}
	}

	switch config.Output {
	case OutputJSON:
		printJSON(outputs)
	default:
		printText(outputs, config.Quiet)
	}

	if failures > 0 {
		return 1
	}
	return 0
}

func validateOne(p *engine.Parser, path string) FileOutput {
	start := time.Now()
	out := FileOutput{File: path}

	rep, err := p.ValidateFile(path)
	out.Duration = time.Since(start).String()
	switch {
	case err != nil:
		out.Errors = []string{err.Error()}
	case rep.Valid():
		out.Valid = true
	default:
		out.Errors = rep.Strings()
	}
	return out
}

func runDirectory(p *engine.Parser, dir string) ([]FileOutput, int) {
	start := time.Now()
	entries, err := p.ParseDirectory(dir)
	if err != nil {
		return []FileOutput{{
			File:     dir,
			Errors:   directoryErrors(err),
			Duration: time.Since(start).String(),
		}}, 1
	}

	took := time.Since(start).String()
	outs := make([]FileOutput, 0, len(entries))
	for _, e := range entries {
		outs = append(outs, FileOutput{File: e.Path, Valid: true, Duration: took})
	}
	return outs, 0
}

// directoryErrors flattens a batch failure into displayable lines. A
// schema violation expands into the full report; everything else is the
// error itself.
func directoryErrors(err error) []string {
	var schemaErr *engine.SchemaError
	if errors.As(err, &schemaErr) {
		lines := []string{fmt.Sprintf("%s: schema violations:", schemaErr.Path)}
		return append(lines, schemaErr.Report.Strings()...)
	}
	return []string{err.Error()}
}

func printText(outputs []FileOutput, quiet bool) {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	for _, out := range outputs {
		if out.Valid {
			if !quiet {
				fmt.Printf("%s  %s (%s)\n", pass("VALID"), out.File, out.Duration)
			}
			continue
		}
		fmt.Printf("%s  %s (%s)\n", fail("INVALID"), out.File, out.Duration)
		for _, line := range out.Errors {
			fmt.Printf("    %s\n", line)
		}
	}
}

func printJSON(outputs []FileOutput) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outputs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
