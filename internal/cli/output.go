package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/graphwalk/pkg/pipeline"
)

// stdoutPath forces every artifact to stdout.
const stdoutPath = "-"

// artifactWriteParams groups the inputs of writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	stdout    io.Writer
}

// writeArtifacts writes each artifact in format order and returns the
// files it created.
//
// Without an output path, text, json and dot go to stdout and binary
// formats are written next to the input (graph.txt → graph.svg). A single
// format with an output path is written to exactly that path; several
// formats share the path as a base name.
func writeArtifacts(p artifactWriteParams) ([]string, error) {
	var written []string
	single := len(p.formats) == 1
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return written, fmt.Errorf("no %s artifact rendered", format)
		}
		if p.output == stdoutPath || (p.output == "" && streamable(format)) {
			if _, err := p.stdout.Write(data); err != nil {
				return written, err
			}
			continue
		}

		path := outputPath(p.output, p.input, format, single)
		if err := writeFile(path, data); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// streamable reports whether format is readable on a terminal.
func streamable(format string) bool {
	switch format {
	case pipeline.FormatText, pipeline.FormatJSON, pipeline.FormatDOT:
		return true
	}
	return false
}

func outputPath(output, input, format string, single bool) string {
	if output != "" && single {
		return output
	}
	return basePath(output, input) + "." + pipeline.Ext(format)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .txt, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	for _, f := range pipeline.Formats {
		if ext != "" && ext == pipeline.Ext(f) {
			return strings.TrimSuffix(output, "."+ext)
		}
	}
	return output
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}
