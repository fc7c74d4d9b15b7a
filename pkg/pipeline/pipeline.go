// Package pipeline runs a complete search: load a graph, traverse it and
// render the result.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a graph file (text or JSON, chosen by extension)
//  2. Traverse: Run depth-first or breadth-first search between two vertices
//  3. Render: Produce the requested outputs (text, json, dot, svg, png, pdf)
//
// Each stage can be run independently or as part of the complete pipeline.
// Graphviz output is cached by the hash of its DOT source, so re-running a
// search over an unchanged graph skips the expensive rendering step.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:     "graph.txt",
//	    Algorithm: "bfs",
//	    Start:     1,
//	    End:       8,
//	    Formats:   []string{"text", "svg"},
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.Artifacts["text"])
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	gwerrors "github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/search"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultAlgorithm is used when Options.Algorithm is empty.
	DefaultAlgorithm = "bfs"

	// DefaultPNGScale is the resolution multiplier for PNG output.
	DefaultPNGScale = 2.0
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatJSON, FormatDOT, FormatSVG, FormatPNG, FormatPDF}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Load options
	Input string `json:"input"`

	// Search options
	Algorithm string `json:"algorithm,omitempty"`
	Start     int    `json:"start"`
	End       int    `json:"end"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // annotate diagram vertices
	Title    string   `json:"title,omitempty"`
	Width    int      `json:"width,omitempty"` // report table width, 0 = natural
	PNGScale float64  `json:"png_scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the loaded graph.
	Graph *graph.Graph

	// Search is the traversal result.
	Search *search.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Vertices   int
	Edges      int
	Expansions int
	LoadTime   time.Duration
	SearchTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // Whether every Graphviz artifact came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is one of [Formats].
func ValidateFormat(format string) error {
	return gwerrors.ValidateOutputFormat(format, Formats...)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// Calling it more than once has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForSearch(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks the input path.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" {
		return gwerrors.New(gwerrors.ErrCodeInvalidInput, "input graph file is required")
	}
	o.setLogger()
	return gwerrors.ValidatePath(o.Input)
}

// ValidateForSearch applies the default algorithm and checks it.
func (o *Options) ValidateForSearch() error {
	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}
	o.setLogger()
	if _, err := search.ParseAlgorithm(o.Algorithm); err != nil {
		return gwerrors.Wrap(gwerrors.ErrCodeInvalidAlgorithm, err, "algorithm")
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
	for i, f := range o.Formats {
		o.Formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// NeedsGraphviz reports whether any requested format is rendered by
// Graphviz.
func (o *Options) NeedsGraphviz() bool {
	for _, f := range o.Formats {
		if isGraphviz(f) {
			return true
		}
	}
	return false
}

func isGraphviz(format string) bool {
	return format == FormatSVG || format == FormatPNG || format == FormatPDF
}

// Ext returns the file extension used for format.
func Ext(format string) string {
	if format == FormatText {
		return "txt"
	}
	return format
}
