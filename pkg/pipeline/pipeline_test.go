package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/graphwalk/pkg/cache"
	gwerrors "github.com/matzehuels/graphwalk/pkg/errors"
	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/observability"
)

// writeTriangle writes 1-2 (1), 1-3 (5), 2-3 (2) in the text format.
func writeTriangle(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "triangle.txt")
	if err := os.WriteFile(path, []byte("3\n1\n5\n2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"SVG", false}, // case-insensitive
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "text"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Input: "graph.txt", Start: 1, End: 2}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Algorithm != DefaultAlgorithm {
		t.Errorf("Algorithm = %q, want %q", opts.Algorithm, DefaultAlgorithm)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatText {
		t.Errorf("Formats = %v, want [text]", opts.Formats)
	}
	if opts.PNGScale != DefaultPNGScale {
		t.Errorf("PNGScale = %v, want %v", opts.PNGScale, DefaultPNGScale)
	}
	if opts.Logger == nil {
		t.Error("Logger should be set")
	}
}

func TestOptionsValidateForLoad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  gwerrors.Code
	}{
		{"empty", "", gwerrors.ErrCodeInvalidInput},
		{"directory", "..", gwerrors.ErrCodeInvalidPath},
		{"control char", "a\x01b.txt", gwerrors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{Input: tt.input}
			err := opts.ValidateForLoad()
			if !gwerrors.Is(err, tt.code) {
				t.Errorf("ValidateForLoad() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestOptionsValidateForSearch(t *testing.T) {
	for _, alg := range []string{"dfs", "BFS", "depth-first"} {
		opts := Options{Algorithm: alg}
		if err := opts.ValidateForSearch(); err != nil {
			t.Errorf("ValidateForSearch(%q) error = %v", alg, err)
		}
	}

	opts := Options{Algorithm: "astar"}
	err := opts.ValidateForSearch()
	if !gwerrors.Is(err, gwerrors.ErrCodeInvalidAlgorithm) {
		t.Errorf("ValidateForSearch(astar) error = %v, want invalid algorithm", err)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Input: "graph.txt", Formats: []string{" SVG "}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first call error = %v", err)
	}
	first := opts.Formats[0]
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call error = %v", err)
	}
	if first != "svg" || opts.Formats[0] != first {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
}

func TestNeedsGraphviz(t *testing.T) {
	tests := []struct {
		formats []string
		want    bool
	}{
		{[]string{"text"}, false},
		{[]string{"text", "json", "dot"}, false},
		{[]string{"text", "svg"}, true},
		{[]string{"pdf"}, true},
	}
	for _, tt := range tests {
		opts := Options{Formats: tt.formats}
		if got := opts.NeedsGraphviz(); got != tt.want {
			t.Errorf("NeedsGraphviz(%v) = %v, want %v", tt.formats, got, tt.want)
		}
	}
}

func TestExt(t *testing.T) {
	if got := Ext(FormatText); got != "txt" {
		t.Errorf("Ext(text) = %q, want txt", got)
	}
	if got := Ext(FormatSVG); got != "svg" {
		t.Errorf("Ext(svg) = %q, want svg", got)
	}
}

func TestExecute(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		Input:     writeTriangle(t),
		Algorithm: "bfs",
		Start:     1,
		End:       3,
		Formats:   []string{"text", "json", "dot"},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Stats.Vertices != 3 || result.Stats.Edges != 3 {
		t.Errorf("Stats = %+v, want 3 vertices and 3 edges", result.Stats)
	}
	if got := result.Search.Path; len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Path = %v, want [1 3]", got)
	}
	if result.Search.Cost != 5 {
		t.Errorf("Cost = %v, want 5", result.Search.Cost)
	}
	if result.Stats.Expansions != 3 {
		t.Errorf("Expansions = %d, want 3", result.Stats.Expansions)
	}

	text := string(result.Artifacts[FormatText])
	if !strings.Contains(text, "1 -> 3") {
		t.Errorf("text artifact missing path:\n%s", text)
	}

	var doc struct {
		Path []int   `json:"path"`
		Cost float64 `json:"cost"`
	}
	if err := json.Unmarshal(result.Artifacts[FormatJSON], &doc); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if len(doc.Path) != 2 || doc.Cost != 5 {
		t.Errorf("json artifact = %+v", doc)
	}

	if !strings.HasPrefix(string(result.Artifacts[FormatDOT]), "graph G {") {
		t.Error("dot artifact is not an undirected graph")
	}
	if result.CacheInfo.RenderHit {
		t.Error("RenderHit should be false without Graphviz formats")
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRunner(nil, nil)
	ctx := context.Background()

	_, err := r.Execute(ctx, Options{Input: filepath.Join(t.TempDir(), "missing.txt"), Start: 1, End: 2})
	if !gwerrors.Is(err, gwerrors.ErrCodeFileNotFound) {
		t.Errorf("missing input error = %v, want file not found", err)
	}

	_, err = r.Execute(ctx, Options{Input: writeTriangle(t), Start: 9, End: 2})
	if !gwerrors.Is(err, gwerrors.ErrCodeNotFound) {
		t.Errorf("missing start error = %v, want not found", err)
	}
	if !errors.Is(err, graph.ErrVertexNotFound) {
		t.Errorf("missing start error = %v, want to wrap ErrVertexNotFound", err)
	}

	_, err = r.Execute(ctx, Options{Input: writeTriangle(t), Start: 1, End: 2, Formats: []string{"gif"}})
	if !gwerrors.Is(err, gwerrors.ErrCodeInvalidFormat) {
		t.Errorf("bad format error = %v, want invalid format", err)
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil, nil).Execute(ctx, Options{Input: writeTriangle(t), Start: 1, End: 3})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}

func TestExecuteUnreachable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "split.txt")
	// 4 vertices, edges 1-2 and 3-4 only.
	if err := os.WriteFile(path, []byte("4\n1 -1 -1\n-1 -1\n1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := NewRunner(nil, nil).Execute(context.Background(), Options{
		Input: path, Algorithm: "dfs", Start: 1, End: 4,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Search.Reachable() {
		t.Error("goal should be unreachable")
	}
	if !strings.Contains(string(result.Artifacts[FormatText]), "no path") {
		t.Errorf("text artifact should report no path:\n%s", result.Artifacts[FormatText])
	}
}

func TestRenderWithoutSearch(t *testing.T) {
	g := graph.New()
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 2)
	g.AddEdge(1, 3, 5)

	artifacts, err := Render(context.Background(), g, nil, Options{Formats: []string{"text", "json", "dot"}})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := string(artifacts[FormatText]); !strings.HasPrefix(got, "3\n") {
		t.Errorf("text artifact = %q, want distance list", got)
	}
	if !strings.Contains(string(artifacts[FormatJSON]), `"edges"`) {
		t.Errorf("json artifact = %s, want edge document", artifacts[FormatJSON])
	}
	if strings.Contains(string(artifacts[FormatDOT]), "doublecircle") {
		t.Error("dot artifact should carry no search overlay")
	}
}

func TestRenderCache(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil)
	defer r.Close()

	g := graph.New()
	g.AddUnitEdge(1, 2)
	opts := Options{Formats: []string{"svg"}, Title: "cached"}
	opts.SetRenderDefaults()

	// Seed the cache so the lookup is observable without Graphviz.
	key := artifactKey(cache.Hash([]byte(DOT(g, nil, opts))), FormatSVG, opts)
	if err := c.Set(ctx, key, []byte("<svg>seeded</svg>"), time.Hour); err != nil {
		t.Fatal(err)
	}

	artifacts, hit, err := r.RenderWithCacheInfo(ctx, g, nil, opts)
	if err != nil {
		t.Fatalf("RenderWithCacheInfo() error = %v", err)
	}
	if !hit {
		t.Error("expected cache hit")
	}
	if string(artifacts[FormatSVG]) != "<svg>seeded</svg>" {
		t.Errorf("svg artifact = %q, want seeded value", artifacts[FormatSVG])
	}

	// A different title changes the DOT source and so the key.
	other := opts
	other.Title = "fresh"
	artifacts, hit, err = r.RenderWithCacheInfo(ctx, g, nil, other)
	if err != nil {
		t.Fatalf("RenderWithCacheInfo() error = %v", err)
	}
	if hit {
		t.Error("expected cache miss for new DOT source")
	}
	if !strings.Contains(string(artifacts[FormatSVG]), "<svg") {
		t.Error("rendered artifact is not SVG")
	}

	_, hit, _ = r.RenderWithCacheInfo(ctx, g, nil, other)
	if !hit {
		t.Error("second render should hit the cache")
	}
}

func TestArtifactKeyScale(t *testing.T) {
	a := artifactKey("h", FormatPNG, Options{PNGScale: 1})
	b := artifactKey("h", FormatPNG, Options{PNGScale: 2})
	if a == b {
		t.Error("PNG scale should be part of the artifact key")
	}
	if artifactKey("h", FormatSVG, Options{PNGScale: 1}) != artifactKey("h", FormatSVG, Options{PNGScale: 2}) {
		t.Error("PNG scale should not affect SVG keys")
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	events []string
}

func (h *recordingHooks) OnLoadStart(context.Context, string) { h.events = append(h.events, "load") }
func (h *recordingHooks) OnSearchComplete(_ context.Context, alg string, expansions int, reachable bool, _ time.Duration, err error) {
	h.events = append(h.events, "search:"+alg)
}
func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.events = append(h.events, "render")
}

func TestExecuteHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetPipelineHooks(h)
	defer observability.Reset()

	_, err := NewRunner(nil, nil).Execute(context.Background(), Options{
		Input: writeTriangle(t), Algorithm: "dfs", Start: 1, End: 3,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := []string{"load", "search:dfs", "render"}
	if strings.Join(h.events, ",") != strings.Join(want, ",") {
		t.Errorf("hook events = %v, want %v", h.events, want)
	}
}
