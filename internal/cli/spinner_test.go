package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

// testSpinner builds a spinner writing to buf instead of stderr.
func testSpinner(ctx context.Context, message string, animate bool) (*Spinner, *bytes.Buffer) {
	var buf bytes.Buffer
	s := newSpinnerWithContext(ctx, message)
	s.out = &buf
	s.animate = animate
	return s, &buf
}

func TestSpinnerSilentWithoutTerminal(t *testing.T) {
	s, buf := testSpinner(context.Background(), "Searching...", false)
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if buf.Len() != 0 {
		t.Errorf("non-terminal spinner wrote %q", buf.String())
	}
	if s.Cancelled() {
		t.Error("Stop should not mark the spinner cancelled")
	}
}

func TestSpinnerAnimates(t *testing.T) {
	s, buf := testSpinner(context.Background(), "Searching...", true)
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "\r") || !strings.Contains(out, s.frames[0]) {
		t.Errorf("spinner output missing first frame: %q", out)
	}
	if !strings.Contains(out, "Searching...") {
		t.Errorf("spinner output missing message: %q", out)
	}
	clear := "\r" + strings.Repeat(" ", len("Searching...")+4) + "\r"
	if !strings.HasSuffix(out, clear) {
		t.Errorf("spinner output should end by clearing the line, got %q", out)
	}
	if s.Cancelled() {
		t.Error("Stop should not mark the spinner cancelled")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s, buf := testSpinner(ctx, "Searching...", true)
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner goroutine did not exit after cancellation")
	}
	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	if !strings.HasSuffix(buf.String(), "\r") {
		t.Errorf("cancelled spinner should clear its line, got %q", buf.String())
	}
	s.Stop()
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s, _ := testSpinner(ctx, "Searching...", false)
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	for _, animate := range []bool{false, true} {
		s, _ := testSpinner(context.Background(), "Searching...", animate)
		s.Start()
		s.Stop()
		s.Stop()
		s.Stop()
	}
}

func TestSpinnerStopWithMessage(t *testing.T) {
	defer func(w io.Writer) { statusOut = w }(statusOut)
	var status bytes.Buffer
	statusOut = &status

	s, _ := testSpinner(context.Background(), "Searching...", false)
	s.Start()
	s.StopWithSuccess("found path")

	s, _ = testSpinner(context.Background(), "Searching...", false)
	s.Start()
	s.StopWithError("no path")

	out := status.String()
	if !strings.Contains(out, "found path") || !strings.Contains(out, "no path") {
		t.Errorf("status output = %q", out)
	}
}

func TestNewSpinnerUsesStatusWriter(t *testing.T) {
	defer func(w io.Writer) { statusOut = w }(statusOut)
	var status bytes.Buffer
	statusOut = &status

	s := newSpinner("Searching...")
	if s.out != &status {
		t.Error("newSpinner should write to the status writer")
	}
}
