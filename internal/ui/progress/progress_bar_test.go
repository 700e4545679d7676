package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestProgressBar_New(t *testing.T) {
	t.Parallel()

	pb := NewProgressBar(&bytes.Buffer{}, 100, "Fetching profiles")
	if pb.Total() != 100 {
		t.Errorf("expected total 100, got %d", pb.Total())
	}
	if pb.enabled {
		t.Error("progress bar should be disabled for a non-terminal writer")
	}
}

func TestProgressBar_NonTerminalIsSilent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	pb := NewProgressBar(&buf, 10, "Fetching profiles")
	pb.Start()
	pb.SetProgress(5, "Fetching profiles")
	pb.Stop()

	if buf.Len() != 0 {
		t.Errorf("progress bar wrote %q to a non-terminal", buf.String())
	}
	if pb.Current() != 5 {
		t.Errorf("Current() = %d, want 5", pb.Current())
	}
}

func TestProgressBar_Render(t *testing.T) {
	t.Parallel()

	pb := NewProgressBar(&bytes.Buffer{}, 30, "Fetching profiles")
	m := pb.newModel()
	m.current = 12

	got := ansi.Strip(m.render())
	if !strings.Contains(got, "12/30 Fetching profiles") {
		t.Errorf("render() = %q, want count and message", got)
	}
}

func TestSpinner_NonTerminalIsSilent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSpinner(&buf, "Loading users")
	s.Start()
	s.UpdateMessage("Loading repositories")
	s.Stop()

	if buf.Len() != 0 {
		t.Errorf("spinner wrote %q to a non-terminal", buf.String())
	}
	if s.lastMsg != "Loading repositories" {
		t.Errorf("lastMsg = %q", s.lastMsg)
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	if IsTerminal(&bytes.Buffer{}) {
		t.Error("bytes.Buffer is not a terminal")
	}
}
