package recent

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/home/internal/state/statetest"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(&out)
	return cmd, &out
}

func TestListPrunesMissingNotes(t *testing.T) {
	s := statetest.New(t, map[string]string{"a.md": "# a", "b.md": "# b"}, "last_opened_files: [b.md, a.md]\n")
	if err := os.Remove(filepath.Join(s.Vault.Root, "b.md")); err != nil {
		t.Fatal(err)
	}

	cmd, out := newTestCommand()
	if err := list(cmd, s); err != nil {
		t.Fatalf("list returned error: %v", err)
	}

	if strings.Contains(out.String(), "b.md") {
		t.Fatalf("missing note still listed:\n%s", out.String())
	}
	if got := s.Service.Recent(); len(got) != 1 || got[0] != "a.md" {
		t.Fatalf("recent = %v", got)
	}
}

func TestPruneReportsRemovals(t *testing.T) {
	s := statetest.New(t, map[string]string{"a.md": "# a"}, "last_opened_files: [gone.md, a.md, lost.md]\n")

	cmd, out := newTestCommand()
	if err := prune(cmd, s); err != nil {
		t.Fatalf("prune returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Removed 2 missing notes") {
		t.Fatalf("unexpected output %q", out.String())
	}

	out.Reset()
	if err := prune(cmd, s); err != nil {
		t.Fatalf("prune returned error: %v", err)
	}
	if !strings.Contains(out.String(), "up to date") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestClearThenSeed(t *testing.T) {
	s := statetest.New(t, map[string]string{"a.md": "# a", "b.md": "# b"}, "last_opened_files: [a.md]\n")

	cmd, out := newTestCommand()
	if err := seed(cmd, s); err != nil {
		t.Fatalf("seed returned error: %v", err)
	}
	if !strings.Contains(out.String(), "already has entries") {
		t.Fatalf("unexpected output %q", out.String())
	}

	if err := clearRecent(cmd, s); err != nil {
		t.Fatalf("clearRecent returned error: %v", err)
	}
	if len(s.Service.Recent()) != 0 {
		t.Fatalf("recent not cleared: %v", s.Service.Recent())
	}

	if err := seed(cmd, s); err != nil {
		t.Fatalf("seed returned error: %v", err)
	}
	if len(s.Service.Recent()) != 2 {
		t.Fatalf("recent = %v", s.Service.Recent())
	}
}
