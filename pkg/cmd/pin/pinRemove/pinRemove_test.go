package pinRemove

import (
	"bytes"
	"testing"

	"github.com/Paintersrp/home/internal/state/statetest"
)

func TestRunUnpins(t *testing.T) {
	s := statetest.New(t, map[string]string{"a.md": "# a", "b.md": "# b"}, "pinned_notes: [a.md, b.md]\n")

	var out bytes.Buffer
	cmd := Command(nil)
	cmd.SetOut(&out)

	if err := run(cmd, "a", s); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if got := s.Service.Pinned(); len(got) != 1 || got[0] != "b.md" {
		t.Fatalf("pinned = %v", got)
	}

	if err := run(cmd, "a", s); err == nil {
		t.Fatal("expected error when unpinning a note that is not pinned")
	}
}

func TestRunUnpinsDeletedNote(t *testing.T) {
	s := statetest.New(t, map[string]string{"a.md": "# a"}, "pinned_notes: [gone.md]\n")

	cmd := Command(nil)
	cmd.SetOut(&bytes.Buffer{})

	if err := run(cmd, "gone.md", s); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if got := s.Service.Pinned(); len(got) != 0 {
		t.Fatalf("pinned = %v", got)
	}
}
