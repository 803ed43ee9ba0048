package open

import (
	"testing"

	"github.com/Paintersrp/home/internal/refs"
	"github.com/Paintersrp/home/internal/state"
	"github.com/Paintersrp/home/internal/state/statetest"
)

func TestRunOpensExistingNote(t *testing.T) {
	s := statetest.New(t, map[string]string{"dir/a.md": "# a", "b.md": "# b"}, "")

	var opened refs.NoteRef
	opener := func(_ *state.State, ref refs.NoteRef) error {
		opened = ref
		return nil
	}

	if err := run([]string{"dir/a"}, s, opener); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if opened != "dir/a.md" {
		t.Fatalf("opened = %q", opened)
	}
}

func TestLaunchThroughStateRecordsOpen(t *testing.T) {
	s := statetest.New(t, map[string]string{"a.md": "# a", "b.md": "# b"}, "last_opened_files: [b.md]\n")

	opener := func(s *state.State, ref refs.NoteRef) error {
		_, err := s.Launch(ref)
		return err
	}

	if err := run([]string{"a.md"}, s, opener); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	recent := s.Service.Recent()
	if len(recent) != 2 || recent[0] != "a.md" {
		t.Fatalf("recent = %v", recent)
	}
}
