package flags

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
)

func TestParseSince(t *testing.T) {
	got, err := ParseSince("2024-05-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("ParseSince = %v, want %v", got, want)
	}

	if got, err := ParseSince("  "); err != nil || !got.IsZero() {
		t.Fatalf("blank since = %v, %v", got, err)
	}

	if _, err := ParseSince("not a date at all"); err == nil {
		t.Fatal("expected error for invalid date")
	}
}

func TestHandlePath(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddPath(cmd)
	if err := cmd.Flags().Set("path", " notes/a.md "); err != nil {
		t.Fatal(err)
	}

	got, err := HandlePath(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "notes/a.md" {
		t.Fatalf("HandlePath = %q", got)
	}
}
