package editor

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCommandTerminalEditorWaits(t *testing.T) {
	launch, err := Command("nvim", "/vault", "/vault/note.md")
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	if !launch.Wait {
		t.Fatal("expected terminal editor to wait")
	}
	if filepath.Base(launch.Cmd.Path) != "nvim" && launch.Cmd.Args[0] != "nvim" {
		t.Fatalf("unexpected command %v", launch.Cmd.Args)
	}
	if got := launch.Cmd.Args[len(launch.Cmd.Args)-1]; got != "/vault/note.md" {
		t.Fatalf("expected note path as last arg, got %q", got)
	}
}

func TestCommandFallsBackToEnvEditor(t *testing.T) {
	t.Setenv("EDITOR", "nano")

	launch, err := Command("", "/vault", "/vault/note.md")
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	if launch.Cmd.Args[0] != "nano" {
		t.Fatalf("expected $EDITOR to be used, got %v", launch.Cmd.Args)
	}
}

func TestCommandObsidianURI(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("obsidian URI launch only asserted on unix")
	}

	vault := filepath.Join("/", "home", "me", "My Vault")
	launch, err := Command("obsidian", vault, filepath.Join(vault, "sub", "note.md"))
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	if launch.Wait {
		t.Fatal("obsidian launch should not wait")
	}

	uri := launch.Cmd.Args[len(launch.Cmd.Args)-1]
	if !strings.HasPrefix(uri, "obsidian://open?vault=My+Vault&file=sub%2Fnote.md") {
		t.Fatalf("unexpected uri %q", uri)
	}
}
