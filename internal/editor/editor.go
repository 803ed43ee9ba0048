// Package editor launches notes in the configured editor.
package editor

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Paintersrp/home/internal/pathutil"
)

// Launch is a prepared editor process. Wait is true for terminal editors
// that take over stdin/stdout until they exit.
type Launch struct {
	Cmd  *exec.Cmd
	Wait bool
}

type editorCommand struct {
	command string
	args    []string
	wait    bool
	silence bool
}

// Command builds the launch for path. An empty editor falls back to
// $EDITOR and then nvim.
func Command(editor, vault, path string) (*Launch, error) {
	editor = strings.TrimSpace(editor)
	if editor == "" {
		editor = strings.TrimSpace(os.Getenv("EDITOR"))
	}
	if editor == "" {
		editor = "nvim"
	}

	var (
		ec  *editorCommand
		err error
	)
	switch editor {
	case "code", "vscode":
		ec, err = buildVSCodeCommand(path)
	case "obsidian":
		ec, err = buildObsidianCommand(vault, path)
	default:
		ec = &editorCommand{command: editor, args: []string{path}, wait: true}
	}
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(ec.command, ec.args...)
	if ec.silence {
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
	}
	return &Launch{Cmd: cmd, Wait: ec.wait}, nil
}

func buildVSCodeCommand(path string) (*editorCommand, error) {
	switch runtime.GOOS {
	case "darwin":
		return &editorCommand{command: "open", args: []string{"-n", "-b", "com.microsoft.VSCode", "--args", path}, silence: true}, nil
	case "linux":
		return &editorCommand{command: "code", args: []string{path}, silence: true}, nil
	case "windows":
		return &editorCommand{command: "cmd", args: []string{"/c", "code", path}, silence: true}, nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

func buildObsidianCommand(vault, path string) (*editorCommand, error) {
	vaultName := filepath.Base(pathutil.NormalizePath(vault))

	relativePath, err := pathutil.VaultRelative(vault, path)
	if err != nil {
		return nil, fmt.Errorf("unable to determine relative path for obsidian: %w", err)
	}

	uri := fmt.Sprintf(
		"obsidian://open?vault=%s&file=%s",
		url.QueryEscape(vaultName),
		url.QueryEscape(relativePath),
	)

	switch runtime.GOOS {
	case "darwin":
		return &editorCommand{command: "open", args: []string{uri}, silence: true}, nil
	case "linux":
		return &editorCommand{command: "xdg-open", args: []string{uri}, silence: true}, nil
	case "windows":
		return &editorCommand{command: "cmd", args: []string{"/c", "start", uri}, silence: true}, nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// Run starts the launch, attaching the terminal for waiting editors.
func (l *Launch) Run() error {
	if l.Wait {
		if l.Cmd.Stdin == nil {
			l.Cmd.Stdin = os.Stdin
		}
		if l.Cmd.Stdout == nil {
			l.Cmd.Stdout = os.Stdout
		}
		if l.Cmd.Stderr == nil {
			l.Cmd.Stderr = os.Stderr
		}
		return l.Cmd.Run()
	}

	if err := l.Cmd.Start(); err != nil {
		return fmt.Errorf("error starting editor: %w", err)
	}
	go func() { _ = l.Cmd.Wait() }()
	return nil
}
