package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Paintersrp/home/internal/constants"
	"github.com/Paintersrp/home/internal/pathutil"
	"github.com/Paintersrp/home/internal/refs"
	"github.com/Paintersrp/home/internal/state"
)

// ResolveRef turns a command argument into a note ref. The argument may be
// an absolute path, a vault relative path, or either without the .md
// extension.
func ResolveRef(s *state.State, arg string) (refs.NoteRef, error) {
	if s == nil || s.Vault == nil {
		return "", fmt.Errorf("state is not initialized")
	}

	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", fmt.Errorf("a note argument is required")
	}
	if filepath.Ext(arg) == "" {
		arg += constants.NoteExtension
	}

	return s.Vault.Ref(pathutil.NormalizePath(arg))
}

// ResolveExisting is ResolveRef for notes that must exist in the vault.
func ResolveExisting(s *state.State, arg string) (refs.NoteRef, error) {
	ref, err := ResolveRef(s, arg)
	if err != nil {
		return "", err
	}
	if !s.Vault.Exists(ref) {
		return "", fmt.Errorf("note %q does not exist in the vault", ref)
	}
	return ref, nil
}

// PrintRefs writes a numbered list of notes, or empty when there are none.
func PrintRefs(w io.Writer, list []refs.NoteRef, empty string) {
	if len(list) == 0 {
		fmt.Fprintln(w, empty)
		return
	}
	for i, ref := range list {
		fmt.Fprintf(w, "%2d. %-30s %s\n", i+1, pathutil.DisplayName(ref.String()), ref)
	}
}
