// Package catalog lists the markdown notes of a vault directory.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/Paintersrp/home/internal/constants"
	"github.com/Paintersrp/home/internal/pathutil"
	"github.com/Paintersrp/home/internal/refs"
)

// Note describes a markdown file in the vault.
type Note struct {
	Ref          refs.NoteRef
	DisplayName  string
	LastModified time.Time
	// Title is the first markdown heading, filled only by Resolve.
	Title string
}

// Path returns the absolute location of the note inside vault.
func (n Note) Path(vault string) string {
	return pathutil.Absolute(vault, n.Ref.String())
}

// Vault is a read-only view over the notes below Root.
type Vault struct {
	Root   string
	ignore []string
}

// NewVault creates a catalog rooted at dir. Ignore patterns are doublestar
// globs matched against vault relative paths.
func NewVault(dir string, ignore []string) *Vault {
	patterns := make([]string, 0, len(ignore))
	for _, p := range ignore {
		p = strings.TrimSpace(p)
		if p == "" || !doublestar.ValidatePattern(p) {
			continue
		}
		patterns = append(patterns, p)
	}
	return &Vault{Root: pathutil.NormalizePath(dir), ignore: patterns}
}

func isNote(name string) bool {
	return strings.EqualFold(filepath.Ext(name), constants.NoteExtension)
}

// Ignored reports whether rel is hidden from the catalog.
func (v *Vault) Ignored(rel string) bool {
	for _, segment := range strings.Split(rel, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	for _, pattern := range v.ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// List walks the vault and returns every note in lexical path order.
func (v *Vault) List() ([]Note, error) {
	var notes []Note

	err := filepath.WalkDir(v.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return filepath.SkipDir
			}
			return err
		}

		rel, relErr := pathutil.VaultRelative(v.Root, path)
		if relErr != nil || !pathutil.InVault(rel) {
			return nil
		}

		if d.IsDir() {
			if v.Ignored(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !isNote(d.Name()) || v.Ignored(rel) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		notes = append(notes, Note{
			Ref:          refs.NoteRef(rel),
			DisplayName:  pathutil.DisplayName(rel),
			LastModified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: listing %s: %w", v.Root, err)
	}

	return notes, nil
}

func (v *Vault) stat(ref refs.NoteRef) (os.FileInfo, bool) {
	rel := ref.String()
	if !pathutil.InVault(rel) || !isNote(rel) || v.Ignored(rel) {
		return nil, false
	}
	info, err := os.Stat(pathutil.Absolute(v.Root, rel))
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}
	return info, true
}

// Exists reports whether ref names a note currently in the vault.
func (v *Vault) Exists(ref refs.NoteRef) bool {
	_, ok := v.stat(ref)
	return ok
}

// Resolve returns the note for ref, or nil when it does not exist.
func (v *Vault) Resolve(ref refs.NoteRef) (*Note, error) {
	info, ok := v.stat(ref)
	if !ok {
		return nil, nil
	}

	note := &Note{
		Ref:          ref,
		DisplayName:  pathutil.DisplayName(ref.String()),
		LastModified: info.ModTime(),
	}

	source, err := os.ReadFile(note.Path(v.Root))
	if err != nil {
		return nil, fmt.Errorf("catalog: reading %s: %w", ref, err)
	}
	note.Title = firstHeading(source)

	return note, nil
}

// Ref converts an absolute or relative path into a vault note ref.
func (v *Vault) Ref(path string) (refs.NoteRef, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(v.Root, path)
	}
	rel, err := pathutil.VaultRelative(v.Root, path)
	if err != nil {
		return "", err
	}
	if !pathutil.InVault(rel) {
		return "", fmt.Errorf("%s is outside the vault %s", path, v.Root)
	}
	return refs.NoteRef(rel), nil
}

func stripFrontMatter(source []byte) []byte {
	if !bytes.HasPrefix(source, []byte("---\n")) {
		return source
	}
	rest := source[4:]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return source
	}
	rest = rest[end+4:]
	if i := bytes.IndexByte(rest, '\n'); i >= 0 {
		return rest[i+1:]
	}
	return nil
}

func firstHeading(source []byte) string {
	body := stripFrontMatter(source)
	doc := goldmark.DefaultParser().Parse(text.NewReader(body))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok {
			title = strings.TrimSpace(string(heading.Text(body)))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return title
}
