package fzf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/home/internal/cache"
	"github.com/Paintersrp/home/internal/catalog"
)

// ErrNoSelection is returned when the user aborts the finder.
var ErrNoSelection = errors.New("no note selected")

const previewCacheSize = 64

type previewKey struct {
	index int
	width int
}

// FuzzyFinder picks a single note from a list with a rendered preview.
type FuzzyFinder struct {
	vaultDir string
	Header   string
	notes    []catalog.Note
	previews *cache.LRU[previewKey, string]
}

func NewFuzzyFinder(vaultDir string, notes []catalog.Note, header string) *FuzzyFinder {
	return &FuzzyFinder{
		vaultDir: vaultDir,
		Header:   header,
		notes:    notes,
		previews: cache.NewLRU[previewKey, string](previewCacheSize),
	}
}

// Find runs the finder, optionally prefilled with query.
func (f *FuzzyFinder) Find(query string) (catalog.Note, error) {
	if len(f.notes) == 0 {
		return catalog.Note{}, fmt.Errorf("no notes to choose from")
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(f.notes, func(i int) string {
		return Label(f.notes[i])
	}, options...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return catalog.Note{}, ErrNoSelection
		}
		return catalog.Note{}, fmt.Errorf("error selecting note: %w", err)
	}

	return f.notes[idx], nil
}

// Label is the finder line for a note: its heading or name followed by its
// path. A heading is only shown when it differs from the file name.
func Label(n catalog.Note) string {
	name := n.DisplayName
	if title := strings.TrimSpace(n.Title); title != "" && !strings.EqualFold(title, name) {
		name = title
	}
	if name == "" || name+".md" == n.Ref.String() {
		return n.Ref.String()
	}
	return fmt.Sprintf("%s  (%s)", name, n.Ref)
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	key := previewKey{index: i, width: w}
	if preview, ok := f.previews.Get(key); ok {
		return preview
	}

	content, err := os.ReadFile(f.notes[i].Path(f.vaultDir))
	if err != nil {
		return "Error reading file"
	}

	preview := RenderMarkdown(string(content), w)
	f.previews.Put(key, preview)
	return preview
}

// RenderMarkdown renders content for a terminal of the given width.
func RenderMarkdown(content string, width int) string {
	if width <= 0 || width > 100 {
		width = 100
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return content
	}

	markdown, err := r.Render(content)
	if err != nil {
		return "Error rendering markdown"
	}

	return markdown
}
