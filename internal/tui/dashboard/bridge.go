package dashboard

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/home/internal/refs"
)

// Bridge forwards list changes from the service into a running program.
// It implements home.Listener.
type Bridge struct {
	mu      sync.Mutex
	program *tea.Program
}

// Attach sets the program that receives change notifications.
func (b *Bridge) Attach(p *tea.Program) {
	b.mu.Lock()
	b.program = p
	b.mu.Unlock()
}

func (b *Bridge) RenderPinned([]refs.NoteRef) { b.send(pinnedChangedMsg{}) }

func (b *Bridge) RenderRecent([]refs.NoteRef) { b.send(recentChangedMsg{}) }

// send never blocks the caller: notifications can originate inside the
// program's own Update.
func (b *Bridge) send(msg tea.Msg) {
	b.mu.Lock()
	p := b.program
	b.mu.Unlock()
	if p != nil {
		go p.Send(msg)
	}
}
