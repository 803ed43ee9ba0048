package dashboard

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Paintersrp/home/internal/state"
)

// Run shows the dashboard until the user quits. The vault watcher runs
// alongside it so renames and deletes made elsewhere show up live.
func Run(ctx context.Context, s *state.State) error {
	w, err := s.NewWatcher()
	if err != nil {
		return err
	}

	bridge := &Bridge{}
	unsubscribe := s.Service.Subscribe(bridge)
	defer unsubscribe()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	p := tea.NewProgram(
		NewModel(s.Service, s.Launch),
		tea.WithAltScreen(),
		tea.WithContext(gctx),
	)
	bridge.Attach(p)

	g.Go(func() error {
		return w.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("dashboard failed: %w", err)
		}
		return nil
	})

	err = g.Wait()
	bridge.Attach(nil)
	if err != nil {
		s.Logger.Error("dashboard exited with error", zap.Error(err))
	}
	return err
}
