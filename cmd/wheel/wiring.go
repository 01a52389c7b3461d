package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/config"
	"github.com/LISSConsulting/LISSTech.WheelKing/internal/notify"
	"github.com/LISSConsulting/LISSTech.WheelKing/internal/store"
	"github.com/LISSConsulting/LISSTech.WheelKing/internal/tui"
	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

// logFile is where the TUI writes its log, relative to the config dir.
var logFile = filepath.Join(".wheel", "wheel.log")

// session owns the controller and the sinks its events fan out to.
type session struct {
	controller *wheel.Controller
	store      *store.JSONL // nil when history is disabled
	notifier   *notify.Notifier
	logger     *slog.Logger

	events chan wheel.Event
	done   chan struct{}
	fanout chan struct{}
	sinks  []func(wheel.Event)
}

// newSession builds the controller for cfg and starts forwarding its
// events to the history store, the notifier and sinks, in that order.
func newSession(cfg *config.Config, logger *slog.Logger, renderer wheel.Renderer, sinks ...func(wheel.Event)) (*session, error) {
	names, err := cfg.Names()
	if err != nil {
		return nil, err
	}

	s := &session{
		notifier: notify.New(cfg.Notifications.URL, cfg.Wheel.Title, cfg.Notifications.OnSettle, logger),
		logger:   logger,
		events:   make(chan wheel.Event, 128),
		done:     make(chan struct{}),
		fanout:   make(chan struct{}),
		sinks:    sinks,
	}

	if cfg.History.Enabled {
		dir := cfg.Resolve(cfg.History.Dir)
		if err := store.EnforceRetention(dir, cfg.History.Retention); err != nil {
			logger.Warn("history retention", "dir", dir, "error", err)
		}
		st, err := store.NewJSONL(dir, logger)
		if err != nil {
			return nil, err
		}
		s.store = st
		logger.Debug("history session opened", "path", st.Path())
	}

	seed := cfg.Wheel.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.controller = wheel.NewController(names, wheel.Options{
		RNG:      wheel.NewRNG(seed),
		Renderer: renderer,
		Policy:   cfg.Policy(),
		Events:   s.events,
	})

	go s.forward()
	return s, nil
}

// forward drains controller events until Close. The controller never
// blocks on the channel, so it is left open and abandoned instead.
func (s *session) forward() {
	defer close(s.fanout)
	for {
		select {
		case e := <-s.events:
			s.dispatch(e)
		case <-s.done:
			for {
				select {
				case e := <-s.events:
					s.dispatch(e)
				default:
					return
				}
			}
		}
	}
}

func (s *session) dispatch(e wheel.Event) {
	s.logger.Debug("wheel event", "kind", e.Kind.String(), "spin", e.SpinID, "name", e.Name)
	if s.store != nil {
		if err := s.store.Append(e); err != nil {
			s.logger.Warn("history append", "error", err)
		}
	}
	s.notifier.Hook(e)
	for _, sink := range s.sinks {
		sink(e)
	}
}

// reader returns the history reader, or nil when history is disabled.
func (s *session) reader() store.Reader {
	if s.store == nil {
		return nil
	}
	return s.store
}

// Close stops the controller, flushes pending events and notifications
// and closes the history file.
func (s *session) Close() error {
	s.controller.Close()
	close(s.done)
	<-s.fanout
	s.notifier.Wait()
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

// newLogger returns a slog.Logger backed by a charm log handler at level
// writing to w. Unknown levels fall back to info.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := charmlog.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = charmlog.InfoLevel
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		Prefix:          "wheel",
		ReportTimestamp: true,
	})
	return slog.New(handler)
}

// openLogFile opens the TUI log file under dir, creating .wheel/ if needed.
func openLogFile(dir string) (*os.File, error) {
	path := filepath.Join(dir, logFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}

// executeTUI runs the interactive wheel.
func executeTUI(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal; logs go to a file.
	logOut := io.Discard
	if f, fErr := openLogFile(cfg.Dir); fErr == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, opts.logLevel)

	renderer := tui.NewRenderer(16)
	tuiEvents := make(chan wheel.Event, 128)
	sink := func(e wheel.Event) {
		select {
		case tuiEvents <- e:
		default:
		}
	}

	s, err := newSession(cfg, logger, renderer, sink)
	if err != nil {
		return err
	}
	defer s.Close()

	model := tui.New(tui.Options{
		Wheel:    s.controller,
		Renderer: renderer,
		Events:   tuiEvents,
		Store:    s.reader(),
		Spin:     cfg.SpinConfig(),
		Policy:   cfg.Policy(),
		Title:    cfg.Wheel.Title,
		Accent:   cfg.TUI.AccentColor,
		WorkDir:  cfg.Dir,
		Radius:   cfg.TUI.Radius,
	})

	ctx, cancel := signalContext()
	defer cancel()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// executeSpins spins count times without the TUI, printing each winner.
func executeSpins(cmd *cobra.Command, opts *options, count int, asJSON bool) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.logLevel)

	ctx, cancel := signalContext()
	defer cancel()

	settled := make(chan wheel.Event, 1)
	s, err := newSession(cfg, logger, nil, func(e wheel.Event) {
		if e.Kind == wheel.EventSettled {
			settled <- e
		}
	})
	if err != nil {
		return err
	}
	defer s.Close()

	return spinN(ctx, s.controller, cfg.SpinConfig(), count, settled, func(e wheel.Event) error {
		return printSettled(cmd.OutOrStdout(), e, asJSON)
	})
}

// spinN runs count spins one after another, handing each settled event to
// report.
func spinN(ctx context.Context, c *wheel.Controller, cfg wheel.SpinConfig, count int, settled <-chan wheel.Event, report func(wheel.Event) error) error {
	for i := 0; i < count; i++ {
		if !c.Spin(cfg) {
			return errNoNames
		}
		select {
		case e := <-settled:
			if err := report(e); err != nil {
				return err
			}
		case <-ctx.Done():
			c.Reset()
			return ctx.Err()
		}
	}
	return nil
}

// signalContext returns a context that is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
