package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/spf13/cobra"
	"pkt.systems/psi"
	"pkt.systems/pslog"

	"github.com/eldinwm/eldinwm/internal/config"
	"github.com/eldinwm/eldinwm/internal/wm"
)

var (
	xConn    *xgb.Conn
	rootXWin xp.Window

	eventTime xp.Timestamp

	logger pslog.Logger

	terminateChan = make(chan struct{})
	terminateOnce sync.Once
)

type checker interface {
	Check() error
}

var checkers []checker

func check(c checker) {
	checkers = append(checkers, c)
}

func flushCheckers() {
	for i, c := range checkers {
		if err := c.Check(); err != nil {
			logger.Warn("X request failed", "err", err)
		}
		checkers[i] = nil
	}
	checkers = checkers[:0]
}

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger = pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.With("err", err).Error("eldinwm failed")
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:           "eldinwm",
		Short:         "A two-views-per-workspace tiling window manager",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(cfgPath, cmd.Flags(), pslog.Ctx(cmd.Context()))
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "config file (default $XDG_CONFIG_HOME/eldinwm/eldinwm.conf)")
	cmd.Flags().Int("workspaces", config.DefaultWorkspaces, "workspaces per output, overrides the config file")
	return cmd
}

type xEventOrError struct {
	event xgb.Event
	error xgb.Error
}

func run(ctx context.Context, cfg config.Config) error {
	var err error
	xConn, err = xgb.NewConn()
	if err != nil {
		return fmt.Errorf("connect to X: %w", err)
	}
	defer xConn.Close()
	if err = xinerama.Init(xConn); err != nil {
		return fmt.Errorf("init xinerama: %w", err)
	}
	xSetup := xp.Setup(xConn)
	if len(xSetup.Roots) != 1 {
		return fmt.Errorf("X setup has unsupported number of roots: %d", len(xSetup.Roots))
	}
	rootXWin = xSetup.Roots[0].Root

	if err := becomeTheWM(); err != nil {
		return err
	}
	if err := initAtoms(); err != nil {
		return err
	}
	if err := initDesktop(&xSetup.Roots[0]); err != nil {
		return err
	}
	if err := initKeyboardMapping(); err != nil {
		return err
	}
	outputs, err := initOutputs()
	if err != nil {
		return err
	}
	if err := initCommandBox(&xSetup.Roots[0], outputs[0]); err != nil {
		return err
	}

	manager = wm.New(wm.Config{
		Workspaces:      cfg.Workspaces,
		IndicatorHeight: cfg.IndicatorHeight,
		Backend:         xBackend{},
		Launcher:        wm.ShellLauncher{},
		Painter:         painter,
		Logger:          logger,
	})
	logger.Info("eldinwm started",
		"config", cfg.Path, "workspaces", manager.Workspaces(), "outputs", len(outputs))
	for _, o := range outputs {
		dispatch(o)
	}
	if err := adoptExistingWindows(); err != nil {
		return err
	}

	eeChan := make(chan xEventOrError)
	go func() {
		for {
			e, err := xConn.WaitForEvent()
			if e == nil && err == nil {
				close(eeChan)
				return
			}
			eeChan <- xEventOrError{e, err}
		}
	}()
	for {
		flushCheckers()

		select {
		case <-ctx.Done():
			logger.Info("eldinwm stopping", "reason", ctx.Err())
			return nil
		case <-terminateChan:
			logger.Info("eldinwm stopping", "reason", "exit shortcut")
			return nil
		case ee, ok := <-eeChan:
			if !ok {
				return errors.New("X connection closed")
			}
			if ee.error != nil {
				logger.Warn("X error", "err", ee.error)
				continue
			}
			handleXEvent(ee.event)
		}
	}
}

func terminate() {
	terminateOnce.Do(func() { close(terminateChan) })
}

func handleXEvent(ev xgb.Event) {
	switch e := ev.(type) {
	case xp.ConfigureNotifyEvent:
		// No-op.
	case xp.ConfigureRequestEvent:
		handleConfigureRequest(e)
	case xp.DestroyNotifyEvent:
		unmanage(e.Window)
	case xp.ExposeEvent:
		handleExpose(e)
	case xp.KeyPressEvent:
		eventTime = e.Time
		handleKey(e.Detail, e.State, true)
	case xp.KeyReleaseEvent:
		eventTime = e.Time
		handleKey(e.Detail, e.State, false)
	case xp.MapNotifyEvent:
		if w := windows[e.Window]; w != nil {
			dispatch(wm.ViewMapped{Handle: w.handle()})
		}
	case xp.MappingNotifyEvent:
		// No-op.
	case xp.MapRequestEvent:
		manage(e.Window, true)
	case xp.UnmapNotifyEvent:
		if w := windows[e.Window]; w != nil {
			dispatch(wm.ViewUnmapped{Handle: w.handle()})
		}
	default:
		logger.Debug("unhandled event", "event", ev.String())
	}
}
