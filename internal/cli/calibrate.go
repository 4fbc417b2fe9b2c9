package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/rileyhilliard/phbuddy/internal/config"
	"github.com/rileyhilliard/phbuddy/internal/logger"
	"github.com/rileyhilliard/phbuddy/internal/ui"
)

// calibrateCommand runs the standalone calibration sequence.
func calibrateCommand(flags CalibrateFlags) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}
	if flags.Port != "" {
		cfg.Port = flags.Port
	}
	if flags.Baud != 0 {
		cfg.Baud = flags.Baud
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.NewEnvLogger("[calibrate]")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := buildSource(cfg, flags.Sim, log)
	defer src.Close()

	headless := !term.IsTerminal(int(os.Stdout.Fd()))
	if err := calibrate(ctx, src, headless, log); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	fmt.Printf("%s %s is ready\n", ui.SymbolSuccess, src.Describe())
	return nil
}
