package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/rileyhilliard/phbuddy/internal/config"
	"github.com/rileyhilliard/phbuddy/internal/errors"
	"github.com/rileyhilliard/phbuddy/internal/logger"
	"github.com/rileyhilliard/phbuddy/internal/monitor"
	"github.com/rileyhilliard/phbuddy/internal/publish"
	"github.com/rileyhilliard/phbuddy/internal/sensor"
	"github.com/rileyhilliard/phbuddy/internal/store"
	"github.com/rileyhilliard/phbuddy/internal/ui"
)

// headlessReadTimeout bounds one acquisition in the headless loop.
const headlessReadTimeout = 1 * time.Second

// watchCommand starts the monitoring session: dashboard or headless log.
func watchCommand(flags WatchFlags) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}
	if err := applyWatchFlags(cfg, flags); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.NewEnvLogger("[watch]")

	// Ctrl+C during calibration or the headless loop is a normal exit.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := buildSource(cfg, flags.Sim, log)
	defer src.Close()

	headless := flags.Headless || !term.IsTerminal(int(os.Stdout.Fd()))

	if err := calibrate(ctx, src, headless, log); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	// Per-tick sinks: reading counter, optional recorder, optional publisher.
	var sinks []monitor.Sink
	var readings int
	sinks = append(sinks, func(monitor.Entry) error {
		readings++
		return nil
	})

	var st *store.Store
	if cfg.Record != "" {
		st, err = store.Open(cfg.Record, logger.NewEnvLogger("[store]"))
		if err != nil {
			return err
		}
		sinks = append(sinks, st.Record)
	}

	var pub *publish.MQTTPublisher
	if cfg.MQTT.Broker != "" {
		pub, err = publish.NewMQTT(cfg.MQTT, logger.NewEnvLogger("[mqtt]"))
		if err != nil {
			if st != nil {
				st.Abandon()
			}
			return err
		}
		sinks = append(sinks, pub.Publish)
	}

	start := time.Now()
	var finalHealth, finalStars int
	if headless {
		finalHealth, finalStars, err = runHeadless(ctx, src, cfg.Interval, sinks, log)
	} else {
		finalHealth, finalStars, err = runDashboard(src, cfg.Interval, sinks)
	}

	if st != nil {
		st.Close(finalHealth, finalStars)
	}
	if pub != nil {
		pub.Close()
	}
	if err != nil {
		return err
	}

	summary := ui.SessionSummary{
		Duration:    time.Since(start),
		Readings:    readings,
		FinalHealth: finalHealth,
		Stars:       finalStars,
	}
	if counter, ok := src.(interface{ TotalErrors() int }); ok {
		summary.SensorErrors = counter.TotalErrors()
	}
	fmt.Print(ui.RenderSessionSummary(summary))

	return nil
}

// runDashboard runs the Bubble Tea dashboard and returns the final totals.
func runDashboard(src sensor.Source, interval time.Duration, sinks []monitor.Sink) (health, stars int, err error) {
	model := monitor.NewModel(src, interval, monitor.WithSinks(sinks...))

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return 0, 0, err
	}

	if m, ok := final.(monitor.Model); ok {
		health, stars = m.Summary()
	}
	return health, stars, nil
}

// runHeadless samples on a plain ticker and logs one line per reading.
// Terminates on signal; per-tick failures are logged and skipped.
func runHeadless(ctx context.Context, src sensor.Source, interval time.Duration, sinks []monitor.Sink, log logger.Logger) (health, stars int, err error) {
	state := monitor.NewState(time.Now())
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	start := time.Now()

	log.Info("monitoring %s every %s", src.Describe(), interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return state.Health, state.Stars, nil

		case now := <-ticker.C:
			readCtx, cancel := context.WithTimeout(ctx, headlessReadTimeout)
			ph, readErr := src.Read(readCtx)
			cancel()
			if readErr != nil {
				if ctx.Err() != nil {
					return state.Health, state.Stars, nil
				}
				log.Warn("tick skipped: %v", readErr)
				continue
			}

			d := state.Advance(now, ph, rng)
			log.Info("pH %.2f %s health=%d stars=%d", ph, d.Band.Kind, state.Health, state.Stars)

			entry := monitor.Entry{
				Elapsed: now.Sub(start).Seconds(),
				PH:      ph,
				Band:    d.Band.Kind.String(),
				Health:  state.Health,
				Stars:   state.Stars,
			}
			for _, sink := range sinks {
				if sinkErr := sink(entry); sinkErr != nil {
					log.Warn("sink failed: %v", sinkErr)
				}
			}
		}
	}
}

// buildSource picks the reading source: simulator on request, otherwise the
// serial sensor wrapped with simulation failover. An unopenable port drops
// straight to simulation rather than refusing to start.
func buildSource(cfg *config.Config, sim bool, log logger.Logger) sensor.Source {
	if sim {
		log.Debug("using simulated sensor")
		return sensor.NewSimulator()
	}

	hw, err := sensor.OpenSerial(cfg.Port, cfg.Baud, logger.NewEnvLogger("[sensor]"))
	if err != nil {
		log.Warn("cannot open %s: %v; using simulated sensor", cfg.Port, err)
		return sensor.NewSimulator()
	}
	return sensor.NewFailover(hw, sensor.NewSimulator(), log)
}

// calibrate runs the calibration sequence, with a spinner when interactive.
// Failures come back coded so Execute prints them with a suggestion; callers
// treat an interrupt during calibration as a clean exit before surfacing.
func calibrate(ctx context.Context, src sensor.Source, headless bool, log logger.Logger) error {
	if headless {
		log.Info("calibrating %s", src.Describe())
		if err := sensor.Calibrate(ctx, src, log); err != nil {
			return wrapCalibrateError(err)
		}
		return nil
	}

	spinner := ui.NewSpinner("Calibrating " + src.Describe())
	spinner.Start()
	err := sensor.Calibrate(ctx, src, log)
	if err != nil {
		spinner.Fail()
		return wrapCalibrateError(err)
	}
	spinner.Success()
	return nil
}

func wrapCalibrateError(err error) error {
	return errors.WrapWithCode(err, errors.ErrCalibrate,
		"Calibration failed",
		"Check the sensor connection, or rerun with --sim.")
}

// applyWatchFlags overlays command-line flags onto the loaded config.
func applyWatchFlags(cfg *config.Config, flags WatchFlags) error {
	if flags.Port != "" {
		cfg.Port = flags.Port
	}
	if flags.Baud != 0 {
		cfg.Baud = flags.Baud
	}
	if flags.Interval != "" {
		interval, err := config.ParseInterval(flags.Interval)
		if err != nil {
			return err
		}
		cfg.Interval = interval
	}
	if flags.Record != "" {
		cfg.Record = flags.Record
	}
	if flags.MQTT != "" {
		cfg.MQTT.Broker = flags.MQTT
	}
	if flags.MQTTTopic != "" {
		cfg.MQTT.Topic = flags.MQTTTopic
	}
	return nil
}
