package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/phbuddy/internal/errors"
)

// WatchFlags holds the flags for the watch command.
type WatchFlags struct {
	Port      string
	Baud      int
	Interval  string
	Sim       bool
	Record    string
	MQTT      string
	MQTTTopic string
	Headless  bool
}

// CalibrateFlags holds the flags for the calibrate command.
type CalibrateFlags struct {
	Port string
	Baud int
	Sim  bool
}

var (
	watchFlags     WatchFlags
	calibrateFlags CalibrateFlags
	initForce      bool
)

// watchCmd starts the live dashboard.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch saliva pH on a live dashboard",
	Long: `Start monitoring saliva pH and render a live dashboard.

Readings come from a serial pH sensor, or from a built-in simulator with
--sim. If the sensor fails three reads in a row, monitoring switches to
the simulator so the session keeps going.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  p           Pause/resume sampling
  r           Take a reading now

Examples:
  phbuddy watch
  phbuddy watch --sim
  phbuddy watch --port /dev/ttyACM0 --baud 115200
  phbuddy watch --interval 5s --record session.db
  phbuddy watch --mqtt tcp://localhost:1883`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchFlags)
	},
}

// calibrateCmd runs the sensor calibration sequence.
var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Calibrate the pH sensor",
	Long: `Run the sensor's calibration sequence.

With hardware attached this sends the calibration command and waits for
the sensor to settle. Without hardware (or with --sim) a simulated
calibration runs so the rest of the flow can be exercised.

Examples:
  phbuddy calibrate
  phbuddy calibrate --port /dev/ttyACM0
  phbuddy calibrate --sim`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return calibrateCommand(calibrateFlags)
	},
}

// initCmd creates a new .phbuddy.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .phbuddy.yaml configuration",
	Long: `Initialize a new phbuddy configuration file.

Creates a .phbuddy.yaml file in the current directory, guiding you
through sensor settings with interactive prompts.

Examples:
  phbuddy init
  phbuddy init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for phbuddy.

Examples:
  # Bash
  phbuddy completion bash > /etc/bash_completion.d/phbuddy

  # Zsh
  phbuddy completion zsh > "${fpath[1]}/_phbuddy"

  # Fish
  phbuddy completion fish > ~/.config/fish/completions/phbuddy.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// watch command flags
	watchCmd.Flags().StringVar(&watchFlags.Port, "port", "", "serial port of the pH sensor")
	watchCmd.Flags().IntVar(&watchFlags.Baud, "baud", 0, "serial baud rate")
	watchCmd.Flags().StringVar(&watchFlags.Interval, "interval", "", "sampling interval (e.g., 2s, 5s)")
	watchCmd.Flags().BoolVar(&watchFlags.Sim, "sim", false, "use the simulated sensor")
	watchCmd.Flags().StringVar(&watchFlags.Record, "record", "", "record the session to this sqlite file")
	watchCmd.Flags().StringVar(&watchFlags.MQTT, "mqtt", "", "publish readings to this MQTT broker")
	watchCmd.Flags().StringVar(&watchFlags.MQTTTopic, "mqtt-topic", "", "MQTT topic for readings")
	watchCmd.Flags().BoolVar(&watchFlags.Headless, "headless", false, "log readings instead of the dashboard")

	// calibrate command flags
	calibrateCmd.Flags().StringVar(&calibrateFlags.Port, "port", "", "serial port of the pH sensor")
	calibrateCmd.Flags().IntVar(&calibrateFlags.Baud, "baud", 0, "serial baud rate")
	calibrateCmd.Flags().BoolVar(&calibrateFlags.Sim, "sim", false, "use the simulated sensor")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// Register all commands
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
