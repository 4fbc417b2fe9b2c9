package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/phbuddy/internal/config"
	"github.com/rileyhilliard/phbuddy/internal/errors"
	"github.com/rileyhilliard/phbuddy/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Overwrite bool // Overwrite existing config without asking
}

// fileConfig is the YAML shape written by init. The MQTT section is left
// out; it stays opt-in through flags or hand-editing.
type fileConfig struct {
	Port     string `yaml:"port"`
	Baud     int    `yaml:"baud"`
	Interval string `yaml:"interval"`
	Record   string `yaml:"record,omitempty"`
}

// Init creates a new .phbuddy.yaml configuration file.
func Init(opts InitOptions) error {
	ui.PrintHeader(ui.HeaderInfo{
		Version: GetVersion(),
		Tagline: "saliva pH monitor for kids",
	})

	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	defaults := config.Default()
	port := defaults.Port
	baud := strconv.Itoa(defaults.Baud)
	interval := defaults.Interval.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Serial port").
				Description("Device path the pH sensor is attached to").
				Placeholder(config.DefaultPort).
				Value(&port).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("serial port is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Baud rate").
				Description("Serial line rate, usually 9600 or 115200").
				Value(&baud).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n <= 0 {
						return fmt.Errorf("baud must be a positive integer")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Sampling interval").
				Description("How often to take a reading (minimum 500ms)").
				Value(&interval).
				Validate(func(s string) error {
					_, err := config.ParseInterval(s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --force with defaults")
	}

	baudVal, _ := strconv.Atoi(strings.TrimSpace(baud))
	data, err := yaml.Marshal(fileConfig{
		Port:     strings.TrimSpace(port),
		Baud:     baudVal,
		Interval: strings.TrimSpace(interval),
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# phbuddy configuration
# Run 'phbuddy watch' to start monitoring
# Add an mqtt section (broker, topic) to publish readings

`
	if err := os.WriteFile(configPath, []byte(header+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  phbuddy calibrate  - Calibrate the sensor")
	fmt.Println("  phbuddy watch      - Start the dashboard")
	fmt.Println("  phbuddy watch --sim  - Try it without hardware")

	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(force bool) error {
	return Init(InitOptions{Overwrite: force})
}
