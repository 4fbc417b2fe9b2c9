package sensor

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.bug.st/serial"

	"github.com/rileyhilliard/phbuddy/internal/logger"
)

// Wire protocol: a single 'R' byte requests one reading, the probe answers
// with one line holding a decimal pH value. "CALIBRATE" starts the probe's
// calibration sequence, which takes about 3 seconds.
const (
	readCommand      = "R"
	calibrateCommand = "CALIBRATE"

	// readTimeout bounds a single line read so a stalled probe cannot
	// stall the tick source.
	readTimeout = 1 * time.Second

	// calibrateSettle is how long the probe needs after the calibration
	// command before readings are trustworthy again.
	calibrateSettle = 3 * time.Second
)

// SerialSource reads pH values from a probe on a serial port.
type SerialSource struct {
	port serial.Port
	name string
	baud int
	log  logger.Logger
}

// OpenSerial opens the serial port and returns a hardware-backed source.
func OpenSerial(portName string, baud int, log logger.Logger) (*SerialSource, error) {
	if log == nil {
		log = logger.NewEnvLogger("[sensor]")
	}

	mode := &serial.Mode{BaudRate: baud}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrIO, portName, err)
	}

	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("%w: set read timeout: %v", ErrIO, err)
	}

	log.Info("connected to sensor at %s (baud %d)", portName, baud)
	return &SerialSource{port: port, name: portName, baud: baud, log: log}, nil
}

// Read requests a single pH value from the probe.
func (s *SerialSource) Read(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if _, err := s.port.Write([]byte(readCommand)); err != nil {
		return 0, fmt.Errorf("%w: write request: %v", ErrIO, err)
	}

	line, err := s.readLine(ctx)
	if err != nil {
		return 0, err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return 0, fmt.Errorf("%w: empty response", ErrParse)
	}

	ph, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, line)
	}

	return ph, nil
}

// readLine reads bytes until a newline or the read timeout expires.
// The port's read timeout makes a zero-byte Read mean "nothing arrived".
func (s *SerialSource) readLine(ctx context.Context) (string, error) {
	var b strings.Builder
	buf := make([]byte, 1)
	deadline := time.Now().Add(readTimeout)

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		n, err := s.port.Read(buf)
		if err != nil {
			return "", fmt.Errorf("%w: read: %v", ErrIO, err)
		}
		if n == 0 {
			// Timed out with no data; return whatever arrived so far
			return b.String(), nil
		}

		if buf[0] == '\n' {
			return b.String(), nil
		}
		b.WriteByte(buf[0])

		if time.Now().After(deadline) {
			return b.String(), nil
		}
	}
}

// Calibrate sends the calibration command and waits for the probe to settle.
func (s *SerialSource) Calibrate(ctx context.Context) error {
	if _, err := s.port.Write([]byte(calibrateCommand)); err != nil {
		return fmt.Errorf("%w: write calibrate: %v", ErrIO, err)
	}

	select {
	case <-time.After(calibrateSettle):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Describe returns the port identity for the dashboard header.
func (s *SerialSource) Describe() string {
	return fmt.Sprintf("sensor %s @ %d baud", s.name, s.baud)
}

// Close releases the serial port.
func (s *SerialSource) Close() error {
	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	s.port = nil
	if err == nil {
		s.log.Info("serial connection closed")
	}
	return err
}
