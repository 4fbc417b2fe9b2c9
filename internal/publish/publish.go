// Package publish sends per-tick readings to external consumers.
//
// Publishers satisfy monitor.Sink through their Publish method, so the
// dashboard fans readings out to them without knowing the transport.
package publish

import "github.com/rileyhilliard/phbuddy/internal/monitor"

// Publisher delivers one reading per tick to an external consumer.
type Publisher interface {
	Publish(e monitor.Entry) error
	Close() error
}
