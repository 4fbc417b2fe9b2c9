package publish

import (
	"encoding/json"

	"github.com/rileyhilliard/phbuddy/internal/monitor"
)

// FakePublisher records published readings for test assertions.
type FakePublisher struct {
	// Entries contains all readings that were published.
	Entries []monitor.Entry

	// Payloads contains the JSON payloads that were published.
	Payloads [][]byte

	// PublishError, if set, will be returned by Publish.
	PublishError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakePublisher creates a FakePublisher for testing.
func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

// Publish records the reading and its encoded payload.
func (f *FakePublisher) Publish(e monitor.Entry) error {
	if f.PublishError != nil {
		return f.PublishError
	}

	f.Entries = append(f.Entries, e)

	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	f.Payloads = append(f.Payloads, payload)
	return nil
}

// Close marks the fake closed.
func (f *FakePublisher) Close() error {
	f.Closed = true
	return nil
}
