package analytics

import (
	"bytes"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

const defaultHTTPTimeout = 5 * time.Second

type service struct {
	enabled  atomic.Bool
	endpoint string
	client   HTTPClient
	deviceID string
}

// NewService builds the telemetry service. A nil client falls back to a
// short-timeout http.Client. The service starts disabled when endpoint
// is empty regardless of the enabled flag.
func NewService(endpoint string, client HTTPClient, enabled bool) Service {
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	s := &service{
		endpoint: endpoint,
		client:   client,
		deviceID: uuid.NewString(),
	}
	s.enabled.Store(enabled && endpoint != "")
	return s
}

func (s *service) Enable() {
	if s.endpoint == "" {
		return
	}
	s.enabled.Store(true)
}

func (s *service) Disable() {
	s.enabled.Store(false)
}

// EmitEvent posts the event without blocking the caller. Delivery is best
// effort; failures are logged at debug and never surface to tools.
func (s *service) EmitEvent(event TrackEvent) {
	if !s.enabled.Load() {
		return
	}

	go func() {
		payload, err := json.Marshal(event)
		if err != nil {
			slog.Debug("failed to marshal analytics event", "event", event.Event, "error", err)
			return
		}
		resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(payload))
		if err != nil {
			slog.Debug("failed to post analytics event", "event", event.Event, "error", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 300 {
			slog.Debug("analytics collector rejected event", "event", event.Event, "status", resp.StatusCode)
		}
	}()
}
