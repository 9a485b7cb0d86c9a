package analytics

import "time"

// Event names sent to the collector.
const (
	eventStartup  = "fraudring-startup"
	eventToolUsed = "fraudring-tool-used"
)

// TrackEvent is one telemetry datum. DeviceID is a random uuid generated
// per process, never derived from the host or the analyzed data.
type TrackEvent struct {
	Event      string         `json:"event"`
	DeviceID   string         `json:"device_id"`
	Timestamp  time.Time      `json:"timestamp"`
	Properties map[string]any `json:"properties,omitempty"`
}

// StartupEventInfo describes the server configuration at boot.
type StartupEventInfo struct {
	Version   string
	Transport string
	ReadOnly  bool
}

func (s *service) NewStartupEvent(info StartupEventInfo) TrackEvent {
	return TrackEvent{
		Event:     eventStartup,
		DeviceID:  s.deviceID,
		Timestamp: time.Now().UTC(),
		Properties: map[string]any{
			"version":   info.Version,
			"transport": info.Transport,
			"readOnly":  info.ReadOnly,
		},
	}
}

func (s *service) NewToolsEvent(toolUsed string) TrackEvent {
	return TrackEvent{
		Event:     eventToolUsed,
		DeviceID:  s.deviceID,
		Timestamp: time.Now().UTC(),
		Properties: map[string]any{
			"tool": toolUsed,
		},
	}
}
