package analytics

import (
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"
)

type capturingClient struct {
	mu     sync.Mutex
	bodies []string
	done   chan struct{}
}

func newCapturingClient(expected int) *capturingClient {
	return &capturingClient{done: make(chan struct{}, expected)}
}

func (c *capturingClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	data, _ := io.ReadAll(body)
	c.mu.Lock()
	c.bodies = append(c.bodies, string(data))
	c.mu.Unlock()
	c.done <- struct{}{}
	return &http.Response{
		StatusCode: http.StatusAccepted,
		Body:       io.NopCloser(strings.NewReader("")),
	}, nil
}

func (c *capturingClient) wait(t *testing.T) {
	t.Helper()
	select {
	case <-c.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event delivery")
	}
}

func TestEmitEventDelivers(t *testing.T) {
	client := newCapturingClient(1)
	svc := NewService("https://collector.example/events", client, true)

	svc.EmitEvent(svc.NewToolsEvent("analyze-fraud-ring"))
	client.wait(t)

	client.mu.Lock()
	defer client.mu.Unlock()
	if len(client.bodies) != 1 {
		t.Fatalf("got %d posts, want 1", len(client.bodies))
	}

	var event TrackEvent
	if err := json.Unmarshal([]byte(client.bodies[0]), &event); err != nil {
		t.Fatalf("event body is not JSON: %v", err)
	}
	if event.Event != eventToolUsed {
		t.Errorf("event = %q, want %q", event.Event, eventToolUsed)
	}
	if event.Properties["tool"] != "analyze-fraud-ring" {
		t.Errorf("tool property = %v", event.Properties["tool"])
	}
	if event.DeviceID == "" {
		t.Error("device id must be set")
	}
}

func TestEmitEventRespectsDisable(t *testing.T) {
	client := newCapturingClient(1)
	svc := NewService("https://collector.example/events", client, true)
	svc.Disable()

	svc.EmitEvent(svc.NewToolsEvent("filter-graph"))

	select {
	case <-client.done:
		t.Fatal("disabled service must not post events")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEnableRequiresEndpoint(t *testing.T) {
	client := newCapturingClient(1)
	svc := NewService("", client, true)
	svc.Enable()

	svc.EmitEvent(svc.NewToolsEvent("get-legend"))

	select {
	case <-client.done:
		t.Fatal("service without an endpoint must not post events")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestStartupEventProperties(t *testing.T) {
	svc := NewService("https://collector.example/events", newCapturingClient(0), false).(*service)

	event := svc.NewStartupEvent(StartupEventInfo{Version: "1.2.3", Transport: "stdio", ReadOnly: true})

	if event.Event != eventStartup {
		t.Errorf("event = %q, want %q", event.Event, eventStartup)
	}
	if event.Properties["version"] != "1.2.3" || event.Properties["transport"] != "stdio" {
		t.Errorf("unexpected properties: %v", event.Properties)
	}
	if event.Properties["readOnly"] != true {
		t.Errorf("readOnly = %v, want true", event.Properties["readOnly"])
	}
}
