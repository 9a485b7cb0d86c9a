// Package session tracks detector instances across tool invocations. Each
// analysis run owns an isolated detector; tools reference it by id.
package session

//go:generate mockgen -destination=mocks/mock_session.go -package=session_mocks github.com/ringsight/fraudring-mcp/internal/session Service

import (
	"time"

	"github.com/ringsight/fraudring-mcp/internal/detector"
)

// Analysis pairs a detector with the identity tools use to address it.
type Analysis struct {
	ID        string
	Detector  *detector.Detector
	CreatedAt time.Time
}

// Service is the analysis registry consumed by tool handlers.
type Service interface {
	// Create builds a fresh detector for the given field configuration
	// and registers it under a new analysis id.
	Create(fields []detector.Field) (*Analysis, error)
	// Get returns the analysis for an id, reporting whether it exists.
	Get(id string) (*Analysis, bool)
	// List returns all registered analyses, newest first.
	List() []*Analysis
	// Delete removes an analysis, reporting whether it existed.
	Delete(id string) bool
}
