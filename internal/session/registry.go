package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ringsight/fraudring-mcp/internal/detector"
)

// ErrNoFields is returned when Create is called without any field
// configuration. The first field is the mandatory entity identifier.
var ErrNoFields = errors.New("at least one field is required")

// ErrDuplicateFieldKey is returned when the same field key is configured
// twice. Field keys must be unique; silently overwriting would make
// relationship attribution ambiguous.
var ErrDuplicateFieldKey = errors.New("duplicate field key")

// Registry is the in-memory Service implementation. Safe for concurrent
// use by multiple tool handlers.
type Registry struct {
	mu             sync.RWMutex
	analyses       map[string]*Analysis
	bucketWarnSize int
}

// NewRegistry creates an empty analysis registry. bucketWarnSize is
// passed through to every detector it creates.
func NewRegistry(bucketWarnSize int) *Registry {
	return &Registry{
		analyses:       make(map[string]*Analysis),
		bucketWarnSize: bucketWarnSize,
	}
}

func (r *Registry) Create(fields []detector.Field) (*Analysis, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFieldKey, f.Key)
		}
		seen[f.Key] = struct{}{}
	}

	analysis := &Analysis{
		ID:        uuid.NewString(),
		Detector:  detector.New(fields, detector.WithBucketWarnSize(r.bucketWarnSize)),
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.analyses[analysis.ID] = analysis
	r.mu.Unlock()

	slog.Info("created analysis", "analysisId", analysis.ID, "fields", len(fields))
	return analysis, nil
}

func (r *Registry) Get(id string) (*Analysis, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.analyses[id]
	return analysis, ok
}

func (r *Registry) List() []*Analysis {
	r.mu.RLock()
	defer r.mu.RUnlock()

	analyses := make([]*Analysis, 0, len(r.analyses))
	for _, a := range r.analyses {
		analyses = append(analyses, a)
	}
	sort.Slice(analyses, func(i, j int) bool {
		if !analyses[i].CreatedAt.Equal(analyses[j].CreatedAt) {
			return analyses[i].CreatedAt.After(analyses[j].CreatedAt)
		}
		return analyses[i].ID < analyses[j].ID
	})
	return analyses
}

func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.analyses[id]; !ok {
		return false
	}
	delete(r.analyses, id)
	slog.Info("deleted analysis", "analysisId", id)
	return true
}
