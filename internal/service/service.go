// Package service exposes the revision engine to the surrounding system
package service

import (
	"errors"
	"time"

	"github.com/nainya/revstore/internal/logger"
	"github.com/nainya/revstore/internal/metrics"
	"github.com/nainya/revstore/pkg/diff"
	"github.com/nainya/revstore/pkg/revision"
)

// Cache is implemented by callers that memoize expensive upstream
// computations (summaries, style rewrites) around this engine. The
// engine itself never reads or writes it.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration)
}

// Service is the facade consumed by the API layer. It validates input,
// delegates to the version store and diff engine, and records logs and
// metrics per operation. Not-found outcomes are nil results, never
// faults.
type Service struct {
	store   *revision.Store
	engine  *diff.Engine
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewService creates the facade. A nil logger selects the global
// logger; nil metrics disables recording.
func NewService(store *revision.Store, engine *diff.Engine, log *logger.Logger, m *metrics.Metrics) *Service {
	if engine == nil {
		engine = diff.NewEngine(0)
	}
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &Service{
		store:   store,
		engine:  engine,
		log:     log,
		metrics: m,
	}
}

// SaveVersion appends a new snapshot to the document's history. A
// persistence fault is surfaced wrapped in revision.ErrPersistence
// alongside the saved version; the history itself is updated.
func (s *Service) SaveVersion(documentID, content, label, style string) (*revision.TextVersion, error) {
	start := time.Now()

	version, err := s.store.Save(documentID, content, label, style)
	s.finish("save_version", start, err)

	if s.metrics != nil {
		if errors.Is(err, revision.ErrPersistence) {
			s.metrics.PersistenceFaultsTotal.Inc()
		}
		if version != nil {
			s.metrics.VersionsSavedTotal.Inc()
			s.metrics.UpdateStoreStats(s.store.Stats())
		}
	}
	return version, err
}

// ListVersions returns the document's versions in chronological order
func (s *Service) ListVersions(documentID string) ([]revision.TextVersion, error) {
	start := time.Now()

	versions, err := s.store.List(documentID)
	s.finish("list_versions", start, err)
	return versions, err
}

// GetVersion returns the requested version, or nil if absent
func (s *Service) GetVersion(documentID, versionID string) (*revision.TextVersion, error) {
	start := time.Now()

	version, err := s.store.Get(documentID, versionID)
	s.finish("get_version", start, err)
	return version, err
}

// Compare compares two raw texts. charLevel selects char granularity
// (the default for callers); otherwise whole lines are aligned.
func (s *Service) Compare(textA, textB string, charLevel bool) (*diff.Result, error) {
	start := time.Now()

	granularity := diff.Char
	if !charLevel {
		granularity = diff.Line
	}

	result, err := s.engine.Compare(textA, textB, granularity)
	s.finish("compare", start, err)

	if result != nil && s.metrics != nil {
		s.metrics.RecordCompare(granularity.String(), len(result.Segments), result.Similarity, time.Since(start))
	}
	return result, err
}

// CompareVersions compares two stored snapshots of a document at char
// granularity. Returns nil with no error if either id is absent.
func (s *Service) CompareVersions(documentID, versionIDA, versionIDB string) (*diff.Result, error) {
	start := time.Now()

	result, err := s.store.CompareVersions(documentID, versionIDA, versionIDB)
	s.finish("compare_versions", start, err)

	if result != nil && s.metrics != nil {
		s.metrics.RecordCompare(diff.Char.String(), len(result.Segments), result.Similarity, time.Since(start))
	}
	return result, err
}

// ClearVersions removes the document's history and its persisted state
func (s *Service) ClearVersions(documentID string) error {
	start := time.Now()

	err := s.store.Clear(documentID)
	s.finish("clear_versions", start, err)

	if err == nil && s.metrics != nil {
		s.metrics.HistoriesClearedTotal.Inc()
		s.metrics.UpdateStoreStats(s.store.Stats())
	}
	return err
}

func (s *Service) finish(operation string, start time.Time, err error) {
	duration := time.Since(start)
	s.log.LogOperation(operation, duration, err)

	if s.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		s.metrics.RecordOperation(operation, status, duration)
	}
}
