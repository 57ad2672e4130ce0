package attendance

import (
	"sync"

	"github.com/staffport/attendance-report-go/internal/domain/attendance"
)

// monthSession is one viewer's source of truth for the currently viewed
// month. Every fetch takes a generation number; a commit whose generation
// has been superseded is discarded, so a slow response to an old request
// can never overwrite the state of a newer one.
type monthSession struct {
	mu       sync.Mutex
	gen      uint64
	loaded   bool
	year     int
	month    int
	entries  map[string]*attendance.Entry
	stats    map[string]any
	settings attendance.WorkSettings
	lastErr  error
}

// begin registers a new fetch and returns its generation.
func (s *monthSession) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// commit stores a fetch result. Returns false when the fetch has been
// superseded, in which case nothing is stored.
func (s *monthSession) commit(gen uint64, year, month int, entries map[string]*attendance.Entry, stats map[string]any, settings attendance.WorkSettings) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.loaded = true
	s.year = year
	s.month = month
	s.entries = entries
	s.stats = stats
	s.settings = settings
	s.lastErr = nil
	return true
}

// fail records a fetch error. Previously committed data stays in place.
func (s *monthSession) fail(gen uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.lastErr = err
}

// viewed returns the currently viewed month, if any month has been loaded.
func (s *monthSession) viewed() (year, month int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.year, s.month, s.loaded
}

// currentSettings returns the last committed work settings.
func (s *monthSession) currentSettings() attendance.WorkSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// setSettings stores work settings fetched outside a month load.
func (s *monthSession) setSettings(settings attendance.WorkSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}
