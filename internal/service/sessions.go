package service

import (
	"sync"

	"service_directory"
	"service_directory/internal/directory"
	"service_directory/internal/logger"
	"service_directory/internal/metrics"

	"github.com/google/uuid"
)

// EventView switches a session between grid and list rendering. It is
// handled by the session itself and never reaches the filter engine.
const EventView directory.EventType = "view"

// ViewSession is one interactive directory view. It is owned by a single
// goroutine and must not be shared.
type ViewSession struct {
	ID      string
	view    string
	session *directory.Session
}

// Apply applies ev and renders the resulting view. A rejected event leaves
// the state unchanged; the current view is still returned with the error.
func (v *ViewSession) Apply(ev directory.Event) (service_directory.DirectoryView, error) {
	var err error
	if ev.Type == EventView {
		var mode string
		if mode, err = normalizeView(ev.Value); err == nil {
			v.view = mode
		}
	} else {
		err = v.session.Apply(ev)
	}
	return v.View(), err
}

// View renders the current state without changing it.
func (v *ViewSession) View() service_directory.DirectoryView {
	return renderView(v.session.State(), v.session.Visible(), v.view)
}

// SessionService hands out view sessions over the shared catalog.
type SessionService struct {
	dir     *DirectoryService
	metrics *metrics.Collector
	log     *logger.Logger

	mu   sync.Mutex
	open map[string]*ViewSession
}

func NewSessionService(dir *DirectoryService, m *metrics.Collector, log *logger.Logger) *SessionService {
	if log == nil {
		log = logger.Nop()
	}
	return &SessionService{dir: dir, metrics: m, log: log, open: make(map[string]*ViewSession)}
}

// Open starts a session filtered to category ("" for all services).
func (s *SessionService) Open(category, view string) (*ViewSession, error) {
	if err := s.dir.ready(); err != nil {
		return nil, err
	}
	mode, err := normalizeView(view)
	if err != nil {
		return nil, err
	}
	vs := &ViewSession{
		ID:      uuid.NewString(),
		view:    mode,
		session: directory.NewSession(s.dir.catalog, category),
	}

	s.mu.Lock()
	s.open[vs.ID] = vs
	s.mu.Unlock()

	s.metrics.SessionOpened()
	s.log.Debugw("view_session_opened", "session_id", vs.ID, "category", category)
	return vs, nil
}

// Close forgets the session. Closing twice is harmless.
func (s *SessionService) Close(vs *ViewSession) {
	if vs == nil {
		return
	}
	s.mu.Lock()
	_, ok := s.open[vs.ID]
	delete(s.open, vs.ID)
	s.mu.Unlock()

	if ok {
		s.metrics.SessionClosed()
		s.log.Debugw("view_session_closed", "session_id", vs.ID)
	}
}

// Count returns the number of open sessions.
func (s *SessionService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.open)
}
