package directory

import (
	"errors"
	"fmt"

	"service_directory/internal/models"
)

// EventType names a user interaction in a directory view.
type EventType string

const (
	EventSearch       EventType = "search"        // Value: new search text
	EventCategory     EventType = "category"      // Value: subcategory slug, "" for all
	EventToggleFilter EventType = "toggle_filter" // Value: filter tag
	EventSelect       EventType = "select"        // Value: record id
	EventDismiss      EventType = "dismiss"       // clears the selection
	EventReset        EventType = "reset"         // keeps only the category
)

// Event is one interaction applied to a Session.
type Event struct {
	Type  EventType `json:"type"`
	Value string    `json:"value,omitempty"`
}

var ErrUnknownEvent = errors.New("unknown event type")

// Session is the state of one directory view. It is owned by a single
// goroutine: every event updates the FilterState and recomputes the visible
// records before Apply returns.
type Session struct {
	catalog *Catalog
	state   models.FilterState
	visible []models.ServiceRecord
}

// NewSession opens a view on catalog, optionally narrowed to a subcategory
// passed by the navigation layer.
func NewSession(catalog *Catalog, category string) *Session {
	s := &Session{catalog: catalog, state: Reset(category)}
	s.recompute()
	return s
}

// Apply updates the state for ev and recomputes the visible set. Events
// that cannot apply leave the session unchanged.
func (s *Session) Apply(ev Event) error {
	switch ev.Type {
	case EventSearch:
		s.state = WithSearch(s.state, ev.Value)
	case EventCategory:
		s.state = Reset(ev.Value)
	case EventToggleFilter:
		s.state = ToggleFeatureFilter(s.state, ev.Value)
	case EventSelect:
		rec, ok := s.catalog.ByID(ev.Value)
		if !ok {
			return fmt.Errorf("select %q: %w", ev.Value, ErrServiceNotFound)
		}
		s.state = SelectRecord(s.state, &rec)
		return nil // selection does not change the visible set
	case EventDismiss:
		s.state = SelectRecord(s.state, nil)
		return nil
	case EventReset:
		s.state = Reset(s.state.CategoryFilter)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	s.recompute()
	return nil
}

// State returns a copy of the current FilterState.
func (s *Session) State() models.FilterState {
	return cloneState(s.state)
}

// Visible returns the records currently shown, in catalog order.
func (s *Session) Visible() []models.ServiceRecord {
	return append([]models.ServiceRecord(nil), s.visible...)
}

func (s *Session) recompute() {
	s.visible = FilterCatalog(s.catalog.records, s.state)
}
