// Package builder holds the editor session over a widget config draft:
// template selection, the autosave debounce state machine and the explicit
// publish path.
package builder

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"

	"reviewdash/models"
	"reviewdash/models/widgetcfg"
	"reviewdash/widget/gateway"
)

// SaveStatus is the session's save state machine:
// saved -> unsaved -> saving -> {saved | error}.
type SaveStatus string

const (
	StatusSaved   SaveStatus = "saved"
	StatusUnsaved SaveStatus = "unsaved"
	StatusSaving  SaveStatus = "saving"
	StatusError   SaveStatus = "error"
)

// Session owns one widget draft. All mutation goes through methods; there
// is no shared ambient state, so independent sessions can coexist.
//
// At most one gateway write is in flight per session. A mutation landing
// while a save is underway re-dirties the session; the completed save then
// re-arms the debounce so the newer state is picked up.
type Session struct {
	mu   sync.Mutex
	cond *sync.Cond

	gw       gateway.Gateway
	sched    Scheduler
	debounce time.Duration

	companyID uint
	widgetID  uint // 0 until the first create succeeds
	name      string
	draft     widgetcfg.Config

	status        SaveStatus
	lastPersisted []byte // serialized draft at the last successful write
	cancelTimer   func()
	inflight      bool
	record        models.Widget
}

// snapshot is the serialization used for both persistence payloads and the
// no-op mutation check.
type snapshot struct {
	Name   string           `json:"name"`
	Config widgetcfg.Config `json:"config"`
}

// NewSession starts a fresh editing session for a widget that does not
// exist yet. The caller must pick a template before the draft is usable.
func NewSession(gw gateway.Gateway, sched Scheduler, debounce time.Duration, companyID uint) *Session {
	s := &Session{
		gw:        gw,
		sched:     sched,
		debounce:  debounce,
		companyID: companyID,
		name:      "New widget",
		draft:     widgetcfg.Template(string(widgetcfg.LayoutCarousel)),
		status:    StatusSaved,
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Resume opens a session over an existing widget record. The persisted
// config goes through widgetcfg.Parse, so legacy payloads come back
// complete; a structurally broken config is a blocking error.
func Resume(gw gateway.Gateway, sched Scheduler, debounce time.Duration, record models.Widget) (*Session, error) {
	cfg, err := widgetcfg.Parse(record.ConfigJSON)
	if err != nil {
		return nil, err
	}

	s := NewSession(gw, sched, debounce, record.CompanyID)
	s.widgetID = record.ID
	s.name = record.Name
	s.draft = cfg
	s.record = record
	s.lastPersisted = s.serialize()
	return s, nil
}

func (s *Session) serialize() []byte {
	b, _ := json.Marshal(snapshot{Name: s.name, Config: s.draft})
	return b
}

// Status reports the current save state.
func (s *Session) Status() SaveStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Draft returns a copy of the current draft config.
func (s *Session) Draft() widgetcfg.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Name returns the current draft name.
func (s *Session) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// Record returns the last persisted widget record. Zero until the first
// successful create.
func (s *Session) Record() models.Widget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

// SetName renames the draft. Name changes dirty the session like any other
// mutation.
func (s *Session) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
	s.markDirty()
}

// Mutate applies fn to the draft and runs the dirty/debounce bookkeeping.
// Mutations are applied in call order; the debounce ensures only the final
// quiescent state is persisted.
func (s *Session) Mutate(fn func(*widgetcfg.Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.draft)
	s.markDirty()
}

// SelectTemplate replaces the entire draft with the named template's
// defaults (not a merge). Intended for brand-new widgets; the session stays
// unsaved until Confirm allocates the record.
func (s *Session) SelectTemplate(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = widgetcfg.Template(name)
	s.markDirty()
}

// markDirty runs with mu held. A mutation that leaves the serialized draft
// identical to the last persisted snapshot is a no-op: it cancels any
// pending save and settles back to saved.
func (s *Session) markDirty() {
	cur := s.serialize()
	if s.lastPersisted != nil && bytes.Equal(cur, s.lastPersisted) {
		s.stopTimer()
		if !s.inflight {
			s.status = StatusSaved
		}
		return
	}

	s.status = StatusUnsaved
	s.stopTimer()
	// Nothing to autosave before the record exists; Confirm handles the
	// first write explicitly.
	if s.widgetID != 0 {
		s.cancelTimer = s.sched.Schedule(s.debounce, s.flush)
	}
}

func (s *Session) stopTimer() {
	if s.cancelTimer != nil {
		s.cancelTimer()
		s.cancelTimer = nil
	}
}

// flush is the debounce callback: persists the draft as it stands now.
func (s *Session) flush() {
	s.mu.Lock()
	if s.inflight || s.widgetID == 0 {
		s.mu.Unlock()
		return
	}
	payload := s.serialize()
	if bytes.Equal(payload, s.lastPersisted) {
		s.status = StatusSaved
		s.mu.Unlock()
		return
	}

	name := s.name
	cfgJSON, _ := json.Marshal(s.draft)
	id := s.widgetID
	s.inflight = true
	s.status = StatusSaving
	s.mu.Unlock()

	rec, err := s.gw.UpdateWidget(context.Background(), id, gateway.Update{Name: &name, ConfigJSON: cfgJSON})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight = false
	s.cond.Broadcast()

	if err != nil {
		// Draft is retained; the next mutation re-arms the debounce and the
		// full current state gets retried.
		s.status = StatusError
		return
	}
	s.settle(rec, payload)
}

// settle runs with mu held after a successful write. If the draft moved on
// while the write was in flight, the session stays unsaved and a new
// debounce cycle is armed.
func (s *Session) settle(rec models.Widget, payload []byte) {
	s.widgetID = rec.ID
	s.record = rec
	s.lastPersisted = payload

	if bytes.Equal(s.serialize(), payload) {
		s.status = StatusSaved
		return
	}
	s.status = StatusUnsaved
	s.stopTimer()
	s.cancelTimer = s.sched.Schedule(s.debounce, s.flush)
}

// Confirm allocates the widget record for a new session, bypassing the
// debounce. No-op when the record already exists.
func (s *Session) Confirm(ctx context.Context) (models.Widget, error) {
	s.mu.Lock()
	if s.widgetID != 0 {
		rec := s.record
		s.mu.Unlock()
		return rec, nil
	}
	for s.inflight {
		s.cond.Wait()
	}
	payload := s.serialize()
	cfgJSON, _ := json.Marshal(s.draft)
	in := gateway.CreateInput{
		CompanyID:  s.companyID,
		Name:       s.name,
		Type:       string(s.draft.Layout.Type),
		ConfigJSON: cfgJSON,
	}
	s.inflight = true
	s.status = StatusSaving
	s.mu.Unlock()

	rec, err := s.gw.CreateWidget(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight = false
	s.cond.Broadcast()

	if err != nil {
		s.status = StatusError
		return models.Widget{}, err
	}
	s.settle(rec, payload)
	return rec, nil
}

// Publish writes the current draft immediately with status PUBLISHED. It
// does not wait for the autosave debounce to settle; whatever the draft is
// right now is what goes out. A never-saved draft publishes with a single
// create call.
func (s *Session) Publish(ctx context.Context) (models.Widget, error) {
	s.mu.Lock()
	for s.inflight {
		s.cond.Wait()
	}
	s.stopTimer()

	payload := s.serialize()
	name := s.name
	cfgJSON, _ := json.Marshal(s.draft)
	id := s.widgetID
	layoutType := string(s.draft.Layout.Type)
	s.inflight = true
	s.status = StatusSaving
	s.mu.Unlock()

	var (
		rec models.Widget
		err error
	)
	if id == 0 {
		rec, err = s.gw.CreateWidget(ctx, gateway.CreateInput{
			CompanyID:  s.companyID,
			Name:       name,
			Type:       layoutType,
			Status:     models.WidgetStatusPublished,
			ConfigJSON: cfgJSON,
		})
	} else {
		status := models.WidgetStatusPublished
		rec, err = s.gw.UpdateWidget(ctx, id, gateway.Update{Name: &name, Status: &status, ConfigJSON: cfgJSON})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight = false
	s.cond.Broadcast()

	if err != nil {
		s.status = StatusError
		return models.Widget{}, err
	}
	s.settle(rec, payload)
	return rec, nil
}
