package builder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"reviewdash/models"
	"reviewdash/models/widgetcfg"
	"reviewdash/widget/gateway"

	"github.com/stretchr/testify/require"
)

// manualScheduler lets tests advance the debounce by hand.
type manualScheduler struct {
	mu        sync.Mutex
	scheduled int
	fn        func()
}

func (m *manualScheduler) Schedule(d time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduled++
	m.fn = fn
	gen := m.scheduled
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.scheduled == gen {
			m.fn = nil
		}
	}
}

// Fire runs the pending debounce callback, if any.
func (m *manualScheduler) Fire() {
	m.mu.Lock()
	fn := m.fn
	m.fn = nil
	m.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (m *manualScheduler) ScheduledCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduled
}

type recordedUpdate struct {
	id  uint
	upd gateway.Update
}

// fakeGateway records calls and can be told to fail writes.
type fakeGateway struct {
	mu       sync.Mutex
	nextID   uint
	creates  []gateway.CreateInput
	updates  []recordedUpdate
	fail     bool
	onUpdate func() // runs while the update is "in flight"
}

func (f *fakeGateway) CreateWidget(ctx context.Context, in gateway.CreateInput) (models.Widget, error) {
	f.mu.Lock()
	f.creates = append(f.creates, in)
	failing := f.fail
	f.nextID++
	id := f.nextID
	f.mu.Unlock()

	if failing {
		return models.Widget{}, &gateway.PersistenceError{Op: "create", Err: errors.New("boom")}
	}

	status := in.Status
	if status == "" {
		status = models.WidgetStatusDraft
	}
	rec := models.Widget{CompanyID: in.CompanyID, Name: in.Name, Type: in.Type, Status: status, ConfigJSON: in.ConfigJSON, PublicKey: "key"}
	rec.ID = id
	return rec, nil
}

func (f *fakeGateway) GetWidget(ctx context.Context, id uint) (models.Widget, error) {
	return models.Widget{}, gateway.ErrNotFound
}

func (f *fakeGateway) UpdateWidget(ctx context.Context, id uint, upd gateway.Update) (models.Widget, error) {
	f.mu.Lock()
	f.updates = append(f.updates, recordedUpdate{id: id, upd: upd})
	failing := f.fail
	hook := f.onUpdate
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if failing {
		return models.Widget{}, &gateway.PersistenceError{Op: "update", Err: errors.New("boom")}
	}

	rec := models.Widget{Status: models.WidgetStatusDraft, ConfigJSON: upd.ConfigJSON}
	rec.ID = id
	if upd.Name != nil {
		rec.Name = *upd.Name
	}
	if upd.Status != nil {
		rec.Status = *upd.Status
	}
	return rec, nil
}

func (f *fakeGateway) DeleteWidget(ctx context.Context, id uint) error {
	return nil
}

func (f *fakeGateway) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates)
}

func (f *fakeGateway) createCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.creates)
}

func existingRecord(t *testing.T) models.Widget {
	t.Helper()
	rec := models.Widget{CompanyID: 7, Name: "Homepage", Type: "carousel", Status: models.WidgetStatusDraft, ConfigJSON: []byte(`{}`)}
	rec.ID = 1
	return rec
}

func resumed(t *testing.T) (*Session, *fakeGateway, *manualScheduler) {
	t.Helper()
	gw := &fakeGateway{nextID: 10}
	sched := &manualScheduler{}
	s, err := Resume(gw, sched, time.Second, existingRecord(t))
	require.NoError(t, err)
	require.Equal(t, StatusSaved, s.Status())
	return s, gw, sched
}

func TestSession_BurstOfMutationsProducesOneWrite(t *testing.T) {
	s, gw, sched := resumed(t)

	colors := []string{"#111111", "#222222", "#333333"}
	for _, c := range colors {
		color := c
		s.Mutate(func(cfg *widgetcfg.Config) { cfg.Style.AccentColor = color })
	}

	require.Equal(t, StatusUnsaved, s.Status())
	require.Equal(t, 3, sched.ScheduledCount(), "every mutation re-arms the debounce")
	require.Zero(t, gw.updateCount(), "nothing persists before quiescence")

	sched.Fire()

	require.Equal(t, 1, gw.updateCount(), "one write for the whole burst")
	require.Equal(t, StatusSaved, s.Status())

	saved, err := widgetcfg.Parse(gw.updates[0].upd.ConfigJSON)
	require.NoError(t, err)
	require.Equal(t, "#333333", saved.Style.AccentColor, "write carries the state after the last mutation")
}

func TestSession_NoopMutationDoesNotDirty(t *testing.T) {
	s, gw, sched := resumed(t)

	s.Mutate(func(cfg *widgetcfg.Config) {})

	require.Equal(t, StatusSaved, s.Status())
	require.Zero(t, sched.ScheduledCount())
	sched.Fire()
	require.Zero(t, gw.updateCount())
}

func TestSession_RevertSettlesBackToSaved(t *testing.T) {
	s, gw, sched := resumed(t)

	original := s.Draft().Style.AccentColor
	s.Mutate(func(cfg *widgetcfg.Config) { cfg.Style.AccentColor = "#000000" })
	require.Equal(t, StatusUnsaved, s.Status())

	s.Mutate(func(cfg *widgetcfg.Config) { cfg.Style.AccentColor = original })
	require.Equal(t, StatusSaved, s.Status())

	sched.Fire()
	require.Zero(t, gw.updateCount(), "reverted draft cancels the pending save")
}

func TestSession_NameChangeDirties(t *testing.T) {
	s, _, sched := resumed(t)

	s.SetName("Renamed")
	require.Equal(t, StatusUnsaved, s.Status())
	require.Equal(t, 1, sched.ScheduledCount())

	// Same name again is a no-op against the unsaved draft, not the
	// persisted one, so the session stays unsaved.
	s.SetName("Renamed")
	require.Equal(t, StatusUnsaved, s.Status())
}

func TestSession_FailedSaveRetainsDraftAndRetries(t *testing.T) {
	s, gw, sched := resumed(t)

	gw.fail = true
	s.Mutate(func(cfg *widgetcfg.Config) { cfg.Reviews.MinRating = 2 })
	sched.Fire()

	require.Equal(t, StatusError, s.Status())
	require.Equal(t, 1, gw.updateCount())
	require.Equal(t, 2, s.Draft().Reviews.MinRating, "draft survives a failed write")

	gw.fail = false
	s.Mutate(func(cfg *widgetcfg.Config) { cfg.Reviews.ShowWithoutText = true })
	sched.Fire()

	require.Equal(t, StatusSaved, s.Status())
	require.Equal(t, 2, gw.updateCount())

	saved, err := widgetcfg.Parse(gw.updates[1].upd.ConfigJSON)
	require.NoError(t, err)
	require.Equal(t, 2, saved.Reviews.MinRating, "earlier change is not lost across the failure")
	require.True(t, saved.Reviews.ShowWithoutText)
}

func TestSession_MutationDuringSaveIsNotDropped(t *testing.T) {
	s, gw, sched := resumed(t)

	gw.onUpdate = func() {
		require.Equal(t, StatusSaving, s.Status())
		gw.onUpdate = nil
		s.Mutate(func(cfg *widgetcfg.Config) { cfg.Style.AccentColor = "#abcdef" })
	}

	s.Mutate(func(cfg *widgetcfg.Config) { cfg.Style.AccentColor = "#123456" })
	sched.Fire()

	require.Equal(t, StatusUnsaved, s.Status(), "interim mutation re-dirties the session")
	require.Equal(t, 1, gw.updateCount())

	first, err := widgetcfg.Parse(gw.updates[0].upd.ConfigJSON)
	require.NoError(t, err)
	require.Equal(t, "#123456", first.Style.AccentColor)

	sched.Fire()
	require.Equal(t, 2, gw.updateCount())
	second, err := widgetcfg.Parse(gw.updates[1].upd.ConfigJSON)
	require.NoError(t, err)
	require.Equal(t, "#abcdef", second.Style.AccentColor)
	require.Equal(t, StatusSaved, s.Status())
}

func TestSession_TemplateSelectionReplacesDraft(t *testing.T) {
	gw := &fakeGateway{}
	sched := &manualScheduler{}
	s := NewSession(gw, sched, time.Second, 7)

	s.Mutate(func(cfg *widgetcfg.Config) { cfg.Style.AccentColor = "#ff0000" })
	s.SelectTemplate("badge")

	require.Equal(t, widgetcfg.Template("badge"), s.Draft(), "template selection is a replacement, not a merge")
	require.Equal(t, StatusUnsaved, s.Status())
	require.Zero(t, gw.createCount(), "template preview does not persist anything")

	sched.Fire()
	require.Zero(t, gw.updateCount(), "no autosave before the record exists")
}

func TestSession_ConfirmCreatesOnce(t *testing.T) {
	gw := &fakeGateway{}
	sched := &manualScheduler{}
	s := NewSession(gw, sched, time.Second, 7)
	s.SelectTemplate("grid")

	rec, err := s.Confirm(context.Background())
	require.NoError(t, err)
	require.NotZero(t, rec.ID)
	require.Equal(t, 1, gw.createCount())
	require.Equal(t, "grid", gw.creates[0].Type)
	require.Equal(t, StatusSaved, s.Status())

	// Confirm is idempotent once the record exists.
	again, err := s.Confirm(context.Background())
	require.NoError(t, err)
	require.Equal(t, rec.ID, again.ID)
	require.Equal(t, 1, gw.createCount())

	// From here on the debounce drives updates against the allocated id.
	s.Mutate(func(cfg *widgetcfg.Config) { cfg.Header.Title = "Reviews" })
	sched.Fire()
	require.Equal(t, 1, gw.updateCount())
	require.Equal(t, rec.ID, gw.updates[0].id)
}

func TestSession_PublishNeverSavedDraftIsSingleCreate(t *testing.T) {
	gw := &fakeGateway{}
	sched := &manualScheduler{}
	s := NewSession(gw, sched, time.Second, 7)
	s.SelectTemplate("badge")

	rec, err := s.Publish(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, gw.createCount(), "exactly one create, no create-then-update")
	require.Zero(t, gw.updateCount())
	require.Equal(t, models.WidgetStatusPublished, rec.Status)
	require.Equal(t, StatusSaved, s.Status())
}

func TestSession_PublishExistingBypassesDebounce(t *testing.T) {
	s, gw, sched := resumed(t)

	s.Mutate(func(cfg *widgetcfg.Config) { cfg.Header.Title = "Fresh" })

	rec, err := s.Publish(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.WidgetStatusPublished, rec.Status)
	require.Equal(t, 1, gw.updateCount(), "publish submits immediately")

	require.NotNil(t, gw.updates[0].upd.Status)
	require.Equal(t, models.WidgetStatusPublished, *gw.updates[0].upd.Status)
	saved, err := widgetcfg.Parse(gw.updates[0].upd.ConfigJSON)
	require.NoError(t, err)
	require.Equal(t, "Fresh", saved.Header.Title)

	// The debounce armed by the mutation was cancelled by the publish.
	sched.Fire()
	require.Equal(t, 1, gw.updateCount())
}

func TestResume_RejectsBrokenConfig(t *testing.T) {
	rec := existingRecord(t)
	rec.ConfigJSON = []byte(`{"layout":{"type":3}}`)

	_, err := Resume(&fakeGateway{}, &manualScheduler{}, time.Second, rec)
	require.Error(t, err)

	var verr *widgetcfg.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "layout.type", verr.Field)
}
