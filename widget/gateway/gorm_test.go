package gateway

import (
	"context"
	"testing"

	"reviewdash/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestGateway(t *testing.T) *GormGateway {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Widget{}))
	return NewGormGateway(db)
}

func TestGormGateway_CreateDefaultsToDraft(t *testing.T) {
	gw := newTestGateway(t)

	rec, err := gw.CreateWidget(context.Background(), CreateInput{
		CompanyID:  1,
		Name:       "Homepage carousel",
		Type:       "carousel",
		ConfigJSON: []byte(`{"layout":{"type":"carousel"}}`),
	})
	require.NoError(t, err)
	require.NotZero(t, rec.ID)
	require.Equal(t, models.WidgetStatusDraft, rec.Status)
	require.NotEmpty(t, rec.PublicKey)
}

func TestGormGateway_CreateWithExplicitStatus(t *testing.T) {
	gw := newTestGateway(t)

	rec, err := gw.CreateWidget(context.Background(), CreateInput{
		CompanyID: 1,
		Name:      "Published at birth",
		Type:      "badge",
		Status:    models.WidgetStatusPublished,
	})
	require.NoError(t, err)
	require.Equal(t, models.WidgetStatusPublished, rec.Status)
}

func TestGormGateway_GetUnknownID(t *testing.T) {
	gw := newTestGateway(t)

	_, err := gw.GetWidget(context.Background(), 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGormGateway_PartialUpdate(t *testing.T) {
	gw := newTestGateway(t)
	ctx := context.Background()

	rec, err := gw.CreateWidget(ctx, CreateInput{
		CompanyID:  1,
		Name:       "before",
		Type:       "grid",
		ConfigJSON: []byte(`{"layout":{"type":"grid"}}`),
	})
	require.NoError(t, err)

	name := "after"
	updated, err := gw.UpdateWidget(ctx, rec.ID, Update{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "after", updated.Name)
	// Untouched fields survive a partial update.
	require.JSONEq(t, `{"layout":{"type":"grid"}}`, string(updated.ConfigJSON))
	require.Equal(t, models.WidgetStatusDraft, updated.Status)

	status := models.WidgetStatusPublished
	updated, err = gw.UpdateWidget(ctx, rec.ID, Update{Status: &status, ConfigJSON: []byte(`{"layout":{"type":"list"}}`)})
	require.NoError(t, err)
	require.Equal(t, models.WidgetStatusPublished, updated.Status)
	require.JSONEq(t, `{"layout":{"type":"list"}}`, string(updated.ConfigJSON))
	require.Equal(t, "after", updated.Name)
}

func TestGormGateway_UpdateUnknownID(t *testing.T) {
	gw := newTestGateway(t)

	name := "x"
	_, err := gw.UpdateWidget(context.Background(), 42, Update{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGormGateway_DeleteHidesWidget(t *testing.T) {
	gw := newTestGateway(t)
	ctx := context.Background()

	rec, err := gw.CreateWidget(ctx, CreateInput{CompanyID: 1, Name: "gone", Type: "list"})
	require.NoError(t, err)

	require.NoError(t, gw.DeleteWidget(ctx, rec.ID))

	_, err = gw.GetWidget(ctx, rec.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, gw.DeleteWidget(ctx, rec.ID), ErrNotFound)
}

func TestGormGateway_PublishedByKey(t *testing.T) {
	gw := newTestGateway(t)
	ctx := context.Background()

	draft, err := gw.CreateWidget(ctx, CreateInput{CompanyID: 1, Name: "draft", Type: "grid"})
	require.NoError(t, err)

	// Drafts are invisible on the public path.
	_, err = gw.PublishedByKey(ctx, draft.PublicKey)
	require.ErrorIs(t, err, ErrNotFound)

	status := models.WidgetStatusPublished
	_, err = gw.UpdateWidget(ctx, draft.ID, Update{Status: &status})
	require.NoError(t, err)

	found, err := gw.PublishedByKey(ctx, draft.PublicKey)
	require.NoError(t, err)
	require.Equal(t, draft.ID, found.ID)

	_, err = gw.PublishedByKey(ctx, "no-such-key")
	require.ErrorIs(t, err, ErrNotFound)
}
