package gateway

import (
	"context"
	"errors"

	"reviewdash/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GormGateway implements Gateway on the shared GORM handle.
type GormGateway struct {
	db *gorm.DB
}

func NewGormGateway(db *gorm.DB) *GormGateway {
	return &GormGateway{db: db}
}

func (g *GormGateway) CreateWidget(ctx context.Context, in CreateInput) (models.Widget, error) {
	status := in.Status
	if status == "" {
		status = models.WidgetStatusDraft
	}

	widget := models.Widget{
		CompanyID:  in.CompanyID,
		Name:       in.Name,
		Type:       in.Type,
		Status:     status,
		PublicKey:  uuid.NewString(),
		ConfigJSON: datatypes.JSON(in.ConfigJSON),
	}
	if err := g.db.WithContext(ctx).Create(&widget).Error; err != nil {
		return models.Widget{}, &PersistenceError{Op: "create", Err: err}
	}
	return widget, nil
}

func (g *GormGateway) GetWidget(ctx context.Context, id uint) (models.Widget, error) {
	var widget models.Widget
	err := g.db.WithContext(ctx).Where("id = ? AND is_deleted = false", id).First(&widget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Widget{}, ErrNotFound
	}
	if err != nil {
		return models.Widget{}, &PersistenceError{Op: "get", Err: err}
	}
	return widget, nil
}

func (g *GormGateway) UpdateWidget(ctx context.Context, id uint, upd Update) (models.Widget, error) {
	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Status != nil {
		fields["status"] = *upd.Status
	}
	if upd.ConfigJSON != nil {
		fields["config_json"] = datatypes.JSON(upd.ConfigJSON)
	}

	if len(fields) > 0 {
		res := g.db.WithContext(ctx).Model(&models.Widget{}).
			Where("id = ? AND is_deleted = false", id).
			Updates(fields)
		if res.Error != nil {
			return models.Widget{}, &PersistenceError{Op: "update", Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return models.Widget{}, ErrNotFound
		}
	}

	return g.GetWidget(ctx, id)
}

func (g *GormGateway) DeleteWidget(ctx context.Context, id uint) error {
	res := g.db.WithContext(ctx).Model(&models.Widget{}).
		Where("id = ? AND is_deleted = false", id).
		Update("is_deleted", true)
	if res.Error != nil {
		return &PersistenceError{Op: "delete", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PublishedByKey resolves a widget by its public embed key, published only.
// Anything else is ErrNotFound: the public path never learns whether the
// widget exists in draft form.
func (g *GormGateway) PublishedByKey(ctx context.Context, key string) (models.Widget, error) {
	var widget models.Widget
	err := g.db.WithContext(ctx).
		Where("public_key = ? AND status = ? AND is_deleted = false", key, models.WidgetStatusPublished).
		First(&widget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Widget{}, ErrNotFound
	}
	if err != nil {
		return models.Widget{}, &PersistenceError{Op: "resolve", Err: err}
	}
	return widget, nil
}
