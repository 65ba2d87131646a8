package sqlstore

import (
	"context"
	"time"

	"github.com/yoockh/docchat/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepo interface {
	Ensure(ctx context.Context, id string) error
	Touch(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Session, error)
}

type sessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepo {
	return &sessionRepo{db: db}
}

// Ensure inserts the session row if it does not exist yet. Duplicate ids
// are silently ignored, never rejected.
func (r *sessionRepo) Ensure(ctx context.Context, id string) error {
	row := &models.Session{ID: id, UpdatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
}

func (r *sessionRepo) Touch(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ?", id).
		Update("updated_at", time.Now().UTC()).Error
}

func (r *sessionRepo) List(ctx context.Context) ([]models.Session, error) {
	rows := make([]models.Session, 0)
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&rows).Error
	return rows, err
}
