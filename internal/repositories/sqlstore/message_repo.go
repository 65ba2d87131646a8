package sqlstore

import (
	"context"

	"github.com/yoockh/docchat/internal/models"
	"gorm.io/gorm"
)

type MessageRepo interface {
	Insert(ctx context.Context, msg *models.Message) error
	ListBySession(ctx context.Context, sessionID string) ([]models.Message, error)
	LatestN(ctx context.Context, sessionID string, n int) ([]models.Message, error)
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepo {
	return &messageRepo{db: db}
}

func (r *messageRepo) Insert(ctx context.Context, msg *models.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepo) ListBySession(ctx context.Context, sessionID string) ([]models.Message, error) {
	rows := make([]models.Message, 0)
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// LatestN returns the newest n messages for the session, newest-first.
func (r *messageRepo) LatestN(ctx context.Context, sessionID string, n int) ([]models.Message, error) {
	if n <= 0 {
		n = 10
	}
	rows := make([]models.Message, 0, n)
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id DESC").
		Limit(n).
		Find(&rows).Error
	return rows, err
}
