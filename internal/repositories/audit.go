package repositories

import (
	"context"

	"chargili/internal/models"

	"gorm.io/gorm"
)

// AuditRepository is the append-only trail of console mutations.
type AuditRepository interface {
	Record(ctx context.Context, entry *models.AuditEntry) error
	// List returns one page of entries, newest first, and the total count.
	List(ctx context.Context, page, size int) ([]models.AuditEntry, int64, error)
	Enabled() bool
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Enabled() bool { return true }

func (r *auditRepository) Record(ctx context.Context, entry *models.AuditEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) List(ctx context.Context, page, size int) ([]models.AuditEntry, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.AuditEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	entries := []models.AuditEntry{}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Order("id DESC").
		Offset(page * size).Limit(size).
		Find(&entries).Error
	return entries, total, err
}

// NoopAuditRepository drops every entry. Used when the trail is disabled.
type NoopAuditRepository struct{}

func (NoopAuditRepository) Enabled() bool { return false }

func (NoopAuditRepository) Record(context.Context, *models.AuditEntry) error { return nil }

func (NoopAuditRepository) List(context.Context, int, int) ([]models.AuditEntry, int64, error) {
	return []models.AuditEntry{}, 0, nil
}
