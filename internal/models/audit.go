package models

import "time"

// AuditEntry records one console mutation.
type AuditEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Actor     string    `gorm:"size:255;index;not null" json:"actor"`
	Role      Role      `gorm:"size:16" json:"role"`
	Action    string    `gorm:"size:32;not null" json:"action"`
	Entity    string    `gorm:"size:64;index;not null" json:"entity"`
	EntityID  string    `gorm:"size:64" json:"entityId,omitempty"`
	Detail    string    `gorm:"type:text" json:"detail,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (AuditEntry) TableName() string {
	return "console_audit_entries"
}
