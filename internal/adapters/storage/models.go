package storage

import "time"

// ThreadModel is the GORM model for threads table
type ThreadModel struct {
	CreatedAt                time.Time
	HasLeftGroup             bool      `gorm:"not null;default:false"`
	HasPendingMessageRequest bool      `gorm:"not null;default:false"`
	ID                       string    `gorm:"primaryKey"`
	IsBlocked                bool      `gorm:"not null;default:false"`
	IsBlockedByMigration     bool      `gorm:"not null;default:false"`
	IsGroup                  bool      `gorm:"not null;default:false"`
	IsLocalUserPendingMember bool      `gorm:"not null;default:false"`
	LastUpdated              time.Time `gorm:"not null;index:idx_last_updated"`
	Name                     string    `gorm:"not null;default:''"`
	UpdatedAt                time.Time
}

// TableName specifies the table name for GORM
func (ThreadModel) TableName() string { return "threads" }
