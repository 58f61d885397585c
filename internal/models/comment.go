// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Comment represents one reply attached to a case. Comments are append-only:
// they are never edited or removed individually, only dropped when their case
// row is hard-deleted.
type Comment struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CaseID    uint       `gorm:"not null;index" json:"case_id"`
	Name      string     `gorm:"size:120;default:''" json:"name"`
	Team      string     `gorm:"size:120;default:''" json:"team"`
	Text      string     `gorm:"type:text;not null" json:"text"`
	CreatedAt *time.Time `json:"created_at"`
}
