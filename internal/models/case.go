// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Case represents one submitted initiative record on the board.
type Case struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Title   string  `gorm:"size:200;not null" json:"title"`
	Summary string  `gorm:"type:text;not null" json:"summary"`
	Detail  string  `gorm:"type:text;not null" json:"detail"`
	Tags    TagList `gorm:"column:tags;type:text;default:'[]'" json:"tags"`
	Owner   string  `gorm:"size:120;default:''" json:"owner"`
	Impact  string  `gorm:"size:120;default:''" json:"impact"`
	Date    string  `gorm:"size:20;default:''" json:"date"`
	Likes   int     `gorm:"default:0" json:"likes"`
	// PV is the page-view counter.
	PV       int     `gorm:"column:pv;default:0" json:"pv"`
	ImageURL *string `gorm:"type:text" json:"image_url"`
	PDFURL   *string `gorm:"column:pdf_url;type:text" json:"pdf_url"`
	PDFName  *string `gorm:"column:pdf_name;size:255" json:"pdf_name"`
	// Deleted marks the row as soft-deleted; reads must exclude it.
	Deleted   bool       `gorm:"default:false;index" json:"deleted"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	Comments  []Comment  `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"comments"`
}
