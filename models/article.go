package models

import (
	"time"

	"gorm.io/gorm"
)

// Article is a news item submitted by a journalist to a publisher.
// Approved is a one-way flag: once an editor approves an article it stays
// approved, and editors can no longer delete it.
type Article struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Title       string         `json:"title" gorm:"not null"`
	Content     string         `json:"content" gorm:"type:text"`
	Summary     string         `json:"summary" gorm:"size:300"`
	AuthorID    uint           `json:"author_id" gorm:"not null"`
	Author      User           `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	PublisherID uint           `json:"publisher_id" gorm:"not null"`
	Publisher   Publisher      `json:"publisher" gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE"`
	Approved    bool           `json:"approved" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// Status returns the display label for the approval state.
func (a *Article) Status() string {
	if a.Approved {
		return "Approved"
	}
	return "Pending"
}
