package models

import (
	"time"

	"gorm.io/gorm"
)

// Newsletter is a periodic digest authored by a journalist. The articles
// set is a plain many-to-many reference; including an article in a
// newsletter does not transfer ownership of it.
type Newsletter struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Title     string         `json:"title" gorm:"not null"`
	Content   string         `json:"content" gorm:"type:text"`
	Summary   string         `json:"summary" gorm:"size:300"`
	AuthorID  uint           `json:"author_id" gorm:"not null"`
	Author    User           `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Articles  []Article      `json:"articles,omitempty" gorm:"many2many:newsletter_articles;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
