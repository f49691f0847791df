package models

import (
	"time"

	"gorm.io/gorm"
)

// Publisher is a named publishing entity. The owner must hold the
// 'publisher' role at the time the publisher is registered. Editors and
// journalists are staffing sets maintained by administrative tooling;
// end-user routes only ever read them.
type Publisher struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"uniqueIndex;not null"`
	Description string         `json:"description" gorm:"type:text"`
	OwnerID     uint           `json:"owner_id" gorm:"not null"`
	Owner       User           `json:"owner" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	Editors     []User `json:"editors,omitempty" gorm:"many2many:publisher_editors;"`
	Journalists []User `json:"journalists,omitempty" gorm:"many2many:publisher_journalists;"`
}
