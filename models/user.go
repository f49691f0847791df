package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleReader     Role = "reader"
	RoleEditor     Role = "editor"
	RoleJournalist Role = "journalist"
	RolePublisher  Role = "publisher"
)

var roleLabels = map[Role]string{
	RoleReader:     "Reader",
	RoleEditor:     "Editor",
	RoleJournalist: "Journalist",
	RolePublisher:  "Publisher",
}

// Valid reports whether r is one of the four portal roles.
func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label returns the human-readable role name for display purposes.
func (r Role) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return string(r)
}

// User is the portal identity. The role is set at registration and never
// changes afterwards; it decides which operations and relationships apply.
// Readers hold the two subscription sets, the other roles leave them empty.
type User struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Role      Role           `json:"role" gorm:"default:'reader'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	SubscribedPublishers []Publisher `json:"subscribed_publishers,omitempty" gorm:"many2many:user_subscribed_publishers;"`
	// Asymmetric follow edge: following a journalist does not imply being
	// followed back.
	SubscribedJournalists []User `json:"subscribed_journalists,omitempty" gorm:"many2many:user_followed_journalists;joinForeignKey:follower_id;joinReferences:journalist_id"`
}

func (u *User) RoleLabel() string {
	return u.Role.Label()
}
