package model

import (
	"time"

	"gorm.io/gorm"
)

// RoleUser is the default role assigned at registration.
const RoleUser = "user"

// RoleMember is the role assigned to users created through a team invite.
const RoleMember = "member"

// RoleLeader is the synthesized role reported for a team leader in listings.
const RoleLeader = "leader"

// User represents a user account in the system.
// Matches the users table schema. Password holds the bcrypt digest,
// never the plaintext.
type User struct {
	ID        uint      `gorm:"primaryKey;column:id"                                      json:"id"`
	Email     string    `gorm:"column:email;type:varchar(120);uniqueIndex;not null"       json:"email"`
	Password  string    `gorm:"column:password;type:varchar(256);not null"                json:"-"`
	Role      string    `gorm:"column:role;type:varchar(50);not null;default:'user'"      json:"role"`
	Name      *string   `gorm:"column:name;type:varchar(80)"                              json:"name"`
	Surname   *string   `gorm:"column:surname;type:varchar(80)"                           json:"surname"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
