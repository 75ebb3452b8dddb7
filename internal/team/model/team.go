package model

import (
	"time"

	"gorm.io/gorm"

	userModel "github.com/fablite/fablite/internal/user/model"
)

// Team represents a team entity in the system.
// Matches the teams table schema. The leader reference is immutable
// after creation; leader and member status are tracked independently,
// the member set living in the user_team join table.
type Team struct {
	ID        uint             `gorm:"primaryKey;column:id"                                      json:"id"`
	Name      string           `gorm:"column:name;type:varchar(80);uniqueIndex;not null"         json:"name"`
	LeaderID  uint             `gorm:"column:leader_id;not null"                                 json:"leader_id"`
	Leader    userModel.User   `gorm:"foreignKey:LeaderID"                                       json:"-"`
	Members   []userModel.User `gorm:"many2many:user_team"                                       json:"-"`
	CreatedAt time.Time        `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time        `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}
