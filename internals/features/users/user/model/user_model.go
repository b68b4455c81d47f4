// internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NOTE:
// - email unik per sekolah (tenant), bukan global
// - user_password selalu hash bcrypt, tidak pernah ikut response (json "-")
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserSchoolID uuid.UUID `gorm:"column:user_school_id;type:uuid;not null;index;uniqueIndex:uq_users_school_email" json:"user_school_id"`

	UserName  string `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail string `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex:uq_users_school_email" json:"user_email"`

	UserPassword string `gorm:"column:user_password;type:varchar(100);not null" json:"-"`

	// owner | admin | teacher | student
	UserRole string `gorm:"column:user_role;type:varchar(20);not null;index" json:"user_role"`

	UserPhone *string `gorm:"column:user_phone;type:varchar(30)" json:"user_phone,omitempty"`
	UserNISN  *string `gorm:"column:user_nisn;type:varchar(20)" json:"user_nisn,omitempty"`

	UserIsActive  bool           `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt time.Time      `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
