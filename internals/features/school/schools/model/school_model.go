package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NOTE:
//   - school_lat/lng + school_checkin_radius_m dipakai geofence check-in guru;
//     keduanya opsional, sekolah tanpa koordinat menolak check-in.
type SchoolModel struct {
	SchoolID uuid.UUID `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`

	SchoolName    string  `gorm:"column:school_name;type:varchar(120);not null" json:"school_name"`
	SchoolSlug    string  `gorm:"column:school_slug;type:varchar(120);not null;uniqueIndex" json:"school_slug"`
	SchoolAddress *string `gorm:"column:school_address;type:text" json:"school_address,omitempty"`
	SchoolPhone   *string `gorm:"column:school_phone;type:varchar(30)" json:"school_phone,omitempty"`

	SchoolLat            *float64 `gorm:"column:school_lat" json:"school_lat,omitempty"`
	SchoolLng            *float64 `gorm:"column:school_lng" json:"school_lng,omitempty"`
	SchoolCheckinRadiusM float64  `gorm:"column:school_checkin_radius_m;not null;default:100" json:"school_checkin_radius_m"`

	SchoolIsActive  bool           `gorm:"column:school_is_active;not null;default:true" json:"school_is_active"`
	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;not null;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"column:school_updated_at;not null;autoUpdateTime" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }
