package model

import (
	"time"

	"github.com/google/uuid"
)

// Satu baris = satu guru satu hari. Check-out mengisi kolom out pada
// baris yang sama.
type CheckinModel struct {
	CheckinID       uuid.UUID `gorm:"column:checkin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"checkin_id"`
	CheckinSchoolID uuid.UUID `gorm:"column:checkin_school_id;type:uuid;not null;index;uniqueIndex:uq_checkin_day" json:"checkin_school_id"`
	CheckinUserID   uuid.UUID `gorm:"column:checkin_user_id;type:uuid;not null;uniqueIndex:uq_checkin_day" json:"checkin_user_id"`
	CheckinDate     time.Time `gorm:"column:checkin_date;type:date;not null;uniqueIndex:uq_checkin_day" json:"checkin_date"`

	CheckinInAt  time.Time  `gorm:"column:checkin_in_at;not null" json:"checkin_in_at"`
	CheckinOutAt *time.Time `gorm:"column:checkin_out_at" json:"checkin_out_at,omitempty"`

	CheckinInLat  float64  `gorm:"column:checkin_in_lat;not null" json:"checkin_in_lat"`
	CheckinInLng  float64  `gorm:"column:checkin_in_lng;not null" json:"checkin_in_lng"`
	CheckinOutLat *float64 `gorm:"column:checkin_out_lat" json:"checkin_out_lat,omitempty"`
	CheckinOutLng *float64 `gorm:"column:checkin_out_lng" json:"checkin_out_lng,omitempty"`

	// jarak ke titik sekolah saat check-in, meter
	CheckinDistanceM float64 `gorm:"column:checkin_distance_m;not null" json:"checkin_distance_m"`

	CheckinCreatedAt time.Time `gorm:"column:checkin_created_at;not null;autoCreateTime" json:"checkin_created_at"`
	CheckinUpdatedAt time.Time `gorm:"column:checkin_updated_at;not null;autoUpdateTime" json:"checkin_updated_at"`
}

func (CheckinModel) TableName() string { return "checkins" }
