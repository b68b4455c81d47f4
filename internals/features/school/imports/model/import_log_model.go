package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Jejak tiap job import: siapa, file apa, hasilnya berapa, plus daftar
// error per baris dalam JSON supaya bisa ditampilkan ulang ke admin.
type ImportLogModel struct {
	ImportLogID       uuid.UUID `gorm:"column:import_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"import_log_id"`
	ImportLogSchoolID uuid.UUID `gorm:"column:import_log_school_id;type:uuid;not null;index" json:"import_log_school_id"`
	ImportLogUserID   uuid.UUID `gorm:"column:import_log_user_id;type:uuid;not null" json:"import_log_user_id"`

	// schedules | classes | users
	ImportLogKind     string `gorm:"column:import_log_kind;type:varchar(20);not null" json:"import_log_kind"`
	ImportLogFilename string `gorm:"column:import_log_filename;type:varchar(255);not null" json:"import_log_filename"`

	ImportLogImported int            `gorm:"column:import_log_imported;not null" json:"import_log_imported"`
	ImportLogFailed   int            `gorm:"column:import_log_failed;not null" json:"import_log_failed"`
	ImportLogErrors   datatypes.JSON `gorm:"column:import_log_errors;type:jsonb" json:"import_log_errors,omitempty"`

	ImportLogCreatedAt time.Time `gorm:"column:import_log_created_at;not null;autoCreateTime" json:"import_log_created_at"`
}

func (ImportLogModel) TableName() string { return "import_logs" }
