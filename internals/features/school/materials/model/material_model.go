package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type MaterialModel struct {
	MaterialID       uuid.UUID `gorm:"column:material_id;type:uuid;default:gen_random_uuid();primaryKey" json:"material_id"`
	MaterialSchoolID uuid.UUID `gorm:"column:material_school_id;type:uuid;not null;index" json:"material_school_id"`

	MaterialClassID   uuid.UUID `gorm:"column:material_class_id;type:uuid;not null;index" json:"material_class_id"`
	MaterialTeacherID uuid.UUID `gorm:"column:material_teacher_id;type:uuid;not null" json:"material_teacher_id"`

	MaterialSubject string  `gorm:"column:material_subject;type:varchar(120);not null" json:"material_subject"`
	MaterialTitle   string  `gorm:"column:material_title;type:varchar(150);not null" json:"material_title"`
	MaterialContent *string `gorm:"column:material_content;type:text" json:"material_content,omitempty"`

	MaterialTags pq.StringArray `gorm:"column:material_tags;type:text[]" json:"material_tags,omitempty"`

	// gambar sampul, opsional, hasil konversi webp
	MaterialImageURL *string `gorm:"column:material_image_url;type:text" json:"material_image_url,omitempty"`

	MaterialCreatedAt time.Time      `gorm:"column:material_created_at;not null;autoCreateTime" json:"material_created_at"`
	MaterialUpdatedAt time.Time      `gorm:"column:material_updated_at;not null;autoUpdateTime" json:"material_updated_at"`
	MaterialDeletedAt gorm.DeletedAt `gorm:"column:material_deleted_at;index" json:"material_deleted_at,omitempty"`
}

func (MaterialModel) TableName() string { return "materials" }
