package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status tagihan: pending | paid | expired | canceled
type SppBillModel struct {
	SppBillID       uuid.UUID `gorm:"column:spp_bill_id;type:uuid;default:gen_random_uuid();primaryKey" json:"spp_bill_id"`
	SppBillSchoolID uuid.UUID `gorm:"column:spp_bill_school_id;type:uuid;not null;index;uniqueIndex:uq_spp_bill_month" json:"spp_bill_school_id"`

	SppBillStudentID uuid.UUID `gorm:"column:spp_bill_student_id;type:uuid;not null;uniqueIndex:uq_spp_bill_month" json:"spp_bill_student_id"`

	// "YYYY-MM"
	SppBillMonth  string `gorm:"column:spp_bill_month;type:varchar(7);not null;uniqueIndex:uq_spp_bill_month" json:"spp_bill_month"`
	SppBillAmount int64  `gorm:"column:spp_bill_amount;not null" json:"spp_bill_amount"`

	SppBillStatus string `gorm:"column:spp_bill_status;type:varchar(10);not null;default:pending" json:"spp_bill_status"`

	// referensi Midtrans
	SppBillOrderID   string  `gorm:"column:spp_bill_order_id;type:varchar(64);not null;uniqueIndex" json:"spp_bill_order_id"`
	SppBillSnapToken *string `gorm:"column:spp_bill_snap_token;type:varchar(255)" json:"spp_bill_snap_token,omitempty"`

	SppBillPaidAt *time.Time `gorm:"column:spp_bill_paid_at" json:"spp_bill_paid_at,omitempty"`

	SppBillCreatedAt time.Time      `gorm:"column:spp_bill_created_at;not null;autoCreateTime" json:"spp_bill_created_at"`
	SppBillUpdatedAt time.Time      `gorm:"column:spp_bill_updated_at;not null;autoUpdateTime" json:"spp_bill_updated_at"`
	SppBillDeletedAt gorm.DeletedAt `gorm:"column:spp_bill_deleted_at;index" json:"spp_bill_deleted_at,omitempty"`
}

func (SppBillModel) TableName() string { return "spp_bills" }
