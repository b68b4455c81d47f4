package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/finance/spp/model"
)

type CreateSppBillsRequest struct {
	Month  string `json:"month" validate:"required,len=7"` // YYYY-MM
	Amount int64  `json:"amount" validate:"required,gt=0"`
}

type SppBillResponse struct {
	SppBillID uuid.UUID  `json:"spp_bill_id"`
	StudentID uuid.UUID  `json:"student_id"`
	Month     string     `json:"month"`
	Amount    int64      `json:"amount"`
	Status    string     `json:"status"`
	OrderID   string     `json:"order_id"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}

func FromSppBillModel(m model.SppBillModel) SppBillResponse {
	return SppBillResponse{
		SppBillID: m.SppBillID,
		StudentID: m.SppBillStudentID,
		Month:     m.SppBillMonth,
		Amount:    m.SppBillAmount,
		Status:    m.SppBillStatus,
		OrderID:   m.SppBillOrderID,
		PaidAt:    m.SppBillPaidAt,
	}
}

func FromSppBillModels(models []model.SppBillModel) []SppBillResponse {
	out := make([]SppBillResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromSppBillModel(m))
	}
	return out
}

type PaySppResponse struct {
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}
