package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/checkins/model"
)

type CheckinRequest struct {
	Lat float64 `json:"lat" validate:"required,latitude"`
	Lng float64 `json:"lng" validate:"required,longitude"`
}

type CheckinResponse struct {
	CheckinID uuid.UUID  `json:"checkin_id"`
	Date      string     `json:"date"`
	InAt      time.Time  `json:"in_at"`
	OutAt     *time.Time `json:"out_at,omitempty"`
	DistanceM float64    `json:"distance_m"`
}

func FromCheckinModel(m model.CheckinModel) CheckinResponse {
	return CheckinResponse{
		CheckinID: m.CheckinID,
		Date:      m.CheckinDate.Format("2006-01-02"),
		InAt:      m.CheckinInAt,
		OutAt:     m.CheckinOutAt,
		DistanceM: m.CheckinDistanceM,
	}
}

func FromCheckinModels(models []model.CheckinModel) []CheckinResponse {
	out := make([]CheckinResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromCheckinModel(m))
	}
	return out
}
