package dto

import (
	"sekolahku_backend/internals/features/school/imports/model"
	importService "sekolahku_backend/internals/features/school/imports/service"
)

type ImportResultResponse struct {
	Imported int                        `json:"imported"`
	Failed   int                        `json:"failed"`
	Errors   []importService.RowFailure `json:"errors"`
}

func FromImportResult(r *importService.ImportResult) ImportResultResponse {
	return ImportResultResponse{
		Imported: r.Imported,
		Failed:   r.Failed,
		Errors:   r.Errors,
	}
}

type ImportLogResponse struct {
	ImportLogID string `json:"import_log_id"`
	Kind        string `json:"kind"`
	Filename    string `json:"filename"`
	Imported    int    `json:"imported"`
	Failed      int    `json:"failed"`
	CreatedAt   string `json:"created_at"`
}

func FromImportLogModel(m model.ImportLogModel) ImportLogResponse {
	return ImportLogResponse{
		ImportLogID: m.ImportLogID.String(),
		Kind:        m.ImportLogKind,
		Filename:    m.ImportLogFilename,
		Imported:    m.ImportLogImported,
		Failed:      m.ImportLogFailed,
		CreatedAt:   m.ImportLogCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func FromImportLogModels(models []model.ImportLogModel) []ImportLogResponse {
	out := make([]ImportLogResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromImportLogModel(m))
	}
	return out
}
