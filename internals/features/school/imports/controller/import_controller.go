package controller

import (
	"encoding/csv"
	"encoding/json"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	importDTO "sekolahku_backend/internals/features/school/imports/dto"
	importModel "sekolahku_backend/internals/features/school/imports/model"
	importService "sekolahku_backend/internals/features/school/imports/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ImportController struct {
	DB *gorm.DB
}

/*
=========================================================

	POST /api/a/imports/schedules
	Selalu balas 200 dengan {imported, failed, errors}; sukses parsial
	adalah hasil normal, bukan exception.
	=========================================================
*/
func (h *ImportController) ImportSchedules(c *fiber.Ctx) error {
	schoolID, userID, rows, err := h.decodeUpload(c)
	if err != nil {
		return err
	}

	store := importService.NewGormStore(h.DB)
	result, jobErr := importService.ImportSchedules(store, schoolID, rows)
	if jobErr != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat data referensi sekolah")
	}

	h.writeLog(c, schoolID, userID, "schedules", result)
	return helper.Success(c, "Import jadwal selesai", importDTO.FromImportResult(result))
}

/*
=========================================================

	POST /api/a/imports/classes
	=========================================================
*/
func (h *ImportController) ImportClasses(c *fiber.Ctx) error {
	schoolID, userID, rows, err := h.decodeUpload(c)
	if err != nil {
		return err
	}

	store := importService.NewGormStore(h.DB)
	result, jobErr := importService.ImportClasses(store, store, schoolID, rows)
	if jobErr != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat data referensi sekolah")
	}

	h.writeLog(c, schoolID, userID, "classes", result)
	return helper.Success(c, "Import kelas selesai", importDTO.FromImportResult(result))
}

/*
=========================================================

	POST /api/a/imports/users?role=student
	=========================================================
*/
func (h *ImportController) ImportUsers(c *fiber.Ctx) error {
	schoolID, userID, rows, err := h.decodeUpload(c)
	if err != nil {
		return err
	}

	role := strings.ToLower(c.Query("role", constants.RoleStudent))
	if role != constants.RoleStudent && role != constants.RoleTeacher {
		return fiber.NewError(fiber.StatusBadRequest, "role harus student atau teacher")
	}

	store := importService.NewGormStore(h.DB)
	result, jobErr := importService.ImportUsers(store, schoolID, rows, role)
	if jobErr != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat data user sekolah")
	}

	h.writeLog(c, schoolID, userID, "users", result)
	return helper.Success(c, "Import user selesai", importDTO.FromImportResult(result))
}

/*
=========================================================

	GET /api/a/imports/logs
	=========================================================
*/
func (h *ImportController) ListImportLogs(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc")

	tx := h.DB.Model(&importModel.ImportLogModel{}).
		Where("import_log_school_id = ?", schoolID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung total data")
	}

	var logs []importModel.ImportLogModel
	if err := tx.
		Order(p.SafeOrderClause(map[string]string{"created_at": "import_log_created_at"}, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&logs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat import")
	}

	return helper.JsonList(c, importDTO.FromImportLogModels(logs), helper.BuildMeta(total, p))
}

/* =========================================================
   Decode upload: XLSX via excelize, CSV via encoding/csv.
   Baris pertama = header; sel kosong tetap tercatat sebagai "".
   ========================================================= */

func (h *ImportController) decodeUpload(c *fiber.Ctx) (uuid.UUID, uuid.UUID, []importService.ImportRow, error) {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan di form field 'file'")
	}

	var records [][]string
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".xlsx":
		records, err = readXLSX(fh)
	case ".csv":
		records, err = readCSV(fh)
	default:
		return uuid.Nil, uuid.Nil, nil, fiber.NewError(fiber.StatusBadRequest, "Format file harus .xlsx atau .csv")
	}
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, fiber.NewError(fiber.StatusBadRequest, "File tidak bisa dibaca: "+err.Error())
	}
	if len(records) < 2 {
		return uuid.Nil, uuid.Nil, nil, fiber.NewError(fiber.StatusBadRequest, "File kosong atau hanya berisi header")
	}

	headers := records[0]
	rows := make([]importService.ImportRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		if emptyRecord(rec) {
			continue
		}
		row := make(importService.ImportRow, len(headers))
		for i, hdr := range headers {
			v := ""
			if i < len(rec) {
				v = rec[i]
			}
			row[strings.TrimSpace(hdr)] = strings.TrimSpace(v)
		}
		rows = append(rows, row)
	}
	return schoolID, userID, rows, nil
}

func readXLSX(fh *multipart.FileHeader) ([][]string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.GetRows(f.GetSheetName(0))
}

func readCSV(fh *multipart.FileHeader) ([][]string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func emptyRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// writeLog mencatat hasil job; gagal menulis log tidak menggagalkan response.
func (h *ImportController) writeLog(c *fiber.Ctx, schoolID, userID uuid.UUID, kind string, result *importService.ImportResult) {
	fh, _ := c.FormFile("file")
	filename := ""
	if fh != nil {
		filename = fh.Filename
	}

	errsJSON, err := json.Marshal(result.Errors)
	if err != nil {
		errsJSON = []byte("[]")
	}

	entry := importModel.ImportLogModel{
		ImportLogSchoolID: schoolID,
		ImportLogUserID:   userID,
		ImportLogKind:     kind,
		ImportLogFilename: filename,
		ImportLogImported: result.Imported,
		ImportLogFailed:   result.Failed,
		ImportLogErrors:   datatypes.JSON(errsJSON),
	}
	if err := h.DB.Create(&entry).Error; err != nil {
		log.Printf("[WARNING] gagal menyimpan import log: %v", err)
	}
}
