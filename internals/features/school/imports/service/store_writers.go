package service

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	classModel "sekolahku_backend/internals/features/school/academics/classes/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// Password awal untuk akun hasil import; user diminta ganti saat login pertama.
const importedUserDefaultPassword = "sekolahku123"

func (s *GormStore) CreateClass(schoolID uuid.UUID, name, level string) error {
	mm := classModel.ClassModel{
		ClassSchoolID: schoolID,
		ClassName:     strings.TrimSpace(name),
	}
	if lv := strings.TrimSpace(level); lv != "" {
		mm.ClassLevel = &lv
	}
	return s.DB.Create(&mm).Error
}

func (s *GormStore) FindUserEmailsBySchool(schoolID uuid.UUID) (map[string]bool, error) {
	var emails []string
	if err := s.DB.Table("users").
		Where("user_school_id = ? AND user_deleted_at IS NULL", schoolID).
		Pluck("user_email", &emails).Error; err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(emails))
	for _, e := range emails {
		out[strings.ToLower(e)] = true
	}
	return out, nil
}

func (s *GormStore) CreateUser(schoolID uuid.UUID, name, email, role, nisn string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(importedUserDefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	mm := userModel.UserModel{
		UserSchoolID: schoolID,
		UserName:     strings.TrimSpace(name),
		UserEmail:    strings.ToLower(strings.TrimSpace(email)),
		UserPassword: string(hashed),
		UserRole:     role,
	}
	if n := strings.TrimSpace(nisn); n != "" {
		mm.UserNISN = &n
	}
	return s.DB.Create(&mm).Error
}
