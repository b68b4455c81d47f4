// internals/features/users/auth/service/google_service.go
package service

import (
	"fmt"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"

	"sekolahku_backend/internals/configs"
)

type GoogleProfile struct {
	Email string
	Name  string
}

// VerifyGoogleIDToken memvalidasi id_token dari client (mobile) dan
// mengembalikan email+nama. Audience wajib cocok dengan GOOGLE_CLIENT_ID.
func VerifyGoogleIDToken(idToken string) (*GoogleProfile, error) {
	if configs.GoogleClientID == "" {
		return nil, fmt.Errorf("login Google belum dikonfigurasi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, fmt.Errorf("id_token Google tidak valid: %w", err)
	}

	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fmt.Errorf("gagal decode id_token: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(claims.Email))
	if email == "" {
		return nil, fmt.Errorf("id_token tidak memuat email")
	}

	return &GoogleProfile{Email: email, Name: claims.Name}, nil
}
