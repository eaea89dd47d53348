package dto

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/clothes-service/pkg/util"
)

func strPtr(s string) *string { return &s }

func TestValidate_Register(t *testing.T) {
	valid := UserRegisterRequest{Email: "jane@example.com", Password: "secret1", FullName: "jane doe"}
	require.NoError(t, Validate(valid))

	tests := []struct {
		name  string
		req   UserRegisterRequest
		field string
	}{
		{"bad email", UserRegisterRequest{Email: "jane", Password: "secret1", FullName: "jane doe"}, "email"},
		{"short password", UserRegisterRequest{Email: "j@e.io", Password: "12345", FullName: "jane doe"}, "password"},
		{"short name", UserRegisterRequest{Email: "j@e.io", Password: "secret1", FullName: "jd"}, "full_name"},
		{"long phone", UserRegisterRequest{Email: "j@e.io", Password: "secret1", FullName: "jane doe", Phone: strPtr("+3591234567890")}, "phone"},
		{"password over bcrypt limit", UserRegisterRequest{Email: "j@e.io", Password: strings.Repeat("é", 37), FullName: "jane doe"}, "password"},
		{"bad role", UserRegisterRequest{Email: "j@e.io", Password: "secret1", FullName: "jane doe", Role: "root"}, "role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			require.Error(t, err)
			de := apperrors.ToDomainError(err)
			assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
			assert.Contains(t, de.Details, tt.field)
		})
	}
}

func TestValidate_Clothes(t *testing.T) {
	require.NoError(t, Validate(ClothesRequest{Name: "Linen shirt", Color: "white", Size: "m"}))
	require.NoError(t, Validate(ClothesRequest{Name: "Linen shirt", Color: "white", Size: "m", PhotoURL: strPtr("https://cdn.example.com/a.png")}))

	err := Validate(ClothesRequest{Name: "Tee", Color: "green", Size: "xxxl", PhotoURL: strPtr("not a url")})
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "must be at least 5 characters", de.Details["name"])
	assert.Equal(t, "must be one of: pink black white yellow", de.Details["color"])
	assert.Contains(t, de.Details, "size")
	assert.Equal(t, "must be a valid URL", de.Details["photo_url"])
}
