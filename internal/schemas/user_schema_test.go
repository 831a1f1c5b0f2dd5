package schemas

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"school_transport/internal/models"
	"school_transport/internal/password"
)

var testHasher = password.NewBcryptHasherWithCost(bcrypt.MinCost)

func userPayload(overrides map[string]any) []byte {
	payload := map[string]any{
		"full_name":    "Jane Doe",
		"email":        "jane@example.com",
		"phone_number": "+254700000000",
		"password":     "secret123",
		"role":         "guardian",
	}
	for k, v := range overrides {
		if v == nil {
			delete(payload, k)
			continue
		}
		payload[k] = v
	}
	b, _ := json.Marshal(payload)
	return b
}

func requireFieldErrors(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Fields
}

func TestLoadUser_Valid(t *testing.T) {
	in, err := LoadUser(userPayload(nil))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", in.FullName)
	assert.Equal(t, models.RoleGuardian, in.Role)
}

func TestLoadUser_IgnoresUnknownFields(t *testing.T) {
	in, err := LoadUser(userPayload(map[string]any{"username": "jdoe", "is_admin": true}))
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", in.Email)
}

func TestLoadUser_CollectsAllErrors(t *testing.T) {
	_, err := LoadUser([]byte(`{"email": "not-an-email", "password": "123", "role": "admin"}`))
	fields := requireFieldErrors(t, err)

	assert.Contains(t, fields, "full_name")
	assert.Contains(t, fields, "phone_number")
	assert.Equal(t, []string{"invalid email format"}, fields["email"])
	assert.Equal(t, []string{"must be at least 6 characters"}, fields["password"])
	assert.Equal(t, []string{"must be one of: driver, guardian, school"}, fields["role"])
}

func TestLoadUser_Email(t *testing.T) {
	for _, email := range []string{"not-an-email", "a@b", "@missing-local"} {
		_, err := LoadUser(userPayload(map[string]any{"email": email}))
		fields := requireFieldErrors(t, err)
		assert.Contains(t, fields, "email", email)
	}

	_, err := LoadUser(userPayload(map[string]any{"email": "a@b.com"}))
	assert.NoError(t, err)
}

func TestLoadUser_Role(t *testing.T) {
	for _, role := range []string{"driver", "guardian", "school"} {
		_, err := LoadUser(userPayload(map[string]any{"role": role}))
		assert.NoError(t, err, role)
	}
	for _, role := range []string{"admin", "Driver", "parent"} {
		_, err := LoadUser(userPayload(map[string]any{"role": role}))
		fields := requireFieldErrors(t, err)
		assert.Contains(t, fields, "role", role)
	}
}

func TestLoadUser_LengthBoundaries(t *testing.T) {
	tests := []struct {
		field string
		max   int
	}{
		{"full_name", 50},
		{"phone_number", 20},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			_, err := LoadUser(userPayload(map[string]any{tt.field: strings.Repeat("x", tt.max)}))
			assert.NoError(t, err)

			_, err = LoadUser(userPayload(map[string]any{tt.field: strings.Repeat("x", tt.max+1)}))
			fields := requireFieldErrors(t, err)
			assert.Equal(t, []string{"must be at most " + itoa(tt.max) + " characters"}, fields[tt.field])
		})
	}

	// 50 characters exactly: 38 + "@example.com"
	atMax := strings.Repeat("a", 38) + "@example.com"
	require.Len(t, atMax, 50)
	_, err := LoadUser(userPayload(map[string]any{"email": atMax}))
	assert.NoError(t, err)

	_, err = LoadUser(userPayload(map[string]any{"email": "a" + atMax}))
	assert.Contains(t, requireFieldErrors(t, err), "email")
}

func TestLoadUser_PasswordMinimum(t *testing.T) {
	_, err := LoadUser(userPayload(map[string]any{"password": "123456"}))
	assert.NoError(t, err)

	_, err = LoadUser(userPayload(map[string]any{"password": "12345"}))
	assert.Contains(t, requireFieldErrors(t, err), "password")
}

func TestLoadUser_PasswordMaximumCountsBytes(t *testing.T) {
	_, err := LoadUser(userPayload(map[string]any{"password": strings.Repeat("a", 72)}))
	assert.NoError(t, err)

	// 40 runes, 80 bytes
	_, err = LoadUser(userPayload(map[string]any{"password": strings.Repeat("é", 40)}))
	assert.Equal(t, []string{"must be at most 72 bytes"}, requireFieldErrors(t, err)["password"])

	_, err = LoadPassword([]byte(`{"password": "` + strings.Repeat("é", 40) + `"}`))
	assert.Equal(t, []string{"must be at most 72 bytes"}, requireFieldErrors(t, err)["password"])
}

func TestLoadUser_ReportsEveryTypeError(t *testing.T) {
	_, err := LoadUser([]byte(`{"full_name": 1, "email": 2, "phone_number": "0700", "password": "secret123", "role": "school"}`))
	fields := requireFieldErrors(t, err)
	assert.Equal(t, []string{"invalid type, expected string"}, fields["full_name"])
	assert.Equal(t, []string{"invalid type, expected string"}, fields["email"])
	assert.Len(t, fields, 2)
}

func TestLoadUser_TypeError(t *testing.T) {
	_, err := LoadUser([]byte(`{"full_name": 12, "email": "jane@example.com", "phone_number": "0700", "password": "secret123", "role": "school"}`))
	fields := requireFieldErrors(t, err)
	assert.Equal(t, []string{"invalid type, expected string"}, fields["full_name"])
	assert.Len(t, fields, 1)
}

func TestLoadUser_MalformedBody(t *testing.T) {
	for _, body := range []string{"", "   ", "{", "[]"} {
		_, err := LoadUser([]byte(body))
		fields := requireFieldErrors(t, err)
		assert.Contains(t, fields, SchemaField, "body %q", body)
	}
}

func TestCreateUser_DelegatesToModel(t *testing.T) {
	in, err := LoadUser(userPayload(nil))
	require.NoError(t, err)

	user, err := CreateUser(testHasher, in)
	require.NoError(t, err)
	assert.True(t, user.CheckPassword(testHasher, "secret123"))
	assert.NotContains(t, user.PasswordHash, "secret123")

	// bypassing load still hits the model's email rule
	_, err = CreateUser(testHasher, &UserInput{Email: "a@b", Role: models.RoleSchool, Password: "secret123"})
	assert.True(t, errors.Is(err, models.ErrInvalidValue))
}

func TestDumpUser_NeverIncludesPassword(t *testing.T) {
	in, err := LoadUser(userPayload(nil))
	require.NoError(t, err)
	user, err := CreateUser(testHasher, in)
	require.NoError(t, err)

	raw, err := json.Marshal(DumpUser(user))
	require.NoError(t, err)

	var shaped map[string]any
	require.NoError(t, json.Unmarshal(raw, &shaped))
	assert.NotContains(t, shaped, "password")
	assert.NotContains(t, shaped, "password_hash")
	assert.NotContains(t, string(raw), user.PasswordHash)
	assert.NotContains(t, string(raw), "secret123")
}

func TestLoadThenDump_RoundTrip(t *testing.T) {
	in, err := LoadUser(userPayload(nil))
	require.NoError(t, err)
	user, err := CreateUser(testHasher, in)
	require.NoError(t, err)
	user.ID = 7
	user.CreatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user.UpdatedAt = user.CreatedAt

	raw, err := json.Marshal(DumpUser(user))
	require.NoError(t, err)

	var shaped map[string]any
	require.NoError(t, json.Unmarshal(raw, &shaped))
	assert.Equal(t, "Jane Doe", shaped["full_name"])
	assert.Equal(t, "jane@example.com", shaped["email"])
	assert.Equal(t, "+254700000000", shaped["phone_number"])
	assert.Equal(t, "guardian", shaped["role"])
	assert.Equal(t, float64(7), shaped["id"])
	assert.Equal(t, "2026-01-02T03:04:05Z", shaped["created_at"])
	assert.Nil(t, shaped["driver"])
	assert.Nil(t, shaped["guardian"])
}

func TestDumpUser_NestsProfiles(t *testing.T) {
	user := &models.User{
		ID:   1,
		Role: models.RoleDriver,
		Driver: &models.Driver{
			ID:       2,
			UserID:   1,
			Vehicles: []models.Vehicle{{ID: 3, DriverID: 2, RegistrationNumber: "KDA 123A"}},
		},
		Guardian: &models.Guardian{ID: 4, UserID: 1},
	}

	out := DumpUser(user)
	require.NotNil(t, out.Driver)
	require.Len(t, out.Driver.Vehicles, 1)
	assert.Equal(t, "KDA 123A", out.Driver.Vehicles[0].RegistrationNumber)
	require.NotNil(t, out.Guardian)
	assert.NotNil(t, out.Guardian.Students)
	assert.Empty(t, out.Guardian.Students)
}

func TestDumpUsers_Empty(t *testing.T) {
	raw, err := json.Marshal(DumpUsers(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestLoadPassword(t *testing.T) {
	in, err := LoadPassword([]byte(`{"password": "new-secret"}`))
	require.NoError(t, err)
	assert.Equal(t, "new-secret", in.Password)

	_, err = LoadPassword([]byte(`{"password": "short"}`))
	assert.Contains(t, requireFieldErrors(t, err), "password")
}
