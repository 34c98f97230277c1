package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/models/dto"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/students", nil)
	HandleAPIError(c, err)

	var body dto.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"validation", apperrors.NewValidationError("semester must be at least 1"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "semester must be at least 1"},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
		{"unauthenticated", apperrors.NewUnauthenticatedError("No token provided"), http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "No token provided"},
		{"forbidden", apperrors.NewForbiddenError("Access denied"), http.StatusForbidden, dto.ErrorCodeForbidden, "Access denied"},
		{"not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found"},
		{"wrapped not found", fmt.Errorf("loading: %w", apperrors.ErrFeeNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Fee not found"},
		{"already submitted", apperrors.ErrSubmissionExists, http.StatusConflict, dto.ErrorCodeAlreadySubmitted, "Already submitted"},
		{"conflict", apperrors.ErrUserIDExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "User ID already exists"},
		{"bare category", apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serveError(tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.message, body.Error.Message)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestHandleAPIError_Details(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrConflict, "Email already exists").
		WithDetails(map[string]interface{}{"field": "email"})
	_, body := serveError(err)
	require.NotNil(t, body.Error)
	assert.Equal(t, "email", body.Error.Field)
	assert.Nil(t, body.Error.Details)

	err = apperrors.NewCustomError(apperrors.ErrValidationFailed, "bad row").
		WithDetails(map[string]interface{}{"row": float64(3)})
	_, body = serveError(err)
	require.NotNil(t, body.Error)
	assert.Empty(t, body.Error.Field)
	assert.Equal(t, map[string]interface{}{"row": float64(3)}, body.Error.Details)
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		ok      bool
		message string
	}{
		{"valid", `{"name":"Ashish"}`, true, ""},
		{"empty", ``, false, "Request body is required"},
		{"malformed", `{"name":`, false, "Invalid request format"},
		{"wrong type", `{"name":5}`, false, "Invalid request format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var dst struct {
				Name string `json:"name"`
			}
			assert.Equal(t, tt.ok, BindJSON(c, &dst))
			if tt.ok {
				assert.Equal(t, "Ashish", dst.Name)
				return
			}
			assert.Equal(t, http.StatusBadRequest, w.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body.Message, tt.message)
		})
	}
}

type stubPolicy struct {
	identities map[string]*models.Identity
}

func (p stubPolicy) Authorize(_ context.Context, presentedID string, allowed ...models.Role) (*models.Identity, error) {
	if presentedID == "" {
		return nil, apperrors.NewUnauthenticatedError("No token provided")
	}
	identity, ok := p.identities[presentedID]
	if !ok {
		return nil, apperrors.NewUnauthenticatedError("Invalid token")
	}
	for _, role := range allowed {
		if identity.Role == role {
			return identity, nil
		}
	}
	if len(allowed) == 0 {
		return identity, nil
	}
	return nil, apperrors.NewForbiddenError("Access denied")
}

func TestRequireRoles(t *testing.T) {
	policy := stubPolicy{identities: map[string]*models.Identity{
		"F1": {ID: "1", UserID: "F1", Role: models.RoleFaculty},
		"S1": {ID: "2", UserID: "S1", Role: models.RoleStudent},
	}}
	access := NewAccessMiddleware(policy, "")

	router := gin.New()
	router.GET("/staff", access.RequireRoles(models.StaffRoles...), func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		require.True(t, ok)
		c.String(http.StatusOK, identity.UserID)
	})

	tests := []struct {
		header string
		status int
	}{
		{"", http.StatusUnauthorized},
		{"nobody", http.StatusUnauthorized},
		{"S1", http.StatusForbidden},
		{"F1", http.StatusOK},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		if tt.header != "" {
			req.Header.Set(DefaultCredentialHeader, tt.header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, tt.status, w.Code, "header %q", tt.header)
		if tt.status == http.StatusOK {
			assert.Equal(t, "F1", w.Body.String())
		}
	}
}

func TestCurrentIdentity_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := CurrentIdentity(c)
	assert.False(t, ok)
}
