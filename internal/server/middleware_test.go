package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"blogfolio/internal/auth"
	"blogfolio/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGuardedTestApp(userRepo *MockUserRepository) *fiber.App {
	app := fiber.New()
	s := &Server{
		userRepo: userRepo,
		auth:     auth.NewService(testSecret),
	}
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userID": currentUserID(c)})
	})
	app.Get("/admin", s.AuthRequired(), s.AdminRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	authSvc := auth.NewService(testSecret)
	token, err := authSvc.IssueToken(1)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		mockSetup      func(*MockUserRepository)
		expectedStatus int
	}{
		{
			name:           "Missing Header",
			header:         "",
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Malformed Header",
			header:         "Token abc",
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Garbage Token",
			header:         "Bearer not.a.jwt",
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Valid Token",
			header: "Bearer " + token,
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByID", mock.Anything, uint(1)).
					Return(&models.User{ID: 1, Role: models.RoleUser}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Token For Deleted User",
			header: "Bearer " + token,
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByID", mock.Anything, uint(1)).
					Return(nil, models.NewNotFoundError("User", 1))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.mockSetup(userRepo)
			app := newGuardedTestApp(userRepo)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestAuthRequired_WrongSecretRejected(t *testing.T) {
	otherToken, err := auth.NewService("a-completely-different-secret-value").IssueToken(1)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	app := newGuardedTestApp(userRepo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+otherToken)

	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAdminRequired(t *testing.T) {
	authSvc := auth.NewService(testSecret)

	t.Run("non-admin forbidden", func(t *testing.T) {
		token, err := authSvc.IssueToken(1)
		require.NoError(t, err)

		userRepo := new(MockUserRepository)
		userRepo.On("GetByID", mock.Anything, uint(1)).
			Return(&models.User{ID: 1, Role: models.RoleUser}, nil)
		app := newGuardedTestApp(userRepo)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin allowed", func(t *testing.T) {
		token, err := authSvc.IssueToken(2)
		require.NoError(t, err)

		userRepo := new(MockUserRepository)
		userRepo.On("GetByID", mock.Anything, uint(2)).
			Return(&models.User{ID: 2, Role: models.RoleAdmin}, nil)
		app := newGuardedTestApp(userRepo)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
