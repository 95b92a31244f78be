package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogfolio/internal/auth"
	"blogfolio/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.User), args.Error(1)
}

const testSecret = "test-secret-for-handlers-0123456789"

func newAuthTestApp(userRepo *MockUserRepository) *fiber.App {
	app := fiber.New()
	s := &Server{
		userRepo: userRepo,
		auth:     auth.NewService(testSecret),
	}
	app.Post("/auth/register", s.Register)
	app.Post("/auth/login", s.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(*MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"name":     "Alice",
				"email":    "alice@example.com",
				"password": "sup3rsecret",
			},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
					args.Get(1).(*models.User).ID = 1
				}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Missing Fields",
			body: map[string]string{
				"email": "alice@example.com",
			},
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			// No strength policy: short passwords are accepted.
			name: "Short Password",
			body: map[string]string{
				"name":     "A",
				"email":    "a@x.com",
				"password": "secret",
			},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
					args.Get(1).(*models.User).ID = 1
				}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Oversized Password",
			body: map[string]string{
				"name":     "Alice",
				"email":    "alice@example.com",
				"password": strings.Repeat("p", 73),
			},
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Duplicate Email",
			body: map[string]string{
				"name":     "Alice",
				"email":    "alice@example.com",
				"password": "sup3rsecret",
			},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("Create", mock.Anything, mock.Anything).
					Return(models.NewConflictError("Email already registered"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.mockSetup(userRepo)
			app := newAuthTestApp(userRepo)

			resp := postJSON(t, app, "/auth/register", tt.body)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusCreated {
				var body struct {
					Message string `json:"message"`
					UserID  uint   `json:"userId"`
				}
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, uint(1), body.UserID)
			}
		})
	}
}

func TestRegister_StoresHashedPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	var created *models.User
	userRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.User)
		created.ID = 1
	}).Return(nil)
	app := newAuthTestApp(userRepo)

	resp := postJSON(t, app, "/auth/register", map[string]string{
		"name":     "Alice",
		"email":    "Alice@Example.com",
		"password": "sup3rsecret",
	})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, created)

	// Email is normalized, password is never stored verbatim.
	assert.Equal(t, "alice@example.com", created.Email)
	assert.NotEqual(t, "sup3rsecret", created.Password)
	assert.True(t, auth.NewService(testSecret).CheckPassword("sup3rsecret", created.Password))
}

func TestLogin(t *testing.T) {
	authSvc := auth.NewService(testSecret)
	hash, err := authSvc.HashPassword("sup3rsecret")
	require.NoError(t, err)
	stored := &models.User{ID: 1, Email: "alice@example.com", Password: hash, Name: "Alice"}

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(*MockUserRepository)
		expectedStatus int
		wantToken      bool
	}{
		{
			name: "Success",
			body: map[string]string{"email": "alice@example.com", "password": "sup3rsecret"},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil)
			},
			expectedStatus: http.StatusOK,
			wantToken:      true,
		},
		{
			name: "Wrong Password",
			body: map[string]string{"email": "alice@example.com", "password": "wrongpass1"},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Unknown Email",
			body: map[string]string{"email": "ghost@example.com", "password": "sup3rsecret"},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing Fields",
			body:           map[string]string{"email": "alice@example.com"},
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.mockSetup(userRepo)
			app := newAuthTestApp(userRepo)

			resp := postJSON(t, app, "/auth/login", tt.body)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.wantToken {
				var body struct {
					Token string `json:"token"`
				}
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				claims, err := authSvc.VerifyToken(body.Token)
				require.NoError(t, err)
				assert.Equal(t, uint(1), claims.ID)
			}
		})
	}
}
