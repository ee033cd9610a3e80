//go:build e2e

package helper

import (
	"net/http"
	"testing"
	"time"

	"hotelhub/internal/domain/user"
	"hotelhub/internal/handler/dto/request"
	"hotelhub/internal/handler/dto/response"
	"hotelhub/internal/pkg/config"
	"hotelhub/internal/pkg/jwt"
	"hotelhub/tests/common/dbtest"
	"hotelhub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Seeded test users created via dbtest.CreateTestUser share this password.
const TestPassword = "password123"

type AuthTestHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewAuthTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *AuthTestHelper {
	return &AuthTestHelper{pool: pool, cfg: cfg}
}

func (h *AuthTestHelper) CreateTestUser(t *testing.T, email, role string) uuid.UUID {
	t.Helper()
	return dbtest.CreateTestUser(t, h.pool, email, role)
}

// SignupUser registers a user through the API and returns the issued token.
func (h *AuthTestHelper) SignupUser(t *testing.T, router *gin.Engine, email, displayName string) (uuid.UUID, string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/signup",
		request.SignupRequest{Email: email, Password: TestPassword, DisplayName: displayName}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.AuthResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	require.NotEmpty(t, res.Token, "token not found in signup response")
	require.NotNil(t, res.User)

	userID, err := uuid.Parse(res.User.ID)
	require.NoError(t, err)

	return userID, res.Token
}

func (h *AuthTestHelper) LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.AuthResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	require.NotEmpty(t, res.Token, "token not found in login response")

	return res.Token
}

func (h *AuthTestHelper) CreateAndLogin(t *testing.T, router *gin.Engine, email, role string) string {
	t.Helper()
	h.CreateTestUser(t, email, role)
	return h.LoginUser(t, router, email, TestPassword)
}

func (h *AuthTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, _ := time.ParseDuration(h.cfg.Duration)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *AuthTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
