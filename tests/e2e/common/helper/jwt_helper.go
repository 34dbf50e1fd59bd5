//go:build e2e

package helper

import (
	"testing"
	"time"

	"room-booking-api/internal/pkg/config"
	"room-booking-api/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTTestHelper mints tokens directly with the shared secret. In production
// tokens are issued by the external auth service.
type JWTTestHelper struct {
	cfg config.JWTConfig
}

func NewJWTTestHelper(cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{cfg: cfg}
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID int64) string {
	t.Helper()
	duration, _ := time.ParseDuration(h.cfg.TokenDuration)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID int64) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, -time.Minute)
	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	return token
}
