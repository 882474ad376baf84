package service_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lezzetli-tarifler/backend/internal/models"
	"github.com/lezzetli-tarifler/backend/internal/service"
	"github.com/lezzetli-tarifler/backend/internal/testhelpers"
	"github.com/lezzetli-tarifler/backend/internal/types"
)

const testSecret = "test-secret"

// memoryRevocations is an in-process TokenRevocationStore
type memoryRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
	err     error
}

func newMemoryRevocations() *memoryRevocations {
	return &memoryRevocations{revoked: make(map[string]time.Duration)}
}

func (m *memoryRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[tokenID] = ttl
	return nil
}

func (m *memoryRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.revoked[tokenID]
	return ok, nil
}

func TestRegister(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, testSecret, time.Hour, nil)

	user, err := svc.Register(context.Background(), "elif", "elif@example.com", "gizli123")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "elif", user.Username)
	assert.Equal(t, "light", user.Appearance)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("gizli123")))

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, "elif@example.com", stored.Email)
}

func TestRegister_Duplicates(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, testSecret, time.Hour, nil)
	testhelpers.CreateTestUser(t, db, "elif")

	_, err := svc.Register(context.Background(), "elif", "baska@example.com", "gizli123")
	assert.ErrorIs(t, err, service.ErrUsernameTaken)

	_, err = svc.Register(context.Background(), "baska", "elif@example.com", "gizli123")
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestRegister_PasswordTooLong(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, testSecret, time.Hour, nil)

	for name, password := range map[string]string{
		"ascii":     strings.Repeat("a", 73),
		"multibyte": strings.Repeat("ş", 40),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), "elif", "elif@example.com", password)
			assert.ErrorIs(t, err, service.ErrPasswordTooLong)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)

	user, err := svc.Register(context.Background(), "elif", "elif@example.com", strings.Repeat("a", 72))
	require.NoError(t, err)
	assert.Equal(t, "elif", user.Username)
}

func TestLogin(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, testSecret, time.Hour, nil)
	created := testhelpers.CreateTestUser(t, db, "can")

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid credentials", username: "can", password: testhelpers.TestPassword},
		{name: "wrong password", username: "can", password: "yanlis", wantErr: service.ErrInvalidCredentials},
		{name: "unknown user", username: "yok", password: testhelpers.TestPassword, wantErr: service.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, created.ID, user.ID)
		})
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, testSecret, time.Hour, nil)
	user := testhelpers.CreateTestUser(t, db, "deniz")

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "deniz", claims.Username)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateToken_Invalid(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, testSecret, time.Hour, nil)
	user := testhelpers.CreateTestUser(t, db, "deniz")

	otherSvc := service.NewAuthService(db, "another-secret", time.Hour, nil)
	foreignToken, err := otherSvc.GenerateToken(user)
	require.NoError(t, err)

	expiredSvc := service.NewAuthService(db, testSecret, -time.Minute, nil)
	expiredToken, err := expiredSvc.GenerateToken(user)
	require.NoError(t, err)

	noUserToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: user.ID,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"malformed":       "not-a-token",
		"wrong secret":    foreignToken,
		"expired":         expiredToken,
		"missing user id": noUserToken,
		"unsigned":        noneToken,
		"empty":           "",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.ValidateToken(context.Background(), token)
			assert.ErrorIs(t, err, service.ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestRevokeToken(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	revocations := newMemoryRevocations()
	svc := service.NewAuthService(db, testSecret, time.Hour, revocations)
	user := testhelpers.CreateTestUser(t, db, "ece")

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(context.Background(), claims))
	ttl, ok := revocations.revoked[claims.ID]
	require.True(t, ok)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 60)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, service.ErrTokenRevoked)

	fresh, err := svc.GenerateToken(user)
	require.NoError(t, err)
	_, err = svc.ValidateToken(context.Background(), fresh)
	assert.NoError(t, err)
}

func TestValidateToken_RevocationStoreFailure(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	revocations := newMemoryRevocations()
	revocations.err = errors.New("connection refused")
	svc := service.NewAuthService(db, testSecret, time.Hour, revocations)
	user := testhelpers.CreateTestUser(t, db, "ece")

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidToken)
}

func TestRevokeToken_WithoutStore(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, testSecret, time.Hour, nil)
	user := testhelpers.CreateTestUser(t, db, "ece")

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.NoError(t, svc.RevokeToken(context.Background(), claims))
}
