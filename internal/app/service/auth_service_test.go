package service

import (
	"testing"
	"time"

	"github.com/sportsoles/sportsoles-backend/internal/app/model"
	"github.com/sportsoles/sportsoles-backend/internal/app/repository"
	"github.com/sportsoles/sportsoles-backend/internal/db"
	"github.com/sportsoles/sportsoles-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (AuthService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	authService := NewAuthService(
		userRepo,
		testDB,
		"test-jwt-secret",
		15*time.Minute,
		7*24*time.Hour,
	)

	return authService, testDB
}

func TestAuthService_Register(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	tests := []struct {
		name     string
		email    string
		password string
		userName string
		wantErr  error
	}{
		{
			name:     "Valid registration",
			email:    "test@example.com",
			password: "password123",
			userName: "Test User",
			wantErr:  nil,
		},
		{
			name:     "Duplicate email",
			email:    "test@example.com",
			password: "password456",
			userName: "Another User",
			wantErr:  ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Register(tt.email, tt.password, tt.userName)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, tokens)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			require.NotNil(t, tokens)
			assert.Equal(t, tt.email, user.Email)
			assert.Equal(t, tt.userName, user.Name)
			assert.NotEmpty(t, tokens.AccessToken)
			assert.NotEmpty(t, tokens.RefreshToken)
			// Plaintext password must never be stored
			assert.NotEqual(t, tt.password, user.PasswordHash)
		})
	}
}

func TestAuthService_Register_CreatesCart(t *testing.T) {
	authService, testDB := setupAuthServiceTest(t)

	user, _, err := authService.Register("cart@example.com", "password123", "Cart User")
	require.NoError(t, err)

	var cart model.Cart
	err = testDB.Where("user_id = ?", user.ID).First(&cart).Error
	assert.NoError(t, err)
}

func TestAuthService_Register_TokensAreValid(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	user, tokens, err := authService.Register("token@example.com", "password123", "Token User")
	require.NoError(t, err)

	claims, err := util.ValidateToken(tokens.AccessToken, "test-jwt-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestAuthService_Login(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, _, err := authService.Register("login@example.com", "password123", "Login User")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "Valid credentials",
			email:    "login@example.com",
			password: "password123",
			wantErr:  nil,
		},
		{
			name:     "Wrong password",
			email:    "login@example.com",
			password: "wrongpassword",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Unknown email",
			email:    "nobody@example.com",
			password: "password123",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, tokens)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			require.NotNil(t, tokens)
			assert.Equal(t, tt.email, user.Email)
			assert.NotEmpty(t, tokens.AccessToken)
		})
	}
}

func TestAuthService_GetUserByID(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	registered, _, err := authService.Register("me@example.com", "password123", "Me User")
	require.NoError(t, err)

	user, err := authService.GetUserByID(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, user.Email)

	_, err = authService.GetUserByID(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
