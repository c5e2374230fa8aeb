package impl

import (
	"context"
	"testing"
	"time"

	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	"keygate/internal/domain/service"
	mockRepo "keygate/internal/mocks/repository"
	mockSvc "keygate/internal/mocks/service"
	"keygate/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service        usecase.AuthUsecase
	userRepo       *mockRepo.MockUserRepository
	revocationRepo *mockRepo.MockRevocationRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
	lockout        *mockSvc.MockLockoutPolicy
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	revocationRepo := mockRepo.NewMockRevocationRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	lockout := mockSvc.NewMockLockoutPolicy(t)

	svc := NewAuthService(
		userRepo,
		revocationRepo,
		hasher,
		tokenService,
		lockout,
		newDiscardLogger(),
	)

	return authServiceFixtures{
		service:        svc,
		userRepo:       userRepo,
		revocationRepo: revocationRepo,
		hasher:         hasher,
		tokenService:   tokenService,
		lockout:        lockout,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(42), output.UserID)
	assert.Equal(t, input.Email, output.Email)
	assert.Equal(t, entity.RoleUser, output.Role)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "short",
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(errors.New("password must be at least 8 characters long"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "test@example.com", Password: "Password123"}
	user := &entity.User{ID: 7, Email: input.Email, PasswordHash: "hashed", Role: entity.RoleUser}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.lockout.EXPECT().CheckLock(user).Return(service.LockStatus{})
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateAccessToken(entity.Principal{UserID: user.ID, Role: user.Role}).
		Return("access_token", nil)
	fx.tokenService.EXPECT().GenerateRefreshToken(user.ID).Return("refresh_token", nil)
	fx.lockout.EXPECT().RecordSuccess(user).Return()
	fx.userRepo.EXPECT().UpdateLoginState(ctx, user).Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	require.NotNil(t, user.RefreshToken)
	assert.Equal(t, "refresh_token", *user.RefreshToken)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nobody@example.com", Password: "Password123"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "test@example.com", Password: "wrong"}
	user := &entity.User{ID: 7, Email: input.Email, PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.lockout.EXPECT().CheckLock(user).Return(service.LockStatus{})
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)
	fx.lockout.EXPECT().
		RecordFailure(user).
		Run(func(u *entity.User) {
			u.FailedLoginAttempts = 1
		}).
		Return()
	fx.userRepo.EXPECT().UpdateLoginState(ctx, user).Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_FifthFailureLocksAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "test@example.com", Password: "wrong"}
	user := &entity.User{ID: 42, Email: input.Email, PasswordHash: "hashed", FailedLoginAttempts: 4}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.lockout.EXPECT().CheckLock(user).Return(service.LockStatus{}).Once()
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)
	fx.lockout.EXPECT().
		RecordFailure(user).
		Run(func(u *entity.User) {
			u.FailedLoginAttempts = 5
			lockedUntil := time.Now().Add(5 * time.Minute)
			u.AccountLockedUntil = &lockedUntil
		}).
		Return()
	fx.userRepo.EXPECT().UpdateLoginState(ctx, user).Return(nil)
	fx.lockout.EXPECT().
		CheckLock(user).
		Return(service.LockStatus{Locked: true, RemainingMinutes: 5}).
		Once()

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ACCOUNT_LOCKED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "5 minutes")
}

func TestAuthService_Login_LockedAccountRejectsBeforePasswordCheck(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "test@example.com", Password: "Password123"}
	lockedUntil := time.Now().Add(25 * time.Minute)
	user := &entity.User{
		ID:                  42,
		Email:               input.Email,
		PasswordHash:        "hashed",
		FailedLoginAttempts: 6,
		AccountLockedUntil:  &lockedUntil,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	// No Check expectation: a locked account must reject before bcrypt runs.
	fx.lockout.EXPECT().
		CheckLock(user).
		Return(service.LockStatus{Locked: true, RemainingMinutes: 25})

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ACCOUNT_LOCKED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "25 minutes")
}

func TestAuthService_Login_ExpiredLockIsResetAndPersisted(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "test@example.com", Password: "Password123"}
	user := &entity.User{ID: 42, Email: input.Email, PasswordHash: "hashed", FailedLoginAttempts: 5}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.lockout.EXPECT().
		CheckLock(user).
		Run(func(u *entity.User) {
			u.FailedLoginAttempts = 0
			u.AccountLockedUntil = nil
			u.LastFailedLogin = nil
		}).
		Return(service.LockStatus{Expired: true})
	// The lazy reset is persisted first, the successful login state second.
	fx.userRepo.EXPECT().UpdateLoginState(ctx, user).Return(nil).Twice()
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateAccessToken(entity.Principal{UserID: user.ID, Role: user.Role}).
		Return("access_token", nil)
	fx.tokenService.EXPECT().GenerateRefreshToken(user.ID).Return("refresh_token", nil)
	fx.lockout.EXPECT().RecordSuccess(user).Return()

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Zero(t, user.FailedLoginAttempts)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	oldToken := "old_refresh_token"
	user := &entity.User{ID: 7, Role: entity.RoleUser, RefreshToken: &oldToken}

	fx.tokenService.EXPECT().
		ParseToken(oldToken).
		Return(&service.Claims{UserID: user.ID, Type: "refresh"}, nil)
	fx.revocationRepo.EXPECT().IsRevoked(ctx, oldToken).Return(false, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateAccessToken(entity.Principal{UserID: user.ID, Role: user.Role}).
		Return("new_access_token", nil)
	fx.tokenService.EXPECT().GenerateRefreshToken(user.ID).Return("new_refresh_token", nil)
	fx.userRepo.EXPECT().
		RotateRefreshToken(ctx, user.ID, oldToken, "new_refresh_token").
		Return(nil)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: oldToken})

	require.NoError(t, err)
	assert.Equal(t, "new_access_token", output.AccessToken)
	assert.Equal(t, "new_refresh_token", output.RefreshToken)
}

func TestAuthService_Refresh_SupersededTokenRejected(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	staleToken := "superseded_refresh_token"
	user := &entity.User{ID: 7, Role: entity.RoleUser}

	fx.tokenService.EXPECT().
		ParseToken(staleToken).
		Return(&service.Claims{UserID: user.ID, Type: "refresh"}, nil)
	fx.revocationRepo.EXPECT().IsRevoked(ctx, staleToken).Return(false, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateAccessToken(entity.Principal{UserID: user.ID, Role: user.Role}).
		Return("new_access_token", nil)
	fx.tokenService.EXPECT().GenerateRefreshToken(user.ID).Return("new_refresh_token", nil)
	fx.userRepo.EXPECT().
		RotateRefreshToken(ctx, user.ID, staleToken, "new_refresh_token").
		Return(repository.ErrRefreshTokenStale)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: staleToken})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	token := "revoked_refresh_token"

	fx.tokenService.EXPECT().
		ParseToken(token).
		Return(&service.Claims{UserID: 7, Type: "refresh"}, nil)
	fx.revocationRepo.EXPECT().IsRevoked(ctx, token).Return(true, nil)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: token})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_RegistryUnavailableFailsClosed(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	token := "refresh_token"

	fx.tokenService.EXPECT().
		ParseToken(token).
		Return(&service.Claims{UserID: 7, Type: "refresh"}, nil)
	fx.revocationRepo.EXPECT().
		IsRevoked(ctx, token).
		Return(false, errors.New("connection refused"))

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: token})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRevocationUnavailable)
}

func TestAuthService_Refresh_AccessTokenRejected(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	token := "access_token_in_disguise"

	fx.tokenService.EXPECT().
		ParseToken(token).
		Return(&service.Claims{UserID: 7, Role: entity.RoleUser, Type: "access"}, nil)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: token})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	token := "current_refresh_token"
	user := &entity.User{ID: 7, RefreshToken: &token}

	fx.tokenService.EXPECT().RemainingLifetime(token).Return(time.Hour)
	fx.revocationRepo.EXPECT().Revoke(ctx, token, time.Hour).Return(nil)
	fx.tokenService.EXPECT().
		ParseToken(token).
		Return(&service.Claims{UserID: user.ID, Type: "refresh"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().SetRefreshToken(ctx, user.ID, (*string)(nil)).Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: token})

	require.NoError(t, err)
}

func TestAuthService_Logout_UnverifiableTokenStillBlacklisted(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	token := "garbage_token"
	fallback := 7 * 24 * time.Hour

	fx.tokenService.EXPECT().RemainingLifetime(token).Return(fallback)
	fx.revocationRepo.EXPECT().Revoke(ctx, token, fallback).Return(nil)
	fx.tokenService.EXPECT().ParseToken(token).Return(nil, service.ErrTokenMalformed)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: token})

	require.NoError(t, err)
}

func TestAuthService_Logout_RegistryUnavailable(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	token := "refresh_token"

	fx.tokenService.EXPECT().RemainingLifetime(token).Return(time.Hour)
	fx.revocationRepo.EXPECT().
		Revoke(ctx, token, time.Hour).
		Return(errors.New("connection refused"))

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: token})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRevocationUnavailable)
}

func TestAuthService_Logout_SupersededTokenLeavesStoredOneIntact(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	oldToken := "old_refresh_token"
	currentToken := "current_refresh_token"
	user := &entity.User{ID: 7, RefreshToken: &currentToken}

	fx.tokenService.EXPECT().RemainingLifetime(oldToken).Return(time.Hour)
	fx.revocationRepo.EXPECT().Revoke(ctx, oldToken, time.Hour).Return(nil)
	fx.tokenService.EXPECT().
		ParseToken(oldToken).
		Return(&service.Claims{UserID: user.ID, Type: "refresh"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	// No SetRefreshToken expectation: the stored token is newer and stays.

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: oldToken})

	require.NoError(t, err)
	require.NotNil(t, user.RefreshToken)
	assert.Equal(t, currentToken, *user.RefreshToken)
}
