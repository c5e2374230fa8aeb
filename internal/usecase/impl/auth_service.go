// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "keygate/internal/delivery/context"
	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	"keygate/internal/domain/service"
	"keygate/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo       repository.UserRepository
	revocationRepo repository.RevocationRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	lockout        service.LockoutPolicy
	logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	userRepo repository.UserRepository,
	revocationRepo repository.RevocationRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	lockout service.LockoutPolicy,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo:       userRepo,
		revocationRepo: revocationRepo,
		hasher:         hasher,
		tokenService:   tokenService,
		lockout:        lockout,
		logger:         logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account after validating password strength.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return &usecase.RegisterOutput{
		UserID: newUser.ID,
		Email:  newUser.Email,
		Role:   newUser.Role,
	}, nil
}

// Login verifies credentials behind the lockout gate and issues a token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user during login")
	}

	// 1. Lock gate. A locked account rejects before the cost of bcrypt is
	// spent, carrying the remaining lockout time.
	status := srv.lockout.CheckLock(user)
	if status.Locked {
		srv.log(ctx).Warn("Login rejected for locked account",
			slog.Int64("userID", user.ID),
			slog.Int("remainingMinutes", status.RemainingMinutes),
		)

		return nil, lockedError(status.RemainingMinutes)
	}
	if status.Expired {
		// The lock window passed; persist the lazy reset before continuing.
		if err := srv.userRepo.UpdateLoginState(ctx, user); err != nil {
			srv.log(ctx).Error("Failed to persist lockout reset", slog.Int64("userID", user.ID), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to persist lockout reset")
		}
	}

	// 2. Check password (bcrypt is CPU-bound, no I/O held across it).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, srv.handleFailedLogin(ctx, user)
	}

	// 3. Generate the new pair before mutating any state.
	accessToken, refreshToken, err := srv.generateTokenPair(user)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens during login", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	// 4. Reset counters and store the refresh token in one update, persisted
	// before the pair is returned. The new token supersedes any previous one.
	srv.lockout.RecordSuccess(user)
	user.RefreshToken = &refreshToken
	if err := srv.userRepo.UpdateLoginState(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to persist login state", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist refresh token during login")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("userID", user.ID))

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// handleFailedLogin records the failure and persists the lockout state
// before the rejection is returned, so a racing duplicate attempt costs at
// worst one extra increment.
func (srv *authService) handleFailedLogin(ctx context.Context, user *entity.User) error {
	srv.lockout.RecordFailure(user)

	if err := srv.userRepo.UpdateLoginState(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to persist failed login attempt", slog.Int64("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to persist failed login attempt")
	}

	if user.AccountLockedUntil != nil {
		status := srv.lockout.CheckLock(user)
		srv.log(ctx).Warn("Account locked after repeated failures",
			slog.Int64("userID", user.ID),
			slog.Int("failedAttempts", user.FailedLoginAttempts),
			slog.Int("lockoutMinutes", status.RemainingMinutes),
		)

		return lockedError(status.RemainingMinutes)
	}

	srv.log(ctx).Warn("Login failed",
		slog.Int64("userID", user.ID),
		slog.Int("failedAttempts", user.FailedLoginAttempts),
	)

	return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
}

// Refresh rotates a refresh token for a new pair.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	claims, err := srv.tokenService.ParseToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token failed verification", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
	}
	if claims.Type != "refresh" {
		srv.log(ctx).Warn("Non-refresh token presented for rotation", slog.Int64("userID", claims.UserID))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
	}

	revoked, err := srv.revocationRepo.IsRevoked(ctx, input.RefreshToken)
	if err != nil {
		srv.log(ctx).Error("Revocation registry unavailable during refresh", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRevocationUnavailable, "refresh failed")
	}
	if revoked {
		srv.log(ctx).Warn("Revoked refresh token presented", slog.Int64("userID", claims.UserID))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Int64("userID", claims.UserID), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
		}

		return nil, errors.Wrap(err, "failed to load user during refresh")
	}

	accessToken, refreshToken, err := srv.generateTokenPair(user)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens during refresh", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	// Rotation is monotonic: the conditional update succeeds only while the
	// stored token still equals the presented one, so a superseded token can
	// never rotate again even though its signature still verifies.
	if err := srv.userRepo.RotateRefreshToken(ctx, user.ID, input.RefreshToken, refreshToken); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenStale) {
			srv.log(ctx).Warn("Stale refresh token presented for rotation", slog.Int64("userID", user.ID))

			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
		}
		srv.log(ctx).Error("Failed to rotate refresh token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to rotate refresh token")
	}

	srv.log(ctx).Debug("Refresh token rotated", slog.Int64("userID", user.ID))

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout blacklists the refresh token and clears the stored one. A token
// that fails verification is still blacklisted, with the refresh lifetime as
// the TTL fallback.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	ttl := srv.tokenService.RemainingLifetime(input.RefreshToken)

	if err := srv.revocationRepo.Revoke(ctx, input.RefreshToken, ttl); err != nil {
		srv.log(ctx).Error("Revocation registry unavailable during logout", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrRevocationUnavailable, "logout failed")
	}

	claims, err := srv.tokenService.ParseToken(input.RefreshToken)
	if err != nil {
		// Unverifiable tokens are already blacklisted; nothing to clear.
		srv.log(ctx).Warn("Logout with unverifiable token", slog.Any("error", err))

		return nil
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		srv.log(ctx).Warn("Logout could not load user", slog.Int64("userID", claims.UserID), slog.Any("error", err))

		return nil
	}

	if user.RefreshToken == nil || *user.RefreshToken != input.RefreshToken {
		return nil
	}

	if err := srv.userRepo.SetRefreshToken(ctx, user.ID, nil); err != nil {
		srv.log(ctx).Error("Failed to clear refresh token during logout", slog.Int64("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to clear refresh token during logout")
	}

	srv.log(ctx).Debug("Logout completed", slog.Int64("userID", user.ID))

	return nil
}

func (srv *authService) generateTokenPair(user *entity.User) (accessToken string, refreshToken string, err error) {
	accessToken, err = srv.tokenService.GenerateAccessToken(entity.Principal{UserID: user.ID, Role: user.Role})
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err = srv.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate refresh token")
	}

	return accessToken, refreshToken, nil
}

// lockedError builds the forbidden rejection carrying the retry-after hint.
func lockedError(remainingMinutes int) error {
	return errors.Wrapf(
		domainerrors.ErrAccountLocked.WithDetails(remainingMinutesDetail(remainingMinutes)),
		"account locked for %d more minutes", remainingMinutes,
	)
}

func remainingMinutesDetail(remainingMinutes int) string {
	return "Account locked. Try again in " + strconv.Itoa(remainingMinutes) + " minutes."
}
