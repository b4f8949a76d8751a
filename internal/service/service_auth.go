package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/store"
	"github.com/vheb/biomap/internal/utils"
	"github.com/vheb/biomap/internal/validators"
	"github.com/vheb/biomap/models"
)

// authService is the concrete implementation of [AuthService]. It handles
// registration, credential verification with bcrypt, JWT token lifecycle,
// and profile maintenance using a UserRepository for persistence.
type authService struct {
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account with exactly one role specialization.
//
// The request is validated first (required identity fields, password
// confirmation, role-specific payload); the password is then bcrypt-hashed
// and persistence is delegated to the repository, whose transaction
// guarantees no orphaned specialization row on failure.
//
// Returns the persisted user or:
//   - [ErrInvalidDataProvided] (joined with the field-level reason) when
//     validation fails.
//   - [store.ErrEmailAlreadyExists] / [store.ErrUsernameAlreadyExists] /
//     [store.ErrRegistrationNumberAlreadyExists] on uniqueness conflicts.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateRegistration(req); err != nil {
		log.Err(err).Str("username", req.Username).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Researcher:   req.Researcher,
		Institution:  req.Institution,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by username and password.
//
// Returns the authenticated account or:
//   - [ErrInvalidDataProvided] if username or password is empty.
//   - [store.ErrNotFound] if no account carries the username.
//   - [ErrWrongPassword] if the bcrypt comparison fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// GetProfile returns the account with its role payload.
func (a *authService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies the mutable profile fields on top of the stored
// account. The role itself never changes; a payload for a role the account
// does not have is rejected.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	if err = validators.ValidateProfileUpdate(req, user.Role); err != nil {
		log.Err(err).Int64("id", userID).Msg("invalid profile update provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Researcher != nil {
		req.Researcher.UserID = userID
		user.Researcher = req.Researcher
	}
	if req.Institution != nil {
		req.Institution.UserID = userID
		user.Institution = req.Institution
	}

	updatedUser, err := a.userRepository.UpdateProfile(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updatedUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured sign key, carries the configured
// issuer as the "iss" claim, and expires after the configured duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("token creation failed: %w", err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// [ErrTokenIsExpiredOrInvalid] so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
