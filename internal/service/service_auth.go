// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denteo

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/denteo/clinic-backend/internal/events"
	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/password"
	"github.com/denteo/clinic-backend/internal/store"
	"github.com/denteo/clinic-backend/internal/token"
	"github.com/denteo/clinic-backend/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the JWT lifecycle
// using a UserRepository for persistence, Argon2id for password hashing
// and the token package for issuing and validating tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes and verifies passwords with a per-user salt.
	hasher *password.Hasher

	// issuer signs new tokens; tokenValidator checks presented ones.
	issuer         *token.Issuer
	tokenValidator *token.Validator

	// publisher emits user.created and user.loggedin events; failures there
	// never fail the triggering operation.
	publisher events.Publisher

	// dummyHash and dummySalt are verified against when a login does not
	// match any account, so the unknown-login and wrong-password paths take
	// comparable time.
	dummyHash string
	dummySalt string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repository,
// hasher, token issuer/validator and event publisher.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher *password.Hasher, issuer *token.Issuer, tokenValidator *token.Validator, publisher events.Publisher, logger *logger.Logger) AuthService {
	dummyHash, dummySalt, _ := hasher.Hash("login-timing-placeholder")
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		issuer:         issuer,
		tokenValidator: tokenValidator,
		publisher:      publisher,
		dummyHash:      dummyHash,
		dummySalt:      dummySalt,
		logger:         logger,
	}
}

// Register creates a new user account and logs it in.
//
// The password is hashed before the user record is ever handed to the
// repository; plaintext never leaves this method. An empty role defaults
// to [models.RoleUser].
//
// Returns the auth result with a freshly issued token, or:
//   - ErrInvalidDataProvided for an unknown role.
//   - store.ErrUsernameTaken / store.ErrEmailTaken / store.ErrCPFTaken
//     when the account collides with an existing one.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		log.Error().Str("role", role).Msg("unknown role provided")
		return models.AuthResult{}, ErrInvalidDataProvided
	}

	hash, salt, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResult{}, ErrInvalidDataProvided
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		CPF:          req.CPF,
		Phone:        req.Phone,
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         role,
		Active:       true,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.publisher.PublishUserCreated(ctx, created.Public())

	return a.issueResult(ctx, created)
}

// Login authenticates an account by username or email.
//
// Unknown login, wrong password and deactivated account all return
// [ErrInvalidCredentials]; the response gives an attacker nothing to
// tell the cases apart. The deactivated case is distinguishable in the
// logs only.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if req.Login == "" || req.Password == "" {
		return models.AuthResult{}, ErrInvalidCredentials
	}

	found, err := a.userRepository.FindUserByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// burn the same hashing work as the found path
			a.hasher.Verify(req.Password, a.dummyHash, a.dummySalt)
			return models.AuthResult{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by login failed")
		return models.AuthResult{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, found.PasswordHash, found.PasswordSalt) {
		log.Warn().Int64("id", found.UserID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	if !found.Active {
		log.Warn().Int64("id", found.UserID).Msg("login attempt on deactivated account")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	// advisory stamp; concurrent logins resolve last-write-wins
	if err := a.userRepository.TouchLastLogin(ctx, found.UserID); err != nil {
		log.Warn().Err(err).Int64("id", found.UserID).Msg("failed to record last login")
	}

	a.publisher.PublishUserLoggedIn(ctx, found.Public())

	return a.issueResult(ctx, found)
}

// Refresh exchanges a still-valid token for a fresh one.
//
// The account is re-read so the new token reflects the current role and
// active flag; a token issued before deactivation cannot be refreshed
// past it.
func (a *authService) Refresh(ctx context.Context, tokenString string) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	claims, err := a.tokenValidator.Validate(ctx, tokenString)
	if err != nil {
		log.Warn().Err(err).Msg("refresh rejected: token validation failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := claims.UserID()
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	found, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.AuthResult{}, ErrInvalidToken
		}
		log.Err(err).Int64("id", userID).Msg("user lookup for refresh failed")
		return models.AuthResult{}, fmt.Errorf("user lookup for refresh failed: %w", err)
	}

	if !found.Active {
		log.Warn().Int64("id", userID).Msg("refresh attempt on deactivated account")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	return a.issueResult(ctx, found)
}

// ValidateToken checks a token on behalf of another service.
//
// A failed validation is a negative answer, not an error: the result
// carries Valid=false and no user. Claims are trusted as issued; no
// database round trip happens here.
func (a *authService) ValidateToken(ctx context.Context, tokenString string) (models.ValidateResult, error) {
	claims, err := a.tokenValidator.Validate(ctx, tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token validation failed")
		return models.ValidateResult{Valid: false}, nil
	}

	userID, err := claims.UserID()
	if err != nil {
		return models.ValidateResult{Valid: false}, nil
	}

	user := models.PublicUser{
		UserID:   userID,
		Username: claims.Username,
		Email:    claims.Email,
		CPF:      claims.CPF,
		Phone:    claims.Phone,
		Role:     claims.Role,
		Active:   claims.IsActive(),
	}

	return models.ValidateResult{Valid: true, User: &user}, nil
}

func (a *authService) issueResult(ctx context.Context, user models.User) (models.AuthResult, error) {
	signed, expiresAt, err := a.issuer.Issue(user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.UserID).Msg("token issuing failed")
		return models.AuthResult{}, fmt.Errorf("token issuing failed: %w", err)
	}

	return models.AuthResult{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      user.Public(),
	}, nil
}
