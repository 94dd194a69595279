// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/MKhiriev/go-shop-keeper/models"
)

// userService is the concrete implementation of UserService.
// It enforces the account password policy, hashes passwords with bcrypt, and
// delegates persistence to a UserRepository.
type userService struct {
	userRepository store.UserRepository

	// minPasswordLength is the minimum accepted password length for new
	// accounts.
	minPasswordLength int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:    userRepository,
		minPasswordLength: cfg.MinPasswordLength,
		logger:            logger,
	}
}

// CreateUser registers a new account together with its empty cart.
//
// The request must carry a non-empty username and a password that satisfies
// the policy: at least minPasswordLength characters and equal to its
// confirmation. The password is bcrypt-hashed before it reaches storage; the
// plain text is never persisted.
//
// Returns the persisted user (with a server-assigned UserID and attached
// cart) or:
//   - ErrInvalidDataProvided if the username is empty.
//   - ErrValidationPasswordTooShort / ErrValidationPasswordMismatch on policy
//     violations.
//   - A wrapped storage error if persistence fails (e.g. username already
//     taken — see store.ErrUsernameAlreadyExists).
func (u *userService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" {
		log.Error().Msg("empty username provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if err := u.validatePassword(request); err != nil {
		log.Err(err).Str("username", request.Username).Msg("password policy violation")
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	createdUser, err := u.userRepository.CreateUserWithCart(ctx, models.User{
		Username:     request.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// GetUserByUsername looks up an account by its unique username.
func (u *userService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := u.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return foundUser, nil
}

// GetUserByID looks up an account by its numeric identifier.
func (u *userService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

func (u *userService) validatePassword(request models.CreateUserRequest) error {
	if len(request.Password) < u.minPasswordLength {
		return ErrValidationPasswordTooShort
	}
	if request.Password != request.ConfirmPassword {
		return ErrValidationPasswordMismatch
	}

	return nil
}
