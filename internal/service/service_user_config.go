// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-user-config/internal/config"
	"github.com/MKhiriev/go-user-config/internal/logger"
	"github.com/MKhiriev/go-user-config/internal/store"
	"github.com/MKhiriev/go-user-config/models"
)

// userConfigService is the concrete implementation of UserConfigService.
//
// Email and password are mutually exclusive: a provided email always wins
// and the password of the same request is ignored.
type userConfigService struct {
	userConfigRepository store.UserConfigRepository

	// hashPasswords makes the service store bcrypt digests instead of raw
	// password values.
	hashPasswords bool

	logger *logger.Logger
}

// NewUserConfigService constructs a UserConfigService over the given
// repository.
func NewUserConfigService(userConfigRepository store.UserConfigRepository, cfg config.App, logger *logger.Logger) UserConfigService {
	return &userConfigService{
		userConfigRepository: userConfigRepository,
		hashPasswords:        cfg.HashPasswords,
		logger:               logger,
	}
}

func (s *userConfigService) Create(ctx context.Context, key models.UserConfigKey, payload models.UserConfigPayload) error {
	log := logger.FromContext(ctx)

	record := models.UserConfig{
		Role:        key.Role,
		UID:         key.UID,
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		PhoneNumber: payload.PhoneNumber,
	}

	if models.Provided(payload.Email) {
		record.Email = payload.Email
	} else {
		password, err := s.password(payload.Password)
		if err != nil {
			log.Err(err).Str("func", "*userConfigService.Create").Msg("error hashing password")
			return err
		}
		record.Password = password
	}

	if err := s.userConfigRepository.Set(ctx, record); err != nil {
		log.Err(err).Str("func", "*userConfigService.Create").Str("role", key.Role).Msg("user config creation ended with error")
		return fmt.Errorf("%w: %w", ErrUserConfigOperation, err)
	}

	return nil
}

func (s *userConfigService) Get(ctx context.Context, key models.UserConfigKey) (models.UserConfig, error) {
	log := logger.FromContext(ctx)

	record, found, err := s.userConfigRepository.Get(ctx, key)
	if err != nil {
		log.Err(err).Str("func", "*userConfigService.Get").Str("role", key.Role).Msg("user config lookup ended with error")
		return models.UserConfig{}, fmt.Errorf("%w: %w", ErrUserConfigOperation, err)
	}
	if !found {
		return models.UserConfig{}, ErrUserConfigNotFound
	}

	return record, nil
}

func (s *userConfigService) Update(ctx context.Context, key models.UserConfigKey, payload models.UserConfigPayload) error {
	log := logger.FromContext(ctx)

	update, err := s.buildUpdate(payload)
	if err != nil {
		log.Err(err).Str("func", "*userConfigService.Update").Msg("error hashing password")
		return err
	}

	err = s.userConfigRepository.Update(ctx, key, update)
	if errors.Is(err, store.ErrUserConfigNotFound) {
		return ErrUserConfigNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userConfigService.Update").Str("role", key.Role).Msg("user config update ended with error")
		return fmt.Errorf("%w: %w", ErrUserConfigOperation, err)
	}

	return nil
}

func (s *userConfigService) Delete(ctx context.Context, key models.UserConfigKey) error {
	log := logger.FromContext(ctx)

	if err := s.userConfigRepository.Delete(ctx, key); err != nil {
		log.Err(err).Str("func", "*userConfigService.Delete").Str("role", key.Role).Msg("user config deletion ended with error")
		return fmt.Errorf("%w: %w", ErrUserConfigOperation, err)
	}

	return nil
}

// buildUpdate keeps only provided fields. A provided email leaves the stored
// password untouched; otherwise a provided password replaces it.
func (s *userConfigService) buildUpdate(payload models.UserConfigPayload) (models.UserConfigUpdate, error) {
	var update models.UserConfigUpdate

	if models.Provided(payload.FirstName) {
		update.FirstName = payload.FirstName
	}
	if models.Provided(payload.LastName) {
		update.LastName = payload.LastName
	}
	if models.Provided(payload.PhoneNumber) {
		update.PhoneNumber = payload.PhoneNumber
	}

	switch {
	case models.Provided(payload.Email):
		update.Email = payload.Email
	case models.Provided(payload.Password):
		password, err := s.password(payload.Password)
		if err != nil {
			return models.UserConfigUpdate{}, err
		}
		update.Password = password
	}

	return update, nil
}

// password returns the value to persist for a password field.
func (s *userConfigService) password(password *string) (*string, error) {
	if !s.hashPasswords || !models.Provided(password) {
		return password, nil
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	hashed := string(digest)
	return &hashed, nil
}
