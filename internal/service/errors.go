// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrUserConfigNotFound   = errors.New("user config not found")
	ErrHashingPassword      = errors.New("error hashing password")
	ErrUserConfigOperation  = errors.New("user config operation failed")
	ErrStoreIsNotAvailable  = errors.New("document store is not available")
	ErrMissingAuthorization = errors.New("missing or invalid authorization header")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrValidationNoRole                         = errors.New("no role was given")
	ErrValidationNoUID                          = errors.New("no uid was given")
	ErrUnauthorizedAccessToDifferentUserConfigs = errors.New("unauthorized access to user config of a different uid")
)
