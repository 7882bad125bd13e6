// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified caller of a request.
//
// UID is the subject ("sub") of the identity token and is used as the
// document id of the caller's user config.
type Identity struct {
	// Token is the parsed JWT. It is nil for identities injected by the
	// auth bypass mode.
	*jwt.Token `json:"-"`

	// UID is the stable subject identifier of the caller.
	UID string `json:"uid"`
}

// Token wraps a freshly signed JWT.
type Token struct {
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact serialized token.
func (t Token) String() string {
	return t.SignedString
}
