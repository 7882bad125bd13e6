// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-user-config/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UIDCtxKey holds the subject of the verified identity token.
	UIDCtxKey = contextKey("uid")

	// RoleCtxKey holds the resolved collection name of the request.
	RoleCtxKey = contextKey("role")

	// PayloadCtxKey holds the decoded JSON body of a POST or PATCH request.
	PayloadCtxKey = contextKey("payload")
)

// WithUID returns a copy of ctx carrying uid.
func WithUID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, UIDCtxKey, uid)
}

// GetUIDFromContext retrieves the caller uid from the context.
// ok is false when the value is missing, has an unexpected type or is empty.
//
// Example usage:
//
//	uid, ok := utils.GetUIDFromContext(ctx)
//	if !ok {
//	    // the request was not authenticated
//	}
func GetUIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(UIDCtxKey).(string)
	return uid, ok && uid != ""
}

// WithRole returns a copy of ctx carrying role.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetRoleFromContext retrieves the resolved role from the context.
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleCtxKey).(string)
	return role, ok && role != ""
}

// WithPayload returns a copy of ctx carrying the decoded request body.
func WithPayload(ctx context.Context, payload models.UserConfigPayload) context.Context {
	return context.WithValue(ctx, PayloadCtxKey, payload)
}

// GetPayloadFromContext retrieves the decoded request body. A request without
// a body yields an empty payload and ok == false.
func GetPayloadFromContext(ctx context.Context) (models.UserConfigPayload, bool) {
	payload, ok := ctx.Value(PayloadCtxKey).(models.UserConfigPayload)
	return payload, ok
}
