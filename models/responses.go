// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body of every failed user-config request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the JSON body of a successful mutating request.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
