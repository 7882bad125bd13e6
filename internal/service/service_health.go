// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-config/internal/store"
)

type healthService struct {
	pinger store.Pinger
}

// NewHealthService reports healthy while pinger answers.
func NewHealthService(pinger store.Pinger) HealthService {
	return &healthService{pinger: pinger}
}

func (h *healthService) Check(ctx context.Context) error {
	if err := h.pinger.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreIsNotAvailable, err)
	}

	return nil
}
