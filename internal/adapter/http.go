// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-user-config/internal/config"
	"github.com/MKhiriev/go-user-config/internal/logger"
	"github.com/MKhiriev/go-user-config/internal/utils"
	"github.com/MKhiriev/go-user-config/models"
)

const endpointPath = "/userConfig"

type httpUserConfigAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPUserConfigAdapter constructs the HTTP implementation of
// [UserConfigAdapter]. A scheme-less address such as "localhost:8080" is
// treated as plain HTTP.
func NewHTTPUserConfigAdapter(cfg config.ClientAdapter, logger *logger.Logger) (UserConfigAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpUserConfigAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpUserConfigAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpUserConfigAdapter) Create(ctx context.Context, role string, payload models.UserConfigPayload) (models.SuccessResponse, error) {
	return h.mutate(ctx, resty.MethodPost, role, &payload)
}

func (h *httpUserConfigAdapter) Get(ctx context.Context, role string) (models.UserConfig, error) {
	var record models.UserConfig

	req, err := h.request(ctx, role)
	if err != nil {
		return record, err
	}

	resp, err := req.SetResult(&record).Get(endpointPath)
	if err != nil {
		return record, fmt.Errorf("get user config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserConfig{}, err
	}

	record.Role = role
	return record, nil
}

func (h *httpUserConfigAdapter) Update(ctx context.Context, role string, payload models.UserConfigPayload) (models.SuccessResponse, error) {
	return h.mutate(ctx, resty.MethodPatch, role, &payload)
}

func (h *httpUserConfigAdapter) Delete(ctx context.Context, role string) (models.SuccessResponse, error) {
	return h.mutate(ctx, resty.MethodDelete, role, nil)
}

func (h *httpUserConfigAdapter) mutate(ctx context.Context, method, role string, payload *models.UserConfigPayload) (models.SuccessResponse, error) {
	var result models.SuccessResponse

	req, err := h.request(ctx, role)
	if err != nil {
		return result, err
	}
	if payload != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
	}

	resp, err := req.SetResult(&result).Execute(method, endpointPath)
	if err != nil {
		return result, fmt.Errorf("%s user config request: %w", strings.ToLower(method), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SuccessResponse{}, err
	}

	h.logger.Debug().Str("method", method).Str("role", role).Msg(result.Message)
	return result, nil
}

// request prepares an authorized request addressing role via the query.
func (h *httpUserConfigAdapter) request(ctx context.Context, role string) (*resty.Request, error) {
	if role == "" {
		return nil, errEmptyRole
	}

	// results are decoded as JSON whatever Content-Type says
	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("role", role).
		ForceContentType("application/json")
	if h.token != "" {
		req.SetAuthToken(h.token)
	}

	return req, nil
}
