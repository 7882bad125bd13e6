// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client calls the user-config endpoint.
//
//	client -op create -role customers -data '{"firstName":"Ann","email":"a@x.io"}'
//	client -op get -role customers
//
// The target and credentials come from ADAPTER_* and APP_TOKEN_* variables
// or the CONFIG file. Without ADAPTER_TOKEN a token for ADAPTER_SUBJECT is
// signed locally with APP_TOKEN_SIGN_KEY.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-user-config/internal/adapter"
	"github.com/MKhiriev/go-user-config/internal/config"
	"github.com/MKhiriev/go-user-config/internal/logger"
	"github.com/MKhiriev/go-user-config/internal/utils"
	"github.com/MKhiriev/go-user-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUnknownOperation = errors.New("unknown operation")

func main() {
	op := flag.String("op", "get", "operation: create, get, update or delete")
	role := flag.String("role", "", "user-config role (collection)")
	data := flag.String("data", "", "JSON body for create and update")
	version := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *version {
		info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
			info.BuildVersion(), info.BuildDate(), info.BuildCommit())
		return
	}

	log := logger.NewConsoleLogger("user-config-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	userConfigAdapter, err := adapter.NewHTTPUserConfigAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create adapter")
	}

	token, err := bearerToken(cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("create token")
	}
	userConfigAdapter.SetToken(token)

	result, err := run(context.Background(), userConfigAdapter, *op, *role, *data)
	if err != nil {
		log.Fatal().Err(err).Str("op", *op).Msg("request failed")
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("encode result")
	}
	_, _ = fmt.Fprintln(os.Stdout, string(out))
}

func bearerToken(auth config.ClientAuth) (string, error) {
	if auth.Token != "" {
		return auth.Token, nil
	}

	token, err := utils.GenerateJWTToken(auth.Issuer, auth.Subject, auth.Duration, auth.SignKey)
	if err != nil {
		return "", err
	}

	return token.String(), nil
}

func run(ctx context.Context, a adapter.UserConfigAdapter, op, role, data string) (any, error) {
	var payload models.UserConfigPayload
	if data != "" {
		if err := json.Unmarshal([]byte(data), &payload); err != nil {
			return nil, fmt.Errorf("parse -data: %w", err)
		}
	}
	// the body role is what the endpoint falls back to
	if role == "" && payload.Role != nil {
		role = *payload.Role
	}

	var (
		result any
		err    error
	)
	switch op {
	case "create":
		result, err = a.Create(ctx, role, payload)
	case "get":
		result, err = a.Get(ctx, role)
	case "update":
		result, err = a.Update(ctx, role, payload)
	case "delete":
		result, err = a.Delete(ctx, role)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownOperation, op)
	}

	return result, err
}
