// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package userconfig is the managed-function entry point of the user
// configuration endpoint. The platform imports the package and routes every
// request to [UserConfig]; the handler chain is the one the standalone
// server mounts at /userConfig.
package userconfig

import (
	"context"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-user-config/internal/config"
	handlerhttp "github.com/MKhiriev/go-user-config/internal/handler/http"
	"github.com/MKhiriev/go-user-config/internal/logger"
	"github.com/MKhiriev/go-user-config/internal/service"
	"github.com/MKhiriev/go-user-config/internal/store"
)

const failedResponse = `{"error":"Operation failed."}`

var (
	mu      sync.Mutex
	handler http.Handler

	log          = logger.NewLogger("user-config-function")
	buildHandler = newFunctionHandler
)

// UserConfig serves one invocation. Dependencies are built on the first
// call and reused by warm instances; a failed build is retried on the next
// invocation.
func UserConfig(w http.ResponseWriter, r *http.Request) {
	h, err := functionHandler(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("error initializing function")
		handlerhttp.SetCORSHeaders(w.Header())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(failedResponse))
		return
	}

	h.ServeHTTP(w, r)
}

func functionHandler(ctx context.Context) (http.Handler, error) {
	mu.Lock()
	defer mu.Unlock()

	if handler != nil {
		return handler, nil
	}

	h, err := buildHandler(ctx)
	if err != nil {
		return nil, err
	}
	handler = h

	return handler, nil
}

// newFunctionHandler wires the store, services and HTTP handler. The
// storages stay open for the lifetime of the instance.
func newFunctionHandler(ctx context.Context) (http.Handler, error) {
	cfg, err := config.GetFunctionConfig()
	if err != nil {
		return nil, err
	}

	storages, err := store.NewStorages(context.WithoutCancel(ctx), cfg.Storage, log)
	if err != nil {
		return nil, err
	}

	services := service.NewServices(storages, cfg.App, log)

	return handlerhttp.NewHandler(services, log).Function(), nil
}
