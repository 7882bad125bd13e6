// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server configuration flags from args into a fresh
// flag set, so it can be called more than once per process.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-port listening port used when -a is not set
//	-grpc-address gRPC health server address in format [host]:[port]
//	-request-timeout http server read/write timeout (e.g., "30s", "1m")
//	-driver database driver ("pgx" or "sqlite3")
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token verification key
//	-token-issuer expected token issuer
//	-auth-disabled disable token verification (tests only)
//	-auth-test-uid uid injected while authentication is disabled
//	-hash-passwords store bcrypt digests of passwords
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var port string
	var requestTimeout time.Duration
	var driver string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var authDisabled bool
	var authTestUID string
	var hashPasswords bool

	fs := flag.NewFlagSet("user-config", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&port, "port", "", "Listening port used when -a is not set")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "HTTP server read/write timeout (e.g., 30s, 1m)")
	fs.StringVar(&driver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token verification key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Expected token issuer")
	fs.BoolVar(&authDisabled, "auth-disabled", false, "Disable token verification (tests only)")
	fs.StringVar(&authTestUID, "auth-test-uid", "", "UID injected while authentication is disabled")
	fs.BoolVar(&hashPasswords, "hash-passwords", false, "Store bcrypt digests of passwords")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			AuthDisabled:  authDisabled,
			AuthTestUID:   authTestUID,
			HashPasswords: hashPasswords,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Port:         port,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
