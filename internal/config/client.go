// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Client holds configuration for the outbound HTTP client used by cmd/client.
type Client struct {
	// HTTPAddress is the base address of the shop server, in "host:port"
	// format or as a full URL.
	// Env: CLIENT_ADDRESS
	HTTPAddress string `env:"CLIENT_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "15s").
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"CLIENT_REQUEST_TIMEOUT"`
}

// GetClientConfig loads the client configuration from environment variables
// and fills in defaults for anything left unset.
func GetClientConfig() (*Client, error) {
	cfg := &Client{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.HTTPAddress == "" {
		cfg.HTTPAddress = "localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	return cfg, nil
}
