// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Config passed to the SDK services (no viper/INI here)
type Config struct {
	Catalog CatalogConfig
	Disk    DiskConfig
	S3      S3Config
}

// CatalogConfig points at the public breed catalog API. No auth.
type CatalogConfig struct {
	BaseURL string
}

// DiskConfig points at the cloud storage REST API.
type DiskConfig struct {
	BaseURL    string
	OAuthToken string

	// Bounded polling of asynchronous upload operations.
	PollInterval    time.Duration
	MaxPollAttempts int
}

// S3Config credentials for the optional mirror bucket.
type S3Config struct {
	AccessKey   string
	SecretKey   string
	AccessToken string
	Region      string
	EndpointURL string
	Bucket      string
}

const (
	DefaultPollInterval    = time.Second
	DefaultMaxPollAttempts = 60
)

// WithDefaults fills the polling knobs when the caller left them zero.
func (c DiskConfig) WithDefaults() DiskConfig {
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.MaxPollAttempts <= 0 {
		c.MaxPollAttempts = DefaultMaxPollAttempts
	}
	return c
}
