// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package disk

import (
	"context"
	"errors"

	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/config"
)

type DiskService struct {
	http config.RestHTTP
	conf config.DiskConfig
}

func NewDiskService(_ context.Context, conf config.Config) (*DiskService, error) {
	if conf.Disk.BaseURL == "" {
		return nil, errors.New("invalid disk config")
	}
	if conf.Disk.OAuthToken == "" {
		return nil, errors.New("missing disk OAuth token")
	}
	dc := conf.Disk.WithDefaults()
	return &DiskService{
		http: config.NewHTTPRest(nil, config.RestConfig{
			BaseURL:    dc.BaseURL,
			AuthScheme: "OAuth",
			AuthToken:  dc.OAuthToken,
		}),
		conf: dc,
	}, nil
}
