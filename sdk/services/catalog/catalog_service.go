// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"errors"

	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/config"
)

type CatalogService struct {
	http config.RestHTTP
}

func NewCatalogService(_ context.Context, conf config.Config) (*CatalogService, error) {
	if conf.Catalog.BaseURL == "" {
		return nil, errors.New("invalid catalog config")
	}
	return &CatalogService{
		http: config.NewHTTPRest(nil, config.RestConfig{BaseURL: conf.Catalog.BaseURL}),
	}, nil
}
