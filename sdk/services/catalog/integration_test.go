// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package catalog_test

import (
	"context"
	"os"
	"testing"

	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/config"
	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/services/catalog"
)

func TestLiveCatalog(t *testing.T) {
	catalogURL := os.Getenv("CATALOG_ENDPOINT")
	if catalogURL == "" {
		t.Skip("Missing CATALOG_ENDPOINT, skipping integration test.")
	}

	ctx := context.Background()

	svc, err := catalog.NewCatalogService(ctx, config.Config{
		Catalog: config.CatalogConfig{BaseURL: catalogURL},
	})
	if err != nil {
		t.Fatalf("failed to init sdk: %v", err)
	}

	subs, err := svc.ListSubBreeds(ctx, "terrier")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(subs) == 0 {
		t.Fatal("expected at least one terrier sub-breed")
	}
	t.Logf("OK, found %d sub-breeds", len(subs))

	url, err := svc.RandomImageURL(ctx, "terrier/"+subs[0])
	if err != nil {
		t.Fatalf("random image failed: %v", err)
	}
	t.Logf("random image: %s", url)
}
