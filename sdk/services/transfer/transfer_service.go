// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/config"
	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/services/catalog"
	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/services/disk"
)

// breedCatalog is the slice of the catalog service the transfer loop needs.
type breedCatalog interface {
	ListSubBreeds(ctx context.Context, breed string) ([]string, error)
	RandomImageURL(ctx context.Context, breedPath string) (string, error)
}

// diskStore is the slice of the disk service the transfer loop needs.
type diskStore interface {
	EnsureFolder(ctx context.Context, name string) error
	UploadByURL(ctx context.Context, req disk.UploadRequest) error
}

type TransferService struct {
	catalog  breedCatalog
	disk     diskStore
	s3       *config.S3Client
	s3Bucket string
	logger   *zap.Logger
}

func NewTransferService(ctx context.Context, conf config.Config, logger *zap.Logger) (*TransferService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cat, err := catalog.NewCatalogService(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("catalog init failed: %w", err)
	}

	dsk, err := disk.NewDiskService(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("disk init failed: %w", err)
	}

	svc := &TransferService{catalog: cat, disk: dsk, logger: logger}

	// S3 mirror is optional; only wired when a bucket is configured.
	if conf.S3.Bucket != "" {
		s3c, err := config.NewS3Client(ctx, conf.S3)
		if err != nil {
			return nil, fmt.Errorf("S3 init failed: %w", err)
		}
		svc.s3 = s3c
		svc.s3Bucket = conf.S3.Bucket
	}

	return svc, nil
}
