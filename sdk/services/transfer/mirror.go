// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/utils"
)

// mirrorImage fetches the image over HTTP and puts it to
// s3://{bucket}/{folder}/{remoteName}. The disk transfer is server-side, so
// the mirror is the only path that moves the bytes through this process.
func (s *TransferService) mirrorImage(ctx context.Context, folder, remoteName, imageURL string) error {
	tmp, err := os.CreateTemp("", "dogdisk-mirror-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := utils.DownloadHTTPFile(ctx, imageURL, tmpPath); err != nil {
		return fmt.Errorf("failed to fetch image: %w", err)
	}

	f, err := os.Open(tmpPath)
	if err != nil {
		return err
	}
	defer f.Close()

	key := filepath.ToSlash(filepath.Join(folder, remoteName))
	if err := s.s3.UploadFile(ctx, s.s3Bucket, key, f); err != nil {
		return fmt.Errorf("S3 put failed: %w", err)
	}
	return nil
}
