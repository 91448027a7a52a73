// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/services/disk"
	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/utils"
)

// Sync runs the whole breed pipeline:
// - list sub-breeds (bare breed when there are none)
// - ensure the remote folder named after the breed
// - per item: random image URL -> remote upload-by-URL -> optional S3 mirror
// - serialize accumulated results, however partial
// Item errors are logged and skipped; setup errors abort the run.
func (s *TransferService) Sync(ctx context.Context, req SyncRequest) (*SyncResult, error) {
	if req.Breed == "" {
		return nil, errors.New("breed not specified")
	}

	runID := utils.UUIDv4NoDash()
	log := s.logger.With(zap.String("run_id", runID), zap.String("breed", req.Breed))

	log.Info("starting breed sync")

	subBreeds, err := s.catalog.ListSubBreeds(ctx, req.Breed)
	if err != nil {
		return nil, err
	}

	var items []string
	if len(subBreeds) == 0 {
		log.Info("no sub-breeds found, uploading the main breed image")
		items = []string{req.Breed}
	} else {
		log.Info("sub-breeds found", zap.Int("count", len(subBreeds)))
		for _, sub := range subBreeds {
			items = append(items, req.Breed+"/"+sub)
		}
	}

	folder := req.Breed
	if err := s.disk.EnsureFolder(ctx, folder); err != nil {
		return nil, err
	}

	progress := utils.NewItemProgress(req.Progress, "Uploading images", len(items))

	results := []Result{}
	for _, breedPath := range items {
		res, err := s.processItem(ctx, folder, breedPath)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warn("item failed, skipping", zap.String("breed_path", breedPath), zap.Error(err))
		} else {
			results = append(results, res)
			log.Info("uploaded", zap.String("remote_path", res.RemotePath))
		}
		progress.Advance()
	}
	progress.Done()

	file, err := s.writeResults(req, results)
	if err != nil {
		return nil, fmt.Errorf("failed to write results: %w", err)
	}
	log.Info("results saved", zap.String("file", file), zap.Int("uploaded", len(results)))

	return &SyncResult{
		RunID:       runID,
		Breed:       req.Breed,
		Attempted:   len(items),
		Uploaded:    len(results),
		Results:     results,
		ResultsFile: file,
	}, nil
}

func (s *TransferService) processItem(ctx context.Context, folder, breedPath string) (Result, error) {
	imageURL, err := s.catalog.RandomImageURL(ctx, breedPath)
	if err != nil {
		return Result{}, err
	}

	remoteName, err := utils.RemoteFileName(breedPath, imageURL)
	if err != nil {
		return Result{}, err
	}
	remotePath := utils.RemotePath(folder, remoteName)

	if err := s.disk.UploadByURL(ctx, disk.UploadRequest{
		SourceURL:  imageURL,
		RemotePath: remotePath,
	}); err != nil {
		return Result{}, err
	}

	// Mirror is best effort: a failed mirror does not fail the item.
	if s.s3 != nil {
		if err := s.mirrorImage(ctx, folder, remoteName, imageURL); err != nil {
			s.logger.Warn("S3 mirror failed",
				zap.String("breed_path", breedPath), zap.Error(err))
		}
	}

	return Result{
		BreedPath:  breedPath,
		ImageURL:   imageURL,
		RemotePath: remotePath,
	}, nil
}

func resultsFileName(breed, format string) string {
	ext := "json"
	if format == "yaml" {
		ext = "yaml"
	}
	return fmt.Sprintf("%s_results.%s", breed, ext)
}

func resultsFilePath(req SyncRequest) string {
	name := resultsFileName(req.Breed, req.Format)
	if req.OutputDir == "" {
		return name
	}
	return filepath.Join(req.OutputDir, name)
}
