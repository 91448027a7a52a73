// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package disk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// UploadByURL asks the disk to fetch sourceURL server-side and store it at
// remotePath (overwriting). When the response carries an operation href the
// transfer is asynchronous and gets polled to a terminal state.
func (s *DiskService) UploadByURL(ctx context.Context, req UploadRequest) error {
	if req.SourceURL == "" {
		return errors.New("source url not specified")
	}
	if req.RemotePath == "" {
		return errors.New("remote path not specified")
	}

	url := s.http.BuildURL("resources/upload", map[string]string{
		"url":       req.SourceURL,
		"path":      req.RemotePath,
		"overwrite": "true",
	})
	b, status, err := s.http.Do(ctx, "POST", url, nil)
	if err != nil {
		return fmt.Errorf("upload request failed (status %d): %w", status, err)
	}

	var op operationResponse
	if err := json.Unmarshal(b, &op); err != nil {
		return fmt.Errorf("invalid upload response: %w", err)
	}
	if op.Href == "" {
		// synchronous transfer, nothing to poll
		return nil
	}
	return s.pollOperation(ctx, op.Href)
}

// pollOperation polls the operation href until success or failed, waiting
// PollInterval between attempts and giving up after MaxPollAttempts.
func (s *DiskService) pollOperation(ctx context.Context, href string) error {
	for attempt := 0; attempt < s.conf.MaxPollAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.conf.PollInterval):
			}
		}

		b, status, err := s.http.Do(ctx, "GET", href, nil)
		if err != nil {
			return fmt.Errorf("operation status failed (status %d): %w", status, err)
		}

		var op operationStatus
		if err := json.Unmarshal(b, &op); err != nil {
			return fmt.Errorf("invalid operation status: %w", err)
		}

		switch op.Status {
		case OperationSuccess:
			return nil
		case OperationFailed:
			return fmt.Errorf("%w: %s", ErrOperationFailed, string(b))
		}
		// anything else is still pending
	}
	return fmt.Errorf("%w after %d attempts", ErrOperationTimeout, s.conf.MaxPollAttempts)
}
