// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package disk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// EnsureFolder performs PUT /resources?path={name}. 201 means created and 409
// means it already exists; both make re-runs idempotent.
func (s *DiskService) EnsureFolder(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("folder name not specified")
	}

	url := s.http.BuildURL("resources", map[string]string{"path": name})
	_, status, err := s.http.Do(ctx, "PUT", url, nil)
	if status == http.StatusCreated || status == http.StatusConflict {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create folder failed (status %d): %w", status, err)
	}
	return fmt.Errorf("create folder: unexpected status %d", status)
}
