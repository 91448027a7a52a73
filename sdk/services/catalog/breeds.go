// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ListSubBreeds performs GET /breed/{breed}/list and returns the sub-breed
// names. An empty list is not an error: many breeds have no sub-breeds.
func (s *CatalogService) ListSubBreeds(ctx context.Context, breed string) ([]string, error) {
	if breed == "" {
		return nil, errors.New("breed not specified")
	}

	url := s.http.BuildURL("breed/"+breed+"/list", nil)
	b, status, err := s.http.Do(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("list sub-breeds failed (status %d): %w", status, err)
	}

	var resp messageResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		return nil, fmt.Errorf("invalid catalog response: %w", err)
	}
	var subBreeds []string
	if err := json.Unmarshal(resp.Message, &subBreeds); err != nil {
		return nil, fmt.Errorf("invalid sub-breed list: %w", err)
	}
	return subBreeds, nil
}

// RandomImageURL performs GET /breed/{breedPath}/images/random. breedPath is
// either "breed" or "breed/sub-breed", exactly as the catalog routes it.
func (s *CatalogService) RandomImageURL(ctx context.Context, breedPath string) (string, error) {
	if breedPath == "" {
		return "", errors.New("breed path not specified")
	}

	url := s.http.BuildURL("breed/"+breedPath+"/images/random", nil)
	b, status, err := s.http.Do(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("random image failed (status %d): %w", status, err)
	}

	var resp messageResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		return "", fmt.Errorf("invalid catalog response: %w", err)
	}
	var imageURL string
	if err := json.Unmarshal(resp.Message, &imageURL); err != nil {
		return "", fmt.Errorf("invalid image url: %w", err)
	}
	if imageURL == "" {
		return "", errors.New("catalog returned an empty image url")
	}
	return imageURL, nil
}
