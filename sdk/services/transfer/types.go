// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import "io"

type SyncRequest struct {
	Breed string

	// OutputDir for the results file; empty means the working directory.
	OutputDir string

	// Format of the results file: "json" (default) or "yaml".
	Format string

	// Progress, when set, receives a single-line item counter (stderr in the CLI).
	Progress io.Writer
}

// Result is one processed breed item, in processing order.
type Result struct {
	BreedPath  string `json:"breed_path"`
	ImageURL   string `json:"image_url"`
	RemotePath string `json:"remote_path"`
}

type SyncResult struct {
	RunID       string
	Breed       string
	Attempted   int
	Uploaded    int
	Results     []Result
	ResultsFile string
}
