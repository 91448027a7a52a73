// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package disk

import "errors"

// Terminal states of an asynchronous upload operation.
const (
	OperationSuccess = "success"
	OperationFailed  = "failed"
)

var (
	// ErrOperationFailed wraps the provider payload of a failed operation.
	ErrOperationFailed = errors.New("disk: upload operation failed")

	// ErrOperationTimeout is returned when an operation is still pending
	// after MaxPollAttempts polls.
	ErrOperationTimeout = errors.New("disk: upload operation timed out")
)

type UploadRequest struct {
	SourceURL  string
	RemotePath string
}

// operationResponse is the body of POST /resources/upload; href points at the
// operation status resource when the transfer is asynchronous.
type operationResponse struct {
	Href string `json:"href"`
}

type operationStatus struct {
	Status string `json:"status"`
}
