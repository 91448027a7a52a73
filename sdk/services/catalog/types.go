// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package catalog

import "encoding/json"

// The catalog wraps every payload in {"message": ..., "status": ...};
// message is a list for /list and a plain URL string for /images/random.
type messageResponse struct {
	Message json.RawMessage `json:"message"`
	Status  string          `json:"status"`
}
