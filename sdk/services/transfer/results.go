// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"encoding/json"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/utils"
)

// writeResults serializes the accumulated records, overwriting any previous
// run. JSON is pretty-printed with 4-space indent; yaml goes through the
// JSON tags so field names stay identical across formats.
func (s *TransferService) writeResults(req SyncRequest, results []Result) (string, error) {
	data, err := json.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}

	if req.Format == "yaml" {
		data, err = yaml.JSONToYAML(data)
		if err != nil {
			return "", fmt.Errorf("json to yaml failed: %w", err)
		}
	} else {
		data = append([]byte(utils.PrettyJSON(data)), '\n')
	}

	file := resultsFilePath(req)
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return "", err
	}
	return file, nil
}
