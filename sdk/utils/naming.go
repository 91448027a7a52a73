// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// FilenameFromURL extracts the basename of the URL path, query stripped.
func FilenameFromURL(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid image url: %w", err)
	}
	name := path.Base(parsed.Path)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("url has no file name: %s", rawURL)
	}
	return name, nil
}

// SafeBreedName flattens a slash-joined breed path for use in a file name:
// "terrier/australian" -> "terrier-australian".
func SafeBreedName(breedPath string) string {
	return strings.ReplaceAll(breedPath, "/", "-")
}

// RemoteFileName builds the flattened remote file name:
// breed path "terrier/australian" + ".../n02096294_1234.jpg"
// -> "terrier-australian_n02096294_1234.jpg".
func RemoteFileName(breedPath, imageURL string) (string, error) {
	filename, err := FilenameFromURL(imageURL)
	if err != nil {
		return "", err
	}
	return SafeBreedName(breedPath) + "_" + filename, nil
}

// RemotePath joins a remote folder and file name with the provider separator.
func RemotePath(folder, filename string) string {
	return strings.TrimSuffix(folder, "/") + "/" + filename
}
