// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import "testing"

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{"https://images.dog.ceo/breeds/terrier-australian/n02096294_1234.jpg", "n02096294_1234.jpg", false},
		{"https://images.dog.ceo/breeds/pug/n02110958_7.jpg?width=640", "n02110958_7.jpg", false},
		{"https://example.com/", "", true},
		{"://bad", "", true},
	}

	for _, tt := range tests {
		got, err := FilenameFromURL(tt.url)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FilenameFromURL(%q): expected error", tt.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("FilenameFromURL(%q): %v", tt.url, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FilenameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestSafeBreedName(t *testing.T) {
	if got := SafeBreedName("terrier/australian"); got != "terrier-australian" {
		t.Errorf("SafeBreedName = %q", got)
	}
	if got := SafeBreedName("vizsla"); got != "vizsla" {
		t.Errorf("SafeBreedName = %q", got)
	}
}

func TestRemoteFileName(t *testing.T) {
	got, err := RemoteFileName("terrier/australian",
		"https://images.dog.ceo/breeds/terrier-australian/n02096294_1234.jpg")
	if err != nil {
		t.Fatalf("RemoteFileName: %v", err)
	}
	if got != "terrier-australian_n02096294_1234.jpg" {
		t.Errorf("RemoteFileName = %q", got)
	}
}

func TestRemotePath(t *testing.T) {
	if got := RemotePath("terrier", "terrier-australian_x.jpg"); got != "terrier/terrier-australian_x.jpg" {
		t.Errorf("RemotePath = %q", got)
	}
	if got := RemotePath("terrier/", "x.jpg"); got != "terrier/x.jpg" {
		t.Errorf("RemotePath with trailing slash = %q", got)
	}
}
