// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestPromptLine(t *testing.T) {
	var out bytes.Buffer
	got, err := PromptLine(strings.NewReader("  Spaniel \n"), &out, "Breed: ")
	if err != nil {
		t.Fatalf("PromptLine: %v", err)
	}
	if got != "spaniel" {
		t.Errorf("expected trimmed lowercase input, got %q", got)
	}
	if out.String() != "Breed: " {
		t.Errorf("prompt not written: %q", out.String())
	}
}

func TestPromptLineEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := PromptLine(strings.NewReader("pug"), &out, "> ")
	if err != nil {
		t.Fatalf("PromptLine on EOF without newline: %v", err)
	}
	if got != "pug" {
		t.Errorf("got %q", got)
	}
}

func TestPrettyJSON(t *testing.T) {
	out := PrettyJSON([]byte(`{"a":1}`))
	if !strings.Contains(out, "\n    \"a\": 1") {
		t.Errorf("unexpected indent: %q", out)
	}
	// invalid input falls back to the raw bytes
	if got := PrettyJSON([]byte("not-json")); got != "not-json" {
		t.Errorf("fallback = %q", got)
	}
}
