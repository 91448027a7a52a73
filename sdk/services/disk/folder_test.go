// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package disk_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/config"
	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/services/disk"
)

func newService(t *testing.T, handler http.Handler) *disk.DiskService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := disk.NewDiskService(context.Background(), config.Config{
		Disk: config.DiskConfig{
			BaseURL:         server.URL,
			OAuthToken:      "test-token",
			PollInterval:    time.Millisecond,
			MaxPollAttempts: 5,
		},
	})
	if err != nil {
		t.Fatalf("failed to init disk service: %v", err)
	}
	return svc
}

func TestEnsureFolderCreated(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if got := r.URL.Query().Get("path"); got != "terrier" {
			t.Errorf("expected path=terrier, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "OAuth test-token" {
			t.Errorf("unexpected Authorization header: %q", got)
		}
		w.WriteHeader(http.StatusCreated)
	}))

	if err := svc.EnsureFolder(context.Background(), "terrier"); err != nil {
		t.Fatalf("EnsureFolder: %v", err)
	}
}

func TestEnsureFolderAlreadyExists(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Resource already exists"}`))
	}))

	// 409 behaves like 201 so re-runs stay idempotent
	if err := svc.EnsureFolder(context.Background(), "terrier"); err != nil {
		t.Fatalf("expected 409 to be treated as success, got %v", err)
	}
}

func TestEnsureFolderUnauthorized(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Unauthorized"}`))
	}))

	if err := svc.EnsureFolder(context.Background(), "terrier"); err == nil {
		t.Fatal("expected error on 401")
	}
}

func TestEnsureFolderUnexpectedOK(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	if err := svc.EnsureFolder(context.Background(), "terrier"); err == nil {
		t.Fatal("expected error: only 201 and 409 count as success")
	}
}
