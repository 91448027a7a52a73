// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

func TestWriteAndUpdateIniFromStruct(t *testing.T) {
	iniPath := filepath.Join(t.TempDir(), IniName)

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set(CatalogEndpoint, "https://dog.ceo/api")
	viper.Set(DiskOAuthToken, "tok-1")

	if err := WriteIniFromStruct(iniPath, "default"); err != nil {
		t.Fatalf("WriteIniFromStruct: %v", err)
	}

	cfg, err := ini.Load(iniPath)
	if err != nil {
		t.Fatalf("load written ini: %v", err)
	}
	if got := cfg.Section("default").Key(DiskOAuthToken).String(); got != "tok-1" {
		t.Errorf("expected persisted token, got %q", got)
	}
	if got := cfg.Section("DEFAULT").Key(CurrentEnvironment).String(); got != "default" {
		t.Errorf("expected current_environment=default, got %q", got)
	}

	// a later run picked up a fresh token from the environment
	viper.Set(DiskOAuthToken, "tok-2")
	if err := UpdateIniFromStruct(iniPath, "default"); err != nil {
		t.Fatalf("UpdateIniFromStruct: %v", err)
	}

	cfg, err = ini.Load(iniPath)
	if err != nil {
		t.Fatalf("reload ini: %v", err)
	}
	if got := cfg.Section("default").Key(DiskOAuthToken).String(); got != "tok-2" {
		t.Errorf("expected updated token, got %q", got)
	}

	ts := cfg.Section("default").Key(UpdatedEnvKey).String()
	if ts == "" {
		t.Fatal("expected refresh timestamp after update")
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("refresh timestamp not RFC3339: %q", ts)
	}
}

func TestUpdateIniFromStructBootstrapsMissingFile(t *testing.T) {
	iniPath := filepath.Join(t.TempDir(), IniName)

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set(DiskEndpoint, "https://cloud-api.yandex.net/v1/disk")

	// missing file falls back to a full write
	if err := UpdateIniFromStruct(iniPath, "staging"); err != nil {
		t.Fatalf("UpdateIniFromStruct on missing file: %v", err)
	}

	cfg, err := ini.Load(iniPath)
	if err != nil {
		t.Fatalf("load ini: %v", err)
	}
	if got := cfg.Section("staging").Key(DiskEndpoint).String(); got == "" {
		t.Error("expected disk_endpoint in bootstrapped section")
	}
}
