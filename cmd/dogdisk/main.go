// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/config"
	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/services/transfer"
	"github.com/scc-digitalhub/dogdisk-cli-sdk/sdk/utils"
)

func main() {
	// .env is optional; real deployments use the INI or exported vars
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := utils.RegisterIniCfgWithViper(); err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	token := viper.GetString(utils.DiskOAuthToken)
	if token == "" {
		logger.Fatal("disk OAuth token is not set",
			zap.String("hint", "export DISK_OAUTH_TOKEN or put disk_oauth_token in ~/"+utils.IniName))
	}

	breed, err := utils.PromptLine(os.Stdin, os.Stdout, "Breed name (e.g. spaniel): ")
	if err != nil {
		logger.Fatal("failed to read breed", zap.Error(err))
	}
	if breed == "" {
		logger.Fatal("breed must not be empty")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf := config.Config{
		Catalog: config.CatalogConfig{
			BaseURL: viper.GetString(utils.CatalogEndpoint),
		},
		Disk: config.DiskConfig{
			BaseURL:         viper.GetString(utils.DiskEndpoint),
			OAuthToken:      token,
			PollInterval:    time.Duration(viper.GetInt(utils.PollIntervalSeconds)) * time.Second,
			MaxPollAttempts: viper.GetInt(utils.PollMaxAttempts),
		},
		S3: config.S3Config{
			AccessKey:   viper.GetString(utils.AwsAccessKeyID),
			SecretKey:   viper.GetString(utils.AwsSecretAccessKey),
			AccessToken: viper.GetString(utils.AwsSessionToken),
			Region:      viper.GetString(utils.AwsRegion),
			EndpointURL: viper.GetString(utils.AwsEndpointURL),
			Bucket:      viper.GetString(utils.S3Bucket),
		},
	}

	svc, err := transfer.NewTransferService(ctx, conf, logger)
	if err != nil {
		logger.Fatal("failed to initialize services", zap.Error(err))
	}

	res, err := svc.Sync(ctx, transfer.SyncRequest{
		Breed:     breed,
		OutputDir: viper.GetString(utils.ResultsDir),
		Format:    viper.GetString(utils.ResultsFormat),
		Progress:  os.Stderr,
	})
	if err != nil {
		logger.Fatal("sync failed", zap.Error(err))
	}

	logger.Info("done",
		zap.String("results_file", res.ResultsFile),
		zap.Int("attempted", res.Attempted),
		zap.Int("uploaded", res.Uploaded))

	if err := utils.UpdateIniSectionFromViper(); err != nil {
		logger.Warn("failed to persist configuration", zap.Error(err))
	}
}
