// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

const (
	IniName            = ".dogdisk.ini"
	CurrentEnvironment = "current_environment"
	UpdatedEnvKey      = "updated_environment"

	CatalogEndpoint = "catalog_endpoint"
	DiskEndpoint    = "disk_endpoint"
	DiskOAuthToken  = "disk_oauth_token"

	PollIntervalSeconds = "poll_interval_seconds"
	PollMaxAttempts     = "poll_max_attempts"

	ResultsFormat = "results_format"
	ResultsDir    = "results_dir"

	AwsAccessKeyID     = "aws_access_key_id"
	AwsSecretAccessKey = "aws_secret_access_key"
	AwsSessionToken    = "aws_session_token"
	AwsRegion          = "aws_region"
	AwsEndpointURL     = "aws_endpoint_url"
	S3Bucket           = "s3_bucket"
)
