// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the timeline service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON or YAML config file (-c / CONFIG)
//  3. .env file (-env-file / DOTENV_PATH, default ".env")
//  4. Environment variables
//  5. Command-line flags
//
// The merged result is validated once; the entry point treats any error as
// fatal. The main entry point is [GetStructuredConfig].
package config
