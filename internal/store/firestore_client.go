// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/MKhiriev/timeline/internal/config"
	"github.com/MKhiriev/timeline/internal/logger"
	"google.golang.org/api/option"
)

const (
	// EmulatorHostEnv points the Firestore SDK at a local emulator.
	EmulatorHostEnv = "FIRESTORE_EMULATOR_HOST"

	emulatorProjectID = "demo-timeline"
)

// NewFirestoreClient builds a Firestore client from the service-account
// credentials in cfg. No request is sent here; the first repository call or
// Ping opens the connection.
//
// When FIRESTORE_EMULATOR_HOST is set the SDK talks to the emulator without
// authentication and the credentials are only used to read the project ID.
func NewFirestoreClient(ctx context.Context, cfg config.Firestore, log *logger.Logger) (*firestore.Client, error) {
	emulator := os.Getenv(EmulatorHostEnv) != ""

	projectID, opts, err := firestoreClientOptions(cfg, emulator)
	if err != nil {
		log.Err(err).Str("func", "NewFirestoreClient").Msg("invalid firestore credentials")
		return nil, err
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewFirestoreClient").Msg("error creating firestore client")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	log.Info().
		Str("func", "NewFirestoreClient").
		Str("project_id", projectID).
		Bool("emulator", emulator).
		Msg("firestore client created")

	return client, nil
}

// firestoreClientOptions resolves the project ID and the client options.
// The inline key wins over the key file. The project ID is taken from cfg,
// then from the credentials, then detected by the SDK.
func firestoreClientOptions(cfg config.Firestore, emulator bool) (string, []option.ClientOption, error) {
	credentials, err := readServiceAccount(cfg)
	if err != nil {
		return "", nil, err
	}
	if credentials == nil && !emulator {
		return "", nil, config.ErrMissingFirebaseCredentials
	}

	projectID := cfg.ProjectID
	if projectID == "" && credentials != nil {
		var key struct {
			ProjectID string `json:"project_id"`
		}
		if err = json.Unmarshal(credentials, &key); err != nil {
			return "", nil, fmt.Errorf("%w: %w", config.ErrInvalidFirebaseCredentials, err)
		}
		projectID = key.ProjectID
	}

	if emulator {
		if projectID == "" {
			projectID = emulatorProjectID
		}
		return projectID, nil, nil
	}

	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	return projectID, []option.ClientOption{option.WithCredentialsJSON(credentials)}, nil
}

func readServiceAccount(cfg config.Firestore) ([]byte, error) {
	if key := cfg.ServiceAccountKey.Reveal(); key != "" {
		return []byte(key), nil
	}
	if cfg.ServiceAccountPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(cfg.ServiceAccountPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidFirebaseCredentials, err)
	}
	return data, nil
}
