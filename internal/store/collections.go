// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Firestore collection names. Firestore has no DDL: a collection comes into
// existence with its first document, so these constants are the whole
// document-store schema. Other collections of the project's database
// (events, roles, workflows, ...) belong to other services and are never
// touched here.
const (
	CollectionTenants = "tenants"
	CollectionUsers   = "users"
)
