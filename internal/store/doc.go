// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides the durable client-local key-value store backing
// the admin console. It is the Go analogue of browser local storage: a
// dumb keyed string surface with no ownership or transactional semantics.
//
// Two implementations exist: a SQLite-backed store used by the running
// console (state survives restarts) and an in-memory store used by tests.
// Callers partition the keyspace by convention - the session guard owns
// the "session" key, each wizard owns one "draft:<form>" key.
package store
