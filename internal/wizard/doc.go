// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package wizard drives resumable multi-step data-entry forms. A form is
// a static ordered list of steps over a declared field set; the in-flight
// draft is persisted to the shared key-value store on every mutation so
// an interrupted session picks up exactly where it left off. Submission
// is atomic: the draft is cleared only after the backend accepts it.
package wizard
