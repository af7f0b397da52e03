// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the HTTP client for the LMS REST backend. The backend is
// an opaque collaborator: it accepts JSON and answers with a
// {success, data|message} envelope. The client never retries on its own -
// screens decide whether an operation is safe to reissue.
package api
