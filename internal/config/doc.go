// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the lms-admin console.
//
// Settings come from three layers, later layers winning:
//   - built-in defaults
//   - ~/.lms-admin/config.toml
//   - LMS_ADMIN_* environment variables
//
// A Watcher can additionally hot-reload the file while the console runs.
package config
