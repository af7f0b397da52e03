// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model defines the LMS domain types exchanged with the backend:
// students, courses, internships, events, workshops, assignments, and the
// payslip computed locally by the finance screen.
package model
