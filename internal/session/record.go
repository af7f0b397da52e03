// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"encoding/json"
	"time"
)

// Record is the durable marker of an authenticated admin and when that
// authentication began. IssuedAt is milliseconds since the epoch.
type Record struct {
	SubjectID string `json:"subjectId"`
	Token     string `json:"token"`
	IssuedAt  int64  `json:"issuedAt"`
}

// IssuedTime returns IssuedAt as a time.Time.
func (r Record) IssuedTime() time.Time {
	return time.UnixMilli(r.IssuedAt)
}

// encode serializes the record for storage.
func (r Record) encode() (string, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// decodeRecord parses a stored record. An error means the record is
// malformed and must be treated as absent.
func decodeRecord(value string) (Record, error) {
	var r Record
	if err := json.Unmarshal([]byte(value), &r); err != nil {
		return Record{}, err
	}
	return r, nil
}
