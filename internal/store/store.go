// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

// Well-known keys. The session guard and the form wizards share one store
// but never touch each other's namespace.
const (
	// SessionKey holds the sealed session record.
	SessionKey = "session"

	// DraftKeyPrefix namespaces per-form wizard drafts ("draft:<form>").
	DraftKeyPrefix = "draft:"
)

// DraftKey returns the store key for a named form's draft.
func DraftKey(formID string) string {
	return DraftKeyPrefix + formID
}

// KV is the persistent key-value surface shared by the session guard and
// the form wizards. Get reports absence with the bool, not an error;
// Remove of an absent key is a no-op.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}
