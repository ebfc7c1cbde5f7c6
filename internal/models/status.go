package models

import "time"

// SyncStatus is the process-wide sync state shown to the UI.
// It is never persisted: on restart it is rebuilt from the outbox pending
// count and the credential store.
type SyncStatus struct {
	LastSyncAt     *time.Time `json:"last_sync_at"`
	LastError      string     `json:"last_error,omitempty"`
	PendingCount   int        `json:"pending_count"`
	IsOnline       bool       `json:"is_online"`
	HasCredentials bool       `json:"has_credentials"`
	Syncing        bool       `json:"syncing"`
}

// Connected reports whether a sync cycle may run.
func (s SyncStatus) Connected() bool {
	return s.IsOnline && s.HasCredentials
}

// StatusUpdate частичное обновление SyncStatus: nil поля не меняются
type StatusUpdate struct {
	IsOnline       *bool
	HasCredentials *bool
	Syncing        *bool
	LastSyncAt     *time.Time
	PendingCount   *int
	LastError      *string
}

// Apply merges u into s and returns the result.
func (s SyncStatus) Apply(u StatusUpdate) SyncStatus {
	if u.IsOnline != nil {
		s.IsOnline = *u.IsOnline
	}
	if u.HasCredentials != nil {
		s.HasCredentials = *u.HasCredentials
	}
	if u.Syncing != nil {
		s.Syncing = *u.Syncing
	}
	if u.LastSyncAt != nil {
		t := *u.LastSyncAt
		s.LastSyncAt = &t
	}
	if u.PendingCount != nil {
		s.PendingCount = *u.PendingCount
	}
	if u.LastError != nil {
		s.LastError = *u.LastError
	}
	return s
}

// Ptr returns a pointer to v. Handy for building a StatusUpdate.
func Ptr[T any](v T) *T {
	return &v
}

// Credentials адрес и ключ удаленного backend
type Credentials struct {
	URL string `json:"url" mapstructure:"url"`
	Key string `json:"key" mapstructure:"key"`
}

// Complete reports whether both URL and key are set.
func (c Credentials) Complete() bool {
	return c.URL != "" && c.Key != ""
}
