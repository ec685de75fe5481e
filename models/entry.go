package models

import "time"

// Entry represents a single key-value record stored by the service.
// The key is unique; writes to an existing key replace its value.
type Entry struct {
	// Key is the unique identifier of the record.
	Key string `json:"key"`

	// Value is the stored payload. The service treats it as an opaque
	// string; clients decide on its internal format.
	Value string `json:"value"`

	// CreatedAt is the timestamp when the key was first written.
	CreatedAt time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the timestamp of the most recent write to the key.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Entry model.
func (e Entry) TableName() string {
	return "kv"
}
