package domain

import "time"

// KVEntry is a namespaced key-value record. Writes are last-write-wins.
type KVEntry struct {
	CreatedAt time.Time `json:"created_at"`
	Key       string    `json:"key"`
	Namespace string    `json:"namespace"`
	UpdatedAt time.Time `json:"updated_at"`
	Value     Blob      `json:"value"`
}
