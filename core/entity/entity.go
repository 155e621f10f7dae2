package entity

import "time"

// BaseEntity carries the fields shared by every stored record. Identifiers
// are per-type serials assigned by the store, starting at 1.
type BaseEntity struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
