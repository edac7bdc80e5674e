package model

import "time"

// TokenPair holds the cached 115 Open Platform credentials. The external
// client process owns the pair; this repo only ever reads it.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	// UpdatedAt is when the writer last refreshed the pair. Zero when the
	// store predates the updated_at column or the value is unparseable.
	UpdatedAt time.Time
}
