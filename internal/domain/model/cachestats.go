package model

import "time"

// CacheStats summarizes the metadata cache tables alongside token
// presence. Token values themselves never appear here.
type CacheStats struct {
	Dirs      int64 // rows in cached_dirs (path -> file_id lookups)
	Files     int64 // non-directory rows in cached_files
	Subdirs   int64 // directory rows in cached_files
	TotalSize int64 // sum of size over non-directory rows, in bytes

	TokenPresent   bool
	TokenUpdatedAt time.Time // zero when unknown
}
