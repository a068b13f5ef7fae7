// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Words         int
	VocabPath     string
	IdleThreshold time.Duration
	CheckInterval time.Duration
}

// Article is a curated practice text.
type Article struct {
	Title   string `toml:"title"`
	Content string `toml:"content"`
}

// SavedText is a user-supplied practice text kept in the library.
type SavedText struct {
	ID        int64
	Name      string
	Content   string
	CreatedAt time.Time
}
