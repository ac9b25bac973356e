package models

import "time"

// Profile mirrors the remote per-user profile row. There is exactly one per
// user, created server-side on signup. Locally it is flattened into the meta
// key/value store rather than a table of its own.
type Profile struct {
	ID            string
	FirstName     string
	LastName      string
	XP            int
	Level         int
	CurrentLeague string
	WeeklyXP      int
	UpdatedAt     time.Time
}

// LevelUpEntry records the moment the user reached a level. Append-only.
type LevelUpEntry struct {
	Level      int
	UnlockedAt time.Time
}

// Achievement records an unlocked achievement, unique per achievement id for
// a given user. Append-only.
type Achievement struct {
	AchievementID string
	UnlockedAt    time.Time
}
