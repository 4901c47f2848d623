package models

import (
	"time"
)

// UsageStatsDB represents a per-user daily usage aggregate.
// One row per (user, date); both counters only ever increase within
// their period.
type UsageStatsDB struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	UserID       int64     `json:"user_id" db:"user_id"`             // Owning user
	Date         time.Time `json:"date" db:"date"`                   // Day of usage (date precision)
	DailyCount   int       `json:"daily_count" db:"daily_count"`     // Usage count for the day
	MonthlyCount int       `json:"monthly_count" db:"monthly_count"` // Running count within the month
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}
