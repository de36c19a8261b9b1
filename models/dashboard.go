package models

import "time"

// Dashboard is returned by GET /dashboard/.
type Dashboard struct {
	Message        string         `json:"message"`
	User           User           `json:"user"`
	Stats          DashboardStats `json:"stats"`
	RecentActivity []Activity     `json:"recent_activity"`
	Notifications  []Notification `json:"notifications"`
}

// DashboardStats summarizes the account.
type DashboardStats struct {
	AccountAgeDays int `json:"account_age_days"`
	// ProfileCompleteness is the percentage (0-100) of optional profile
	// fields that are filled in.
	ProfileCompleteness int        `json:"profile_completeness"`
	TotalLogins         int64      `json:"total_logins"`
	LastLogin           *time.Time `json:"last_login"`
}

type Activity struct {
	Action      string    `json:"action"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
)

type Notification struct {
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
}

// DashboardUpdate is one result of the client's periodic dashboard refresh.
// Err is set when the refresh failed; Dashboard then holds the last good
// value, if any.
type DashboardUpdate struct {
	Dashboard Dashboard
	Err       error
	At        time.Time
}
