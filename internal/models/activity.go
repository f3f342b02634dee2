package models

import "time"

// ActivityLog is an audit entry written by the frontend.
type ActivityLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Details   *string   `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// NewActivity is the body of POST /activity/log.
type NewActivity struct {
	UserID   string  `json:"user_id" binding:"required"`
	Username string  `json:"username" binding:"required"`
	Action   string  `json:"action" binding:"required"`
	Details  *string `json:"details"`
}
