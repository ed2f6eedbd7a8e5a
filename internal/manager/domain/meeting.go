package domain

import "time"

// Meeting is a provisioned room entry in the console. The meeting itself
// lives on the PlugNMeet server; this record tracks ownership and display
// metadata.
type Meeting struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"roomId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
