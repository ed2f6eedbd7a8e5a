package domain

import "time"

// InviteStatus tracks the lifecycle of a participant invite.
type InviteStatus string

const (
	InvitePending InviteStatus = "pending"
	InviteSent    InviteStatus = "sent"
)

// Invite is a participant invitation to a meeting.
type Invite struct {
	ID           string       `json:"id"`
	MeetingID    string       `json:"meetingId"`
	MeetingTitle string       `json:"meetingTitle"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Moderator    bool         `json:"moderator"`
	Status       InviteStatus `json:"status"`
	CreatedBy    string       `json:"createdBy"`
	CreatedAt    time.Time    `json:"createdAt"`
}
