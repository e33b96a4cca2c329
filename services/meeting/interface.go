package meeting

import (
	"context"
	"time"
)

// MeetingDetails carries the metadata a platform needs to mint a link.
type MeetingDetails struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Attendees []string
}

// MeetingLink is an opaque joinable URL plus its platform identifiers.
type MeetingLink struct {
	Link      string `json:"link"`
	MeetingID string `json:"meetingId"`
	Password  string `json:"password,omitempty"`
	Platform  string `json:"platform"`
}

// PlatformInfo describes a supported platform for client pickers.
type PlatformInfo struct {
	Value string `json:"value"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// LinkGenerator mints joinable meeting links for the fixed platform set.
type LinkGenerator interface {
	// Generate returns a link for the given platform, or an error when the
	// platform is not supported.
	Generate(ctx context.Context, platform string, details MeetingDetails) (*MeetingLink, error)
	// Platforms lists the supported platforms.
	Platforms() []PlatformInfo
}
