package meeting

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

// Platform identifiers accepted in booking requests.
const (
	PlatformZoom       = "zoom"
	PlatformTeams      = "teams"
	PlatformGoogleMeet = "google-meet"
	PlatformZoho       = "zoho"
)

type platformSpec struct {
	name  string
	color string
	build func(meetingID, password string) string
}

// Display order matters for client pickers, so specs are keyed separately
// from the ordered value list.
var platformOrder = []string{PlatformZoom, PlatformTeams, PlatformGoogleMeet, PlatformZoho}

var platforms = map[string]platformSpec{
	PlatformZoom: {
		name:  "Zoom",
		color: "#2D8CFF",
		build: func(meetingID, password string) string {
			return fmt.Sprintf("https://zoom.us/j/%s?pwd=%s", meetingID, password)
		},
	},
	PlatformTeams: {
		name:  "Microsoft Teams",
		color: "#6264A7",
		build: func(meetingID, _ string) string {
			return "https://teams.microsoft.com/l/meetup-join/" + meetingID
		},
	},
	PlatformGoogleMeet: {
		name:  "Google Meet",
		color: "#00AC47",
		build: func(meetingID, _ string) string {
			return "https://meet.google.com/" + meetingID
		},
	},
	PlatformZoho: {
		name:  "Zoho Meeting",
		color: "#FF6B35",
		build: func(meetingID, _ string) string {
			return "https://meetings.zoho.com/" + meetingID
		},
	},
}

// IsSupported reports whether the platform value is one of the fixed set.
func IsSupported(platform string) bool {
	_, ok := platforms[platform]
	return ok
}

// DisplayName returns the platform's human-readable name, falling back to the
// raw value for unknown platforms.
func DisplayName(platform string) string {
	if spec, ok := platforms[platform]; ok {
		return spec.name
	}
	return platform
}

// BrandColor returns the platform's brand color hex, or empty for unknown
// platforms.
func BrandColor(platform string) string {
	if spec, ok := platforms[platform]; ok {
		return spec.color
	}
	return ""
}

// DefaultLinkGenerator mints provider-shaped links with random identifiers.
// Swapping in real platform API integrations only changes this type.
type DefaultLinkGenerator struct{}

// NewDefaultLinkGenerator creates a LinkGenerator for the fixed platform set.
func NewDefaultLinkGenerator() LinkGenerator {
	return &DefaultLinkGenerator{}
}

// Generate returns a link for the given platform.
func (g *DefaultLinkGenerator) Generate(_ context.Context, platform string, _ MeetingDetails) (*MeetingLink, error) {
	spec, ok := platforms[platform]
	if !ok {
		return nil, fmt.Errorf("unsupported platform: %s", platform)
	}

	meetingID, err := randomToken(10)
	if err != nil {
		return nil, fmt.Errorf("failed to generate meeting id: %w", err)
	}

	link := &MeetingLink{
		MeetingID: meetingID,
		Platform:  platform,
	}
	if platform == PlatformZoom {
		password, err := randomToken(6)
		if err != nil {
			return nil, fmt.Errorf("failed to generate meeting password: %w", err)
		}
		link.Password = password
	}
	link.Link = spec.build(meetingID, link.Password)
	return link, nil
}

// Platforms lists the supported platforms in display order.
func (g *DefaultLinkGenerator) Platforms() []PlatformInfo {
	infos := make([]PlatformInfo, 0, len(platformOrder))
	for _, value := range platformOrder {
		spec := platforms[value]
		infos = append(infos, PlatformInfo{Value: value, Name: spec.name, Color: spec.color})
	}
	return infos
}

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomToken generates a secure random identifier over A-Z0-9.
func randomToken(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = tokenAlphabet[n.Int64()]
	}
	return string(out), nil
}
