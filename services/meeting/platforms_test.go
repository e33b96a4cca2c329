package meeting

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLinks(t *testing.T) {
	gen := NewDefaultLinkGenerator()
	ctx := context.Background()

	tests := []struct {
		platform     string
		wantPrefix   string
		wantPassword bool
	}{
		{PlatformZoom, "https://zoom.us/j/", true},
		{PlatformTeams, "https://teams.microsoft.com/l/meetup-join/", false},
		{PlatformGoogleMeet, "https://meet.google.com/", false},
		{PlatformZoho, "https://meetings.zoho.com/", false},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			link, err := gen.Generate(ctx, tt.platform, MeetingDetails{Title: "Sync"})
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(link.Link, tt.wantPrefix), "got %s", link.Link)
			assert.Len(t, link.MeetingID, 10)
			assert.Equal(t, tt.platform, link.Platform)
			if tt.wantPassword {
				assert.Len(t, link.Password, 6)
			} else {
				assert.Empty(t, link.Password)
			}
		})
	}
}

func TestGenerateUnsupportedPlatform(t *testing.T) {
	gen := NewDefaultLinkGenerator()
	_, err := gen.Generate(context.Background(), "webex", MeetingDetails{})
	assert.Error(t, err)
}

func TestPlatformsListsFixedSet(t *testing.T) {
	infos := NewDefaultLinkGenerator().Platforms()
	require.Len(t, infos, 4)
	assert.Equal(t, PlatformZoom, infos[0].Value)
	assert.Equal(t, "Microsoft Teams", infos[1].Name)

	for _, info := range infos {
		assert.True(t, IsSupported(info.Value))
		assert.NotEmpty(t, info.Color)
	}
}
