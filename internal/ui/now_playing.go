package ui

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/desertthunder/nowplaying/internal/services"
)

const progressWidth = 30

// RenderNowPlaying formats a relay's /currently-playing response.
//
// relayURL is used in the login hint shown for 401 responses.
func RenderNowPlaying(resp *services.APIResponse, relayURL string) string {
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return styles.unauthed.Render("✗ Not authenticated") + "\n" +
			styles.notice.Render(fmt.Sprintf("Run `nowplaying login` or visit %s/login", relayURL))
	case !resp.OK():
		return styles.failure.Render(fmt.Sprintf("✗ Relay returned %d", resp.StatusCode)) + "\n" +
			styles.notice.Render(strings.TrimSpace(string(resp.Body)))
	case !resp.IsJSON:
		return styles.notice.Render(strings.TrimSpace(string(resp.Body)))
	}

	cp, err := services.DecodeCurrentlyPlaying(resp.Body)
	if err != nil {
		return styles.failure.Render("✗ " + err.Error())
	}

	return RenderPlayback(cp)
}

// RenderPlayback formats a decoded playback state.
func RenderPlayback(cp *services.SpotifyCurrentlyPlaying) string {
	if cp.Item == nil {
		kind := cp.CurrentlyPlayingType
		if kind == "" {
			kind = "unknown"
		}
		return styles.notice.Render(fmt.Sprintf("Playing an item of type %q", kind))
	}

	var b strings.Builder

	status := styles.playing.Render("▶ Playing")
	if !cp.IsPlaying {
		status = styles.paused.Render("⏸ Paused")
	}

	b.WriteString(status + "\n")
	b.WriteString(styles.track.Render(cp.Item.Name) + "\n")
	if artists := cp.Item.ArtistNames(); artists != "" {
		b.WriteString(styles.artist.Render(artists) + "\n")
	}
	if cp.Item.Album.Name != "" {
		b.WriteString(styles.album.Render(cp.Item.Album.Name) + "\n")
	}
	b.WriteString(fmt.Sprintf("%s %s %s",
		FormatDuration(cp.ProgressMS),
		styles.ProgressBar(cp.ProgressMS, cp.Item.DurationMS, progressWidth),
		FormatDuration(cp.Item.DurationMS),
	))

	return b.String()
}

// FormatDuration renders milliseconds as m:ss.
func FormatDuration(ms int) string {
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
