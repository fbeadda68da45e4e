// Package ui renders relay responses for the terminal using lipgloss styles.
//
// [Palette] holds the named styles. [RenderNowPlaying] turns a /currently-playing response from a relay
// into a short human-readable block: the track and artists with a progress line, the "nothing playing"
// notice, or a hint to run the login command.
package ui
