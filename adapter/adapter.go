// Package adapter lets an AudioPlayer that only understands MP3 play VLC
// files by delegating them through a MediaAdapter to a VLCPlayer.
package adapter

import (
	"fmt"
	"io"
	"strings"
)

// Audio types understood by the players.
const (
	TypeMP3 = "mp3"
	TypeVLC = "vlc"
)

// MediaPlayer plays fileName of the given audioType.
type MediaPlayer interface {
	Play(audioType, fileName string)
}

// VLCPlayer is the adaptee: it plays anything handed to it as VLC.
type VLCPlayer struct {
	out io.Writer
}

// NewVLCPlayer returns a VLCPlayer writing to w.
func NewVLCPlayer(w io.Writer) *VLCPlayer {
	return &VLCPlayer{out: w}
}

// Play implements MediaPlayer.
func (p *VLCPlayer) Play(_, fileName string) {
	fmt.Fprintf(p.out, "Playing VLC file: %s\n", fileName)
}

// MediaAdapter exposes a VLCPlayer through MediaPlayer and rejects
// everything that is not VLC.
type MediaAdapter struct {
	out io.Writer
	vlc *VLCPlayer
}

// NewMediaAdapter returns an adapter wrapping a fresh VLCPlayer.
func NewMediaAdapter(w io.Writer) *MediaAdapter {
	return &MediaAdapter{out: w, vlc: NewVLCPlayer(w)}
}

// Play implements MediaPlayer. audioType is matched case-insensitively.
func (a *MediaAdapter) Play(audioType, fileName string) {
	if strings.EqualFold(audioType, TypeVLC) {
		a.vlc.Play(audioType, fileName)
		return
	}
	fmt.Fprintln(a.out, "Invalid media type. VLC player can only play VLC files.")
}

// AudioPlayer plays MP3 natively and VLC through a MediaAdapter.
type AudioPlayer struct {
	out io.Writer
}

// NewAudioPlayer returns an AudioPlayer writing to w.
func NewAudioPlayer(w io.Writer) *AudioPlayer {
	return &AudioPlayer{out: w}
}

// Play implements MediaPlayer.
func (p *AudioPlayer) Play(audioType, fileName string) {
	switch {
	case strings.EqualFold(audioType, TypeMP3):
		fmt.Fprintf(p.out, "Playing MP3 file: %s\n", fileName)
	case strings.EqualFold(audioType, TypeVLC):
		NewMediaAdapter(p.out).Play(audioType, fileName)
	default:
		fmt.Fprintln(p.out, "Invalid media type. Only MP3 and VLC formats are supported.")
	}
}

// Demo plays an mp3, a vlc and an unsupported mp4 file.
func Demo(w io.Writer) error {
	player := NewAudioPlayer(w)
	player.Play("mp3", "song.mp3")
	player.Play("vlc", "video.vlc")
	player.Play("mp4", "movie.mp4")

	return nil
}
