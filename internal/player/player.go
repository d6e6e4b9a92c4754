// Package player plays one audio file at a time and seeks within it.
package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var ErrUnsupported = errors.New("unsupported file type")

// Player owns the speaker. Methods must be called from one goroutine; the
// speaker's own goroutine is only touched under speaker.Lock.
type Player struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	path     string

	initDone bool
	paused   bool
	finished atomic.Bool

	cooldown time.Duration
	lastSeek time.Time
}

// New returns a player that drops throttled seeks closer together than
// cooldown.
func New(cooldown time.Duration) *Player {
	return &Player{cooldown: cooldown}
}

// Load stops the current file, decodes path and starts playing it.
func (p *Player) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	// (Re)initialize speaker if needed
	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !p.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			return err
		}
		p.initDone = true
	case p.format.SampleRate != format.SampleRate:
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			return err
		}
	default:
		speaker.Clear()
	}
	p.closeCurrent()

	p.file = f
	p.streamer = streamer
	p.format = format
	p.path = path
	p.ctrl = &beep.Ctrl{Streamer: streamer, Paused: false}
	p.paused = false

	p.play()

	return nil
}

func (p *Player) play() {
	p.finished.Store(false)
	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		p.finished.Store(true)
	})))
}

func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
}

// Patterns lists the file patterns Load accepts.
func Patterns() []string {
	return []string{"*.wav", "*.mp3", "*.flac"}
}

func (p *Player) Loaded() bool {
	return p.streamer != nil
}

// Path is the file being played.
func (p *Player) Path() string {
	return p.path
}

func (p *Player) Paused() bool {
	return p.paused
}

// Finished reports whether playback reached the end of the file.
func (p *Player) Finished() bool {
	return p.finished.Load()
}

func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

func (p *Player) Duration() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// Progress is the position as a fraction of the duration.
func (p *Player) Progress() float64 {
	d := p.Duration()
	if d <= 0 {
		return 0
	}
	return float64(p.Position()) / float64(d)
}

// Seek moves to fraction of the file unless the previous seek was less than
// the cooldown ago. It reports whether it seeked.
func (p *Player) Seek(fraction float64) (bool, error) {
	if p.streamer == nil || time.Since(p.lastSeek) < p.cooldown {
		return false, nil
	}
	return true, p.SeekNow(fraction)
}

// SeekNow moves to fraction of the file, ignoring the cooldown.
func (p *Player) SeekNow(fraction float64) error {
	if p.streamer == nil {
		return nil
	}

	speaker.Lock()
	err := p.streamer.Seek(sampleAt(fraction, p.streamer.Len()))
	speaker.Unlock()
	if err != nil {
		return fmt.Errorf("seek: %w", err)
	}

	p.lastSeek = time.Now()
	// The sequence ended with the file, so seeking back needs a new one.
	if p.finished.Load() {
		p.play()
	}
	return nil
}

// sampleAt maps fraction onto a valid sample index of a stream of n samples.
func sampleAt(fraction float64, n int) int {
	if n <= 0 {
		return 0
	}
	pos := int(fraction * float64(n))
	if pos < 0 {
		pos = 0
	}
	if pos >= n {
		pos = n - 1
	}
	return pos
}

// Close stops playback and releases the file.
func (p *Player) Close() {
	if p.initDone {
		speaker.Clear()
	}
	p.closeCurrent()
}

func (p *Player) closeCurrent() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.path = ""
}
