package asset

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/humblebee/constants"
)

// SynthFunc renders a built-in sound by name at the given format.
// The returned streamer must be finite unless the sound loops
type SynthFunc func(name string, format beep.Format) (beep.Streamer, error)

// Sound is a fully decoded clip held in memory at the mixer sample rate
type Sound struct {
	name   string
	Buffer *beep.Buffer
	Loop   bool
}

func (s *Sound) Name() string { return s.name }

// Streamer returns a fresh streamer over the whole clip
func (s *Sound) Streamer() beep.StreamSeeker {
	return s.Buffer.Streamer(0, s.Buffer.Len())
}

// MixerFormat is the format every sound is converted to
var MixerFormat = beep.Format{
	SampleRate:  beep.SampleRate(constants.AudioSampleRate),
	NumChannels: 2,
	Precision:   2,
}

// maxSynthLength bounds synth rendering so a non-terminating generator cannot hang loading
const maxSynthLength = 30 * 44100

// decodeSound decodes an encoded clip by file extension
func decodeSound(file string, data []byte) (*beep.Buffer, error) {
	rc := io.NopCloser(bytes.NewReader(data))

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)
	switch strings.ToLower(path.Ext(file)) {
	case ".wav":
		streamer, format, err = wav.Decode(rc)
	case ".mp3":
		streamer, format, err = mp3.Decode(rc)
	default:
		return nil, fmt.Errorf("unsupported sound format %q", path.Ext(file))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", file, err)
	}
	defer streamer.Close()

	return bufferAt(streamer, format)
}

// renderSynth renders a synth generator into a buffer
func renderSynth(name string, synth SynthFunc) (*beep.Buffer, error) {
	if synth == nil {
		return nil, fmt.Errorf("no synth available for %q", name)
	}
	streamer, err := synth(name, MixerFormat)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(MixerFormat)
	buf.Append(beep.Take(maxSynthLength, streamer))
	if buf.Len() == 0 {
		return nil, fmt.Errorf("synth %q produced no samples", name)
	}
	return buf, nil
}

// bufferAt drains s into a buffer at the mixer rate, resampling if needed
func bufferAt(s beep.Streamer, format beep.Format) (*beep.Buffer, error) {
	var src beep.Streamer = s
	if format.SampleRate != MixerFormat.SampleRate {
		src = beep.Resample(constants.ResampleQuality, format.SampleRate, MixerFormat.SampleRate, s)
	}

	buf := beep.NewBuffer(MixerFormat)
	buf.Append(src)
	if err := s.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}
