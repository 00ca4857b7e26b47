package asset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// silentSynth renders 100ms of silence for any name
func silentSynth(name string, format beep.Format) (beep.Streamer, error) {
	return beep.Silence(format.SampleRate.N(100 * time.Millisecond)), nil
}

const testManifest = `
palette:
  K: "#000000"
  Y: "#ffff00"
sprites:
  dot:   { file: dot.txt }
  photo: { file: photo.png, width: 2 }
  broken: { file: broken.txt }
sounds:
  beep:  { synth: flap }
  clip:  { file: clip.wav }
  gone:  { file: gone.wav }
`

func testFS(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"manifest.yaml": {Data: []byte(testManifest)},
		"dot.txt":       {Data: []byte("# a dot\n.K.\nKYK\n.K.\n")},
		"broken.txt":    {Data: []byte("KZK\n")},
		"photo.png":     {Data: encodePNG(t)},
		"clip.wav":      {Data: encodeWAV(t, 22050)},
	}
}

func encodePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				img.Set(x, y, color.NRGBA{R: 255, A: 255})
			} else {
				img.Set(x, y, color.NRGBA{B: 255, A: 10})
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// encodeWAV writes a short silent clip at rate through a temp file
func encodeWAV(t *testing.T, rate beep.SampleRate) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(rate.N(200 * time.Millisecond)), format))
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestStoreLoadsGlyphArt(t *testing.T) {
	s, err := NewStore(testFS(t))
	require.NoError(t, err)

	sp, err := s.Sprite("dot")
	require.NoError(t, err)
	assert.Equal(t, 3, sp.Width)
	assert.Equal(t, 3, sp.Height)
	assert.Equal(t, Transparent, sp.At(0, 0))
	assert.Equal(t, tcell.GetColor("#ffff00"), sp.At(1, 1))
	assert.Equal(t, Transparent, sp.At(-1, 5), "outside the grid is transparent")
}

func TestStoreCachesHandles(t *testing.T) {
	s, err := NewStore(testFS(t))
	require.NoError(t, err)

	a, err := s.Load("dot")
	require.NoError(t, err)
	b, err := s.Load("dot")
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestStoreConvertsPNG(t *testing.T) {
	s, err := NewStore(testFS(t))
	require.NoError(t, err)

	sp, err := s.Sprite("photo")
	require.NoError(t, err)
	assert.Equal(t, 2, sp.Width)
	assert.Equal(t, 2, sp.Height)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), sp.At(0, 0))
	assert.Equal(t, Transparent, sp.At(1, 0), "low alpha becomes transparent")
}

func TestStoreDecodesWAVAtMixerRate(t *testing.T) {
	s, err := NewStore(testFS(t))
	require.NoError(t, err)

	snd, err := s.Sound("clip")
	require.NoError(t, err)
	assert.Equal(t, MixerFormat.SampleRate, snd.Buffer.Format().SampleRate)
	// 200ms resampled from 22050 to 44100
	assert.InDelta(t, MixerFormat.SampleRate.N(200 * time.Millisecond), snd.Buffer.Len(), 64)
	assert.False(t, snd.Loop)
}

func TestStoreRendersSynth(t *testing.T) {
	s, err := NewStore(testFS(t), WithSynth(silentSynth))
	require.NoError(t, err)

	snd, err := s.Sound("beep")
	require.NoError(t, err)
	assert.Equal(t, MixerFormat.SampleRate.N(100 * time.Millisecond), snd.Buffer.Len())
	assert.Equal(t, snd.Buffer.Len(), snd.Streamer().Len())
}

func TestStoreMissing(t *testing.T) {
	s, err := NewStore(testFS(t))
	require.NoError(t, err)

	tests := []struct {
		name  string
		cause error
	}{
		{"nope", fs.ErrNotExist},
		{"gone", fs.ErrNotExist},
		{"broken", nil},
		{"beep", nil}, // synth without a generator
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Load(tt.name)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrAssetMissing)

			var me *MissingError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tt.name, me.Name)
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
		})
	}
}

func TestStoreKindMismatch(t *testing.T) {
	s, err := NewStore(testFS(t), WithSynth(silentSynth))
	require.NoError(t, err)

	_, err = s.Sound("dot")
	assert.ErrorIs(t, err, ErrAssetMissing)
	_, err = s.Sprite("beep")
	assert.ErrorIs(t, err, ErrAssetMissing)
}

func TestPreloadStopsAtFirstMissing(t *testing.T) {
	s, err := NewStore(testFS(t), WithSynth(silentSynth))
	require.NoError(t, err)

	err = s.Preload("dot", "nope", "broken")
	var me *MissingError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "nope", me.Name)
}

func TestDefaultAssetsComplete(t *testing.T) {
	s, err := NewStore(Default(), WithSynth(silentSynth))
	require.NoError(t, err)
	require.NoError(t, s.Preload(Required...))

	for _, name := range []string{"bee1", "bee2", "bee3"} {
		sp, err := s.Sprite(name)
		require.NoError(t, err)
		assert.Equal(t, 17, sp.Width, name)
		assert.Equal(t, 12, sp.Height, name)
	}

	music, err := s.Sound("music")
	require.NoError(t, err)
	assert.True(t, music.Loop)
}

func TestParseManifestRejectsIncomplete(t *testing.T) {
	_, err := ParseManifest([]byte("sprites:\n  x: {}\n"))
	assert.Error(t, err)
	_, err = ParseManifest([]byte("sounds:\n  x: { loop: true }\n"))
	assert.Error(t, err)
	_, err = ParseManifest([]byte(":\n\t- ["))
	assert.Error(t, err)
}

func TestParseGlyphArtErrors(t *testing.T) {
	_, err := ParseGlyphArt("x", []byte("\n\n"), nil)
	assert.Error(t, err, "empty art")

	_, err = ParseGlyphArt("x", []byte("K"), map[string]string{"KK": "#000000"})
	assert.Error(t, err, "multi-character key")

	_, err = ParseGlyphArt("x", []byte("K"), map[string]string{"K": "nocolor"})
	assert.Error(t, err, "bad color")
}

func TestParseGlyphArtPadsShortLines(t *testing.T) {
	sp, err := ParseGlyphArt("x", []byte("KKK\nK\n"), map[string]string{"K": "#000000"})
	require.NoError(t, err)
	assert.Equal(t, 3, sp.Width)
	assert.Equal(t, Transparent, sp.At(2, 1))
}
