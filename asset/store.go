// Package asset loads sprites and sounds by name from an asset directory.
// Everything is decoded once; handles are shared and never mutated
package asset

import (
	"bytes"
	"fmt"
	"image/png"
	"io/fs"
	"path"
	"strings"
	"sync"
)

// Handle is a loaded asset: *Sprite or *Sound
type Handle interface {
	Name() string
}

// Required lists every asset the game needs before the loop may start
var Required = []string{
	"bg", "ground", "pipe", "restart",
	"bee1", "bee2", "bee3",
	"music", "flap", "crash",
}

// Store resolves names through a manifest and caches decoded assets
type Store struct {
	fsys     fs.FS
	manifest *Manifest
	synth    SynthFunc

	mu      sync.Mutex
	handles map[string]Handle
}

// Option configures a Store
type Option func(*Store)

// WithSynth sets the generator for sounds declared with a synth source
func WithSynth(fn SynthFunc) Option {
	return func(s *Store) {
		s.synth = fn
	}
}

// NewStore reads the manifest from fsys
func NewStore(fsys fs.FS, opts ...Option) (*Store, error) {
	m, err := LoadManifest(fsys)
	if err != nil {
		return nil, err
	}
	s := &Store{
		fsys:     fsys,
		manifest: m,
		handles:  make(map[string]Handle),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Load returns the named asset, decoding it on first use.
// Failures are *MissingError matching ErrAssetMissing
func (s *Store) Load(name string) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.handles[name]; ok {
		return h, nil
	}

	h, err := s.decode(name)
	if err != nil {
		return nil, missing(name, err)
	}
	s.handles[name] = h
	return h, nil
}

// Sprite loads a sprite by name
func (s *Store) Sprite(name string) (*Sprite, error) {
	h, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	sp, ok := h.(*Sprite)
	if !ok {
		return nil, missing(name, fmt.Errorf("not a sprite"))
	}
	return sp, nil
}

// Sound loads a sound by name
func (s *Store) Sound(name string) (*Sound, error) {
	h, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	snd, ok := h.(*Sound)
	if !ok {
		return nil, missing(name, fmt.Errorf("not a sound"))
	}
	return snd, nil
}

// Preload loads every name and stops at the first failure
func (s *Store) Preload(names ...string) error {
	for _, name := range names {
		if _, err := s.Load(name); err != nil {
			return err
		}
	}
	return nil
}

// Names returns every name declared in the manifest
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.manifest.Sprites)+len(s.manifest.Sounds))
	for name := range s.manifest.Sprites {
		names = append(names, name)
	}
	for name := range s.manifest.Sounds {
		names = append(names, name)
	}
	return names
}

func (s *Store) decode(name string) (Handle, error) {
	if spec, ok := s.manifest.Sprites[name]; ok {
		return s.decodeSprite(name, spec)
	}
	if spec, ok := s.manifest.Sounds[name]; ok {
		return s.decodeSound(name, spec)
	}
	return nil, fs.ErrNotExist
}

func (s *Store) decodeSprite(name string, spec SpriteSpec) (*Sprite, error) {
	data, err := fs.ReadFile(s.fsys, spec.File)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(path.Ext(spec.File)) {
	case ".txt":
		return ParseGlyphArt(name, data, s.manifest.palette(spec))
	case ".png":
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", spec.File, err)
		}
		return ConvertImage(name, img, spec.Width), nil
	default:
		return nil, fmt.Errorf("unsupported sprite format %q", path.Ext(spec.File))
	}
}

func (s *Store) decodeSound(name string, spec SoundSpec) (*Sound, error) {
	snd := &Sound{name: name, Loop: spec.Loop}

	if spec.File != "" {
		data, err := fs.ReadFile(s.fsys, spec.File)
		if err != nil {
			return nil, err
		}
		buf, err := decodeSound(spec.File, data)
		if err != nil {
			return nil, err
		}
		snd.Buffer = buf
		return snd, nil
	}

	buf, err := renderSynth(spec.Synth, s.synth)
	if err != nil {
		return nil, err
	}
	snd.Buffer = buf
	return snd, nil
}
