package asset

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the manifest name at the root of an asset directory
const ManifestFile = "manifest.yaml"

// Manifest maps asset names to their sources
type Manifest struct {
	// Palette maps glyph art characters to "#rrggbb" colors, shared by all sprites
	Palette map[string]string     `yaml:"palette"`
	Sprites map[string]SpriteSpec `yaml:"sprites"`
	Sounds  map[string]SoundSpec  `yaml:"sounds"`
}

// SpriteSpec describes one sprite source
type SpriteSpec struct {
	// File is a .txt glyph art or .png image relative to the asset root
	File string `yaml:"file"`
	// Palette overrides entries of the shared palette
	Palette map[string]string `yaml:"palette,omitempty"`
	// Width is the sampled width in pixels for images, 0 keeps the source width
	Width int `yaml:"width,omitempty"`
}

// SoundSpec describes one sound source
type SoundSpec struct {
	// File is a .wav or .mp3 relative to the asset root
	File string `yaml:"file,omitempty"`
	// Synth names a built-in generator used when File is empty
	Synth string `yaml:"synth,omitempty"`
	// Loop marks background music
	Loop bool `yaml:"loop,omitempty"`
}

// LoadManifest reads and parses the manifest from fsys
func LoadManifest(fsys fs.FS) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest parses manifest YAML
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	for name, spec := range m.Sprites {
		if spec.File == "" {
			return nil, fmt.Errorf("sprite %q has no file", name)
		}
	}
	for name, spec := range m.Sounds {
		if spec.File == "" && spec.Synth == "" {
			return nil, fmt.Errorf("sound %q has neither file nor synth", name)
		}
	}
	return &m, nil
}

// palette merges the shared palette with a sprite override
func (m *Manifest) palette(spec SpriteSpec) map[string]string {
	out := make(map[string]string, len(m.Palette)+len(spec.Palette))
	for k, v := range m.Palette {
		out[k] = v
	}
	for k, v := range spec.Palette {
		out[k] = v
	}
	return out
}
