package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/humblebee/constants"
)

// Effect names with individual volumes
const (
	EffectFlap  = "flap"
	EffectCrash = "crash"
	EffectMusic = "music"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64
	// EffectVolumes scales each named sound, including music
	EffectVolumes map[string]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[string]float64{
			EffectFlap:  0.6,
			EffectCrash: 1.0,
			EffectMusic: 0.4,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// Volume returns the effective volume of a named sound
func (c *AudioConfig) Volume(name string) float64 {
	vol, ok := c.EffectVolumes[name]
	if !ok {
		vol = 1.0
	}
	return vol * c.MasterVolume
}

// LoadAudioConfig loads audio configuration from environment variables on top of cfg.
// A nil cfg starts from the defaults
func LoadAudioConfig(cfg *AudioConfig) *AudioConfig {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}

	// Check if audio is enabled
	if enabled := os.Getenv("HUMBLEBEE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("HUMBLEBEE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// Load effect volumes from JSON, unknown names are kept for asset overrides
	if effectVols := os.Getenv("HUMBLEBEE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				cfg.EffectVolumes[name] = clampVolume(v)
			}
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
