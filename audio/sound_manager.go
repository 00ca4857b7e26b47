package audio

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/humblebee/asset"
	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/engine"
)

// SoundSource resolves decoded sounds by name
type SoundSource interface {
	Sound(name string) (*asset.Sound, error)
}

// SoundManager plays cues and the music loop through one mixer.
// Every call is non-blocking and safe before Initialize or after Cleanup
type SoundManager struct {
	mu     sync.Mutex
	cfg    *AudioConfig
	sounds SoundSource
	logger *slog.Logger

	mixer *beep.Mixer
	music *beep.Ctrl

	// lock guards the mixer against the speaker goroutine
	lock   func()
	unlock func()

	effectsMuted bool
	musicMuted   bool
	initialized  bool
	speakerOpen  bool
}

// NewSoundManager creates a manager that has not opened the audio device yet
func NewSoundManager(cfg *AudioConfig, sounds SoundSource, logger *slog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SoundManager{
		cfg:    cfg,
		sounds: sounds,
		logger: logger,
		mixer:  &beep.Mixer{},
		lock:   func() {},
		unlock: func() {},
	}
}

// Initialize opens the speaker and starts the mixer.
// A disabled config initializes nothing and plays nothing
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.lock = speaker.Lock
	sm.unlock = speaker.Unlock
	sm.initialized = true
	sm.speakerOpen = true
	return nil
}

// attach marks the mixer live without an output device
func (sm *SoundManager) attach() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.initialized = true
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock()
	sm.mixer.Clear()
	sm.music = nil
	sm.unlock()

	if sm.speakerOpen {
		speaker.Close()
		sm.speakerOpen = false
	}
	sm.lock = func() {}
	sm.unlock = func() {}
	sm.initialized = false
}

// PlayCue plays the sound for a cue
func (sm *SoundManager) PlayCue(c engine.Cue) {
	sm.PlayEffect(c.AssetName())
}

// PlayEffect plays a one-shot sound by name
func (sm *SoundManager) PlayEffect(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.effectsMuted {
		return
	}

	snd, err := sm.sounds.Sound(name)
	if err != nil {
		sm.logger.Debug("Effect unavailable", "name", name, "error", err)
		return
	}

	s := newVolume(snd.Streamer(), sm.cfg.Volume(name))
	sm.lock()
	sm.mixer.Add(s)
	sm.unlock()
}

// PlayMusic starts looping the named sound, replacing any current music
func (sm *SoundManager) PlayMusic(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	snd, err := sm.sounds.Sound(name)
	if err != nil {
		sm.logger.Debug("Music unavailable", "name", name, "error", err)
		return
	}

	loop := beep.Loop(-1, snd.Streamer())
	ctrl := &beep.Ctrl{Streamer: newVolume(loop, sm.cfg.Volume(EffectMusic)), Paused: sm.musicMuted}

	sm.lock()
	if sm.music != nil {
		sm.music.Streamer = nil
	}
	sm.music = ctrl
	sm.mixer.Add(ctrl)
	sm.unlock()
}

// ToggleEffects mutes or unmutes one-shot sounds
func (sm *SoundManager) ToggleEffects() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.effectsMuted = !sm.effectsMuted
	sm.logger.Debug("Effects toggled", "muted", sm.effectsMuted)
}

// ToggleMusic pauses or resumes the music loop
func (sm *SoundManager) ToggleMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.musicMuted = !sm.musicMuted

	if sm.music != nil {
		sm.lock()
		sm.music.Paused = sm.musicMuted
		sm.unlock()
	}
	sm.logger.Debug("Music toggled", "muted", sm.musicMuted)
}

// Muted reports the effect and music mute state
func (sm *SoundManager) Muted() (effects, music bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.effectsMuted, sm.musicMuted
}

// Active returns the number of streams in the mixer
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.lock()
	defer sm.unlock()
	return sm.mixer.Len()
}
