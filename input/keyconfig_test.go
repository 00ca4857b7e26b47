package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeyBindings(t *testing.T) {
	kt, err := LoadKeyBindings(map[string]string{
		"x":     "press",
		"space": "none",
		"Enter": "quit",
		"f1":    "mute_music",
	})
	require.NoError(t, err)

	assert.Equal(t, IntentPress, kt.Runes['x'])
	v, ok := kt.Runes[' ']
	assert.True(t, ok)
	assert.Equal(t, IntentNone, v)
	assert.Equal(t, IntentQuit, kt.SpecialKeys[tcell.KeyEnter])
	assert.Equal(t, IntentToggleMusicMute, kt.SpecialKeys[tcell.KeyF1])
}

func TestLoadKeyBindingsErrors(t *testing.T) {
	_, err := LoadKeyBindings(map[string]string{"x": "jump"})
	assert.ErrorContains(t, err, "unknown action")

	_, err = LoadKeyBindings(map[string]string{"hyperspace": "press"})
	assert.ErrorContains(t, err, "unknown key name")
}

func TestMergeKeyTable(t *testing.T) {
	base := DefaultKeyTable()
	override, err := LoadKeyBindings(map[string]string{
		"space": "none",
		"j":     "press",
		"up":    "none",
	})
	require.NoError(t, err)

	merged := MergeKeyTable(base, override)

	_, bound := merged.Runes[' ']
	assert.False(t, bound)
	assert.Equal(t, IntentPress, merged.Runes['j'])
	_, bound = merged.SpecialKeys[tcell.KeyUp]
	assert.False(t, bound)
	assert.Equal(t, IntentQuit, merged.SpecialKeys[tcell.KeyEscape])

	// Base is untouched
	assert.Equal(t, IntentPress, base.Runes[' '])
	assert.Equal(t, IntentPress, base.SpecialKeys[tcell.KeyUp])
}

func TestCollectorUsesKeyTable(t *testing.T) {
	c, ch := newTestCollector()
	override, err := LoadKeyBindings(map[string]string{"space": "none", "j": "press"})
	require.NoError(t, err)
	c.SetKeyTable(MergeKeyTable(DefaultKeyTable(), override))

	ch <- tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	assert.False(t, c.Poll().Pressed)

	ch <- tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone)
	assert.True(t, c.Poll().Pressed)
}
