package input

import "github.com/gdamore/tcell/v2"

// Collector turns terminal events into one Frame per tick.
// Events are queued by the terminal poller and drained at the start of a tick
type Collector struct {
	events   <-chan tcell.Event
	keyTable *KeyTable

	// mouseDown tracks Button1 across ticks; terminals report the release
	mouseDown bool

	// Accumulated during the current drain
	frame Frame
}

// NewCollector creates a collector reading from the given event channel
func NewCollector(events <-chan tcell.Event) *Collector {
	return &Collector{
		events:   events,
		keyTable: DefaultKeyTable(),
	}
}

// SetKeyTable replaces the key bindings
func (c *Collector) SetKeyTable(kt *KeyTable) {
	c.keyTable = kt
}

// Poll drains every pending event without blocking and returns the tick's frame
func (c *Collector) Poll() Frame {
	for {
		select {
		case ev, ok := <-c.events:
			if !ok {
				c.frame.Quit = true
				return c.flush()
			}
			c.Apply(ev)
		default:
			return c.flush()
		}
	}
}

// Apply folds one event into the pending frame
// Unrecognized events are dropped
func (c *Collector) Apply(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.applyIntent(c.keyTable.Lookup(ev))

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !c.mouseDown {
			c.frame.Pressed = true
		}
		c.mouseDown = down

	case *tcell.EventResize:
		c.applyIntent(IntentResize)
	}
}

func (c *Collector) applyIntent(intent IntentType) {
	switch intent {
	case IntentQuit:
		c.frame.Quit = true
	case IntentPress:
		c.frame.Pressed = true
	case IntentToggleEffectMute:
		c.frame.ToggleEffects = true
	case IntentToggleMusicMute:
		c.frame.ToggleMusic = true
	case IntentResize:
		c.frame.Resized = true
	}
}

// flush finalizes the pending frame and starts a new one
func (c *Collector) flush() Frame {
	f := c.frame
	// A press that went down and up inside one tick still counts as held for that tick
	f.Held = c.mouseDown || f.Pressed
	c.frame = Frame{}
	return f
}
