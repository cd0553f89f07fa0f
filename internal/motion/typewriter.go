package motion

import "time"

// Speeds are the typewriter timings
type Speeds struct {
	Type   time.Duration
	Delete time.Duration
	Pause  time.Duration
}

type typePhase int

const (
	phaseTyping typePhase = iota
	phaseHolding
	phaseDeleting
)

// Typewriter cycles through texts, typing and deleting one rune per step.
// It never terminates; a fresh instance restarts from the first text.
type Typewriter struct {
	texts  [][]rune
	speeds Speeds
	index  int
	shown  int
	phase  typePhase
}

// NewTypewriter creates a sequencer over texts. Empty input yields a single
// empty text so Step stays well defined.
func NewTypewriter(texts []string, speeds Speeds) *Typewriter {
	tw := &Typewriter{speeds: speeds}
	for _, t := range texts {
		tw.texts = append(tw.texts, []rune(t))
	}
	if len(tw.texts) == 0 {
		tw.texts = [][]rune{nil}
	}
	return tw
}

// Text returns the currently displayed substring
func (tw *Typewriter) Text() string {
	return string(tw.texts[tw.index][:tw.shown])
}

// Index returns the index of the source text
func (tw *Typewriter) Index() int { return tw.index }

// Deleting reports whether the sequencer is removing characters. It stays
// false during the pause after a text is complete.
func (tw *Typewriter) Deleting() bool {
	return tw.phase == phaseDeleting
}

// FirstDelay is the wait before the first Step
func (tw *Typewriter) FirstDelay() time.Duration { return tw.speeds.Type }

// Step performs one transition and returns how long to wait before the next
func (tw *Typewriter) Step() time.Duration {
	cur := tw.texts[tw.index]

	switch tw.phase {
	case phaseTyping:
		if tw.shown < len(cur) {
			tw.shown++
		}
		if tw.shown >= len(cur) {
			tw.phase = phaseHolding
			return tw.speeds.Pause
		}
		return tw.speeds.Type

	default:
		if tw.shown > 0 {
			tw.shown--
		}
		if tw.shown == 0 {
			tw.index = (tw.index + 1) % len(tw.texts)
			tw.phase = phaseTyping
			return tw.speeds.Type
		}
		tw.phase = phaseDeleting
		return tw.speeds.Delete
	}
}
