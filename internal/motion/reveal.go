package motion

import (
	"math"
	"time"
)

// DimRatio is how far toward the initial frame a continuous region fades
// when it leaves the viewport.
const DimRatio = 0.5

// Frame is the visual state of an animated element
type Frame struct {
	OffsetX float64 // columns
	OffsetY float64 // lines
	Opacity float64 // 0..1
}

// Lerp interpolates between two frames
func Lerp(from, to Frame, t float64) Frame {
	return Frame{
		OffsetX: from.OffsetX + (to.OffsetX-from.OffsetX)*t,
		OffsetY: from.OffsetY + (to.OffsetY-from.OffsetY)*t,
		Opacity: from.Opacity + (to.Opacity-from.Opacity)*t,
	}
}

// Descriptor declares an enter animation
type Descriptor struct {
	Initial  Frame
	Target   Frame
	Duration time.Duration
	Delay    time.Duration
}

// FadeUp is the common "rise into place" descriptor
func FadeUp(lines float64, duration, delay time.Duration) Descriptor {
	return Descriptor{
		Initial:  Frame{OffsetY: lines, Opacity: 0},
		Target:   Frame{Opacity: 1},
		Duration: duration,
		Delay:    delay,
	}
}

// SlideIn enters horizontally from cols (negative is from the left)
func SlideIn(cols float64, duration, delay time.Duration) Descriptor {
	return Descriptor{
		Initial:  Frame{OffsetX: cols, Opacity: 0},
		Target:   Frame{Opacity: 1},
		Duration: duration,
		Delay:    delay,
	}
}

// Stagger offsets base by index steps
func Stagger(base time.Duration, index int, step time.Duration) time.Duration {
	if index < 0 {
		index = 0
	}
	return base + time.Duration(index)*step
}

// Animator maps a visibility flag onto an interpolated Frame over time
type Animator struct {
	desc    Descriptor
	mode    Mode
	visible bool

	from  Frame
	to    Frame
	start time.Time
	dur   time.Duration
}

// NewAnimator creates an animator resting at the descriptor's initial frame
func NewAnimator(desc Descriptor, mode Mode) *Animator {
	return &Animator{
		desc: desc,
		mode: mode,
		from: desc.Initial,
		to:   desc.Initial,
	}
}

// Visible reports the last visibility passed to SetVisible
func (a *Animator) Visible() bool { return a.visible }

// SetVisible retargets the animation. Setting the current value is a no-op.
func (a *Animator) SetVisible(visible bool, now time.Time) {
	if visible == a.visible {
		return
	}
	current := a.Frame(now)
	a.visible = visible
	a.from = current

	if visible {
		a.to = a.desc.Target
		a.start = now.Add(a.desc.Delay)
		a.dur = a.desc.Duration
		return
	}

	a.start = now
	a.dur = a.desc.Duration
	if a.mode == Continuous {
		a.to = Lerp(a.desc.Target, a.desc.Initial, DimRatio)
	} else {
		a.to = a.desc.Initial
	}
}

// Frame returns the interpolated frame at now
func (a *Animator) Frame(now time.Time) Frame {
	return Lerp(a.from, a.to, a.Progress(now))
}

// Progress returns eased progress of the current transition in 0..1
func (a *Animator) Progress(now time.Time) float64 {
	if a.start.IsZero() {
		return 1
	}
	if !now.After(a.start) {
		return 0
	}
	if a.dur <= 0 {
		return 1
	}
	t := float64(now.Sub(a.start)) / float64(a.dur)
	if t >= 1 {
		return 1
	}
	return easeOutCubic(t)
}

// Settled reports whether the current transition has finished
func (a *Animator) Settled(now time.Time) bool {
	return a.Progress(now) >= 1
}

func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}
