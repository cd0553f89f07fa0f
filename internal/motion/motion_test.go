package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersection(t *testing.T) {
	vp := Span{Top: 10, Height: 20}
	tests := []struct {
		name   string
		region Span
		want   float64
	}{
		{"fully inside", Span{Top: 12, Height: 4}, 1},
		{"above", Span{Top: 0, Height: 10}, 0},
		{"below", Span{Top: 30, Height: 5}, 0},
		{"half top edge", Span{Top: 6, Height: 8}, 0.5},
		{"quarter bottom edge", Span{Top: 28, Height: 8}, 0.25},
		{"taller than viewport", Span{Top: 0, Height: 40}, 0.5},
		{"empty region", Span{Top: 12, Height: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Intersection(vp, tt.region), 1e-9)
		})
	}
}

func TestObserverContinuousToggles(t *testing.T) {
	o := NewObserver()
	o.Register(Region{ID: "skills", Threshold: 0.3, Mode: Continuous})
	layout := map[string]Span{"skills": {Top: 20, Height: 10}}

	assert.Empty(t, o.Update(Span{Top: 0, Height: 10}, layout))

	changes := o.Update(Span{Top: 0, Height: 25}, layout) // 50% visible
	assert.Equal(t, []Change{{ID: "skills", Visible: true}}, changes)
	assert.True(t, o.Visible("skills"))

	// still visible, no change emitted
	assert.Empty(t, o.Update(Span{Top: 5, Height: 25}, layout))

	changes = o.Update(Span{Top: 0, Height: 21}, layout) // 10% < threshold
	assert.Equal(t, []Change{{ID: "skills", Visible: false}}, changes)
}

func TestObserverTriggerOnceLatches(t *testing.T) {
	o := NewObserver()
	o.Register(Region{ID: "hero", Threshold: 0.1, Mode: TriggerOnce})
	layout := map[string]Span{"hero": {Top: 0, Height: 10}}

	changes := o.Update(Span{Top: 0, Height: 20}, layout)
	require.Len(t, changes, 1)
	assert.True(t, changes[0].Visible)

	assert.Empty(t, o.Update(Span{Top: 100, Height: 20}, layout), "no emission after leaving")
	assert.Empty(t, o.Update(Span{Top: 0, Height: 20}, layout), "no emission on re-entry")
	assert.True(t, o.Visible("hero"))
}

func TestObserverZeroThresholdNeedsSomeOverlap(t *testing.T) {
	o := NewObserver()
	o.Register(Region{ID: "a", Threshold: 0, Mode: Continuous})
	layout := map[string]Span{"a": {Top: 10, Height: 5}}

	assert.Empty(t, o.Update(Span{Top: 0, Height: 10}, layout), "touching edge is not visible")
	assert.Len(t, o.Update(Span{Top: 0, Height: 11}, layout), 1)
}

func TestObserverMarginExtendsViewport(t *testing.T) {
	o := NewObserver()
	o.Register(Region{ID: "card", Threshold: 0.2, Mode: TriggerOnce, Margin: 5})
	layout := map[string]Span{"card": {Top: 22, Height: 4}}

	changes := o.Update(Span{Top: 0, Height: 20}, layout)
	assert.Equal(t, []Change{{ID: "card", Visible: true}}, changes)
}

func TestObserverReleaseStopsOutput(t *testing.T) {
	o := NewObserver()
	release := o.Register(Region{ID: "contact", Threshold: 0.3, Mode: Continuous})
	release()
	release()

	assert.Empty(t, o.Update(Span{Top: 0, Height: 50}, map[string]Span{"contact": {Top: 0, Height: 10}}))
	assert.Equal(t, 0, o.Len())
}

func TestObserverStaleReleaseKeepsReplacement(t *testing.T) {
	o := NewObserver()
	stale := o.Register(Region{ID: "x", Mode: Continuous})
	o.Register(Region{ID: "x", Mode: Continuous, Threshold: 0.5})
	stale()
	assert.Equal(t, 1, o.Len())
}

func TestObserverIgnoresRegionsWithoutLayout(t *testing.T) {
	o := NewObserver()
	o.Register(Region{ID: "gone", Mode: Continuous})
	assert.Empty(t, o.Update(Span{Top: 0, Height: 50}, nil))
}

func TestAnimatorEntersAfterDelay(t *testing.T) {
	t0 := time.Unix(1000, 0)
	a := NewAnimator(FadeUp(2, 100*time.Millisecond, 50*time.Millisecond), TriggerOnce)

	assert.Equal(t, Frame{OffsetY: 2, Opacity: 0}, a.Frame(t0))

	a.SetVisible(true, t0)
	assert.Equal(t, Frame{OffsetY: 2, Opacity: 0}, a.Frame(t0.Add(40*time.Millisecond)), "still delayed")

	mid := a.Frame(t0.Add(100 * time.Millisecond))
	assert.Greater(t, mid.Opacity, 0.0)
	assert.Less(t, mid.Opacity, 1.0)

	assert.Equal(t, Frame{Opacity: 1}, a.Frame(t0.Add(150*time.Millisecond)))
	assert.True(t, a.Settled(t0.Add(150*time.Millisecond)))
}

func TestAnimatorSetVisibleIsIdempotent(t *testing.T) {
	t0 := time.Unix(1000, 0)
	a := NewAnimator(FadeUp(2, 100*time.Millisecond, 0), TriggerOnce)
	a.SetVisible(true, t0)
	before := a.Frame(t0.Add(60 * time.Millisecond))

	// re-triggering must not restart the transition
	a.SetVisible(true, t0.Add(60*time.Millisecond))
	assert.Equal(t, before, a.Frame(t0.Add(60*time.Millisecond)))
	assert.Equal(t, Frame{Opacity: 1}, a.Frame(t0.Add(100*time.Millisecond)))
}

func TestAnimatorContinuousDims(t *testing.T) {
	t0 := time.Unix(1000, 0)
	a := NewAnimator(FadeUp(4, 100*time.Millisecond, 0), Continuous)
	a.SetVisible(true, t0)
	a.SetVisible(false, t0.Add(time.Second))

	end := a.Frame(t0.Add(2 * time.Second))
	assert.InDelta(t, 0.5, end.Opacity, 1e-9)
	assert.InDelta(t, 2, end.OffsetY, 1e-9)
}

func TestAnimatorTriggerOnceHidesToInitial(t *testing.T) {
	t0 := time.Unix(1000, 0)
	a := NewAnimator(SlideIn(-6, 100*time.Millisecond, 0), TriggerOnce)
	a.SetVisible(true, t0)
	a.SetVisible(false, t0.Add(time.Second))
	assert.Equal(t, Frame{OffsetX: -6, Opacity: 0}, a.Frame(t0.Add(2*time.Second)))
}

func TestStagger(t *testing.T) {
	step := 100 * time.Millisecond
	assert.Equal(t, 500*time.Millisecond, Stagger(500*time.Millisecond, 0, step))
	assert.Equal(t, 800*time.Millisecond, Stagger(500*time.Millisecond, 3, step))
	assert.Equal(t, 500*time.Millisecond, Stagger(500*time.Millisecond, -1, step))
}

func TestCarouselWrapsBothWays(t *testing.T) {
	c := NewCarousel(3)
	assert.Equal(t, 0, c.Index())

	c.Prev()
	assert.Equal(t, 2, c.Index())

	var trace []int
	for i := 0; i < 4; i++ {
		c.Next()
		trace = append(trace, c.Index())
	}
	assert.Equal(t, []int{0, 1, 2, 0}, trace)
}

func TestCarouselNextCycleReturnsToStart(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for start := 0; start < n; start++ {
			c := NewCarousel(n)
			c.GoTo(start)
			for i := 0; i < n; i++ {
				c.Next()
			}
			assert.Equal(t, start, c.Index(), "n=%d start=%d", n, start)
		}
	}
}

func TestCarouselGoToClamps(t *testing.T) {
	c := NewCarousel(4)
	c.GoTo(9)
	assert.Equal(t, 3, c.Index())
	c.GoTo(-2)
	assert.Equal(t, 0, c.Index())
}

func TestCarouselSingleImageIsNotNavigable(t *testing.T) {
	c := NewCarousel(1)
	assert.False(t, c.Navigable())
	c.Next()
	c.Prev()
	assert.Equal(t, 0, c.Index())

	empty := NewCarousel(0)
	empty.Next()
	empty.GoTo(3)
	assert.Equal(t, 0, empty.Index())
}

func TestCarouselBindResets(t *testing.T) {
	c := NewCarousel(5)
	c.GoTo(3)
	c.Bind(2)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 2, c.Len())
}

func TestTypewriterTrace(t *testing.T) {
	speeds := Speeds{Type: 10 * time.Millisecond, Delete: 5 * time.Millisecond, Pause: 100 * time.Millisecond}
	tw := NewTypewriter([]string{"A", "BB"}, speeds)

	type step struct {
		text  string
		delay time.Duration
	}
	want := []step{
		{"A", speeds.Pause},
		{"", speeds.Type},
		{"B", speeds.Type},
		{"BB", speeds.Pause},
		{"B", speeds.Delete},
		{"", speeds.Type},
		{"A", speeds.Pause},
		{"", speeds.Type},
	}

	assert.Equal(t, "", tw.Text())
	for i, w := range want {
		d := tw.Step()
		assert.Equal(t, w.text, tw.Text(), "step %d", i)
		assert.Equal(t, w.delay, d, "step %d", i)
	}
	assert.Equal(t, 1, tw.Index(), "wrapped back around to the second text")
}

func TestTypewriterDeletingStartsAfterPause(t *testing.T) {
	speeds := Speeds{Type: time.Millisecond, Delete: time.Millisecond, Pause: time.Millisecond}
	tw := NewTypewriter([]string{"BB", "C"}, speeds)

	tw.Step()
	assert.False(t, tw.Deleting())
	tw.Step()
	require.Equal(t, "BB", tw.Text())
	assert.False(t, tw.Deleting(), "holding the complete text")

	tw.Step()
	assert.Equal(t, "B", tw.Text())
	assert.True(t, tw.Deleting())

	tw.Step()
	assert.Equal(t, "", tw.Text())
	assert.False(t, tw.Deleting(), "typing the next text")
	assert.Equal(t, 1, tw.Index())
}

func TestTypewriterFreshInstanceRestarts(t *testing.T) {
	speeds := Speeds{Type: time.Millisecond, Delete: time.Millisecond, Pause: time.Millisecond}
	a := NewTypewriter([]string{"hey", "yo"}, speeds)
	for i := 0; i < 7; i++ {
		a.Step()
	}
	b := NewTypewriter([]string{"hey", "yo"}, speeds)
	b.Step()
	assert.Equal(t, "h", b.Text())
	assert.Equal(t, 0, b.Index())
}

func TestTypewriterRunes(t *testing.T) {
	tw := NewTypewriter([]string{"héllo"}, Speeds{})
	tw.Step()
	tw.Step()
	assert.Equal(t, "hé", tw.Text())
}

func TestTypewriterEmptyInput(t *testing.T) {
	tw := NewTypewriter(nil, Speeds{Type: time.Millisecond, Pause: 2 * time.Millisecond})
	assert.Equal(t, 2*time.Millisecond, tw.Step())
	assert.Equal(t, "", tw.Text())
	assert.Equal(t, time.Millisecond, tw.Step())
}

func TestHandleSupersedesOldTicks(t *testing.T) {
	var h Handle
	first := h.Arm()
	second := h.Arm()
	assert.False(t, h.Live(first))
	assert.True(t, h.Live(second))

	assert.True(t, h.Fire(second))
	assert.False(t, h.Fire(second), "a tick fires once")
	assert.False(t, h.Pending())

	third := h.Arm()
	h.Cancel()
	assert.False(t, h.Fire(third))
}

func TestThrottleCoalesces(t *testing.T) {
	t0 := time.Unix(1000, 0)
	th := NewThrottle(16 * time.Millisecond)

	assert.True(t, th.Due(t0), "starts dirty")
	assert.False(t, th.Due(t0.Add(time.Millisecond)), "clean")

	th.Mark()
	th.Mark()
	assert.False(t, th.Due(t0.Add(5*time.Millisecond)), "inside interval")
	assert.True(t, th.Dirty())
	assert.True(t, th.Due(t0.Add(20*time.Millisecond)))
	assert.False(t, th.Due(t0.Add(40*time.Millisecond)))
}
