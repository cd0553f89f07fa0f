// Package motion holds the time and scroll driven state machines behind the
// page: viewport visibility, reveal animation, carousel, typewriter, timer
// handles and scroll throttling. Nothing here touches the terminal; callers
// feed in positions and timestamps and render the results.
package motion

import "sort"

// Mode controls how a region reacts to leaving the viewport
type Mode int

const (
	// TriggerOnce latches visible after the first time the threshold is met
	TriggerOnce Mode = iota
	// Continuous toggles as the region enters and leaves
	Continuous
)

// Span is a vertical extent in lines. Top is inclusive, Top+Height exclusive.
type Span struct {
	Top    int
	Height int
}

// Bottom returns the exclusive bottom line
func (s Span) Bottom() int { return s.Top + s.Height }

// Region describes an observed area of the page
type Region struct {
	ID        string
	Threshold float64 // fraction of the region that must be on screen, 0..1
	Mode      Mode
	Margin    int // lines added above and below the viewport when testing this region
}

// Change is emitted when a region's visibility flips
type Change struct {
	ID      string
	Visible bool
}

type regionState struct {
	region  Region
	visible bool
	latched bool
}

// Observer tracks visibility of registered regions against a viewport
type Observer struct {
	regions map[string]*regionState
}

// NewObserver creates an empty observer
func NewObserver() *Observer {
	return &Observer{regions: make(map[string]*regionState)}
}

// Register starts observing a region and returns the function that stops it.
// Registering an existing id replaces it and resets its visibility.
func (o *Observer) Register(r Region) (release func()) {
	if r.Threshold < 0 {
		r.Threshold = 0
	}
	if r.Threshold > 1 {
		r.Threshold = 1
	}
	st := &regionState{region: r}
	o.regions[r.ID] = st
	return func() {
		// only remove the registration this release belongs to
		if cur, ok := o.regions[r.ID]; ok && cur == st {
			delete(o.regions, r.ID)
		}
	}
}

// Visible reports the current visibility of a region
func (o *Observer) Visible(id string) bool {
	st, ok := o.regions[id]
	return ok && st.visible
}

// Len returns the number of observed regions
func (o *Observer) Len() int { return len(o.regions) }

// Update recomputes visibility for every registered region that has a layout
// entry and returns the regions whose visibility changed, ordered by id.
// Regions missing from layout are left untouched.
func (o *Observer) Update(viewport Span, layout map[string]Span) []Change {
	var changes []Change
	for id, st := range o.regions {
		if st.latched {
			continue
		}
		span, ok := layout[id]
		if !ok {
			continue
		}
		vp := Span{Top: viewport.Top - st.region.Margin, Height: viewport.Height + 2*st.region.Margin}
		fraction := Intersection(vp, span)
		visible := fraction > 0 && fraction >= st.region.Threshold
		if visible == st.visible {
			continue
		}
		st.visible = visible
		if visible && st.region.Mode == TriggerOnce {
			st.latched = true
		}
		changes = append(changes, Change{ID: id, Visible: visible})
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].ID < changes[j].ID })
	return changes
}

// Intersection returns the fraction of region that lies inside viewport
func Intersection(viewport, region Span) float64 {
	if region.Height <= 0 || viewport.Height <= 0 {
		return 0
	}
	top := max(viewport.Top, region.Top)
	bottom := min(viewport.Bottom(), region.Bottom())
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(region.Height)
}
