package logic

import (
	"folio/internal/domain"
	"folio/internal/motion"
)

var categoryLabels = [...]string{
	domain.CategoryAll:       "All",
	domain.CategoryWeb:       "Web",
	domain.CategoryAI:        "AI",
	domain.CategoryFullstack: "Full Stack",
	domain.CategoryOther:     "Other",
}

// CategoryLabel returns the display label of a filter category
func CategoryLabel(c domain.Category) string {
	if !c.Valid() || int(c) >= len(categoryLabels) {
		return c.String()
	}
	return categoryLabels[c]
}

// FilterState tracks the project filter and the project shown in the modal.
// The modal is open exactly while a project is selected. A closed project is
// kept as the closing reference until its exit animation ends.
type FilterState struct {
	category domain.Category
	selected *domain.Project
	closing  *domain.Project
	carousel *motion.Carousel
	clear    motion.Handle
}

// NewFilterState creates a filter showing every category
func NewFilterState() *FilterState {
	return &FilterState{
		category: domain.CategoryAll,
		carousel: motion.NewCarousel(0),
	}
}

// Category returns the active filter
func (f *FilterState) Category() domain.Category { return f.category }

// SetFilter replaces the active filter. Unknown categories are ignored.
func (f *FilterState) SetFilter(c domain.Category) bool {
	if !c.Valid() {
		return false
	}
	f.category = c
	return true
}

// Visible returns the projects matching the active filter in source order
func (f *FilterState) Visible(projects []domain.Project) []domain.Project {
	if f.category == domain.CategoryAll {
		return projects
	}
	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.Category == f.category {
			out = append(out, p)
		}
	}
	return out
}

// Select opens the modal on p and rebinds the carousel to its images
func (f *FilterState) Select(p domain.Project) {
	f.clear.Cancel()
	f.closing = nil
	f.selected = &p
	f.carousel.Bind(len(p.Images))
}

// Selected returns the project in the open modal, or nil
func (f *FilterState) Selected() *domain.Project { return f.selected }

// ModalOpen reports whether the project modal is open
func (f *FilterState) ModalOpen() bool { return f.selected != nil }

// Closing returns the project whose modal is animating out, or nil
func (f *FilterState) Closing() *domain.Project { return f.closing }

// Close closes the modal and returns the generation of the timer that
// will drop the closing reference. ok is false when no modal was open.
func (f *FilterState) Close() (gen uint64, ok bool) {
	if f.selected == nil {
		return 0, false
	}
	f.closing = f.selected
	f.selected = nil
	return f.clear.Arm(), true
}

// ClearClosing drops the closing reference if gen is still current
func (f *FilterState) ClearClosing(gen uint64) bool {
	if !f.clear.Fire(gen) {
		return false
	}
	f.closing = nil
	return true
}

// Teardown cancels the pending clear and forgets every project
func (f *FilterState) Teardown() {
	f.clear.Cancel()
	f.selected = nil
	f.closing = nil
	f.carousel.Bind(0)
}

// Carousel returns the image carousel of the selected project
func (f *FilterState) Carousel() *motion.Carousel { return f.carousel }

// Reconcile refreshes the selected project after content reload. The modal
// closes when the project no longer exists.
func (f *FilterState) Reconcile(projects []domain.Project) {
	if f.selected == nil {
		return
	}
	for _, p := range projects {
		if p.ID == f.selected.ID {
			idx := f.carousel.Index()
			f.selected = &p
			f.carousel.Bind(len(p.Images))
			f.carousel.GoTo(idx)
			return
		}
	}
	f.selected = nil
	f.closing = nil
	f.clear.Cancel()
	f.carousel.Bind(0)
}
