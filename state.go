package rose

// NoIndex marks the absence of a selected or hovered slot.
const NoIndex = -1

// State is the interaction state of one chart session: view selection,
// color scheme, label visibility, selection and hover. It is mutated only
// through its transition methods, all of which are total.
//
// State is not safe for concurrent use; hosts with several input sources
// must serialize transitions.
type State struct {
	view     ViewKind
	day      DayFilter
	scheme   Scheme
	labels   bool
	selected int
	hovered  int
}

// NewState returns the startup state: hourly view, all days, blues,
// labels visible, nothing selected or hovered.
func NewState() State {
	return State{
		view:     ViewHourly,
		day:      AllDays,
		scheme:   SchemeBlues,
		labels:   true,
		selected: NoIndex,
		hovered:  NoIndex,
	}
}

// Mode returns the view selection to resolve.
func (s State) Mode() ViewMode {
	return ViewMode{Kind: s.view, Day: s.day}
}

// View returns the current view kind.
func (s State) View() ViewKind { return s.view }

// Day returns the day filter. It is retained across view changes but only
// consulted by the Daily view.
func (s State) Day() DayFilter { return s.day }

// Scheme returns the color scheme.
func (s State) Scheme() Scheme { return s.scheme }

// LabelsVisible reports whether axis and hour labels are drawn.
func (s State) LabelsVisible() bool { return s.labels }

// Selected returns the selected slot index, or NoIndex.
func (s State) Selected() int { return s.selected }

// Hovered returns the hovered slot index, or NoIndex.
func (s State) Hovered() int { return s.hovered }

// SetView switches the view and clears the selection. Slot indices of the
// old view mean nothing in the new one, so hover is cleared too.
func (s *State) SetView(k ViewKind) {
	s.view = k
	s.selected = NoIndex
	s.hovered = NoIndex
}

// SetDay changes the day filter and clears the selection.
func (s *State) SetDay(d DayFilter) {
	s.day = d
	s.selected = NoIndex
	s.hovered = NoIndex
}

// Hover sets the hovered slot. NoIndex clears it.
func (s *State) Hover(i int) {
	s.hovered = i
}

// Click toggles the selection of slot i.
func (s *State) Click(i int) {
	if s.selected == i {
		s.selected = NoIndex
		return
	}
	s.selected = i
}

// SetScheme changes the color scheme.
func (s *State) SetScheme(sc Scheme) {
	s.scheme = sc
}

// SetLabelsVisible shows or hides labels.
func (s *State) SetLabelsVisible(v bool) {
	s.labels = v
}

// ToggleLabels flips label visibility.
func (s *State) ToggleLabels() {
	s.labels = !s.labels
}
