package rose

// Event is a state transition request forwarded by a host event loop.
// The set of events is closed; Apply handles every variant.
type Event interface {
	isEvent()
}

// SetViewEvent switches the view kind.
type SetViewEvent struct{ View ViewKind }

// SetDayEvent changes the day filter.
type SetDayEvent struct{ Day DayFilter }

// HoverEvent moves the hover to Index, or clears it with NoIndex.
type HoverEvent struct{ Index int }

// ClickEvent toggles the selection of Index.
type ClickEvent struct{ Index int }

// SetSchemeEvent changes the color scheme.
type SetSchemeEvent struct{ Scheme Scheme }

// SetLabelsEvent shows or hides labels.
type SetLabelsEvent struct{ Visible bool }

// ToggleLabelsEvent flips label visibility.
type ToggleLabelsEvent struct{}

func (SetViewEvent) isEvent()      {}
func (SetDayEvent) isEvent()       {}
func (HoverEvent) isEvent()        {}
func (ClickEvent) isEvent()        {}
func (SetSchemeEvent) isEvent()    {}
func (SetLabelsEvent) isEvent()    {}
func (ToggleLabelsEvent) isEvent() {}

// Apply performs the transition described by ev. A nil event is a no-op.
func (s *State) Apply(ev Event) {
	switch e := ev.(type) {
	case SetViewEvent:
		s.SetView(e.View)
	case SetDayEvent:
		s.SetDay(e.Day)
	case HoverEvent:
		s.Hover(e.Index)
	case ClickEvent:
		s.Click(e.Index)
	case SetSchemeEvent:
		s.SetScheme(e.Scheme)
	case SetLabelsEvent:
		s.SetLabelsVisible(e.Visible)
	case ToggleLabelsEvent:
		s.ToggleLabels()
	}
}
