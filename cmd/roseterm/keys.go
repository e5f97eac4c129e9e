package main

import "github.com/charmbracelet/bubbles/key"

var keys = struct {
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Clear  key.Binding
	View   key.Binding
	Day    key.Binding
	Scheme key.Binding
	Labels key.Binding
	Quit   key.Binding
}{
	Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev slot")),
	Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next slot")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	View:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view")),
	Day:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "day")),
	Scheme: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "colors")),
	Labels: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "labels")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// helpBindings is the order bindings appear in the footer.
var helpBindings = []key.Binding{
	keys.Prev, keys.Next, keys.Select, keys.Clear,
	keys.View, keys.Day, keys.Scheme, keys.Labels, keys.Quit,
}
