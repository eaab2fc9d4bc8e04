package quiz

import (
	"charm.land/bubbles/v2/key"
)

// keyMap holds the quiz screen bindings.
type keyMap struct {
	Answer   key.Binding
	Choose   key.Binding
	NewNote  key.Binding
	Language key.Binding
	End      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Answer: key.NewBinding(
			key.WithKeys("c", "d", "e", "f", "g", "a", "b", "C", "D", "E", "F", "G", "A", "B"),
			key.WithHelp("c–b", "answer"),
		),
		Choose: key.NewBinding(
			key.WithKeys("left", "right", "enter"),
			key.WithHelp("←→ Enter", "choose"),
		),
		NewNote: key.NewBinding(
			key.WithKeys("n", "N", "space"),
			key.WithHelp("N", "new note"),
		),
		Language: key.NewBinding(
			key.WithKeys("l", "L"),
			key.WithHelp("L", "language"),
		),
		End: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "end"),
		),
	}
}
