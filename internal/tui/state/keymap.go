package state

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// KeymapData contains all key bindings for the application.
type KeymapData struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Swipe
	Reveal Key
	Close  Key

	// Actions
	Select Key
	Back   Key
	Quit   Key
	Help   Key

	// Event actions
	AddEvent    Key
	DeleteEvent Key
	CopyEvent   Key

	ToggleHints Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "top (gg)"},
		Bottom: Key{Key: "G", Help: "bottom"},

		Reveal: Key{Key: "h", Help: "reveal delete"},
		Close:  Key{Key: "l", Help: "close"},

		Select: Key{Key: "enter", Help: "open countdown"},
		Back:   Key{Key: "esc", Help: "back"},
		Quit:   Key{Key: "q", Help: "quit"},
		Help:   Key{Key: "?", Help: "help"},

		AddEvent:    Key{Key: "a", Help: "add event"},
		DeleteEvent: Key{Key: "d", Help: "delete (dd)"},
		CopyEvent:   Key{Key: "y", Help: "copy"},

		ToggleHints: Key{Key: "f1", Help: "toggle hints"},
	}
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd').
type KeyState struct {
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
}

// HandleKey processes a key press and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, km Keymap) (string, bool) {
	keymap, ok := km.(KeymapData)
	if !ok {
		keymap = DefaultKeymap()
	}

	key := msg.String()

	if ks.WaitingG {
		ks.WaitingG = false
		if key == keymap.Top.Key {
			return "top", true
		}
	}

	if ks.WaitingD {
		ks.WaitingD = false
		if key == keymap.DeleteEvent.Key {
			return "delete", true
		}
	}

	if key == keymap.Top.Key {
		ks.WaitingG = true
		ks.LastKey = key
		return "", true
	}

	if key == keymap.DeleteEvent.Key {
		ks.WaitingD = true
		ks.LastKey = key
		return "", true
	}

	switch key {
	case keymap.Up.Key, "up":
		return "up", true
	case keymap.Down.Key, "down":
		return "down", true
	case keymap.Bottom.Key:
		return "bottom", true
	case keymap.Reveal.Key, "left":
		return "reveal", true
	case keymap.Close.Key, "right":
		return "close", true
	case keymap.Select.Key, " ":
		return "select", true
	case keymap.Back.Key:
		return "back", true
	case keymap.Quit.Key:
		return "quit", true
	case keymap.Help.Key:
		return "help", true
	case keymap.AddEvent.Key, "+":
		return "add", true
	case keymap.CopyEvent.Key:
		return "copy", true
	case keymap.ToggleHints.Key:
		return "toggle_hints", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.LastKey = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k KeymapData) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{"gg/" + k.Bottom.Key, "Go to top/bottom"},
		{"", ""},
		{"Events", ""},
		{k.Select.Key, "Open full-screen countdown"},
		{k.AddEvent.Key + "/+", "Add new event"},
		{k.Reveal.Key + "/←", "Reveal delete button"},
		{k.Close.Key + "/→", "Close revealed card"},
		{"dd", "Delete event"},
		{k.CopyEvent.Key, "Copy countdown to clipboard"},
		{"", ""},
		{"General", ""},
		{k.Help.Key, "Toggle help"},
		{k.Back.Key, "Close form / countdown / card"},
		{k.ToggleHints.Key, "Toggle key hints"},
		{k.Quit.Key, "Quit"},
		{"Mouse", ""},
		{"click", "Open countdown"},
		{"drag left", "Reveal delete button"},
		{"drag right", "Close revealed card"},
		{"click outside", "Close card / dialog"},
	}
}
