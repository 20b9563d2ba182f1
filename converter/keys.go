package converter

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the view-level bindings. Everything else goes to the editor.
type KeyMap struct {
	Copy       key.Binding
	Clear      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Copy:       key.NewBinding(key.WithKeys("ctrl+s", "alt+c"), key.WithHelp("ctrl+s", "copy")),
		Clear:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		ScrollUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "scroll output")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll output")),
		Help:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "how it works")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Clear, k.ScrollUp, k.Help, k.Quit}
}

func (k KeyMap) isZero() bool {
	return len(k.Copy.Keys()) == 0 && len(k.Clear.Keys()) == 0 && len(k.Quit.Keys()) == 0
}
