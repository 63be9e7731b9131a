package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the wizard and results bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Up, Down, Back        key.Binding
	Toggle, Next          key.Binding
	Chat, Restart         key.Binding
	Help, Quit, ForceQuit key.Binding
}

func bind(label, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
}

// DefaultKeyMap uses arrows or vim keys to move and space to tick a box.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        bind("↑/k", "up", "up", "k"),
		Down:      bind("↓/j", "down", "down", "j"),
		Back:      bind("Esc", "previous question", "esc", "shift+tab"),
		Toggle:    bind("Space/x", "select", " ", "x"),
		Next:      bind("Enter", "continue", "enter"),
		Chat:      bind("c/Tab", "ask a question", "c", "tab"),
		Restart:   bind("r", "start over", "r"),
		Help:      bind("?", "help", "?"),
		Quit:      bind("q", "quit", "q"),
		ForceQuit: bind("Ctrl+C", "force quit", "ctrl+c"),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Next},
		{k.Back, k.Chat, k.Restart},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
