package cli

import "strings"

// Command is one of the words accepted at the main prompt
type Command int

const (
	CommandInvalid Command = iota
	CommandAdd
	CommandList
	CommandToggle
	CommandDelete
	CommandExit
)

// commandNames maps each accepted word to its command
var commandNames = map[string]Command{
	"add":    CommandAdd,
	"list":   CommandList,
	"toggle": CommandToggle,
	"delete": CommandDelete,
	"exit":   CommandExit,
}

// ParseCommand matches a line of input against the known commands. Only
// surrounding whitespace is ignored; matching is case-sensitive.
func ParseCommand(word string) Command {
	if cmd, ok := commandNames[strings.TrimSpace(word)]; ok {
		return cmd
	}
	return CommandInvalid
}

// String returns the word that selects the command
func (c Command) String() string {
	switch c {
	case CommandAdd:
		return "add"
	case CommandList:
		return "list"
	case CommandToggle:
		return "toggle"
	case CommandDelete:
		return "delete"
	case CommandExit:
		return "exit"
	default:
		return "invalid"
	}
}

// NeedsPosition reports whether the command acts on one listed todo
func (c Command) NeedsPosition() bool {
	return c == CommandToggle || c == CommandDelete
}
