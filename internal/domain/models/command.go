package models

import "strings"

// CommandType enumerates supported console command categories.
type CommandType string

const (
	CommandList    CommandType = "list"
	CommandAdd     CommandType = "add"
	CommandDelete  CommandType = "delete"
	CommandStats   CommandType = "stats"
	CommandHelp    CommandType = "help"
	CommandQuit    CommandType = "quit"
	CommandUnknown CommandType = "unknown"
)

// Command represents a parsed console instruction.
type Command struct {
	Type CommandType
	Raw  string
	Args []string
}

// ParseCommand derives a Command instance from a line of console input. Only
// the leading token is case-folded; arguments keep the user's casing so ids
// and free text pass through untouched.
func ParseCommand(line string) Command {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Command{Type: CommandUnknown, Raw: line}
	}

	tokens := strings.Fields(trimmed)
	cmd := Command{Raw: line}

	head := strings.ToLower(strings.TrimPrefix(tokens[0], "/"))
	switch head {
	case string(CommandList), "ls":
		cmd.Type = CommandList
	case string(CommandAdd):
		cmd.Type = CommandAdd
	case string(CommandDelete), "del", "rm":
		cmd.Type = CommandDelete
	case string(CommandStats):
		cmd.Type = CommandStats
	case string(CommandHelp), "?":
		cmd.Type = CommandHelp
	case string(CommandQuit), "exit":
		cmd.Type = CommandQuit
	default:
		cmd.Type = CommandUnknown
	}

	if len(tokens) > 1 {
		cmd.Args = tokens[1:]
	}

	return cmd
}
