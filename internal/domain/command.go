package domain

// Command is an operation offered in the interactive menu
type Command string

const (
	CommandFollow             Command = "follow"
	CommandTail               Command = "tail"
	CommandKeywordSearch      Command = "keyword-search"
	CommandRangeSearch        Command = "range-search"
	CommandKeywordRangeSearch Command = "keyword-range-search"
	CommandErrorIDSearch      Command = "error-id-search"
	CommandExit               Command = "exit"
)

// Commands lists the menu entries in display order
var Commands = []Command{
	CommandFollow,
	CommandTail,
	CommandKeywordSearch,
	CommandRangeSearch,
	CommandKeywordRangeSearch,
	CommandErrorIDSearch,
	CommandExit,
}

// String returns the string representation of Command
func (c Command) String() string {
	return string(c)
}

// Description returns the menu help text for the command
func (c Command) Description() string {
	switch c {
	case CommandFollow:
		return "Stream new events as they arrive"
	case CommandTail:
		return "Show events from a relative window (e.g. 1h)"
	case CommandKeywordSearch:
		return "Search the last day for a keyword"
	case CommandRangeSearch:
		return "Search between two local date-times"
	case CommandKeywordRangeSearch:
		return "Search a date range for a keyword"
	case CommandErrorIDSearch:
		return "Search by execution ids from the last error index"
	case CommandExit:
		return "Quit"
	default:
		return ""
	}
}

// IsSearch returns true for commands whose results are parsed and indexed
func (c Command) IsSearch() bool {
	switch c {
	case CommandKeywordSearch, CommandRangeSearch, CommandKeywordRangeSearch, CommandErrorIDSearch:
		return true
	}
	return false
}

// ParseCommand returns the command with the given name
func ParseCommand(name string) (Command, bool) {
	for _, c := range Commands {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}
