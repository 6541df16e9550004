package shell

import (
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter completes command names, options, and hand indexes.
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"new": {
		Options: []string{"-width", "-height", "-handsize", "-rules", "-seed"},
	},
	"score": {
		Options: []string{"-format"},
	},
	"bag": {
		Options: []string{"-bins"},
	},
	"help": {
		Args: []string{"place", "score", "script"},
	},
}

var commandNames = []string{
	"new", "draw", "discard", "hand", "place", "lift", "move", "set",
	"clear", "show", "words", "score", "bag", "script", "help", "exit",
}

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		// Unbalanced quotes while typing.
		fields = strings.Fields(text)
	}

	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}

		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		if lastCompleteField == "-format" {
			completions = []string{"text", "json"}
		}

		// The first argument to place is a hand index.
		argsSoFar := len(fields) - 1
		if !endsWithSpace {
			argsSoFar--
		}
		if completions == nil && (cmdName == "place" || cmdName == "pl" || cmdName == "p") &&
			argsSoFar == 0 && c.sc.session != nil {
			for i := range c.sc.session.Hand() {
				completions = append(completions, strconv.Itoa(i))
			}
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			suffix := completion[len(prefix):]
			matches = append(matches, []rune(suffix))
		}
	}

	return matches, len(prefix)
}
