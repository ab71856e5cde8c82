package repl

import (
	"fmt"
	"strings"
)

var commandNames = []string{"/exit", "/help", "/vars"}

// command runs a meta-command. line starts with '/'.
func (r *REPL) command(line string) error {
	name := strings.Fields(line)[0]
	r.log.WithField("command", name).Debug("Meta command")

	switch name {
	case "/help":
		r.printHelp()
	case "/vars":
		r.printVars()
	case "/exit":
		fmt.Fprintln(r.out, "Bye!")
		return ErrExit
	default:
		r.printDiagnostic("Unknown command")
	}
	return nil
}

// complete offers meta-command names for lines starting with '/' and
// variable names for the identifier being typed at the end of the line.
func (r *REPL) complete(line string) []string {
	if strings.HasPrefix(line, "/") {
		var out []string
		for _, name := range commandNames {
			if strings.HasPrefix(name, line) {
				out = append(out, name)
			}
		}
		return out
	}

	start := len(line)
	for start > 0 && isLetter(line[start-1]) {
		start--
	}
	prefix := line[start:]
	if prefix == "" {
		return nil
	}

	var out []string
	for _, name := range r.engine.Symbols().Names() {
		if strings.HasPrefix(name, prefix) && name != prefix {
			out = append(out, line[:start]+name)
		}
	}
	return out
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
