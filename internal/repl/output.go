package repl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/itsmostafa/gocalc/internal/calc"
	"github.com/muesli/termenv"
)

// styles are bound to the renderer of the session's output, so colors are
// dropped automatically when the output is not a terminal.
type styles struct {
	// title for bold red headers
	title lipgloss.Style
	// dim for muted help text
	dim lipgloss.Style
	// result for computed values
	result lipgloss.Style
	// diagnostic for rejected statements
	diagnostic lipgloss.Style
	// border for the variables table
	border lipgloss.Style
}

func newStyles(w io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160")),
		dim: r.NewStyle().
			Foreground(lipgloss.Color("240")),
		result: r.NewStyle().
			Foreground(lipgloss.Color("42")),
		diagnostic: r.NewStyle().
			Foreground(lipgloss.Color("196")),
		border: r.NewStyle().
			Foreground(lipgloss.Color("160")),
	}
}

var helpEntries = []struct {
	usage string
	help  string
}{
	{"n = 3, m = n", "assign a literal or another variable"},
	{"n", "print a variable"},
	{"1 + n * (2 - 3) ^ 2", "evaluate with + - * / ^ and brackets"},
	{"/vars", "list all variables"},
	{"/help", "print this help page"},
	{"/exit", "exit the program"},
}

// printHelp renders the help page.
func (r *REPL) printHelp() {
	fmt.Fprintln(r.out, r.styles.title.Render("Smart Calculator Help"))
	for _, e := range helpEntries {
		fmt.Fprintf(r.out, "  %-22s %s\n", e.usage, r.styles.dim.Render(e.help))
	}
	fmt.Fprintln(r.out, r.styles.dim.Render("Integers only. Variable names are Latin letters and case sensitive."))
}

// printResult writes a computed value.
func (r *REPL) printResult(res calc.Result) {
	fmt.Fprintln(r.out, r.styles.result.Render(res.String()))
}

// printDiagnostic writes the message for a rejected statement.
func (r *REPL) printDiagnostic(msg string) {
	fmt.Fprintln(r.out, r.styles.diagnostic.Render(msg))
}

// printVars renders the symbol table sorted by name.
func (r *REPL) printVars() {
	syms := r.engine.Symbols()
	if syms.Len() == 0 {
		fmt.Fprintln(r.out, r.styles.dim.Render("No variables"))
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.border).
		Headers("NAME", "VALUE")
	for _, name := range syms.Names() {
		v, _ := syms.Get(name)
		t.Row(name, strconv.FormatInt(v, 10))
	}
	fmt.Fprintln(r.out, t.Render())
}
