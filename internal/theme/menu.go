package theme

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const menuWidth = 47

// MenuOption is one row of the main menu.
type MenuOption struct {
	Key    string
	Action string
}

// Options lists the main menu rows in display order.
var Options = []MenuOption{
	{"1", "Search Recent Tweets"},
	{"2", "Account Analytics"},
	{"3", "Search For a User"},
	{"q", " Quit"},
}

// Menu renders the main menu for w. Styling is applied only when w is a
// terminal that supports it, so the layout is stable for pipes and tests.
func Menu(w io.Writer) string {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	rule := r.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(title.Render("***************  Twitter Miner  ***************"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-16s%31s\n", "****  Option", "Action    ****")
	b.WriteString(rule.Render(strings.Repeat("*", menuWidth)))
	b.WriteString("\n")
	for _, o := range Options {
		fmt.Fprintf(&b, "%-11s%s%35s\n", "****", o.Key, o.Action+"  ***")
	}
	b.WriteString(rule.Render(strings.Repeat("*", menuWidth)))
	b.WriteString("\n\n")
	return b.String()
}

// PrintMenu writes the menu to w.
func PrintMenu(w io.Writer) {
	fmt.Fprint(w, Menu(w))
}
