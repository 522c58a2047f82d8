package output

import (
	"fmt"
	"strings"
)

// CommandHints maps command names to related commands users might want to run next
var CommandHints = map[string][]string{
	"login":     {"whoami", "dashboard"},
	"register":  {"assess", "whoami"},
	"logout":    {"login"},
	"assess":    {"recommend", "routine suggest", "profile"},
	"recommend": {"feedback --product-id <id>", "history"},
	"analyze":   {"recommend"},
	"routine":   {"routine list", "recommend"},
	"profile":   {"assess", "profile set"},
	"history":   {"feedback --product-id <id>"},
	"dashboard": {"history", "routine list"},
}

// PrintHints prints "See also" hints for a command. No-op in quiet mode or if command has no hints.
func (p *Printer) PrintHints(command string) {
	if p.quiet {
		return
	}
	hints, ok := CommandHints[command]
	if !ok || len(hints) == 0 {
		return
	}

	cmds := make([]string, len(hints))
	for i, h := range hints {
		cmds[i] = "skinctl " + h
	}
	fmt.Fprintf(p.out, "\nSee also: %s\n", strings.Join(cmds, ", "))
}
