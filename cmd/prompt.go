package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readLine prompts on stderr and reads one line from the command's
// stdin. It reads byte by byte so consecutive prompts never consume
// input buffered past the current line.
func readLine(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)

	in := cmd.InOrStdin()
	var line strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			line.WriteByte(buf[0])
		}
		if err != nil {
			if err == io.EOF && line.Len() > 0 {
				break
			}
			return "", fmt.Errorf("reading input: %w", err)
		}
	}
	return strings.TrimSpace(line.String()), nil
}

// readPassword prompts without echo when stdin is a terminal, falling
// back to plain line reading for piped input (tests, scripts).
func readPassword(cmd *cobra.Command, label string) (string, error) {
	stdin, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(stdin.Fd())) {
		return readLine(cmd, label)
	}

	fmt.Fprintf(os.Stderr, "%s: ", label)
	raw, err := term.ReadPassword(int(stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
