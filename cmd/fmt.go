package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when stdout is not a terminal or rendering fails.
func printMarkdown(doc string) {
	fprintMarkdown(os.Stdout, doc)
}

func fprintMarkdown(w io.Writer, doc string) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(w, doc)
		return
	}
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Fprintln(w, doc)
		return
	}
	fmt.Fprint(w, out)
}
