// Package agent runs the interactive assist session on top of Gemini.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the REPL that connects the terminal to the analyst.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Analyst *Expert
	// Print renders an answer to w. Defaults to plain text; the command
	// layer installs a markdown renderer here.
	Print func(w io.Writer, markdown string)
}

func New(w io.Writer, r io.Reader, analyst *Expert) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Analyst: analyst,
		Print:   func(w io.Writer, s string) { fmt.Fprintln(w, s) },
	}
}

const prompt = "assist> "

// Run starts the interactive session. prompts are questions to ask before
// reading from the terminal, so 'fv assist "how did I do"' works one-shot.
// Typing 'bye' or closing stdin ends the session.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Analyst.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to fv assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Analyst.Ask(ctx, input)
		if err != nil {
			return err
		}
		a.Print(a.w, answer)
	}
}
