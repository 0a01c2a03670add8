package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"folioview/agent"
	"folioview/api"
	"folioview/config"
)

type assistCmd struct {
	portfolio string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an analyst about the portfolio" }
func (*assistCmd) Usage() string {
	return `assist [-portfolio <name>] [question]

  Start an interactive session with an analyst primed with the current
  holdings and returns. Needs GEMINI_API_KEY. Type 'bye' to exit.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "portfolio", "", "portfolio name (defaults to the settings file)")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if config.GeminiAPIKey() == "" {
		fmt.Fprintln(os.Stderr, "assist needs GEMINI_API_KEY in the environment")
		return subcommands.ExitFailure
	}

	settings, err := Settings()
	if err != nil {
		return fail(err)
	}
	portfolio, err := Portfolio(c.portfolio, settings)
	if err != nil {
		return fail(err)
	}
	client, err := NewClient()
	if err != nil {
		return fail(err)
	}

	contextJSON, err := analystContext(ctx, client, portfolio)
	if err != nil {
		return fail(err)
	}

	gclient, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: config.GeminiAPIKey()})
	if err != nil {
		return fail(fmt.Errorf("initializing Gemini client: %w", err))
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(contextJSON))
	a.Print = func(w io.Writer, markdown string) { fprintMarkdown(w, markdown) }

	initialPrompt := strings.Join(f.Args(), " ")
	if err := a.Run(ctx, gclient, initialPrompt); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// analystContext gathers what the analyst should know up front. Missing
// pieces are skipped, a fresh portfolio may have no returns yet.
func analystContext(ctx context.Context, client *api.Client, portfolio string) (string, error) {
	doc := map[string]any{"portfolio": portfolio}
	if status, err := client.Status(ctx, portfolio); err == nil {
		doc["holdings"] = status
	}
	if returns, err := client.Returns(ctx, portfolio); err == nil {
		doc["returns"] = returns
	}
	if len(doc) == 1 {
		return "", fmt.Errorf("could not load any portfolio data for %q", portfolio)
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
