package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"folioview/auth"
	"folioview/config"
)

type loginCmd struct{}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in with Google" }
func (*loginCmd) Usage() string {
	return `login

  Sign in with Google and save the credentials the backend requires.
  Needs GOOGLE_OAUTH_CLIENT_JSON or GOOGLE_OAUTH_CLIENT_FILE.
`
}

func (*loginCmd) SetFlags(f *flag.FlagSet) {}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := auth.ConfigFromEnv()
	if err != nil {
		return fail(err)
	}
	store := auth.Store{Path: config.TokenFile()}
	if err := auth.Login(ctx, cfg, store, func(format string, a ...any) {
		fmt.Printf(format, a...)
	}); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
