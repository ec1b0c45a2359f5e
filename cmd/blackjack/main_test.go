package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildParser constructs the CLI grammar without executing a command. The
// root Version flag is visible inside every subcommand, so any short-flag
// clash between it and a subcommand flag fails here.
func buildParser(t *testing.T) *kong.Kong {
	t.Helper()
	parser, err := kong.New(&CLI{},
		kong.Name("blackjack"),
		kong.Vars{"version": version},
	)
	require.NoError(t, err)
	return parser
}

func TestCLIGrammar(t *testing.T) {
	parser := buildParser(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "play defaults", args: []string{"play"}},
		{name: "play with flags", args: []string{"play", "-n", "Alice", "--buy-in", "500"}},
		{name: "simulate defaults", args: []string{"simulate"}},
		{name: "simulate verbose", args: []string{"simulate", "--sessions", "5", "--verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := parser.Parse(tt.args)
			require.NoError(t, err)
			assert.NotEmpty(t, ctx.Command())
		})
	}
}
