package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shigou0206/editor-analyzer/internal/engine"
	"github.com/shigou0206/editor-analyzer/internal/token"
	"github.com/shigou0206/editor-analyzer/internal/tracing"
)

var jsonOutput bool

func init() {
	tokenizeCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit tokens as JSON")
	highlightCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit tokens as JSON")
	linesCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit tokens as JSON")

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(linesCmd)
}

// newEngine builds the engine the CLI commands share. No structural parser
// is linked into the CLI, so the engine runs in lexical fallback mode.
func newEngine() (*engine.Engine, func(), error) {
	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing tracing: %w", err)
	}

	var eng *engine.Engine
	opts := []engine.Option{
		engine.WithTracer(provider.Tracer()),
		engine.WithTTL(cfg.Cache.TTL),
	}
	if cfg.Cache.Disabled {
		eng = engine.NewUncached(nil, opts...)
	} else {
		eng = engine.New(nil, opts...)
	}

	cleanup := func() {
		eng.Close()
		_ = provider.Shutdown(cmdContext())
	}
	return eng, cleanup, nil
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Print the lexical token stream for a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0]) // #nosec G304 -- user-supplied input path
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		eng, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		return printTokens(cmd, eng.Tokenize(string(source)))
	},
}

var highlightCmd = &cobra.Command{
	Use:   "highlight <file>",
	Short: "Print the best-effort highlight token stream for a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0]) // #nosec G304 -- user-supplied input path
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		eng, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		result := eng.Highlight(cmdContext(), string(source))
		cmd.Printf("# outcome: %s\n", result.Outcome)
		return printTokens(cmd, result.Tokens)
	},
}

var linesCmd = &cobra.Command{
	Use:   "lines <file> [line]",
	Short: "Print line-bucketed tokens, optionally for a single line",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0]) // #nosec G304 -- user-supplied input path
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		eng, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		lines := eng.Lines(cmdContext(), string(source))

		var toks []token.LineToken
		if len(args) == 2 {
			line, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid line number %q: %w", args[1], err)
			}
			toks = lines.ForLine(line)
		} else {
			toks = lines.All()
		}

		if jsonOutput {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(toks)
		}
		for _, t := range toks {
			cmd.Printf("%d\t%s\t%s\t[%d,%d)\t%q\n", t.Line, t.Source, t.Kind, t.Start, t.End, t.Text)
		}
		return nil
	},
}

func printTokens(cmd *cobra.Command, tokens []token.Token) error {
	if jsonOutput {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(tokens)
	}
	for _, t := range tokens {
		cmd.Printf("%s\t[%d,%d)\t%q\n", t.Kind, t.Start, t.End, t.Text)
	}
	return nil
}
