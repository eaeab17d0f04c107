package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailwords/message/header/token"
)

var tokensUnnormalized bool

var tokensCmd = &cobra.Command{
	Use:   "tokens value",
	Short: "Show the tokens a header field body decodes into",
	Long: `Show the tokens a header field body decodes into, one per line.

Escapes such as "\n" are not interpreted. Quote a real line break in the shell
to see how a folded body is handled.`,
	Args: cobra.ExactArgs(1),
	RunE: RunTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensUnnormalized, "unnormalized", false, "show the tokens before whitespace is normalized")
	rootCmd.AddCommand(tokensCmd)
}

// RunTokens prints the tokens for the value given in args.
func RunTokens(cmd *cobra.Command, args []string) error {
	toks := token.Normalized(args[0])
	if tokensUnnormalized {
		toks = token.Tokenize(args[0])
	}

	logger.WithField("count", len(toks)).Debug("tokenized value")

	return printTokens(cmd.OutOrStdout(), toks)
}

// printTokens writes each token with its kind, then the joined text.
func printTokens(w io.Writer, toks []token.Token) error {
	for _, tok := range toks {
		if _, err := fmt.Fprintf(w, "%-10s %q\n", token.Kind(tok), tok.String()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%-10s %q\n", "=", token.Join(toks))
	return err
}
