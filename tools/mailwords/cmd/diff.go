package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-mailwords/message"
	"github.com/zostay/go-mailwords/message/header/field"
)

var diffColor bool

var diffCmd = &cobra.Command{
	Use:   "diff message",
	Short: "Show what decoding changed in each encoded header field",
	Args:  cobra.ExactArgs(1),
	RunE:  RunDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&diffColor, "color", false, "mark changes with terminal colors")
	rootCmd.AddCommand(diffCmd)
}

// RunDiff prints a character diff between the unfolded raw body and the
// decoded text of each field containing an encoded word.
func RunDiff(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	m, err := message.Parse(f)
	if m == nil {
		return err
	}
	if err != nil {
		logger.WithField("path", path).WithError(err).Warn("header starts with junk")
	}

	w := cmd.OutOrStdout()
	for _, hf := range m.GetHeader().Fields() {
		if err := diffField(w, hf, diffColor); err != nil {
			return err
		}
	}

	return nil
}

var foldRe = regexp.MustCompile(`(?:\r\n|\n|\r)[ \t]+`)

// unfold turns each line break and the blanks after it into a single space.
func unfold(v []byte) string {
	return foldRe.ReplaceAllString(string(v), " ")
}

// diffField writes the diff for a single field. Fields without an encoded word
// are skipped.
func diffField(w io.Writer, f *field.Field, color bool) error {
	if !bytes.Contains(f.Value(), []byte("=?")) {
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(unfold(f.Value()), f.Text(), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var out string
	if color {
		out = dmp.DiffPrettyText(diffs)
	} else {
		out = plainDiff(diffs)
	}

	_, err := fmt.Fprintf(w, "%s: %s\n", f.Name(), out)
	return err
}

// plainDiff renders deletions as [-text-] and insertions as {+text+}.
func plainDiff(diffs []diffmatchpatch.Diff) string {
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
