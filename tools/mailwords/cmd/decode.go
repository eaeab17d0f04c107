package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zostay/go-mailwords/message"
	"github.com/zostay/go-mailwords/message/header"
)

var (
	decodeFields    []string
	decodeRaw       bool
	decodeMaxHeader int
)

var decodeCmd = &cobra.Command{
	Use:   "decode message...",
	Short: "Print the decoded header fields of message files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  RunDecode,
}

func init() {
	decodeCmd.Flags().StringArrayVarP(&decodeFields, "field", "f", nil, "only print the named fields")
	decodeCmd.Flags().BoolVar(&decodeRaw, "raw", false, "print the raw field body under each decoded one")
	decodeCmd.Flags().IntVar(&decodeMaxHeader, "max-header", message.DefaultMaxHeaderLength, "largest header to read in bytes, 0 for no limit")
	rootCmd.AddCommand(decodeCmd)
}

// RunDecode prints the header of every message named in args. A message that
// cannot be read is logged and skipped.
func RunDecode(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		log := logger.WithField("path", path)
		if err := decodeFile(cmd.OutOrStdout(), path, len(args) > 1); err != nil {
			log.WithError(err).Error("unable to decode message")
			failed++
			continue
		}
		log.Debug("decoded message")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d messages could not be decoded", failed, len(args))
	}
	return nil
}

func decodeFile(w io.Writer, path string, banner bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if banner {
		fmt.Fprintf(w, "==> %s <==\n", path)
	}

	m, err := message.Parse(f, message.WithMaxHeaderLength(decodeMaxHeader))
	if m == nil {
		return err
	}
	if err != nil {
		logger.WithFields(logrus.Fields{
			"path":  path,
			"error": err,
		}).Warn("header starts with junk")
	}

	logger.WithFields(logrus.Fields{
		"path":   path,
		"fields": m.GetHeader().Len(),
		"break":  m.GetHeader().Break().Name(),
	}).Debug("parsed header")

	return printHeader(w, m.GetHeader(), decodeFields, decodeRaw)
}

// printHeader writes "Name: decoded text" for each field of h. If names is
// not empty, only fields with one of those names are written.
func printHeader(w io.Writer, h *header.Header, names []string, raw bool) error {
	for _, f := range h.Fields() {
		if len(names) > 0 && !hasName(names, f.Name()) {
			continue
		}

		if _, err := fmt.Fprintf(w, "%s: %s\n", f.Name(), f.Text()); err != nil {
			return err
		}

		if raw {
			if _, err := fmt.Fprintf(w, "  raw: %q\n", f.Value()); err != nil {
				return err
			}
		}
	}

	return nil
}

func hasName(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
