package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/emersion/go-mbox"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zostay/go-mailwords/message"
	"github.com/zostay/go-mailwords/message/header"
)

var mboxCmd = &cobra.Command{
	Use:   "mbox file",
	Short: "List the date, sender, and subject of each message in an mbox file",
	Args:  cobra.ExactArgs(1),
	RunE:  RunMbox,
}

func init() {
	rootCmd.AddCommand(mboxCmd)
}

// RunMbox lists the messages of the mbox file named in args.
func RunMbox(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	n, err := listMbox(cmd.OutOrStdout(), f, logger.WithField("path", path))
	logger.WithField("path", path).WithField("messages", n).Debug("read mbox")
	return err
}

// listMbox writes one line per message in the mbox read from r and returns the
// number of messages seen. Messages that cannot be parsed are logged and
// skipped.
func listMbox(w io.Writer, r io.Reader, log *logrus.Entry) (int, error) {
	mr := mbox.NewReader(r)
	i := 0
	for ; ; i++ {
		msgReader, err := mr.NextMessage()
		if errors.Is(err, io.EOF) {
			return i, nil
		} else if err != nil {
			return i, err
		}

		m, err := message.Parse(msgReader)
		if m == nil {
			log.WithFields(logrus.Fields{
				"index": i,
				"error": err,
			}).Error("unable to parse message")
			continue
		}

		if _, err := fmt.Fprintln(w, summary(i, m.GetHeader())); err != nil {
			return i, err
		}
	}
}

// summary formats the Date, From, and Subject of a message on one line.
func summary(i int, h *header.Header) string {
	date := "-"
	if d, err := h.GetDate(); err == nil || errors.Is(err, header.ErrManyFields) {
		date = d.Format("2006-01-02 15:04")
	}

	from, _ := h.Get(header.From)
	subject, _ := h.GetSubject()

	return fmt.Sprintf("%4d  %-16s  %-30s  %s", i+1, date, from, subject)
}
