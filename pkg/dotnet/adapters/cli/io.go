package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// drainLines copies r into w line by line, terminating every line with
// "\n", and passes each line to onLine when set. It reads until EOF so the
// child never blocks on a full pipe.
func drainLines(r io.Reader, w *strings.Builder, onLine func(string)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			w.WriteString(line)
			w.WriteByte('\n')
			if onLine != nil {
				onLine(line)
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
