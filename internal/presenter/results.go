package presenter

import (
	"bufio"
	"fmt"
	"io"
)

// SignOff is written after the last result, without a trailing newline
const SignOff = "Bhoj is here"

// WriteResults writes each value as a decimal line, followed by SignOff.
func WriteResults(w io.Writer, values []int) error {
	bw := bufio.NewWriter(w)

	for _, v := range values {
		if _, err := fmt.Fprintf(bw, "%d\n", v); err != nil {
			return fmt.Errorf("failed to write result %d: %w", v, err)
		}
	}
	if _, err := bw.WriteString(SignOff); err != nil {
		return fmt.Errorf("failed to write sign-off: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush results: %w", err)
	}
	return nil
}
