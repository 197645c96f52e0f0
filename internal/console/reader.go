// README: Line reader that prints a prompt and returns one raw line of input.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEndOfInput is returned once the input source is closed or exhausted.
var ErrEndOfInput = errors.New("end of input")

type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// ReadLine writes prompt and returns the next line without its line ending.
// Surrounding whitespace is left for the caller to handle.
func (r *Reader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			// A final line without a newline still counts as input.
			if line != "" {
				return strings.TrimRight(line, "\r"), nil
			}
			return "", ErrEndOfInput
		}
		return "", fmt.Errorf("read line: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
