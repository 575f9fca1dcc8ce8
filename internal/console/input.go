package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Input reads player decisions line by line from a terminal-style stream.
type Input struct {
	reader *bufio.Reader
}

func NewInput(r io.Reader) *Input {
	return &Input{
		reader: bufio.NewReader(r),
	}
}

// ReadMove returns the next raw move line. Parsing and validation stay with
// the session; this only strips the line terminator.
func (that *Input) ReadMove() (string, error) {
	return that.readLine()
}

// ReadRematch returns the next raw rematch answer line.
func (that *Input) ReadRematch() (string, error) {
	return that.readLine()
}

func (that *Input) readLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
