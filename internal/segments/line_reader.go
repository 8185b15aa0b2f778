package segments

import (
	"bufio"
	"io"
	"strings"
)

const lineReaderBufferSize = 64 * 1024

// ForEachLine calls fn with every line of r, terminator stripped. A trailing line without a
// terminator is still delivered. Returning false from fn stops the iteration early.
func ForEachLine(r io.Reader, fn func(line string) bool) error {
	reader := bufio.NewReaderSize(r, lineReaderBufferSize)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if !fn(TrimLineEnding(line)) {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// ReadLines buffers every line of r in file order.
func ReadLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0, 256)
	err := ForEachLine(r, func(line string) bool {
		lines = append(lines, line)
		return true
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// TrimLineEnding removes a trailing "\n" or "\r\n".
func TrimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
