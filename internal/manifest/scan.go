package manifest

import (
	"bufio"
	"io"
)

// maxLineSize bounds a single manifest line.
const maxLineSize = 1024 * 1024

// newLineScanner splits r into lines without their "\n" or "\r\n" terminators.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}
