package consoles

import (
	"fmt"
	"io"
	"os"
)

type writerConsole struct {
	out io.Writer
}

func NewStdOutConsole() Console {
	return &writerConsole{out: os.Stdout}
}

func NewWriterConsole(out io.Writer) Console {
	return &writerConsole{out: out}
}

func (c *writerConsole) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}
