// Package display renders the outcome of an increment onto a text target.
package display

import (
	"fmt"
	"io"

	"github.com/cloudresume/visitors/models"
)

// ErrorText is what the user sees for any failure.
const ErrorText = "Error"

const fetchProblem = "There was a problem with the fetch operation:"

type Target interface {
	SetText(text string)
}

// Logger is the diagnostic channel. logxi loggers and dom.Console satisfy it.
type Logger interface {
	Error(msg string, args ...interface{}) error
}

// Show writes the count, or ErrorText when err is non-nil. Error details only
// go to the logger.
func Show(target Target, count models.Count, err error, log Logger) {
	if err != nil {
		log.Error(fetchProblem, "err", err)
		target.SetText(ErrorText)
		return
	}

	target.SetText(count.String())
}

// WriterTarget prints each text it is given on its own line.
type WriterTarget struct {
	W io.Writer
}

func (t WriterTarget) SetText(text string) {
	fmt.Fprintln(t.W, text)
}
