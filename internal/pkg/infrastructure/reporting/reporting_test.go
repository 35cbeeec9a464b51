package reporting

import (
	"testing"

	"github.com/matryer/is"
)

func TestLastWriteWins(t *testing.T) {
	is := is.New(t)

	r := New()
	is.Equal("", r.Last())

	r.Report("first failure")
	r.Report("second failure")

	is.Equal("second failure", r.Last())
}

func TestClearEmptiesTheSlot(t *testing.T) {
	is := is.New(t)

	r := New()
	r.Report("a failure")
	r.Clear()

	is.Equal("", r.Last())
}
