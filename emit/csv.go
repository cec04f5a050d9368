package emit

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSV writes one row per combination, rendering each element with
// fmt.Sprint. With a header, the dimension keys become the first row.
type CSV[T any] struct {
	w          *csv.Writer
	withHeader bool
}

// NewCSV returns a CSV encoder writing to w. A nonzero comma replaces the
// default separator; withHeader emits the key row from Begin.
func NewCSV[T any](w io.Writer, comma rune, withHeader bool) *CSV[T] {
	cw := csv.NewWriter(w)
	if comma != 0 {
		cw.Comma = comma
	}
	return &CSV[T]{w: cw, withHeader: withHeader}
}

func (c *CSV[T]) Begin(keys []string) error {
	if !c.withHeader || len(keys) == 0 {
		return nil
	}
	return c.w.Write(keys)
}

func (c *CSV[T]) Write(entry []T) error {
	row := make([]string, len(entry))
	for i, el := range entry {
		row[i] = fmt.Sprint(el)
	}
	return c.w.Write(row)
}

func (c *CSV[T]) End() error {
	c.w.Flush()
	return c.w.Error()
}
