package emit

import (
	"bytes"
	"encoding/json"
	"io"
)

// JSON writes one JSON array covering the whole run: objects keyed by the
// dimension keys when Begin received them, positional arrays otherwise.
// Object keys keep dimension order rather than the alphabetical order
// json.Marshal would impose on a map. The document is complete only after
// End; Begin starts a fresh one, so an encoder can serve successive runs.
type JSON[T any] struct {
	w     io.Writer
	keys  [][]byte // pre-marshaled, in dimension order
	wrote bool
}

// NewJSON returns a JSON encoder writing to w.
func NewJSON[T any](w io.Writer) *JSON[T] {
	return &JSON[T]{w: w}
}

func (j *JSON[T]) Begin(keys []string) error {
	j.wrote = false
	j.keys = make([][]byte, len(keys))
	for i, key := range keys {
		raw, err := json.Marshal(key)
		if err != nil {
			return err
		}
		j.keys[i] = raw
	}
	_, err := io.WriteString(j.w, "[")
	return err
}

func (j *JSON[T]) Write(entry []T) error {
	var buf bytes.Buffer
	if j.wrote {
		buf.WriteByte(',')
	}
	if len(j.keys) == len(entry) && len(entry) > 0 {
		buf.WriteByte('{')
		for i, el := range entry {
			if i > 0 {
				buf.WriteByte(',')
			}
			raw, err := json.Marshal(el)
			if err != nil {
				return err
			}
			buf.Write(j.keys[i])
			buf.WriteByte(':')
			buf.Write(raw)
		}
		buf.WriteByte('}')
	} else {
		raw, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		buf.Write(raw)
	}
	j.wrote = true
	_, err := j.w.Write(buf.Bytes())
	return err
}

func (j *JSON[T]) End() error {
	_, err := io.WriteString(j.w, "]")
	return err
}
