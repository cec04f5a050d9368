// Package emit streams decoded combinations into pluggable output formats.
//
// An Emitter walks indices of one cartesian.Space and hands each decoded
// combination to an Encoder, one record at a time, so the memory cost of a
// run stays independent of how many records it writes. The package ships CSV
// and JSON encoders; anything else only has to implement the three-call
// Encoder contract.
package emit

// Encoder renders combinations to some destination, one at a time.
//
// Begin is called once before the first Write with the dimension keys (empty
// when the run is positional), End exactly once after the last Write.
// Encoders own their buffering and flush it in End.
type Encoder[T any] interface {
	Begin(keys []string) error
	Write(entry []T) error
	End() error
}
