package internal

import (
	"iter"
	"slices"
)

// Rows splits data into rows of size bytes, yielding the offset of each row.
// The last row may be short.
func Rows(data []byte, size int) iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		var offset int
		for row := range slices.Chunk(data, size) {
			if !yield(offset, row) {
				return
			}
			offset += len(row)
		}
	}
}

// NonZero filters a row sequence down to rows holding a non-zero byte.
func NonZero(rows iter.Seq2[int, []byte]) iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for offset, row := range rows {
			if !slices.ContainsFunc(row, func(b byte) bool { return b != 0 }) {
				continue
			}
			if !yield(offset, row) {
				return
			}
		}
	}
}
