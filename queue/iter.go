package queue

import (
	"io"

	"github.com/joshuapare/memkit/block"
)

// Iterator walks a queue from head to tail in insertion order. A fresh
// Items call always starts at the current head; mutating the queue
// invalidates an in-flight iterator's remaining elements.
type Iterator[T any] struct {
	q    *Queue[T]
	next block.Ref
}

// Items returns an iterator positioned at the current head. Iterating
// does not mutate the queue.
func (q *Queue[T]) Items() *Iterator[T] {
	return &Iterator[T]{q: q, next: q.head}
}

// Next returns a pointer to the next element's value, or io.EOF once
// the chain is exhausted.
func (it *Iterator[T]) Next() (*T, error) {
	if it.next == block.NilRef {
		return nil, io.EOF
	}
	n, err := it.q.at(it.next)
	if err != nil {
		return nil, err
	}
	it.next = n.next
	return &n.value, nil
}
