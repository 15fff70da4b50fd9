// Package queue provides a FIFO container whose node storage is drawn
// entirely from a block.Resource. Every Push is exactly one allocation
// and every Pop exactly one free against the bound resource; the queue
// owns no buffer of its own. Not safe for concurrent use.
package queue

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/joshuapare/memkit/block"
)

// ErrEmpty indicates Front or Pop on an empty queue.
var ErrEmpty = errors.New("queue: empty")

// node is the in-slot representation of one element. next holds the
// successor's handle, block.NilRef at the tail.
type node[T any] struct {
	value T
	next  block.Ref
}

// Queue is a singly linked FIFO addressed by resource handles. head and
// tail are block.NilRef when the queue is empty.
type Queue[T any] struct {
	res    block.Resource
	head   block.Ref
	tail   block.Ref
	length int
}

// New binds an empty queue to r. The binding lasts for the queue's
// lifetime; the queue must be closed before r is released.
func New[T any](r block.Resource) *Queue[T] {
	return &Queue[T]{res: r, head: block.NilRef, tail: block.NilRef}
}

// at resolves a node handle through the bound resource.
func (q *Queue[T]) at(ref block.Ref) (*node[T], error) {
	slot, err := q.res.Slot(ref)
	if err != nil {
		return nil, err
	}
	return (*node[T])(unsafe.Pointer(&slot[0])), nil
}

// Push appends v, allocating its node from the bound resource. The
// allocation failure, if any, surfaces unchanged; the queue is left as
// it was.
func (q *Queue[T]) Push(v T) error {
	ref, n, err := block.AllocTyped[node[T]](q.res)
	if err != nil {
		return fmt.Errorf("queue: push: %w", err)
	}
	n.value = v
	n.next = block.NilRef

	if q.tail == block.NilRef {
		q.head = ref
	} else {
		tn, err := q.at(q.tail)
		if err != nil {
			// The chain is corrupt; give the fresh node back rather
			// than leak it.
			_ = block.FreeTyped[node[T]](q.res, ref)
			return fmt.Errorf("queue: push: resolve tail: %w", err)
		}
		tn.next = ref
	}
	q.tail = ref
	q.length++
	return nil
}

// Pop detaches the head, returns its node to the resource, and yields
// the removed value. Fails with ErrEmpty on an empty queue.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.head == block.NilRef {
		return zero, ErrEmpty
	}
	n, err := q.at(q.head)
	if err != nil {
		return zero, fmt.Errorf("queue: pop: %w", err)
	}
	v := n.value
	n.value = zero // drop whatever the slot still references

	old := q.head
	q.head = n.next
	if q.head == block.NilRef {
		q.tail = block.NilRef
	}
	if err := block.FreeTyped[node[T]](q.res, old); err != nil {
		return zero, fmt.Errorf("queue: pop: %w", err)
	}
	q.length--
	return v, nil
}

// Front returns a pointer to the head element's value. The pointer is
// invalidated by a Pop of that element. Fails with ErrEmpty on an
// empty queue.
func (q *Queue[T]) Front() (*T, error) {
	if q.head == block.NilRef {
		return nil, ErrEmpty
	}
	n, err := q.at(q.head)
	if err != nil {
		return nil, fmt.Errorf("queue: front: %w", err)
	}
	return &n.value, nil
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.head == block.NilRef
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int {
	return q.length
}

// Resource returns the bound resource.
func (q *Queue[T]) Resource() block.Resource {
	return q.res
}

// TakeFrom drains q, then adopts src's chain, length, and resource
// binding, leaving src empty but still bound to its own resource.
// Taking from oneself is a no-op.
func (q *Queue[T]) TakeFrom(src *Queue[T]) error {
	if q == src {
		return nil
	}
	if err := q.Close(); err != nil {
		return err
	}
	q.res, q.head, q.tail, q.length = src.res, src.head, src.tail, src.length
	src.head, src.tail, src.length = block.NilRef, block.NilRef, 0
	return nil
}

// Close pops every remaining element head to tail, returning each node
// to the resource. The queue stays bound and reusable afterwards.
func (q *Queue[T]) Close() error {
	for !q.Empty() {
		if _, err := q.Pop(); err != nil {
			return err
		}
	}
	return nil
}
