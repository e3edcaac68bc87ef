/*
Package slist implements a singly linked list of integers indexed by 1-based position.
*/
package slist

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// List is a singly linked list of integers.
//
// The zero value is a ready to use empty list. A nil *List or a list that
// has been freed is absent: queries report no elements and mutations
// return ErrAbsent.
//
// List is not safe for concurrent use.
type List struct {
	head  *node
	len   int
	freed bool
	opts  listOptions
}

// New creates an empty list.
func New(opts ...Option) *List {
	l := &List{
		opts: newDefaultListOptions(),
	}

	for _, opt := range opts {
		opt.apply(&l.opts)
	}

	return l
}

func (l *List) lazyInit() {
	if l.opts.alloc == nil {
		l.opts = newDefaultListOptions()
	}
}

func (l *List) absent() bool {
	return l == nil || l.freed
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	if l.absent() {
		return 0
	}
	return l.len
}

// PushBack appends a value at the back of the list.
func (l *List) PushBack(v int) error {
	if l.absent() {
		return ErrAbsent
	}

	n, err := l.newNode(v)
	if err != nil {
		return err
	}

	if l.head == nil {
		l.head = n
	} else {
		l.nodeAt(l.len).next = n
	}
	l.len++

	return nil
}

// PushFront prepends a value at the front of the list.
func (l *List) PushFront(v int) error {
	if l.absent() {
		return ErrAbsent
	}

	n, err := l.newNode(v)
	if err != nil {
		return err
	}

	n.next = l.head
	l.head = n
	l.len++

	return nil
}

// Insert inserts a value so that it ends up at the 1-based index.
// Valid indexes are 1 to Len()+1. Index 1 inserts at the front,
// index Len()+1 appends at the back.
//
// An index out of range returns ErrIndexOutOfRange and leaves the list unchanged.
func (l *List) Insert(v, index int) error {
	if l.absent() {
		return ErrAbsent
	}

	if index < 1 || index > l.len+1 {
		return fmt.Errorf("%w: insert at %d, valid range is [1, %d]", ErrIndexOutOfRange, index, l.len+1)
	}

	if index == 1 {
		return l.PushFront(v)
	}

	n, err := l.newNode(v)
	if err != nil {
		return err
	}

	prev := l.nodeAt(index - 1)
	n.next = prev.next
	prev.next = n
	l.len++

	return nil
}

// PopFront removes the first element and returns its value.
func (l *List) PopFront() (int, error) {
	if l.absent() {
		return 0, ErrAbsent
	}

	if l.head == nil {
		return 0, ErrEmpty
	}

	n := l.head
	l.head = n.unlink()
	l.drop()

	return n.value, nil
}

// PopBack removes the last element and returns its value.
func (l *List) PopBack() (int, error) {
	if l.absent() {
		return 0, ErrAbsent
	}

	switch l.len {
	case 0:
		return 0, ErrEmpty

	case 1:
		return l.PopFront()
	}

	prev := l.nodeAt(l.len - 1)
	n := prev.next
	prev.next = nil
	l.drop()

	return n.value, nil
}

// RemoveAt removes the element at the 1-based index and returns its value.
func (l *List) RemoveAt(index int) (int, error) {
	if err := l.checkIndex(index); err != nil {
		return 0, err
	}

	if index == 1 {
		return l.PopFront()
	}

	prev := l.nodeAt(index - 1)
	n := prev.next
	prev.next = n.unlink()
	l.drop()

	return n.value, nil
}

// At returns the value at the 1-based index.
func (l *List) At(index int) (int, error) {
	if err := l.checkIndex(index); err != nil {
		return 0, err
	}

	return l.nodeAt(index).value, nil
}

// IndexOf returns the 1-based index of the first element equal to v.
func (l *List) IndexOf(v int) (int, error) {
	if l.absent() {
		return 0, ErrAbsent
	}

	pos := 1
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return pos, nil
		}
		pos++
	}

	return 0, fmt.Errorf("%w: %d", ErrNotFound, v)
}

// Contains reports whether some element equals v.
func (l *List) Contains(v int) bool {
	_, err := l.IndexOf(v)
	return err == nil
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List) Do(f func(v int) bool) {
	if l.absent() {
		return
	}

	for n := l.head; n != nil; n = n.next {
		if !f(n.value) {
			return
		}
	}
}

// Values returns the elements of the list in order.
func (l *List) Values() []int {
	values := make([]int, 0, l.Len())

	l.Do(func(v int) bool {
		values = append(values, v)
		return true
	})

	return values
}

// Clear removes every element. The list stays usable.
func (l *List) Clear() {
	if l.absent() {
		return
	}

	l.releaseAll()
}

// Free releases every node of the list. After Free the list is absent
// and must not be used again.
func (l *List) Free() {
	if l.absent() {
		return
	}

	l.lazyInit()

	n := l.releaseAll()
	l.freed = true

	l.opts.logger.Debug("list freed", zap.Int("nodes", n))
}

func (l *List) checkIndex(index int) error {
	if l.absent() {
		return ErrAbsent
	}

	if l.len == 0 {
		return ErrEmpty
	}

	if index < 1 || index > l.len {
		return fmt.Errorf("%w: %d, valid range is [1, %d]", ErrIndexOutOfRange, index, l.len)
	}

	return nil
}

// nodeAt returns the node at the 1-based index. The index must be valid.
func (l *List) nodeAt(index int) *node {
	n := l.head
	for i := 1; i < index; i++ {
		n = n.next
	}
	return n
}

func (l *List) newNode(v int) (*node, error) {
	l.lazyInit()

	if err := l.opts.alloc.Allocate(); err != nil {
		l.opts.logger.Debug("node allocation refused",
			zap.Int("value", v),
			zap.Int("len", l.len),
			zap.Error(err),
		)

		if !errors.Is(err, ErrAllocation) {
			err = fmt.Errorf("%w: %w", ErrAllocation, err)
		}

		return nil, err
	}

	return &node{value: v}, nil
}

// drop accounts for a node that was unlinked from the chain.
func (l *List) drop() {
	l.len--
	l.opts.alloc.Release()
}

// releaseAll unlinks and releases every node and returns how many were released.
func (l *List) releaseAll() int {
	count := l.releaseChain(l.head)

	l.head = nil
	l.len = 0

	return count
}

// releaseChain unlinks and releases the chain starting at head.
func (l *List) releaseChain(head *node) int {
	count := 0

	for n := head; n != nil; {
		next := n.unlink()
		l.opts.alloc.Release()
		count++
		n = next
	}

	return count
}
