package slist

import "errors"

var (
	// ErrAllocation indicates the allocator refused memory for a new node.
	ErrAllocation = errors.New("node allocation failed")

	// ErrEmpty indicates a removal or access on a list with no elements.
	ErrEmpty = errors.New("list is empty")

	// ErrIndexOutOfRange indicates a 1-based index outside the valid range of the operation.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotFound indicates a value was not found.
	ErrNotFound = errors.New("value not found")

	// ErrAbsent indicates an operation on a nil or freed list.
	ErrAbsent = errors.New("list is absent")

	// ErrSyntax indicates text that is not in list format.
	ErrSyntax = errors.New("invalid list syntax")
)
