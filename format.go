package slist

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	arrow      = "->"
	terminator = "NULL"

	absentText = "LIST IS NULL"
	emptyText  = "LIST IS EMPTY"
)

// String returns the list in the form "v1->v2->...->vk->NULL".
// An empty or absent list is "NULL".
func (l *List) String() string {
	var sb strings.Builder
	sb.Grow(l.textLen())

	var scratch [20]byte
	l.Do(func(v int) bool {
		sb.Write(strconv.AppendInt(scratch[:0], int64(v), 10))
		sb.WriteString(arrow)
		return true
	})
	sb.WriteString(terminator)

	return sb.String()
}

// AppendText appends the text form of the list to b.
func (l *List) AppendText(b []byte) ([]byte, error) {
	if l.absent() {
		return b, ErrAbsent
	}

	l.Do(func(v int) bool {
		b = strconv.AppendInt(b, int64(v), 10)
		b = append(b, arrow...)
		return true
	})

	return append(b, terminator...), nil
}

// MarshalText implements encoding.TextMarshaler.
func (l *List) MarshalText() ([]byte, error) {
	return l.AppendText(make([]byte, 0, l.textLen()))
}

// UnmarshalText implements encoding.TextUnmarshaler. It replaces the
// contents of the list with the parsed elements. Whitespace around the
// arrows is ignored. On error the list is left unchanged.
func (l *List) UnmarshalText(text []byte) error {
	if l.absent() {
		return ErrAbsent
	}

	values, err := parseValues(text)
	if err != nil {
		return err
	}

	var head, tail *node
	for _, v := range values {
		n, err := l.newNode(v)
		if err != nil {
			l.releaseChain(head)
			return err
		}

		if tail == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}

	l.releaseAll()
	l.head = head
	l.len = len(values)

	return nil
}

// Parse creates a list from its text form.
func Parse(s string, opts ...Option) (*List, error) {
	l := New(opts...)
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return nil, err
	}
	return l, nil
}

// Print writes the list to standard output followed by a newline.
// An absent list prints "LIST IS NULL" and an empty list prints "LIST IS EMPTY".
func (l *List) Print() {
	_ = l.Fprint(os.Stdout)
}

// Fprint is like Print but writes to w.
func (l *List) Fprint(w io.Writer) error {
	var s string

	switch {
	case l.absent():
		s = absentText
	case l.len == 0:
		s = emptyText
	default:
		s = l.String()
	}

	_, err := io.WriteString(w, s+"\n")
	return err
}

func parseValues(text []byte) ([]int, error) {
	fields := bytes.Split(text, []byte(arrow))

	last := bytes.TrimSpace(fields[len(fields)-1])
	if string(last) != terminator {
		return nil, fmt.Errorf("%w: missing %s terminator in %q", ErrSyntax, terminator, text)
	}

	values := make([]int, 0, len(fields)-1)
	for _, f := range fields[:len(fields)-1] {
		v, err := strconv.Atoi(string(bytes.TrimSpace(f)))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		values = append(values, v)
	}

	return values, nil
}

// textLen returns the exact length of the text form of the list.
func (l *List) textLen() int {
	size := len(terminator)

	l.Do(func(v int) bool {
		size += decimalLen(v) + len(arrow)
		return true
	})

	return size
}

func decimalLen(v int) int {
	n := 1

	u := uint64(v)
	if v < 0 {
		n++
		u = uint64(-(v + 1)) + 1
	}

	for u >= 10 {
		u /= 10
		n++
	}

	return n
}
