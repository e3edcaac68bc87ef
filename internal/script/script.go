// Package script runs list operations described in YAML documents.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mgnsk/slist"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Operation names.
const (
	OpPushBack  = "push_back"
	OpPushFront = "push_front"
	OpInsert    = "insert"
	OpPopBack   = "pop_back"
	OpPopFront  = "pop_front"
	OpRemoveAt  = "remove_at"
	OpAt        = "at"
	OpIndexOf   = "index_of"
	OpContains  = "contains"
	OpLen       = "len"
	OpString    = "string"
	OpPrint     = "print"
	OpClear     = "clear"
	OpFree      = "free"
)

// ErrInvalid indicates a malformed script.
var ErrInvalid = errors.New("invalid script")

// Op is a single list operation.
type Op struct {
	Op    string `yaml:"op"`
	Value *int   `yaml:"value,omitempty"`
	Index *int   `yaml:"index,omitempty"`
}

// Script is a sequence of operations applied to one list.
type Script struct {
	// Limit is the maximum number of live nodes. Zero means unbounded.
	Limit int  `yaml:"limit"`
	Ops   []Op `yaml:"ops"`
}

// Load decodes and validates a script.
func Load(r io.Reader) (*Script, error) {
	var s Script

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks that every operation is known and has its arguments.
func (s *Script) Validate() error {
	if s.Limit < 0 {
		return fmt.Errorf("%w: negative limit %d", ErrInvalid, s.Limit)
	}

	for i, op := range s.Ops {
		needValue, needIndex, ok := arguments(op.Op)
		if !ok {
			return fmt.Errorf("%w: op %d: unknown operation '%s'", ErrInvalid, i+1, op.Op)
		}

		if needValue && op.Value == nil {
			return fmt.Errorf("%w: op %d: %s requires a value", ErrInvalid, i+1, op.Op)
		}

		if needIndex && op.Index == nil {
			return fmt.Errorf("%w: op %d: %s requires an index", ErrInvalid, i+1, op.Op)
		}
	}

	return nil
}

func arguments(name string) (value, index, ok bool) {
	switch name {
	case OpPushBack, OpPushFront, OpIndexOf, OpContains:
		return true, false, true

	case OpInsert:
		return true, true, true

	case OpRemoveAt, OpAt:
		return false, true, true

	case OpPopBack, OpPopFront, OpLen, OpString, OpPrint, OpClear, OpFree:
		return false, false, true
	}

	return false, false, false
}

// Runner executes scripts.
type Runner struct {
	logger *zap.Logger
}

// NewRunner creates a script runner. A nil logger disables logging.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// Run applies the script to a new list and writes one result line per
// operation to w. Operation errors are written as results. Run returns
// early when ctx is done or writing fails. An invalid script returns
// ErrInvalid before any operation runs.
func (r *Runner) Run(ctx context.Context, s *Script, w io.Writer) error {
	if err := s.Validate(); err != nil {
		return err
	}

	counter := slist.NewCounter(s.Limit)
	l := slist.New(
		slist.WithAllocator(counter),
		slist.WithLogger(r.logger),
	)
	defer l.Free()

	for i, op := range s.Ops {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := apply(l, op, w)
		if err != nil {
			r.logger.Debug("operation failed",
				zap.Int("op", i+1),
				zap.String("name", op.Op),
				zap.Error(err),
			)
			result = "error: " + err.Error()
		}

		if result == "" {
			continue
		}

		if _, err := fmt.Fprintf(w, "%s: %s\n", op.Op, result); err != nil {
			return err
		}
	}

	r.logger.Debug("script finished",
		zap.Int("ops", len(s.Ops)),
		zap.Int("len", l.Len()),
		zap.Int("allocated", counter.Allocated()),
	)

	return nil
}

// apply runs op on l. An empty result means the operation wrote its own output.
func apply(l *slist.List, op Op, w io.Writer) (string, error) {
	switch op.Op {
	case OpPushBack:
		return "ok", l.PushBack(*op.Value)

	case OpPushFront:
		return "ok", l.PushFront(*op.Value)

	case OpInsert:
		return "ok", l.Insert(*op.Value, *op.Index)

	case OpPopBack:
		return intResult(l.PopBack())

	case OpPopFront:
		return intResult(l.PopFront())

	case OpRemoveAt:
		return intResult(l.RemoveAt(*op.Index))

	case OpAt:
		return intResult(l.At(*op.Index))

	case OpIndexOf:
		return intResult(l.IndexOf(*op.Value))

	case OpContains:
		return strconv.FormatBool(l.Contains(*op.Value)), nil

	case OpLen:
		return strconv.Itoa(l.Len()), nil

	case OpString:
		return l.String(), nil

	case OpPrint:
		return "", l.Fprint(w)

	case OpClear:
		l.Clear()
		return "ok", nil

	case OpFree:
		l.Free()
		return "ok", nil
	}

	return "", fmt.Errorf("%w: unknown operation '%s'", ErrInvalid, op.Op)
}

func intResult(v int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.Itoa(v), nil
}
