package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/trim21/errgo"

	"github.com/katalvlaran/fibheap/fibheap"
)

// Stats counts what a run did.
type Stats struct {
	Commands  int
	Inserted  int
	Extracted int
	Changed   int
	Missed    int // change/find with no matching element
}

// Runner executes commands against one heap and writes results to Out.
type Runner struct {
	Heap  *fibheap.Heap[string]
	Out   io.Writer
	Log   zerolog.Logger
	Label fibheap.LabelFunc[string] // used by print; nil means fibheap.DefaultLabel
}

// NewRunner returns a Runner writing to out. A nil h starts from an empty heap.
func NewRunner(h *fibheap.Heap[string], out io.Writer, log zerolog.Logger) *Runner {
	if h == nil {
		h = fibheap.New[string]()
	}

	return &Runner{Heap: h, Out: out, Log: log}
}

// Run executes cmds in order. It stops at the first write failure, failed
// check, or when ctx is done between two commands.
func (r *Runner) Run(ctx context.Context, cmds []Command) (Stats, error) {
	var st Stats
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		if err := r.exec(cmd, &st); err != nil {
			return st, fmt.Errorf("line %d (%s): %w", cmd.Line, cmd.Op, err)
		}
		st.Commands++
		r.Log.Debug().
			Int("line", cmd.Line).
			Stringer("op", cmd.Op).
			Int("size", r.Heap.Len()).
			Msg("command done")
	}

	return st, nil
}

func (r *Runner) exec(cmd Command, st *Stats) error {
	h := r.Heap
	switch cmd.Op {
	case OpInsert:
		h.Insert(cmd.Value, cmd.Priority)
		st.Inserted++

		return nil

	case OpChange:
		err := h.ChangePriority(cmd.Value, cmd.Priority, cmd.NewPriority)
		if errors.Is(err, fibheap.ErrKeyNotFound) {
			st.Missed++
			r.Log.Info().Str("value", cmd.Value).Int64("priority", cmd.Priority).Msg("change: key not found")

			return r.printf("change %s %d: not found\n", cmd.Value, cmd.Priority)
		}
		if err != nil {
			return err
		}
		st.Changed++

		return r.printf("change %s %d -> %d\n", cmd.Value, cmd.Priority, cmd.NewPriority)

	case OpFind:
		if h.Contains(cmd.Value, cmd.Priority) {
			return r.printf("find %s %d: found\n", cmd.Value, cmd.Priority)
		}
		st.Missed++

		return r.printf("find %s %d: not found\n", cmd.Value, cmd.Priority)

	case OpMin:
		n, ok := h.Min()
		if !ok {
			return r.printf("min <empty>\n")
		}

		return r.printf("min %s %d\n", n.Value(), n.Priority())

	case OpExtract, OpDelete:
		n, ok := h.ExtractMin()
		if !ok {
			return r.printf("%s <empty>\n", cmd.Op)
		}
		st.Extracted++
		if cmd.Op == OpDelete {
			return nil
		}

		return r.printf("extract %s %d\n", n.Value(), n.Priority())

	case OpSize:
		return r.printf("size %d\n", h.Len())

	case OpEmpty:
		return r.printf("empty %t\n", h.IsEmpty())

	case OpPrint:
		return errgo.Wrap(h.Fprint(r.Out, r.Label), "failed to print heap")

	case OpCheck:
		if err := h.Validate(); err != nil {
			return err
		}

		return r.printf("check ok\n")

	case OpDrain:
		var out []*fibheap.Node[string]
		for {
			n, ok := h.ExtractMin()
			if !ok {
				break
			}
			out = append(out, n)
		}
		st.Extracted += len(out)
		items := lo.Map(out, func(n *fibheap.Node[string], _ int) string {
			return fmt.Sprintf("%s(%d)", n.Value(), n.Priority())
		})

		return r.printf("drain %s\n", strings.Join(items, " "))
	}

	return fmt.Errorf("%w: unsupported op %d", ErrSyntax, int(cmd.Op))
}

func (r *Runner) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(r.Out, format, args...)

	return errgo.Wrap(err, "failed to write output")
}
