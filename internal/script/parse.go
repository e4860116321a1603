// Package script implements the line-oriented command language the fibheap
// tool uses to drive a heap of string values.
//
// One command per line; blank lines and lines starting with '#' are skipped:
//
//	insert <value> <priority>
//	change <value> <old-priority> <new-priority>
//	find <value> <priority>
//	min | extract | delete | size | empty | print | check | drain
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/trim21/errgo"
)

// ErrSyntax is returned by Parse for malformed lines.
var ErrSyntax = errors.New("script: syntax error")

// Op identifies a command.
type Op int

const (
	OpInsert Op = iota
	OpChange
	OpFind
	OpMin
	OpExtract
	OpDelete
	OpSize
	OpEmpty
	OpPrint
	OpCheck
	OpDrain
)

var opNames = map[string]Op{
	"insert":  OpInsert,
	"change":  OpChange,
	"find":    OpFind,
	"min":     OpMin,
	"extract": OpExtract,
	"delete":  OpDelete,
	"size":    OpSize,
	"empty":   OpEmpty,
	"print":   OpPrint,
	"check":   OpCheck,
	"drain":   OpDrain,
}

// arity is the number of arguments each op takes.
var arity = map[Op]int{
	OpInsert: 2,
	OpChange: 3,
	OpFind:   2,
}

func (o Op) String() string {
	for name, op := range opNames {
		if op == o {
			return name
		}
	}

	return fmt.Sprintf("Op(%d)", int(o))
}

// Command is one parsed line.
type Command struct {
	Op          Op
	Line        int
	Value       string
	Priority    int64 // insert/find priority, change old priority
	NewPriority int64 // change only
}

// Parse reads commands from r. Errors carry the offending line number.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		cmd, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cmd.Line = line
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, errgo.Wrap(err, "failed to read script")
	}

	return cmds, nil
}

func parseLine(text string) (Command, error) {
	fields := strings.Fields(text)
	op, ok := opNames[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w: unknown command %q", ErrSyntax, fields[0])
	}
	args := fields[1:]
	if len(args) != arity[op] {
		return Command{}, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrSyntax, op, arity[op], len(args))
	}

	cmd := Command{Op: op}
	if len(args) == 0 {
		return cmd, nil
	}

	cmd.Value = args[0]
	prios := make([]int64, len(args)-1)
	for i, a := range args[1:] {
		p, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return Command{}, fmt.Errorf("%w: priority %q is not an integer", ErrSyntax, a)
		}
		prios[i] = p
	}
	cmd.Priority = prios[0]
	if op == OpChange {
		cmd.NewPriority = prios[1]
	}

	return cmd, nil
}
