// Package replay parses line-based gesture scripts and plays them through a Trackball on a manual
// clock, recording the trackball state after every tick. It gives deterministic recordings of
// drags, flings and coasting without a window.
//
// Script format, one command per line:
//
//	down X Y        primary pointer down
//	move X Y        primary pointer move with the button held
//	up X Y          primary pointer up
//	touch X Y       move from a second touch contact (ignored by the trackball)
//	wheel           wheel event (ignored by the trackball)
//	wait MS [N]     advance the clock by MS milliseconds and tick, N times (default 1)
//
// Blank lines and text after '#' are ignored.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-trackball/common"
)

// ErrUnknownOp is returned by Parse for a command name it does not recognise.
var ErrUnknownOp = errors.New("unknown op")

// ErrArguments is returned by Parse when a command has the wrong number of arguments or an
// out-of-range value.
var ErrArguments = errors.New("bad arguments")

const (
	// MaxWait is the longest single wait a script may request.
	MaxWait = time.Hour

	// MaxTicks caps the frames a whole script may record.
	MaxTicks = 1 << 20
)

// OpKind identifies a script command.
type OpKind int

const (
	OpDown OpKind = iota
	OpMove
	OpUp
	OpTouch
	OpWheel
	OpWait
)

var opNames = map[string]OpKind{
	"down":  OpDown,
	"move":  OpMove,
	"up":    OpUp,
	"touch": OpTouch,
	"wheel": OpWheel,
	"wait":  OpWait,
}

func (k OpKind) String() string {
	for name, kind := range opNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

// Op is one parsed script command.
type Op struct {
	Kind     OpKind
	Position common.Position // pointer commands only
	Wait     time.Duration   // wait only
	Repeat   int             // wait only, >= 1
	Line     int
}

// Script is a parsed gesture script.
type Script struct {
	Ops []Op
}

// Ticks returns the number of frames Run will record for the script.
func (s Script) Ticks() int {
	n := 0
	for _, op := range s.Ops {
		if op.Kind == OpWait {
			n += op.Repeat
		}
	}
	return n
}

// Parse reads a gesture script.
//
// Parameters:
//   - r: the script source
//
// Returns:
//   - Script: the parsed commands in order
//   - error: the first syntax error, prefixed with its line number
func Parse(r io.Reader) (Script, error) {
	var script Script
	ticks := 0
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		op, err := parseOp(fields)
		if err != nil {
			return Script{}, fmt.Errorf("line %d: %w", line, err)
		}
		op.Line = line
		if op.Kind == OpWait {
			ticks += op.Repeat
			if ticks > MaxTicks {
				return Script{}, fmt.Errorf("line %d: %w: script exceeds %d ticks", line, ErrArguments, MaxTicks)
			}
		}
		script.Ops = append(script.Ops, op)
	}
	if err := scanner.Err(); err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	return script, nil
}

func parseOp(fields []string) (Op, error) {
	kind, ok := opNames[strings.ToLower(fields[0])]
	if !ok {
		return Op{}, fmt.Errorf("%w %q", ErrUnknownOp, fields[0])
	}
	args := fields[1:]

	switch kind {
	case OpWheel:
		if len(args) != 0 {
			return Op{}, fmt.Errorf("%w: wheel takes no arguments", ErrArguments)
		}
		return Op{Kind: kind}, nil

	case OpWait:
		if len(args) < 1 || len(args) > 2 {
			return Op{}, fmt.Errorf("%w: wait expects MS [N]", ErrArguments)
		}
		ms, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return Op{}, fmt.Errorf("parse wait duration: %w", err)
		}
		if math.IsNaN(ms) || ms < 0 || ms > float64(MaxWait/time.Millisecond) {
			return Op{}, fmt.Errorf("%w: wait %v outside [0, %v]", ErrArguments, args[0], MaxWait)
		}
		repeat := 1
		if len(args) == 2 {
			repeat, err = strconv.Atoi(args[1])
			if err != nil {
				return Op{}, fmt.Errorf("parse wait count: %w", err)
			}
			if repeat < 1 || repeat > MaxTicks {
				return Op{}, fmt.Errorf("%w: wait count %d", ErrArguments, repeat)
			}
		}
		return Op{
			Kind:   kind,
			Wait:   time.Duration(ms * float64(time.Millisecond)),
			Repeat: repeat,
		}, nil

	default:
		if len(args) != 2 {
			return Op{}, fmt.Errorf("%w: %s expects X Y", ErrArguments, kind)
		}
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return Op{}, fmt.Errorf("parse x: %w", err)
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return Op{}, fmt.Errorf("parse y: %w", err)
		}
		if !finite(x) || !finite(y) {
			return Op{}, fmt.Errorf("%w: %s position (%v, %v) is not finite", ErrArguments, kind, x, y)
		}
		return Op{Kind: kind, Position: common.Position{X: x, Y: y}}, nil
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
