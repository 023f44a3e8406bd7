package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-life/model"
)

// headerFields is the number of fields on the first input line: initial alive
// count, generation count, an unused field, target x and target y
const headerFields = 5

// ErrNoInput is returned when the first input line is empty
var ErrNoInput = errors.New("no input")

// ParseError reports malformed input at a 1-based line number
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Problem is a parsed simulation request
type Problem struct {
	InitialAlive int64 // Declared by the header, not checked against the rows
	Generations  int
	Target       model.Cell
	Lines        []LineState
}

// AliveSet builds the initial generation from the problem rows
func (p Problem) AliveSet() *model.AliveSet {
	return BuildAliveSet(p.Lines)
}

// Parse reads a problem: a header line "r t _ x y" followed by rows
// "y x1 x2 ..." up to EOF or the first empty line.
func Parse(r io.Reader) (Problem, error) {
	var p Problem
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return p, errors.Wrap(err, "[Parse] failed to read header")
		}
		return p, ErrNoInput
	}
	header := strings.Fields(scanner.Text())
	if len(header) == 0 {
		return p, ErrNoInput
	}
	if len(header) < headerFields {
		return p, &ParseError{Line: 1, Msg: fmt.Sprintf("expected %d header fields, got %d", headerFields, len(header))}
	}

	values := make([]int64, headerFields)
	for i := range headerFields {
		if i == 2 {
			continue
		}
		v, err := strconv.ParseInt(header[i], 10, 64)
		if err != nil {
			return p, &ParseError{Line: 1, Msg: fmt.Sprintf("field %d: %q is not an integer", i+1, header[i])}
		}
		values[i] = v
	}
	if values[1] < 0 {
		return p, &ParseError{Line: 1, Msg: fmt.Sprintf("generation count %d is negative", values[1])}
	}
	p.InitialAlive = values[0]
	p.Generations = int(values[1])
	p.Target = model.Cell{X: values[3], Y: values[4]}

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			break
		}
		line, err := parseRow(fields)
		if err != nil {
			return p, &ParseError{Line: lineNo, Msg: err.Error()}
		}
		p.Lines = append(p.Lines, line)
	}
	if err := scanner.Err(); err != nil {
		return p, errors.Wrapf(err, "[Parse] failed to read line %d", lineNo+1)
	}

	return p, nil
}

func parseRow(fields []string) (LineState, error) {
	values := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return LineState{}, fmt.Errorf("%q is not an integer", f)
		}
		values[i] = v
	}
	return LineState{Y: values[0], Xs: values[1:]}, nil
}
