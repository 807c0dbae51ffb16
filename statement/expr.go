/*
Copyright 2025 by Samuel Loewen

This software is provided 'as-is', without any express or implied warranty. In
no event will the authors be held liable for any damages arising from the use of
this software.

Permission is granted to anyone to use this software for any purpose, including
commercial applications, and to alter it and redistribute it freely, subject to
the following restrictions:

1. The origin of this software must not be misrepresented; you must not claim
that you wrote the original software. If you use this software in a product, an
acknowledgment in the product documentation would be appreciated but is not
required.

2. Altered source versions must be plainly marked as such, and must not be
misrepresented as being the original software.

3. This notice may not be removed or altered from any source distribution.
*/

package statement

import (
	"fmt"
	"strings"
)

// Expr is a compiled field-extraction expression. An expression is one or
// more alternatives separated by "|"; each alternative is an op and its
// argument:
//
//	path NtryDtls/TxDtls/RltdPties/Dbtr/Nm    first element on that path
//	path Amt@Ccy                              attribute of an element
//	all RmtInf/Ustrd                          every element on that path
//	column Betrag                             CSV cell by header, or by index
//	field memo                                named row field
//	literal EUR                               fixed text
//
// Alternatives are tried left to right and the first one that yields a
// non-empty value wins, so fallbacks like "path Dt | path DtTm" work the
// obvious way. The ops are a closed set: expressions are data, they are
// never evaluated as code.
type Expr struct {
	alts []alt
}

type alt struct {
	op  string
	arg string
}

// ErrBadOp is returned by ParseExpr when an expression uses an op outside
// the fixed set.
type ErrBadOp string

func (err ErrBadOp) Error() string {
	return fmt.Sprintf("Unknown extractor op: %q", string(err))
}

// ErrBadExpr is returned by ParseExpr for expressions that are
// structurally broken (empty, or an op with a missing argument).
type ErrBadExpr string

func (err ErrBadExpr) Error() string {
	return fmt.Sprintf("Malformed extractor expression: %q", string(err))
}

// ErrNoValue is returned when evaluating an alternative that found
// nothing in the row.
type ErrNoValue struct {
	Op, Arg, Row string
}

func (err ErrNoValue) Error() string {
	return fmt.Sprintf("No value for %v %v in %v", err.Op, err.Arg, err.Row)
}

// ErrBadSource is returned when an op is applied to a row kind that
// cannot support it, like a path lookup on a CSV row.
type ErrBadSource struct {
	Op, Row string
}

func (err ErrBadSource) Error() string {
	return fmt.Sprintf("Row %v does not support %v extraction", err.Row, err.Op)
}

// ParseExpr compiles an extraction expression. Parse errors surface at
// configuration-load time so a broken expression never makes it into an
// import run.
func ParseExpr(src string) (*Expr, error) {
	e := &Expr{}
	for _, part := range strings.Split(src, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, ErrBadExpr(src)
		}

		op, arg, _ := strings.Cut(part, " ")
		arg = strings.TrimSpace(arg)

		switch op {
		case "literal":
			// An empty literal is fine, it's the canonical "default to
			// nothing" final alternative.
		case "path", "all", "column", "field":
			if arg == "" {
				return nil, ErrBadExpr(part)
			}
		default:
			return nil, ErrBadOp(op)
		}

		e.alts = append(e.alts, alt{op, arg})
	}
	return e, nil
}

// Eval runs the expression against a row. The result is the lines the
// winning alternative produced; scalar consumers take the first line. A
// present-but-empty value is not an error, it only means later
// alternatives get a chance.
func (e *Expr) Eval(row Row) ([]string, error) {
	var firstErr error
	sawValue := false

	for _, a := range e.alts {
		lines, err := a.eval(row)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if hasText(lines) {
			return lines, nil
		}
		sawValue = true
	}

	if sawValue {
		return nil, nil
	}
	return nil, firstErr
}

func (a alt) eval(row Row) ([]string, error) {
	switch a.op {
	case "literal":
		return []string{a.arg}, nil

	case "field":
		fs, ok := row.(FieldSource)
		if !ok {
			return nil, ErrBadSource{a.op, row.Source()}
		}
		v, ok := fs.Field(a.arg)
		if !ok {
			return nil, ErrNoValue{a.op, a.arg, row.Source()}
		}
		return []string{v}, nil

	case "column":
		cs, ok := row.(ColumnSource)
		if !ok {
			return nil, ErrBadSource{a.op, row.Source()}
		}
		v, ok := cs.Column(a.arg)
		if !ok {
			return nil, ErrNoValue{a.op, a.arg, row.Source()}
		}
		return []string{v}, nil

	case "path":
		ps, ok := row.(PathSource)
		if !ok {
			return nil, ErrBadSource{a.op, row.Source()}
		}
		v, ok := ps.Path(a.arg)
		if !ok {
			return nil, ErrNoValue{a.op, a.arg, row.Source()}
		}
		return []string{v}, nil

	case "all":
		ps, ok := row.(PathSource)
		if !ok {
			return nil, ErrBadSource{a.op, row.Source()}
		}
		// Zero matches is a legitimately empty list, not a failure.
		return ps.PathAll(a.arg), nil
	}

	// Unreachable, ParseExpr only admits the ops above.
	return nil, ErrBadOp(a.op)
}

func hasText(lines []string) bool {
	for _, l := range lines {
		if l != "" {
			return true
		}
	}
	return false
}
