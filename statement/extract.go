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

	"github.com/samuellwn/soa2ledger"
	"github.com/samuellwn/soa2ledger/config"
)

// Degraded is the placeholder a record field takes when its extraction
// expression is missing or cannot produce a value. One broken field never
// stops the batch; the record is resolved and rendered with the
// placeholder in place so the problem stays visible in the output.
const Degraded = "none"

// FieldError reports a field whose extraction degraded.
type FieldError struct {
	Field string
	Err   error // nil when there was no expression configured at all
}

func (err FieldError) Error() string {
	if err.Err == nil {
		return fmt.Sprintf("No extraction expression for %v", err.Field)
	}
	return fmt.Sprintf("Extracting %v: %v", err.Field, err.Err)
}

func (err FieldError) Unwrap() error { return err.Err }

// Extractor holds the compiled extraction expressions for the seven
// record fields. Build it once per run; expression syntax errors belong
// to configuration loading, not to row processing.
type Extractor struct {
	bookDate *Expr
	valDate  *Expr
	amount   *Expr
	currency *Expr
	creditor *Expr
	debitor  *Expr
	subject  *Expr
}

// NewExtractor compiles the configured field expressions. Fields with no
// expression stay nil and degrade at extraction time.
func NewExtractor(fe config.FieldExprs) (*Extractor, error) {
	x := &Extractor{}
	for _, f := range []struct {
		name string
		src  string
		dst  **Expr
	}{
		{"book_date", fe.BookDate, &x.bookDate},
		{"val_date", fe.ValDate, &x.valDate},
		{"amount", fe.Amount, &x.amount},
		{"currency", fe.Currency, &x.currency},
		{"creditor", fe.Creditor, &x.creditor},
		{"debitor", fe.Debitor, &x.debitor},
		{"subject", fe.Subject, &x.subject},
	} {
		if f.src == "" {
			continue
		}
		e, err := ParseExpr(f.src)
		if err != nil {
			return nil, fmt.Errorf("%v expression: %w", f.name, err)
		}
		*f.dst = e
	}
	return x, nil
}

// Record builds a record from a raw row. It cannot fail; fields whose
// extraction goes wrong take the Degraded placeholder and the problems
// come back as a list for the caller to log.
func (x *Extractor) Record(row Row) (soa2ledger.Record, []error) {
	var errs []error

	scalar := func(name string, e *Expr) string {
		lines, err := evalField(name, e, row)
		if err != nil {
			errs = append(errs, err)
			return Degraded
		}
		if len(lines) == 0 {
			return ""
		}
		return lines[0]
	}

	rec := soa2ledger.Record{
		ID:       <-soa2ledger.IDService,
		BookDate: scalar("book_date", x.bookDate),
		ValDate:  scalar("val_date", x.valDate),
		Currency: scalar("currency", x.currency),
		Creditor: scalar("creditor", x.creditor),
		Debitor:  scalar("debitor", x.debitor),
	}
	rec.Amount = soa2ledger.ParseAmount(scalar("amount", x.amount))

	subject, err := evalField("subject", x.subject, row)
	if err != nil {
		errs = append(errs, err)
		subject = []string{Degraded}
	}
	rec.Subject = subject

	return rec, errs
}

func evalField(name string, e *Expr, row Row) ([]string, error) {
	if e == nil {
		return nil, FieldError{Field: name}
	}
	lines, err := e.Eval(row)
	if err != nil {
		return nil, FieldError{name, err}
	}
	return lines, nil
}
