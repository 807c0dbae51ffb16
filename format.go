/*
Copyright 2021 by Milo Christiansen

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

package soa2ledger

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultIndent is the posting indent used when nothing is configured.
const DefaultIndent = 4

// Formatter renders records and resolutions as ledger text. Both
// renderers are pure functions of their input: formatting the same value
// twice produces identical text.
type Formatter struct {
	Indent int // Spaces before the account name and again before the currency.
}

// Header renders the comment block that precedes every entry: a summary
// line, one comment line per subject line, and a separator. The header
// only depends on the record, not on how it resolved, so even an
// ambiguous entry gets exactly one header.
func (f Formatter) Header(r Record) string {
	buf := new(bytes.Buffer)

	fmt.Fprintf(buf, "; %v=%v: %v --> %v\n", r.BookDate, r.ValDate, r.Debitor, r.Creditor)
	for _, line := range r.Subject {
		fmt.Fprintf(buf, "; %v\n", line)
	}
	buf.WriteString("; " + strings.Repeat("#", 60) + "\n")

	return buf.String()
}

// Entry renders one entry without a trailing newline. The date line is
// "book title", or "book=val title" when the value date differs. Each
// posting renders as indent, account, indent, currency and amount.
func (f Formatter) Entry(e Entry) string {
	ind := strings.Repeat(" ", f.Indent)
	buf := new(bytes.Buffer)

	if e.BookDate == e.ValDate {
		fmt.Fprintf(buf, "%v %v\n", e.BookDate, e.Title)
	} else {
		fmt.Fprintf(buf, "%v=%v %v\n", e.BookDate, e.ValDate, e.Title)
	}

	if len(e.KVPairs) != 0 {
		keys := maps.Keys(e.KVPairs)
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(buf, "%v; %v: %v\n", ind, k, e.KVPairs[k])
		}
	}

	for i, p := range e.Postings {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(buf, "%v%v%v%v %v", ind, p.Account, ind, p.Currency, p.Amount.Ledger())
	}

	return buf.String()
}

// Resolution renders the entries of a resolution. A single entry renders
// bare. An ambiguous resolution renders every candidate in rule order,
// separated by blank lines and prefixed with a marker comment, so a human
// can pick one and delete the rest.
func (f Formatter) Resolution(res Resolution) string {
	if res.Outcome != Ambiguous {
		return f.Entry(res.Entries[0])
	}

	parts := make([]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		parts = append(parts, f.Entry(e))
	}
	return ";\n; Multiple matches. Pick one\n" + strings.Join(parts, "\n\n")
}

// Block renders the full per-record unit: header plus resolved entries.
// This is the text handed to the editor or appended to the ledger.
func (f Formatter) Block(rec Record, res Resolution) string {
	return f.Header(rec) + f.Resolution(res)
}
