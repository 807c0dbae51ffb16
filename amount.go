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
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a money magnitude. It keeps the literal text the value was
// parsed from so output can reproduce the statement digit for digit, and
// a decimal value for the arithmetic the resolver needs (negating the
// debitor side, summing splits).
//
// A malformed source value is not an error here. It parses to an invalid
// Amount that still carries the raw text, so a degraded record renders
// with its placeholder visible instead of killing the batch.
type Amount struct {
	Raw   string          // Literal text, e.g. "123.45".
	Dec   decimal.Decimal // Parsed value. Only meaningful if Valid.
	Valid bool
}

// ParseAmount parses a decimal literal. The raw text is retained whether
// or not parsing succeeds.
func ParseAmount(raw string) Amount {
	raw = strings.TrimSpace(raw)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{Raw: raw}
	}
	return Amount{Raw: raw, Dec: d, Valid: true}
}

// Neg returns the arithmetic negation. For valid amounts the raw text is
// sign-flipped without touching the digits, so "50.00" becomes "-50.00"
// and not "-50". Invalid amounts just get a "-" stuck on the front to
// keep the degraded value visible.
func (a Amount) Neg() Amount {
	if !a.Valid {
		return Amount{Raw: "-" + a.Raw}
	}

	raw := strings.TrimPrefix(a.Raw, "+")
	if strings.HasPrefix(raw, "-") {
		raw = raw[1:]
	} else {
		raw = "-" + raw
	}
	return Amount{Raw: raw, Dec: a.Dec.Neg(), Valid: true}
}

// SumAmounts adds the given amounts. The result's raw text is the
// canonical decimal rendering of the sum. Invalid inputs are skipped.
func SumAmounts(as []Amount) Amount {
	total := decimal.Zero
	for _, a := range as {
		if !a.Valid {
			continue
		}
		total = total.Add(a.Dec)
	}
	return Amount{Raw: total.String(), Dec: total, Valid: true}
}

// Ledger renders the amount for a posting line: the raw text with ","
// as the fractional separator. This is a fixed convention of the output
// format, the input side may use either separator.
func (a Amount) Ledger() string {
	return strings.ReplaceAll(a.Raw, ".", ",")
}
