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

/*
Package soa2ledger turns bank statements of account into double-entry
Ledger CLI entries.

The heart of the package is the rule resolver: given one transfer record
and an ordered set of user rules it decides which ledger accounts the
money moved between, or reports that it cannot decide (unmatched or
ambiguous). The formatter then renders the decision as ledger text,
including a comment header carrying everything we know about the
transfer so nothing from the bank statement is lost.

Reading statement files and loading rules live in the statement and
config subpackages; this package is pure and does no I/O.
*/
package soa2ledger

import (
	"golang.org/x/exp/slices"
)

// Record is the normalized view of one transfer from a statement of
// account. Dates are kept verbatim as found in the statement, we never
// parse them. A Record is immutable once built; everything the resolver
// decides ends up on the produced entries instead.
type Record struct {
	ID string // Unique ID assigned at read time, from IDService.

	BookDate string // Date the bank booked the transfer.
	ValDate  string // Value date. Often the same as BookDate.

	Amount   Amount // Magnitude moved from debitor to creditor.
	Currency string

	Creditor string // Receiving party as stated by the bank.
	Debitor  string // Sending party as stated by the bank.

	Subject []string // Free-text memo lines, in statement order.
}

// CleanCopy takes a perfect copy of the record, safe for editing without
// making any changes to the parent.
func (r Record) CleanCopy() Record {
	nr := r
	nr.Subject = slices.Clone(r.Subject)
	return nr
}
