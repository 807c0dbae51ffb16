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
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Entry is a single ledger entry: one date line and a balanced group of
// postings. Entries are produced by Resolve, one per candidate rule.
type Entry struct {
	BookDate string // 2020-10-10
	ValDate  string // =2020-10-10 in the date line when it differs from BookDate.
	Title    string

	KVPairs map[string]string // ; Key: Value annotations, e.g. the record ID.

	Postings []Posting
}

// Posting is a single account/amount line in an Entry.
type Posting struct {
	Account  string // Account:Name
	Currency string // EUR
	Amount   Amount
}

// CleanCopy takes a perfect copy of the entry, safe for editing without
// making any changes to the parent.
func (e *Entry) CleanCopy() *Entry {
	ne := *e
	ne.Postings = slices.Clone(e.Postings)
	ne.KVPairs = maps.Clone(e.KVPairs)
	return &ne
}

// Balance checks that the postings add up to 0 and returns the ending
// balances of all accounts with postings. Postings whose amounts did not
// parse still show up in the account map (at their running value) but make
// the entry report unbalanced, since there is no way to check it.
func (e *Entry) Balance() (bool, map[string]decimal.Decimal) {
	ok := true
	total := decimal.Zero
	accounts := map[string]decimal.Decimal{}

	for _, p := range e.Postings {
		if !p.Amount.Valid {
			ok = false
			if _, seen := accounts[p.Account]; !seen {
				accounts[p.Account] = decimal.Zero
			}
			continue
		}
		total = total.Add(p.Amount.Dec)
		accounts[p.Account] = accounts[p.Account].Add(p.Amount.Dec)
	}

	return ok && total.IsZero(), accounts
}

// SumEntries balances a list of entries and returns a map of accounts to
// their ending values. Returns false if any entry does not balance.
func SumEntries(es []Entry) (map[string]decimal.Decimal, bool) {
	accounts := map[string]decimal.Decimal{}

	for _, e := range es {
		ok, ac := e.Balance()
		if !ok {
			return nil, false
		}

		for k, v := range ac {
			accounts[k] = accounts[k].Add(v)
		}
	}

	return accounts, true
}
