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

package soa2ledger

// Placeholder accounts assigned when no rule pins down a side of an entry.
// They are deliberately eye-catching so unfinished entries are easy to grep
// for in the ledger.
const (
	UnknownIncomeAcc  = "Income:???"
	UnknownExpenseAcc = "Expenses:???"
)

// Outcome classifies how a record resolved against the rule set.
type Outcome int

const (
	// No rule matched the debitor. Usually money arriving from a source
	// we have no rule for yet.
	UnmatchedIncoming = Outcome(iota)

	// Exactly one rule matched the debitor. The creditor is never
	// consulted in this case: the typical rule set matches "myself" as
	// debitor with many rules, so a unique debitor match already
	// identifies the transfer.
	SingleIncomeMatch

	// Several rules matched the debitor but none of them matched the
	// creditor. Usually an expense at a payee we have no rule for yet.
	UnmatchedExpense

	// Exactly one rule matched both debitor and creditor.
	SingleExpenseMatch

	// Two or more rules matched both debitor and creditor. We never
	// guess between equally specific rules; every candidate is emitted
	// and a human picks one.
	Ambiguous
)

func (o Outcome) String() string {
	switch o {
	case UnmatchedIncoming:
		return "unmatched-incoming"
	case SingleIncomeMatch:
		return "single-income-match"
	case UnmatchedExpense:
		return "unmatched-expense"
	case SingleExpenseMatch:
		return "single-expense-match"
	case Ambiguous:
		return "ambiguous"
	}
	return "invalid"
}

// Resolution is the result of resolving one record: the outcome and the
// candidate entries. Entries holds exactly one element unless the outcome
// is Ambiguous, in which case it holds one entry per matching rule, in
// rule-set order.
type Resolution struct {
	Outcome Outcome
	Entries []Entry
}

// Resolve decides which accounts the record's transfer moved money
// between. account selects the rule scope, defAssetAcc is the account
// standing in for "my own funds" whenever a side cannot be determined
// from a rule.
//
// Resolve never fails: unmatched and ambiguous records degrade to
// placeholder accounts or multiple candidates, so every record produces
// at least one renderable entry.
func Resolve(rec Record, rules RuleSet, account, defAssetAcc string) Resolution {
	scoped := rules.Filter(KeyAccount, account)

	dbtrMatches := scoped.Filter(KeyDbtr, rec.Debitor)
	switch len(dbtrMatches) {
	case 0:
		// Incoming from an unknown source. The sender's name makes a
		// better title than the creditor, which is us.
		return Resolution{UnmatchedIncoming, []Entry{
			buildEntry(rec, rec.Debitor, SingleTarget(defAssetAcc), UnknownIncomeAcc),
		}}
	case 1:
		rule := dbtrMatches[0]
		return Resolution{SingleIncomeMatch, []Entry{
			buildEntry(rec,
				strOr(rule.Title, rec.Creditor),
				targetOr(rule.CdtrAcc, defAssetAcc),
				strOr(rule.DbtrAcc, UnknownIncomeAcc)),
		}}
	}

	cdtrMatches := dbtrMatches.Filter(KeyCdtr, rec.Creditor)
	switch len(cdtrMatches) {
	case 0:
		return Resolution{UnmatchedExpense, []Entry{
			buildEntry(rec, rec.Creditor, SingleTarget(UnknownExpenseAcc), defAssetAcc),
		}}
	case 1:
		return Resolution{SingleExpenseMatch, []Entry{expenseEntry(rec, cdtrMatches[0], defAssetAcc)}}
	}

	entries := make([]Entry, 0, len(cdtrMatches))
	for _, rule := range cdtrMatches {
		entries = append(entries, expenseEntry(rec, rule, defAssetAcc))
	}
	return Resolution{Ambiguous, entries}
}

func expenseEntry(rec Record, rule Rule, defAssetAcc string) Entry {
	var cdtr Target
	if rule.CdtrAcc != nil {
		cdtr = *rule.CdtrAcc
	} else {
		cdtr = SingleTarget(UnknownExpenseAcc)
	}
	return buildEntry(rec,
		strOr(rule.Title, rec.Creditor),
		cdtr,
		strOr(rule.DbtrAcc, defAssetAcc))
}

// buildEntry assembles the balanced entry: the creditor-side posting (or
// one posting per split part), then a single debitor posting carrying the
// negation of the creditor-side total.
func buildEntry(rec Record, title string, cdtr Target, dbtrAcc string) Entry {
	e := Entry{
		BookDate: rec.BookDate,
		ValDate:  rec.ValDate,
		Title:    title,
	}

	if len(cdtr.Split) > 0 {
		amounts := make([]Amount, 0, len(cdtr.Split))
		for _, part := range cdtr.Split {
			e.Postings = append(e.Postings, Posting{part.Account, rec.Currency, part.Amount})
			amounts = append(amounts, part.Amount)
		}
		e.Postings = append(e.Postings, Posting{dbtrAcc, rec.Currency, SumAmounts(amounts).Neg()})
		return e
	}

	e.Postings = append(e.Postings,
		Posting{cdtr.Account, rec.Currency, rec.Amount},
		Posting{dbtrAcc, rec.Currency, rec.Amount.Neg()})
	return e
}

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

func targetOr(p *Target, def string) Target {
	if p != nil {
		return *p
	}
	return SingleTarget(def)
}
