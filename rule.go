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

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rule is one user-defined matching rule. The match fields are pointers
// so a missing key and an empty string stay distinct: nil matches
// anything, a pointer to "" matches only the empty string.
type Rule struct {
	Name string `yaml:"name"` // Optional label, only used in logs.

	// Match keys. All present keys must match for the rule to apply.
	Account *string `yaml:"account"` // Ledger account profile this rule is scoped to.
	Dbtr    *string `yaml:"dbtr"`    // Debitor string to match exactly.
	Cdtr    *string `yaml:"cdtr"`    // Creditor string to match exactly.

	// Output keys, applied when the rule wins.
	DbtrAcc *string `yaml:"dbtr_acc"` // Debitor-side ledger account.
	CdtrAcc *Target `yaml:"cdtr_acc"` // Creditor-side target, possibly a split.
	Title   *string `yaml:"title"`    // Entry title override.
}

// RuleKey names one of the match keys of a Rule for filtering.
type RuleKey int

const (
	KeyAccount = RuleKey(iota)
	KeyDbtr
	KeyCdtr
)

func (r Rule) match(key RuleKey, value string) bool {
	var p *string
	switch key {
	case KeyAccount:
		p = r.Account
	case KeyDbtr:
		p = r.Dbtr
	case KeyCdtr:
		p = r.Cdtr
	}
	return p == nil || *p == value
}

// RuleSet is an ordered list of rules. Order matters: it decides which
// candidate is shown first when a transaction is ambiguous. Duplicate and
// overlapping rules are legal.
type RuleSet []Rule

// Filter returns the rules whose key either is absent (wildcard) or equals
// value exactly. No normalization, no case folding. The result preserves
// the set's order.
func (rs RuleSet) Filter(key RuleKey, value string) RuleSet {
	out := RuleSet{}
	for _, r := range rs {
		if r.match(key, value) {
			out = append(out, r)
		}
	}
	return out
}

// Target is where the creditor side of an entry posts to: either a single
// account, or a split across several accounts with fixed sub-amounts.
type Target struct {
	Account string      // Set for the single-account form.
	Split   []SplitPart // Set for the split form. Takes precedence when non-empty.
}

// SplitPart is one component of a split target.
type SplitPart struct {
	Account string
	Amount  Amount
}

// SingleTarget returns a Target posting everything to one account.
func SingleTarget(account string) Target {
	return Target{Account: account}
}

// UnmarshalYAML decodes the two accepted shapes of a creditor target: a
// plain scalar account name, or a sequence of [account, amount] pairs for
// a split. The amount literals are kept exactly as written in the file.
func (t *Target) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		t.Account = value.Value
		t.Split = nil
		return nil
	case yaml.SequenceNode:
		t.Account = ""
		t.Split = nil
		for _, item := range value.Content {
			if item.Kind != yaml.SequenceNode || len(item.Content) != 2 {
				return fmt.Errorf("line %d: split part must be an [account, amount] pair", item.Line)
			}
			part := SplitPart{
				Account: item.Content[0].Value,
				Amount:  ParseAmount(item.Content[1].Value),
			}
			if !part.Amount.Valid {
				return fmt.Errorf("line %d: bad split amount %q", item.Content[1].Line, item.Content[1].Value)
			}
			t.Split = append(t.Split, part)
		}
		if len(t.Split) == 0 {
			return fmt.Errorf("line %d: split target has no parts", value.Line)
		}
		return nil
	}
	return fmt.Errorf("line %d: target must be an account name or a split sequence", value.Line)
}
