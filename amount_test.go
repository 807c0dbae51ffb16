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

package soa2ledger_test

import "testing"

import "github.com/samuellwn/soa2ledger"

func TestParseAmount(t *testing.T) {
	a := soa2ledger.ParseAmount("  123.45 ")
	if !a.Valid {
		t.Errorf("Amount should be valid.")
	}
	if a.Raw != "123.45" {
		t.Errorf("Incorrect raw text: %q", a.Raw)
	}

	a = soa2ledger.ParseAmount("none")
	if a.Valid {
		t.Errorf("Amount should not be valid.")
	}
	if a.Raw != "none" {
		t.Errorf("Degraded raw text not retained: %q", a.Raw)
	}
}

func TestAmountNeg(t *testing.T) {
	// Negation flips the sign without reformatting the digits.
	if got := soa2ledger.ParseAmount("50.00").Neg().Raw; got != "-50.00" {
		t.Errorf("Incorrect negation: %v", got)
	}
	if got := soa2ledger.ParseAmount("-7.10").Neg().Raw; got != "7.10" {
		t.Errorf("Incorrect negation of a negative: %v", got)
	}
	if got := soa2ledger.ParseAmount("+5.00").Neg().Raw; got != "-5.00" {
		t.Errorf("Incorrect negation of an explicit positive: %v", got)
	}
	if got := soa2ledger.ParseAmount("50.00").Neg().Neg().Raw; got != "50.00" {
		t.Errorf("Double negation is not the identity: %v", got)
	}

	if got := soa2ledger.ParseAmount("none").Neg().Raw; got != "-none" {
		t.Errorf("Incorrect degraded negation: %v", got)
	}
}

func TestAmountLedger(t *testing.T) {
	if got := soa2ledger.ParseAmount("1234.56").Ledger(); got != "1234,56" {
		t.Errorf("Incorrect ledger rendering: %v", got)
	}
	if got := soa2ledger.ParseAmount("-0.99").Ledger(); got != "-0,99" {
		t.Errorf("Incorrect negative ledger rendering: %v", got)
	}
	if got := soa2ledger.ParseAmount("12").Ledger(); got != "12" {
		t.Errorf("Incorrect whole number rendering: %v", got)
	}
}

func TestSumAmounts(t *testing.T) {
	sum := soa2ledger.SumAmounts([]soa2ledger.Amount{
		soa2ledger.ParseAmount("30.00"),
		soa2ledger.ParseAmount("20.00"),
		soa2ledger.ParseAmount("-10.00"),
	})
	if !sum.Valid || sum.Raw != "40.00" {
		t.Errorf("Incorrect sum: %v", sum.Raw)
	}

	// Invalid values are skipped rather than poisoning the total.
	sum = soa2ledger.SumAmounts([]soa2ledger.Amount{
		soa2ledger.ParseAmount("30.00"),
		soa2ledger.ParseAmount("none"),
	})
	if !sum.Valid || sum.Raw != "30.00" {
		t.Errorf("Incorrect sum with degraded input: %v", sum.Raw)
	}

	sum = soa2ledger.SumAmounts(nil)
	if !sum.Valid || sum.Raw != "0" {
		t.Errorf("Incorrect empty sum: %v", sum.Raw)
	}
}
