//go:build ignore

/*
Testing playground file.
*/
package main

import (
	"fmt"

	"github.com/samuellwn/soa2ledger"
)

func main() {
	str := func(s string) *string { return &s }

	rules := soa2ledger.RuleSet{
		{Name: "rent", Dbtr: str("Myself"), Cdtr: str("ACME Property Management"), CdtrAcc: ptrTarget("Expenses:Housing:Rent")},
		{Name: "salary", Dbtr: str("Initech Inc"), DbtrAcc: str("Income:Salary"), Title: str("Paycheck")},
		{Name: "groceries", Dbtr: str("Myself"), Cdtr: str("Corner Market"), CdtrAcc: ptrTarget("Expenses:Food:Groceries")},
	}

	records := []soa2ledger.Record{
		{ID: "a", BookDate: "2025-03-01", ValDate: "2025-03-01", Amount: soa2ledger.ParseAmount("1250.00"),
			Currency: "EUR", Creditor: "Myself", Debitor: "Initech Inc", Subject: []string{"Salary March"}},
		{ID: "b", BookDate: "2025-03-03", ValDate: "2025-03-04", Amount: soa2ledger.ParseAmount("850.00"),
			Currency: "EUR", Creditor: "ACME Property Management", Debitor: "Myself", Subject: []string{"Rent March"}},
		{ID: "c", BookDate: "2025-03-05", ValDate: "2025-03-05", Amount: soa2ledger.ParseAmount("42.17"),
			Currency: "EUR", Creditor: "Corner Market", Debitor: "Myself", Subject: []string{"Card purchase 05.03."}},
	}

	f := soa2ledger.Formatter{Indent: soa2ledger.DefaultIndent}
	for _, rec := range records {
		res := soa2ledger.Resolve(rec, rules, "", "Assets:Checking")
		fmt.Println(f.Block(rec, res))
		fmt.Println()
	}
}

func ptrTarget(account string) *soa2ledger.Target {
	t := soa2ledger.SingleTarget(account)
	return &t
}
