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

package statement_test

import (
	"errors"
	"strings"
	"testing"
)

import (
	"github.com/samuellwn/soa2ledger/config"
	"github.com/samuellwn/soa2ledger/statement"
)

func camtFieldExprs() config.FieldExprs {
	return config.FieldExprs{
		BookDate: "path BookgDt/Dt",
		ValDate:  "path ValDt/Dt | path BookgDt/Dt",
		Amount:   "path Amt",
		Currency: "path Amt@Ccy",
		Creditor: "path NtryDtls/TxDtls/RltdPties/Cdtr/Nm",
		Debitor:  "path NtryDtls/TxDtls/RltdPties/Dbtr/Nm",
		Subject:  "all NtryDtls/TxDtls/RmtInf/Ustrd",
	}
}

func TestExtractorRecord(t *testing.T) {
	x, err := statement.NewExtractor(camtFieldExprs())
	if err != nil {
		t.Fatal(err)
	}
	rows, err := statement.ReadXML(strings.NewReader(camtDoc), "Ntry")
	if err != nil {
		t.Fatal(err)
	}

	rec, errs := x.Record(rows[0])
	if len(errs) != 0 {
		t.Fatalf("Unexpected extraction errors: %v", errs)
	}

	if rec.ID == "" {
		t.Errorf("Record did not get an ID.")
	}
	if rec.BookDate != "2025-04-01" || rec.ValDate != "2025-04-02" {
		t.Errorf("Incorrect dates: %v %v", rec.BookDate, rec.ValDate)
	}
	if !rec.Amount.Valid || rec.Amount.Raw != "1250.00" {
		t.Errorf("Incorrect amount: %#v", rec.Amount)
	}
	if rec.Currency != "EUR" {
		t.Errorf("Incorrect currency: %v", rec.Currency)
	}
	if rec.Creditor != "Max Mustermann" || rec.Debitor != "Employer GmbH" {
		t.Errorf("Incorrect parties: %v %v", rec.Creditor, rec.Debitor)
	}
	if len(rec.Subject) != 2 || rec.Subject[0] != "Salary April" || rec.Subject[1] != "Ref 12345" {
		t.Errorf("Incorrect subject: %#v", rec.Subject)
	}

	// The second entry has no remittance info. That is an empty subject,
	// not a degraded one.
	rec, errs = x.Record(rows[1])
	if len(errs) != 0 {
		t.Fatalf("Unexpected extraction errors: %v", errs)
	}
	if len(rec.Subject) != 0 {
		t.Errorf("Incorrect subject: %#v", rec.Subject)
	}
	if rec.ValDate != "2025-04-03" {
		t.Errorf("Value date fallback failed: %v", rec.ValDate)
	}
}

func TestExtractorDegrade(t *testing.T) {
	// Only two fields configured, and the book date path points nowhere.
	fe := config.FieldExprs{
		BookDate: "path Nope/Dt",
		Amount:   "path Amt",
	}
	x, err := statement.NewExtractor(fe)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := statement.ReadXML(strings.NewReader(camtDoc), "Ntry")
	if err != nil {
		t.Fatal(err)
	}

	rec, errs := x.Record(rows[0])

	if !rec.Amount.Valid || rec.Amount.Raw != "1250.00" {
		t.Errorf("The healthy field should still extract: %#v", rec.Amount)
	}
	if rec.BookDate != statement.Degraded {
		t.Errorf("Incorrect degraded book date: %v", rec.BookDate)
	}
	if rec.ValDate != statement.Degraded || rec.Currency != statement.Degraded {
		t.Errorf("Unconfigured fields should degrade: %v %v", rec.ValDate, rec.Currency)
	}
	if len(rec.Subject) != 1 || rec.Subject[0] != statement.Degraded {
		t.Errorf("Incorrect degraded subject: %#v", rec.Subject)
	}

	// book_date, val_date, currency, creditor, debitor, subject.
	if len(errs) != 6 {
		t.Fatalf("Incorrect number of errors: %v", errs)
	}

	var ferr statement.FieldError
	if !errors.As(errs[0], &ferr) || ferr.Field != "book_date" {
		t.Errorf("Incorrect first error: %v", errs[0])
	}
	var nv statement.ErrNoValue
	if !errors.As(errs[0], &nv) {
		t.Errorf("The failing path should surface as a no-value error: %v", errs[0])
	}
}

func TestNewExtractorBadExpr(t *testing.T) {
	fe := config.FieldExprs{Amount: "frobnicate x"}
	_, err := statement.NewExtractor(fe)
	if err == nil {
		t.Fatalf("Expected an error for a bad expression.")
	}
	var bo statement.ErrBadOp
	if !errors.As(err, &bo) {
		t.Errorf("Incorrect error type: %v", err)
	}
}
