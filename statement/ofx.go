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

package statement

import (
	"errors"
	"fmt"
	"io"

	"github.com/aclindsa/ofxgo"
)

// ReadOFX reads every bank and credit card statement in an OFX or QFX
// download and flattens each transaction into a row of named fields:
//
//	amount posted name memo namememo fitid trntype curdef acctid
//
// namememo is name and memo run together, for banks that split the subject
// across both.
func ReadOFX(r io.Reader) ([]Row, error) {
	resp, err := ofxgo.ParseResponse(r)
	if err != nil {
		return nil, fmt.Errorf("parse ofx: %w", err)
	}

	if len(resp.Bank) == 0 && len(resp.CreditCard) == 0 {
		return nil, errors.New("No bank or credit card statements in OFX file.")
	}

	rows := []Row{}
	for _, msg := range append(resp.Bank, resp.CreditCard...) {
		var trns []ofxgo.Transaction
		curdef, acctid := "", ""
		switch stmt := msg.(type) {
		case *ofxgo.StatementResponse:
			if stmt.BankTranList != nil {
				trns = stmt.BankTranList.Transactions
			}
			curdef = stmt.CurDef.String()
			acctid = string(stmt.BankAcctFrom.AcctID)
		case *ofxgo.CCStatementResponse:
			if stmt.BankTranList != nil {
				trns = stmt.BankTranList.Transactions
			}
			curdef = stmt.CurDef.String()
			acctid = string(stmt.CCAcctFrom.AcctID)
		default:
			return nil, errors.New("Unexpected OFX response type.")
		}

		for _, trn := range trns {
			rows = append(rows, &ofxRow{fields: map[string]string{
				"amount":   trn.TrnAmt.String(),
				"posted":   trn.DtPosted.Format("2006-01-02"),
				"name":     string(trn.Name),
				"memo":     string(trn.Memo),
				"namememo": string(trn.Name + trn.Memo),
				"fitid":    string(trn.FiTID),
				"trntype":  trn.TrnType.String(),
				"curdef":   curdef,
				"acctid":   acctid,
			}})
		}
	}

	return rows, nil
}

type ofxRow struct {
	fields map[string]string
}

func (o *ofxRow) Source() string {
	return "fitid " + o.fields["fitid"]
}

func (o *ofxRow) Field(name string) (string, bool) {
	v, ok := o.fields[name]
	return v, ok
}
