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
	"strings"
	"testing"
)

import "github.com/samuellwn/soa2ledger/statement"

// A trimmed down camt.053 statement, the format this importer grew up on.
var camtDoc = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
 <BkToCstmrStmt>
  <Stmt>
   <Ntry>
    <Amt Ccy="EUR">1250.00</Amt>
    <BookgDt><Dt>2025-04-01</Dt></BookgDt>
    <ValDt><Dt>2025-04-02</Dt></ValDt>
    <NtryDtls>
     <TxDtls>
      <RltdPties>
       <Dbtr><Nm>Employer GmbH</Nm></Dbtr>
       <Cdtr><Nm>Max Mustermann</Nm></Cdtr>
      </RltdPties>
      <RmtInf>
       <Ustrd>Salary April</Ustrd>
       <Ustrd>Ref 12345</Ustrd>
      </RmtInf>
     </TxDtls>
    </NtryDtls>
   </Ntry>
   <Ntry>
    <Amt Ccy="EUR">-12.34</Amt>
    <BookgDt><Dt>2025-04-03</Dt></BookgDt>
    <ValDt><Dt>2025-04-03</Dt></ValDt>
    <NtryDtls>
     <TxDtls>
      <RltdPties>
       <Dbtr><Nm>Max Mustermann</Nm></Dbtr>
       <Cdtr><Nm>Supermarket</Nm></Cdtr>
      </RltdPties>
     </TxDtls>
    </NtryDtls>
   </Ntry>
  </Stmt>
 </BkToCstmrStmt>
</Document>`

func TestReadXML(t *testing.T) {
	rows, err := statement.ReadXML(strings.NewReader(camtDoc), "Ntry")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("Incorrect number of rows: %v", len(rows))
	}
	if rows[0].Source() != "Ntry 0" || rows[1].Source() != "Ntry 1" {
		t.Errorf("Incorrect row sources: %v %v", rows[0].Source(), rows[1].Source())
	}
}

func TestXMLPath(t *testing.T) {
	rows, err := statement.ReadXML(strings.NewReader(camtDoc), "Ntry")
	if err != nil {
		t.Fatal(err)
	}
	row := rows[0].(statement.PathSource)

	if v, ok := row.Path("Amt"); !ok || v != "1250.00" {
		t.Errorf("Incorrect Amt: %q %v", v, ok)
	}

	// A trailing @name selects an attribute of the found element.
	if v, ok := row.Path("Amt@Ccy"); !ok || v != "EUR" {
		t.Errorf("Incorrect Amt@Ccy: %q %v", v, ok)
	}

	if v, ok := row.Path("NtryDtls/TxDtls/RltdPties/Dbtr/Nm"); !ok || v != "Employer GmbH" {
		t.Errorf("Incorrect debitor: %q %v", v, ok)
	}

	if _, ok := row.Path("NtryDtls/Nope"); ok {
		t.Errorf("A missing path should not resolve.")
	}
	if _, ok := row.Path("Amt@Nope"); ok {
		t.Errorf("A missing attribute should not resolve.")
	}
}

func TestXMLPathAll(t *testing.T) {
	rows, err := statement.ReadXML(strings.NewReader(camtDoc), "Ntry")
	if err != nil {
		t.Fatal(err)
	}

	row := rows[0].(statement.PathSource)
	lines := row.PathAll("NtryDtls/TxDtls/RmtInf/Ustrd")
	if len(lines) != 2 || lines[0] != "Salary April" || lines[1] != "Ref 12345" {
		t.Errorf("Incorrect subject lines: %#v", lines)
	}

	// The second entry has no remittance info at all.
	row = rows[1].(statement.PathSource)
	if lines := row.PathAll("NtryDtls/TxDtls/RmtInf/Ustrd"); len(lines) != 0 {
		t.Errorf("Expected no subject lines: %#v", lines)
	}
}

func TestXMLField(t *testing.T) {
	rows, err := statement.ReadXML(strings.NewReader(camtDoc), "Ntry")
	if err != nil {
		t.Fatal(err)
	}
	row := rows[0].(statement.FieldSource)

	// Field searches descendants, the first Nm in document order wins.
	if v, ok := row.Field("Nm"); !ok || v != "Employer GmbH" {
		t.Errorf("Incorrect field value: %q %v", v, ok)
	}
	if _, ok := row.Field("Nope"); ok {
		t.Errorf("A missing tag should not resolve.")
	}
}
