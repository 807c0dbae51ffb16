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
	"os"
	"path/filepath"
	"testing"
)

import "github.com/samuellwn/soa2ledger/statement"

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "statement.csv")
	if err := os.WriteFile(csvPath, []byte("a,b\n1,2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rows, err := statement.ReadFile(csvPath, statement.FileOptions{CSVDelimiter: ','})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("Incorrect number of rows: %v", len(rows))
	}

	xmlPath := filepath.Join(dir, "statement.XML")
	if err := os.WriteFile(xmlPath, []byte(camtDoc), 0644); err != nil {
		t.Fatal(err)
	}

	// Extension matching ignores case.
	rows, err = statement.ReadFile(xmlPath, statement.FileOptions{XMLMain: "Ntry"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("Incorrect number of rows: %v", len(rows))
	}
}

func TestReadFileUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.pdf")
	if err := os.WriteFile(path, []byte("not a statement"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := statement.ReadFile(path, statement.FileOptions{})
	if err == nil {
		t.Fatalf("Expected an error for an unsupported format.")
	}
	if _, ok := err.(statement.ErrUnsupportedFormat); !ok {
		t.Errorf("Incorrect error type: %T", err)
	}

	if _, err := statement.ReadFile(filepath.Join(dir, "missing.csv"), statement.FileOptions{}); err == nil {
		t.Errorf("Expected an error for a missing file.")
	}
}
