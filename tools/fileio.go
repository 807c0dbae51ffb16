/*
Copyright 2022 by Milo Christiansen

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

package tools

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/samuellwn/soa2ledger/config"
	"github.com/samuellwn/soa2ledger/statement"
)

// ReadRows reads the statement file named by the options, with the reader
// settings the options carry.
func ReadRows(opt config.Options) ([]statement.Row, error) {
	delim := ','
	if opt.CSVDelimiter != "" {
		delim, _ = utf8.DecodeRuneInString(opt.CSVDelimiter)
	}

	return statement.ReadFile(opt.ImportFile, statement.FileOptions{
		XMLMain:      opt.XMLMain,
		CSVDelimiter: delim,
		CSVOffset:    opt.CSVOffset,
	})
}

// AppendLedger adds one entry block to the end of a ledger file, followed by
// a blank line so hand editing stays pleasant. The file is created if needed,
// existing content is never touched.
func AppendLedger(path, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err = f.WriteString(text + "\n")
	if err != nil {
		return fmt.Errorf("append ledger: %w", err)
	}
	return nil
}
