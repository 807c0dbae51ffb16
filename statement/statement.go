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

// Package statement reads bank statement files (XML, CSV, OFX) and turns
// their raw rows into records via user-configured extraction expressions.
package statement

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Row is one raw transfer row from a statement file. What can be pulled
// out of it depends on the file format; extraction expressions probe the
// capability interfaces below and fail cleanly when a row doesn't have
// the requested shape.
type Row interface {
	// Source identifies the row for diagnostics, e.g. "row 12" or "Ntry 3".
	Source() string
}

// FieldSource is implemented by rows that can look a value up by name: a
// CSV header cell, an OFX transaction attribute, or the first XML
// descendant with a matching tag.
type FieldSource interface {
	Row
	Field(name string) (string, bool)
}

// ColumnSource is implemented by rows with positional cells. Columns are
// selected by header name, falling back to a 0-based index when the
// selector is numeric.
type ColumnSource interface {
	Row
	Column(sel string) (string, bool)
}

// PathSource is implemented by rows that are element trees (XML). Paths
// are slash-separated tag names relative to the row element, with an
// optional trailing @attribute.
type PathSource interface {
	Row
	Path(path string) (string, bool)
	PathAll(path string) []string
}

// ErrUnsupportedFormat is returned by ReadFile for a file extension it
// has no reader for.
type ErrUnsupportedFormat string

func (err ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("Unsupported import file type: %q", string(err))
}

// FileOptions carries the per-format knobs the readers need.
type FileOptions struct {
	XMLMain      string // Tag delimiting one transfer in an XML statement.
	CSVDelimiter rune
	CSVOffset    int // Raw lines to skip before the CSV header.
}

// ReadFile opens a statement file and hands it to the reader matching its
// extension: .xml, .csv, or .ofx/.qfx. Anything else is rejected before a
// single row is produced.
func ReadFile(path string, o FileOptions) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open statement: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xml":
		return ReadXML(f, o.XMLMain)
	case ".csv":
		return ReadCSV(f, o.CSVDelimiter, o.CSVOffset)
	case ".ofx", ".qfx":
		return ReadOFX(f)
	default:
		return nil, ErrUnsupportedFormat(ext)
	}
}
