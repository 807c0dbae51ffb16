/*
Copyright 2022 by Samuel Loewen

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
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV reads a delimited statement. offset raw lines are skipped first
// (banks love putting preamble above the real data), the next line is the
// header, and everything after is one row per line. Rows resolve cells by
// header name, or by 0-based index for headerless columns.
func ReadCSV(r io.Reader, delimiter rune, offset int) ([]Row, error) {
	br := bufio.NewReader(r)
	for i := 0; i < offset; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if err == io.EOF {
				return nil, errors.New("CSV offset skips past the end of the file.")
			}
			return nil, err
		}
	}

	rdr := csv.NewReader(br)
	if delimiter != 0 {
		rdr.Comma = delimiter
	}
	rdr.FieldsPerRecord = -1

	header, err := rdr.Read()
	if err == io.EOF {
		return nil, errors.New("CSV file has no header line.")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	headerIx := make(map[string]int, len(header))
	for i, h := range header {
		headerIx[strings.TrimSpace(h)] = i
	}

	rows := []Row{}
	for n := 1; ; n++ {
		cells, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, &csvRow{header: headerIx, cells: cells, num: n})
	}

	return rows, nil
}

type csvRow struct {
	header map[string]int
	cells  []string
	num    int // 1-based data row number, header not counted.
}

func (c *csvRow) Source() string {
	return fmt.Sprintf("row %v", c.num)
}

// Field looks a cell up by header name.
func (c *csvRow) Field(name string) (string, bool) {
	ix, ok := c.header[name]
	if !ok || ix >= len(c.cells) {
		return "", false
	}
	return c.cells[ix], true
}

// Column looks a cell up by header name first, then, if the selector is
// a number, by index. Numeric headers win over positions so a file with
// a column literally named "3" behaves predictably.
func (c *csvRow) Column(sel string) (string, bool) {
	if v, ok := c.Field(sel); ok {
		return v, true
	}
	ix, err := strconv.Atoi(sel)
	if err != nil || ix < 0 || ix >= len(c.cells) {
		return "", false
	}
	return c.cells[ix], true
}
