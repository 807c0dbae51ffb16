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

package tools

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/samuellwn/soa2ledger"
)

// Preview writes every block to w with a colored outcome banner, green for
// clean matches, red for ambiguous ones, yellow for the unmatched fallbacks.
func Preview(w io.Writer, blocks []Block) {
	for i, b := range blocks {
		if i > 0 {
			fmt.Fprintln(w)
		}
		outcomeColor(b.Resolution.Outcome).Fprintf(w, "== %v ==\n", b.Resolution.Outcome)
		fmt.Fprintln(w, b.Text)
	}
}

func outcomeColor(o soa2ledger.Outcome) *color.Color {
	switch o {
	case soa2ledger.SingleIncomeMatch, soa2ledger.SingleExpenseMatch:
		return color.New(color.FgGreen)
	case soa2ledger.Ambiguous:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}
