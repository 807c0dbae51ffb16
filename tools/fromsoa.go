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
	"github.com/rs/zerolog"

	"github.com/samuellwn/soa2ledger"
	"github.com/samuellwn/soa2ledger/config"
	"github.com/samuellwn/soa2ledger/statement"
)

// Block is one statement record carried through the whole pipeline: the
// extracted record, how the rules resolved it, and the formatted text that
// will be previewed, edited, and committed.
type Block struct {
	Record     soa2ledger.Record
	Resolution soa2ledger.Resolution
	Text       string
}

// FromSOA runs every statement row through extraction, rule resolution, and
// formatting. Extraction problems degrade the affected field and are logged,
// they never drop a record. With annotate set each entry gets its record ID
// as a key/value comment, handy for tracing entries back to the statement.
func FromSOA(rows []statement.Row, rules soa2ledger.RuleSet, opt config.Options, annotate bool, log zerolog.Logger) ([]Block, error) {
	x, err := statement.NewExtractor(opt.Fields)
	if err != nil {
		return nil, err
	}

	f := soa2ledger.Formatter{Indent: opt.LedgerIndent}

	blocks := []Block{}
	for _, row := range rows {
		rec, errs := x.Record(row)
		for _, err := range errs {
			log.Warn().Str("id", rec.ID).Str("row", row.Source()).Err(err).Msg("field extraction degraded")
		}

		res := soa2ledger.Resolve(rec, rules, opt.Account, opt.DefAssetAcc)
		if annotate {
			for i := range res.Entries {
				res.Entries[i].KVPairs = map[string]string{"ID": rec.ID}
			}
		}
		log.Debug().Str("id", rec.ID).Stringer("outcome", res.Outcome).Msg("record resolved")

		blocks = append(blocks, Block{Record: rec, Resolution: res, Text: f.Block(rec, res)})
	}

	return blocks, nil
}
