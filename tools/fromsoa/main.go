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

package main

import (
	"os"

	"golang.org/x/exp/slices"

	"github.com/samuellwn/soa2ledger"
	"github.com/samuellwn/soa2ledger/config"
	"github.com/samuellwn/soa2ledger/tools"
)

func main() {
	fs := tools.CommonFlagSet(tools.FlagConfigFile|tools.FlagAccount|tools.FlagImportFile|tools.FlagRulesFile|tools.FlagLedgerFile|tools.FlagDryRun|tools.FlagVerbose, usage)
	ids := false
	fs.Flags.BoolVar(&ids, "ids", ids, "Annotate each entry with its record `ID`.")
	fs.Parse()

	log := tools.Logger(fs.Verbose).With().Str("run", <-soa2ledger.IDService).Logger()

	tools.HandleErrS(fs.Account == "", "An account must be selected with -account.")

	opt := tools.HandleErrV(config.Load(fs.ConfigFile, fs.Account))
	if fs.ImportFile != "" {
		opt.ImportFile = fs.ImportFile
	}
	if fs.RulesFile != "" {
		opt.RulesFile = fs.RulesFile
	}
	if fs.LedgerFile != "" {
		opt.LedgerFile = fs.LedgerFile
	}
	if fs.DryRun {
		opt.DryRun = true
	}

	tools.HandleErrS(opt.ImportFile == "", "A statement file must be given with -file.")
	tools.HandleErrS(opt.DefAssetAcc == "", "The config file must set def_asset_acc for this account.")
	tools.HandleErrS(!opt.DryRun && opt.LedgerFile == "", "A ledger file must be set in the config file or with -ledger.")

	rules := tools.HandleErrV(config.LoadRules(opt.RulesFile))
	rows := tools.HandleErrV(tools.ReadRows(opt))

	// Most banks list the newest record first, the ledger wants oldest first.
	if opt.Reverse {
		slices.Reverse(rows)
	}

	log.Info().Str("account", opt.Account).Str("file", opt.ImportFile).Int("rows", len(rows)).Int("rules", len(rules)).Msg("statement loaded")

	blocks := tools.HandleErrV(tools.FromSOA(rows, rules, opt, ids, log))

	if opt.DryRun {
		tools.Preview(os.Stdout, blocks)
		return
	}

	for _, b := range blocks {
		text := tools.HandleErrV(tools.EditString(opt.Editor, b.Text))
		tools.HandleErr(tools.AppendLedger(opt.LedgerFile, text))
	}

	log.Info().Int("entries", len(blocks)).Str("ledger", opt.LedgerFile).Msg("entries committed")
}

var usage = `Usage:

This program imports a bank statement of account (XML, CSV, OFX, or QFX) and
converts every record into a double-entry ledger transaction using a set of
matching rules. Each generated entry is opened in your editor for touchup
before being appended to the ledger file. Use -dryrun to preview the entries
on standard output instead.
`
