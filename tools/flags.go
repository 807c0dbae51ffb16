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
	"flag"
	"fmt"
	"os"

	"github.com/samuellwn/soa2ledger/config"
)

const (
	FlagConfigFile = 1 << iota // The config file
	FlagAccount                // Account section name
	FlagImportFile             // The statement file to import
	FlagRulesFile              // Matching rules file
	FlagLedgerFile             // The destination ledger file
	FlagDryRun                 // Preview instead of committing
	FlagVerbose                // Debug logging
)

// FlagSet is used to store the results from the common flags. Not all of these values will be valid, even if
// their flag is in the set.
type FlagSet struct {
	ConfigFile string
	Account    string
	ImportFile string
	RulesFile  string
	LedgerFile string
	DryRun     bool
	Verbose    bool

	Flags *flag.FlagSet
}

// CommonFlagSet returns a flagset filled out with your choice of several common flags.
func CommonFlagSet(flags int, usage string) *FlagSet {
	fs := &FlagSet{
		ConfigFile: config.DefaultPath(),
		Flags:      flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}

	if flags&FlagConfigFile != 0 {
		fs.Flags.StringVar(&fs.ConfigFile, "config", fs.ConfigFile, "The config file `path`.")
	}

	if flags&FlagAccount != 0 {
		fs.Flags.StringVar(&fs.Account, "account", "", "The `account` section of the config file to use.")
	}

	if flags&FlagImportFile != 0 {
		fs.Flags.StringVar(&fs.ImportFile, "file", "", "The statement file `path` to import.")
	}

	if flags&FlagRulesFile != 0 {
		fs.Flags.StringVar(&fs.RulesFile, "rules", "", "The matching rules `path`. Overrides the config file.")
	}

	if flags&FlagLedgerFile != 0 {
		fs.Flags.StringVar(&fs.LedgerFile, "ledger", "", "The ledger file `path` to append to. Overrides the config file.")
	}

	if flags&FlagDryRun != 0 {
		fs.Flags.BoolVar(&fs.DryRun, "dryrun", false, "Print the generated entries instead of committing them.")
	}

	if flags&FlagVerbose != 0 {
		fs.Flags.BoolVar(&fs.Verbose, "v", false, "Log extra detail about every record.")
	}

	fs.Flags.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
		fs.Flags.PrintDefaults()
	}

	return fs
}

func (fs *FlagSet) Parse() {
	fs.Flags.Parse(os.Args[1:])
}
