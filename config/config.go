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

// Package config loads the converter settings from a YAML file with a main
// section and optional per-account sections. Values resolve in layers: built
// in defaults, then the main section, then the selected account section.
// Command line flags are applied on top by the tools themselves.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// FieldExprs holds the extraction expression for each record field. An empty
// expression means the statement format does not carry that field.
type FieldExprs struct {
	BookDate string `yaml:"book_date"`
	ValDate  string `yaml:"val_date"`
	Amount   string `yaml:"amount"`
	Currency string `yaml:"currency"`
	Creditor string `yaml:"creditor"`
	Debitor  string `yaml:"debitor"`
	Subject  string `yaml:"subject"`
}

// Options is the fully resolved configuration a tool runs with.
type Options struct {
	Account string // The selected account section, empty for main only.

	LedgerIndent int
	DefAssetAcc  string
	Reverse      bool
	Editor       string

	RulesFile  string
	LedgerFile string
	ImportFile string
	DryRun     bool

	XMLMain      string
	CSVOffset    int
	CSVDelimiter string

	Fields FieldExprs
}

// section mirrors Options with pointer fields so a config file can leave any
// value unset without clobbering the layer below it.
type section struct {
	LedgerIndent *int    `yaml:"ledger_indent"`
	DefAssetAcc  *string `yaml:"def_asset_acc"`
	Reverse      *bool   `yaml:"reverse"`
	Editor       *string `yaml:"editor"`
	Rules        *string `yaml:"rules"`
	LedgerFile   *string `yaml:"ledger_file"`
	XMLMain      *string `yaml:"xml_main"`
	CSVOffset    *int    `yaml:"csv_offset"`
	CSVDelimiter *string `yaml:"csv_delimiter"`

	BookDate *string `yaml:"book_date"`
	ValDate  *string `yaml:"val_date"`
	Amount   *string `yaml:"amount"`
	Currency *string `yaml:"currency"`
	Creditor *string `yaml:"creditor"`
	Debitor  *string `yaml:"debitor"`
	Subject  *string `yaml:"subject"`
}

type configFile struct {
	Main     section            `yaml:"main"`
	Accounts map[string]section `yaml:"accounts"`
}

// DefaultPath is where Load looks when the user gives no config flag.
func DefaultPath() string {
	return homePath("soa2ledger.yaml")
}

// Defaults returns the bottom configuration layer.
func Defaults() Options {
	return Options{
		LedgerIndent: 4,
		Reverse:      true,
		Editor:       os.Getenv("EDITOR"),
		RulesFile:    homePath("soa2ledger-rules.yaml"),
		XMLMain:      "Ntry",
		CSVDelimiter: ",",
	}
}

// Load reads the config file at path and resolves the layers for the given
// account. account may be empty, in which case only the main section applies.
// Unknown keys in the file are errors, they are nearly always typos.
func Load(path, account string) (Options, error) {
	// A .env file next to the working directory may supply EDITOR and
	// friends. Not having one is normal.
	godotenv.Load()

	o := Defaults()

	f, err := os.Open(path)
	if err != nil {
		return o, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cf := configFile{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(&cf)
	if err != nil && !errors.Is(err, io.EOF) {
		return o, fmt.Errorf("parse config: %w", err)
	}

	o.apply(cf.Main)

	if account != "" {
		sec, ok := cf.Accounts[account]
		if !ok {
			known := maps.Keys(cf.Accounts)
			slices.Sort(known)
			return o, fmt.Errorf("No account %q in config file. Known accounts: %v", account, strings.Join(known, ", "))
		}
		o.apply(sec)
		o.Account = account
	}

	return o, nil
}

func (o *Options) apply(s section) {
	if s.LedgerIndent != nil {
		o.LedgerIndent = *s.LedgerIndent
	}
	if s.DefAssetAcc != nil {
		o.DefAssetAcc = *s.DefAssetAcc
	}
	if s.Reverse != nil {
		o.Reverse = *s.Reverse
	}
	if s.Editor != nil {
		o.Editor = *s.Editor
	}
	if s.Rules != nil {
		o.RulesFile = *s.Rules
	}
	if s.LedgerFile != nil {
		o.LedgerFile = *s.LedgerFile
	}
	if s.XMLMain != nil {
		o.XMLMain = *s.XMLMain
	}
	if s.CSVOffset != nil {
		o.CSVOffset = *s.CSVOffset
	}
	if s.CSVDelimiter != nil {
		o.CSVDelimiter = *s.CSVDelimiter
	}

	if s.BookDate != nil {
		o.Fields.BookDate = *s.BookDate
	}
	if s.ValDate != nil {
		o.Fields.ValDate = *s.ValDate
	}
	if s.Amount != nil {
		o.Fields.Amount = *s.Amount
	}
	if s.Currency != nil {
		o.Fields.Currency = *s.Currency
	}
	if s.Creditor != nil {
		o.Fields.Creditor = *s.Creditor
	}
	if s.Debitor != nil {
		o.Fields.Debitor = *s.Debitor
	}
	if s.Subject != nil {
		o.Fields.Subject = *s.Subject
	}
}

func homePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name)
}
