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

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samuellwn/soa2ledger"
)

// LoadRules reads a matching rule file. The file is a YAML list, and rule
// order is preserved since ambiguous matches are reported in file order. An
// empty file is a valid empty rule set.
func LoadRules(path string) (soa2ledger.RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	defer f.Close()

	rules := soa2ledger.RuleSet{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(&rules)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse rules: %w", err)
	}

	return rules, nil
}
