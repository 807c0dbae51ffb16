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
	"os"
	"os/exec"
)

// EditString drops the text into a temp file, runs the user's editor on it,
// and returns whatever the user left behind. An empty editor means no editor,
// the text passes through unchanged.
func EditString(editor, text string) (string, error) {
	if editor == "" {
		return text, nil
	}

	f, err := os.CreateTemp("", "*.ledger-cap")
	if err != nil {
		return "", fmt.Errorf("edit: %w", err)
	}
	name := f.Name()
	defer os.Remove(name)

	_, err = f.WriteString(text)
	if err != nil {
		f.Close()
		return "", fmt.Errorf("edit: %w", err)
	}
	err = f.Close()
	if err != nil {
		return "", fmt.Errorf("edit: %w", err)
	}

	cmd := exec.Command(editor, name)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	err = cmd.Run()
	if err != nil {
		return "", fmt.Errorf("editor: %w", err)
	}

	edited, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("edit: %w", err)
	}
	return string(edited), nil
}
