// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads document passwords from a directory of plain-text
// files, so passwords for encrypted PDFs never appear in shell history.
// Each file in the directory represents one secret: the filename is the
// key name and the file contents (trimmed) are the value.
//
// A password for a specific document lives under "password.<stem>" where
// stem is the source file name without extension; "password" alone is the
// fallback for any document.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory or missing files are not errors; Load
// returns an empty map. Unreadable files produce a warning on stderr but
// do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// PasswordFor resolves the password for the document at path: first the
// document-specific "password.<stem>" key, then the generic "password"
// key, then empty.
func PasswordFor(secrets map[string]string, path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if v, ok := secrets["password."+stem]; ok {
		return v
	}
	return secrets["password"]
}
