package core

import "regexp"

var mnemonicPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Bookmark pins a user-chosen mnemonic to one line of one document.
// It is agnostic to how the document is hosted (filesystem, editor buffer).
//
// Resource identifies the owning document and never changes after creation.
// Line and Fingerprint always move together: the fingerprint is the lexical
// anchor that lets the line be found again after the document mutates.
type Bookmark struct {
	Mnemonic    string `yaml:"mnemonic" json:"mnemonic"`
	Resource    string `yaml:"resource" json:"resource"`
	Line        int    `yaml:"line" json:"line"`
	Fingerprint string `yaml:"fingerprint" json:"fingerprint"`
}

// ValidMnemonic reports whether s is an acceptable mnemonic label.
// Mnemonics are short shell-friendly identifiers: letters, digits,
// underscore and hyphen only.
func ValidMnemonic(s string) bool {
	return mnemonicPattern.MatchString(s)
}
