// Package environment infers a host's deployment environment from its name.
//
// Classification is a substring match against an ordered catalog. The
// catalog order is the tie-break: a host whose name contains several
// catalog entries belongs to the earliest-listed one.
package environment

import "strings"

// defaultCatalog is the environment catalog used by the audit report.
var defaultCatalog = []string{"prod", "demo", "staging", "dev", "end2end", "presales"}

// DefaultCatalog returns a copy of the built-in environment catalog.
func DefaultCatalog() []string {
	return append([]string(nil), defaultCatalog...)
}

// Classify returns the first catalog entry that occurs in hostname
// (case-sensitive), and false if none does. Empty entries never match.
func Classify(hostname string, catalog []string) (string, bool) {
	for _, env := range catalog {
		if env != "" && strings.Contains(hostname, env) {
			return env, true
		}
	}
	return "", false
}
