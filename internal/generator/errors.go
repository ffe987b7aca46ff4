// Package generator expands seed words into a ranked, de-duplicated stream of password candidates.
package generator

import "errors"

// ErrEmptySeedSet is recorded as a warning when no seed words are available. Generation still
// runs the tiers that do not depend on seeds.
var ErrEmptySeedSet = errors.New("profile yields no usable seed words; only common passwords and keyboard patterns are generated")
