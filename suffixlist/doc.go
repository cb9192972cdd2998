// Package suffixlist loads a Public-Suffix-style rule file and exposes it
// as a compiled Rule set for the TLD classifier and the extraction
// driver's matcher set.
//
// File format: UTF-8 text, one rule per line. Blank lines and lines
// beginning with "//" are ignored. A leading "*." marks a wildcard rule,
// meaning one additional label to the left of the match is part of the
// effective TLD. Lines beginning with "!" are exception rules; they are
// recognized but skipped by this implementation, and logged at debug
// level when a logger is configured, matching the legacy suffix-list
// loader's documented behavior.
package suffixlist
