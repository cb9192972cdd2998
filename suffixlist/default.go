package suffixlist

import "github.com/hueristiq/hq-go-urlscan/tlds"

// wildcardSuffixes lists rule text that tlds.Official/tlds.Pseudo don't
// encode themselves (a flat string has no room for the "*." marker): the
// Cook Islands delegate every direct child of .ck as its own public
// suffix.
var wildcardSuffixes = []string{
	"*.ck",
}

// Default returns the built-in rule set, built from tlds.Official (IANA
// TLDs and the common multi-label public suffixes) and tlds.Pseudo
// (widely used unofficial/special-use TLDs such as .local and .onion's
// neighbors) plus the wildcard rules neither flat list can express on its
// own. This stands in for the full, regularly refreshed Public Suffix
// List a production deployment should point Load at instead.
func Default() []Rule {
	rules := make([]Rule, 0, len(tlds.Official)+len(tlds.Pseudo)+len(wildcardSuffixes))

	for _, suffix := range tlds.Official {
		rules = append(rules, Rule{Suffix: suffix})
	}

	for _, suffix := range tlds.Pseudo {
		rules = append(rules, Rule{Suffix: suffix})
	}

	for _, line := range wildcardSuffixes {
		rules = append(rules, Rule{Suffix: line[2:], Star: true})
	}

	return rules
}
