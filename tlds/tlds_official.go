package tlds

// Official is a curated seed of IANA TLDs and Public-Suffix-List eTLDs.
// The teacher's Official list is itself a generated file (fetched from
// IANA + the Public Suffix List at generation time) that was not part of
// this build's retrieval; this seed is the plain-rule source
// suffixlist.Default() builds from, in the flat string-slice shape the
// generator emits, and should be regenerated from the real registries for
// production use.
var Official = []string{
	`com`, `net`, `org`, `info`, `biz`, `name`, `pro`,
	`io`, `co`, `dev`, `app`, `xyz`, `online`, `site`, `tech`, `store`,
	`cloud`, `email`, `shop`,
	`uk`, `us`, `ca`, `de`, `fr`, `es`, `it`, `nl`, `ru`, `cn`, `jp`,
	`in`, `au`, `br`, `za`, `mx`, `ch`, `se`, `no`, `fi`, `pl`, `gr`,
	`pt`, `tr`, `kr`, `ck`,
	`co.uk`, `org.uk`, `ac.uk`, `gov.uk`,
	`com.au`, `net.au`, `org.au`,
	`co.jp`, `ne.jp`,
	`com.br`,
	`co.in`,
	`com.mx`,
}
