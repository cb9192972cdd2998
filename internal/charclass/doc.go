// Package charclass provides a 256-entry byte classification table used by
// the URL scanner and its state machines to decide, in O(1), whether a byte
// may appear in a bare URL, a mailto address, or a domain label, and whether
// it can terminate one.
//
// Each byte maps to a small set of independent flags (LWSP, Domain,
// URLSafe, MailSafe, DomainEnd) rather than a single exclusive class,
// because a byte such as '.' is simultaneously domain-safe, URL-safe, and
// mail-safe, while '/' terminates a domain yet is URL-safe and mail-safe.
package charclass
