// Package errcode defines the typed error taxonomy returned by ParseURL
// (FindTLD reports a classifier failure only as ok == false), and wraps it
// with github.com/hueristiq/hq-go-errors so that callers get both a stable
// Kind to switch on and a human-readable message.
package errcode
