package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hueristiq/hq-go-urlscan/urlscan"
)

var (
	// suffixListPath is an optional path to a public-suffix-style rule
	// file. When empty, the engine falls back to its curated built-in
	// list.
	suffixListPath string

	// isHTML treats the input as HTML, suppressing NoHTML matchers (bare
	// "@", lead-only "ftp.").
	isHTML bool

	// inputPath, when set, is read instead of stdin.
	inputPath string
)

func init() {
	flag.StringVar(&suffixListPath, "suffixes", "", "Specify a public-suffix-style rule file to load instead of the built-in list.")
	flag.BoolVar(&isHTML, "html", false, "Treat the input as HTML, suppressing NoHTML matchers.")
	flag.StringVar(&inputPath, "input", "", "Read from this file instead of stdin.")

	flag.Usage = func() {
		h := "USAGE:\n"
		h += "  hq-go-urlscan [OPTIONS]\n"

		h += "\nOPTIONS:\n"
		h += " -suffixes string    Specify a public-suffix-style rule file.\n"
		h += " -html               Treat the input as HTML.\n"
		h += " -input string       Read from this file instead of stdin.\n"

		fmt.Fprintln(os.Stderr, h)
	}

	flag.Parse()
}

// record is the JSON shape printed for each extracted URL, one line per
// record.
type record struct {
	Scheme   string `json:"scheme"`
	Host     string `json:"host"`
	TLD      string `json:"tld"`
	Path     string `json:"path,omitempty"`
	Query    string `json:"query,omitempty"`
	Fragment string `json:"fragment,omitempty"`
	Port     uint16 `json:"port,omitempty"`
	Flags    string `json:"flags,omitempty"`
}

func main() {
	var opts []urlscan.Option

	if suffixListPath != "" {
		opts = append(opts, urlscan.WithSuffixList(suffixListPath))
	}

	engine, err := urlscan.NewEngine(opts...)
	if err != nil {
		log.Fatalf("failed to initialize engine: %v\n", err)
	}

	text, err := readInput()
	if err != nil {
		log.Fatalf("failed to read input: %v\n", err)
	}

	urls := engine.FindURLs(text, isHTML)

	encoder := json.NewEncoder(os.Stdout)

	for _, u := range urls {
		if err := encoder.Encode(toRecord(u)); err != nil {
			log.Fatalf("failed to encode record: %v\n", err)
		}
	}
}

func readInput() ([]byte, error) {
	if inputPath != "" {
		return os.ReadFile(inputPath)
	}

	reader := bufio.NewReader(os.Stdin)

	return io.ReadAll(reader)
}

func toRecord(u *urlscan.URL) record {
	r := record{
		Scheme:   u.Scheme.String(),
		Host:     u.HostString(),
		TLD:      u.TLDString(),
		Path:     u.PathString(),
		Query:    u.QueryString(),
		Fragment: u.FragmentString(),
		Port:     u.Port,
	}

	if u.Flags&urlscan.NumericHost != 0 {
		r.Flags += "numeric-host "
	}

	if u.Flags&urlscan.ObscuredHost != 0 {
		r.Flags += "obscured-host "
	}

	return r
}
