// Command lexi is the minimal CLI front-end of spec §6: tokenize or
// segment one piece of text, optionally constrained to a language.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/textkit/lexi"
	"github.com/textkit/lexi/core/lang"
	"github.com/textkit/lexi/core/script"
)

func tracer() tracing.Trace {
	return lexi.T()
}

func main() {
	initDisplay()
	setUpTracing()

	language := flag.String("language", "", "constrain detection to an ISO-639-3 language code")
	flag.Parse()
	args := flag.Args()

	if len(args) < 2 {
		usage()
		os.Exit(1)
	}

	mode, text := args[0], args[1]
	if mode != "tokenize" && mode != "segment" {
		pterm.Error.Printfln("unknown mode %q: want \"tokenize\" or \"segment\"", mode)
		os.Exit(1)
	}

	builder := lexi.NewBuilder()
	if *language != "" {
		l, ok := lang.FromCode(*language)
		if !ok {
			pterm.Error.Printfln("unrecognized language code %q", *language)
			os.Exit(1)
		}
		builder = builder.AllowList(allowListFor(l))
	}

	tz, err := builder.Build()
	if err != nil {
		tracer().Errorf(err.Error())
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}

	switch mode {
	case "segment":
		for _, tk := range tz.Segment(text) {
			pterm.Printfln("%-20q script=%-10s [%d,%d)", tk.Lemma, tk.Script, tk.ByteStart, tk.ByteEnd)
		}
	case "tokenize":
		for _, tk := range tz.Tokenize(text) {
			pterm.Printfln("%-20q kind=%-14s script=%-10s [%d,%d)",
				tk.Lemma, tk.Kind, tk.Script, tk.ByteStart, tk.ByteEnd)
		}
	}
}

// allowListFor constrains each of the scripts listed below to the single
// requested language; the detector's "len(allowed) == 1" rule (spec §4.2)
// then returns it unscanned for runs of those scripts.
func allowListFor(l lang.Language) lang.AllowList {
	al := make(lang.AllowList)
	for _, s := range []script.Script{
		script.Latin, script.Cj, script.Arabic, script.Cyrillic, script.Hebrew,
		script.Thai, script.Khmer, script.Hangul, script.Greek, script.Devanagari,
	} {
		al[s] = []lang.Language{l}
	}
	return al
}

func initDisplay() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setUpTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.core":      "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func usage() {
	pterm.Info.Println("usage: lexi [--language <iso-639-3-code>] (tokenize|segment) <text>")
}
