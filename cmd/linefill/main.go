package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/linefill"
	"github.com/npillmayer/linefill/glyph"
	"github.com/npillmayer/linefill/hyphenate"
	"github.com/npillmayer/linefill/hyphenate/hytab"
	"github.com/npillmayer/linefill/termdev"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

// tracer traces with key 'linefill.cli'
func tracer() tracing.Trace {
	return tracing.Select("linefill.cli")
}

var traceKeys = []string{"linefill", "linefill.hyphenate", "linefill.cli"}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.linefill":           "Error",
		"trace.linefill.hyphenate": "Error",
		"trace.linefill.cli":       "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	ll := flag.Int("ll", linefill.DefaultLineLength, "Line length in columns")
	in := flag.Int("in", 0, "Indent in columns")
	ad := flag.String("ad", "b", "Adjust mode [b|l|c|r]")
	na := flag.Bool("na", false, "Do not adjust lines")
	nf := flag.Bool("nf", false, "Do not fill lines")
	hy := flag.Int("hy", 1, "Hyphenation mode (0 = off, 1 = on, +2 not at page end, +4/+8 not at word ends)")
	ht := flag.Int("ht", hyphenate.DefaultThreshold, "Digram threshold for hyphenation")
	hw := flag.String("hw", "", "Hyphenation exceptions, e.g. \"pre-sent ta-ble\"")
	pl := flag.Int("pl", 0, "Page length in lines (0 = no pages)")
	tables := flag.String("tables", "", "Hyphenation tables to load instead of the built-in English ones")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	interactive := flag.Bool("i", false, "Interactive hyphenation shell")
	flag.Parse()
	if err := setTraceLevel(*tlevel); err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	checkLocale()
	//
	dict, err := loadTables(*tables)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(3)
	}
	if *interactive {
		engine := hyphenate.NewEngine(dict)
		engine.SetThreshold(*ht)
		engine.AddException(strings.Fields(*hw)...)
		repl, err := readline.New("hy > ")
		if err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
		pterm.Info.Println("Welcome to the linefill hyphenation shell")
		pterm.Info.Println("Quit with <ctrl>D")
		intp := &Intp{repl: repl, engine: engine}
		intp.REPL()
		return
	}
	//
	mode, err := linefill.ParseAdjustMode(*ad)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	opts := []linefill.Option{
		linefill.WithLineLength(*ll),
		linefill.WithIndent(*in),
		linefill.WithAdjust(mode),
		linefill.WithFill(!*nf),
		linefill.WithHyphenation(linefill.HyphenMode(*hy)),
		linefill.WithThreshold(*ht),
		linefill.WithDictionary(dict),
		linefill.WithWidths(termdev.MonospaceFromEnvironment(1)),
	}
	if *na {
		opts = append(opts, linefill.WithoutAdjust())
	}
	out := termdev.NewWriter(os.Stdout, 1)
	if *pl > 0 {
		page := termdev.NewPage(*pl)
		out.SetPage(page, true)
		opts = append(opts, linefill.WithPageBudget(page, 1))
	}
	src, closeAll, err := openSources(flag.Args())
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(5)
	}
	defer closeAll()
	if err := format(src, out, strings.Fields(*hw), opts); err != nil {
		pterm.Error.Println(err)
		os.Exit(6)
	}
}

func format(src glyph.Source, out *termdev.Writer, exceptions []string,
	opts []linefill.Option) error {
	//
	f, err := linefill.NewFormatter(src, out, opts...)
	if err != nil {
		return err
	}
	f.AddException(exceptions...)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = f.Run(ctx)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	tracer().Infof("%d lines formatted, digram threshold %d", f.Emitted(), f.Engine().Threshold())
	return err
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level string) error {
	for _, key := range traceKeys {
		switch level {
		case "Debug":
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		case "Info":
			tracing.Select(key).SetTraceLevel(tracing.LevelInfo)
		case "Error":
			tracing.Select(key).SetTraceLevel(tracing.LevelError)
		default:
			return fmt.Errorf("invalid trace level: %s", level)
		}
	}
	tracer().Debugf("Trace level is %s", level)
	return nil
}

// checkLocale warns if the user does not work in English, as the built-in
// tables are English-only.
func checkLocale() {
	tag := termdev.UserLocale()
	base, _ := tag.Base()
	english, _ := language.English.Base()
	if base != english {
		pterm.Warning.Printf("hyphenation tables are English, user locale is %v\n", tag)
	}
}

func loadTables(name string) (*hyphenate.Dictionary, error) {
	if name == "" {
		return hytab.Default()
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return hytab.LoadDictionary(name, f)
}

// openSources chains the input files. Without file arguments standard input
// is read.
func openSources(names []string) (glyph.Source, func(), error) {
	if len(names) == 0 {
		return glyph.NewReaderSource(os.Stdin, 0), func() {}, nil
	}
	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}
	sources := make([]glyph.Source, 0, len(names))
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		files = append(files, f)
		sources = append(sources, glyph.NewReaderSource(f, 0))
	}
	return glyph.Concat(sources...), closeAll, nil
}
