package main

import (
	"fmt"
	"os"

	"github.com/ddkwork/golibrary/mylog"
	"github.com/ogier/pflag"

	"github.com/jeffwilliams/xtarget/internal/debug"
	"github.com/jeffwilliams/xtarget/internal/lines"
	"github.com/jeffwilliams/xtarget/internal/names"
	"github.com/jeffwilliams/xtarget/internal/target"
)

const programName = "xtarget"

var (
	optLine           = pflag.IntP("line", "l", 1, "Reference line the targets are resolved from. 0 is the top of file.")
	optColumn         = pflag.IntP("column", "c", -1, "Treat targets as column targets on the reference line, starting from this column")
	optSearch         = pflag.BoolP("search", "s", false, "Use search semantics: the reference line is searched too")
	optStartColumn    = pflag.Int("start-column", 0, "Focus column left by a previous search; a search of the reference line continues from it")
	optIgnoreScope    = pflag.Bool("ignore-scope", false, "Consider lines outside the display range")
	optDisplay        = pflag.String("display", "", "Selection levels lo:hi that are in scope")
	optSelect         = pflag.String("select", "", "Selection levels of lines, as line:level,...")
	optNames          = pflag.String("name", "", "Named lines, as name=line,...")
	optBlock          = pflag.String("block", "", "Marked block, as file:start:end")
	optTag            = pflag.String("tag", "", "Lines to flag as tagged, as line,...")
	optNew            = pflag.String("new", "", "Lines to flag as new, as line,...")
	optChanged        = pflag.String("changed", "", "Lines to flag as changed, as line,...")
	optComplete       = pflag.String("complete", "", "Print the line names that start with this prefix")
	optSettings       = pflag.String("settings", "", "Settings file to use instead of the one in the configuration directory")
	optSampleSettings = pflag.Bool("sample-settings", false, "Print a sample settings file and exit")
	optCsv            = pflag.Bool("csv", false, "Print the results as CSV")
	optDebugStdout    = pflag.BoolP("dbg", "b", false, "Print debug logs to stderr")
	optTrace          = pflag.Bool("trace", false, "Print the debug log to stderr on exit")
	optProfile        = pflag.StringP("profile", "p", "", "Profile target resolution: cpu, heap, alloc, block, mutex or trace")
	optProfileDir     = pflag.String("profile-dir", ".", "Directory the profile is written to")
)

var debugLog = debug.New(100)

func main() {
	status := 2
	mylog.Call(func() { status = run() })
	os.Exit(status)
}

func run() int {
	parseAndValidateOptions()

	if *optSampleSettings {
		fmt.Print(GenerateSampleSettings())
		return 0
	}

	initDebugging()
	if *optTrace {
		defer func() { fmt.Fprint(os.Stderr, debugLog.String(debugLogCategories...)) }()
	}

	if *optProfile != "" {
		p, err := startProfiling(*optProfile, *optProfileDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 2
		}
		defer p.Stop()
	}

	settings := LoadSettings()

	file := loadFile(pflag.Arg(0))
	eng, ix, err := buildEngine(file, settings, engineOptions{
		tag:     *optTag,
		added:   *optNew,
		changed: *optChanged,
		selects: *optSelect,
		display: *optDisplay,
		names:   *optNames,
		block:   *optBlock,
	})
	mylog.Check(err)

	if *optComplete != "" {
		for _, n := range ix.Complete(*optComplete) {
			fmt.Println(n)
		}
	}

	req := request{
		line:        *optLine,
		column:      *optColumn,
		search:      *optSearch,
		startColumn: *optStartColumn,
		ignoreScope: *optIgnoreScope,
	}
	results, err := resolveAll(eng, pflag.Args()[1:], req)
	mylog.Check(writeResults(os.Stdout, results, *optCsv))

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

func parseAndValidateOptions() {
	pflag.Parse()

	if *optSampleSettings {
		return
	}

	if pflag.NArg() < 1 || (pflag.NArg() < 2 && *optComplete == "") {
		pflag.Usage()
		os.Exit(2)
	}
}

func loadFile(path string) *lines.File {
	f := mylog.Check2(os.Open(path))
	defer func() { mylog.Check(f.Close()) }()

	file := mylog.Check2(lines.Load(path, f))
	log(LogCatgApp, "Loaded %d lines from %s\n", file.Len(), path)
	return file
}

// engineOptions are the command line options describing the editor state around the
// file: line flags, selection levels, the display range, line names and the block.
type engineOptions struct {
	tag, added, changed string
	selects, display    string
	names               string
	block               string
}

// buildEngine applies opts to file and returns an engine over it, along with the
// index of line names.
func buildEngine(file *lines.File, settings target.Settings, opts engineOptions) (*target.Engine, *names.Index, error) {
	eng := target.NewEngine(file, settings)

	for _, f := range []struct {
		opt string
		set func(l *lines.Line)
	}{
		{opts.tag, func(l *lines.Line) { l.Tagged = true }},
		{opts.added, func(l *lines.Line) { l.New = true }},
		{opts.changed, func(l *lines.Line) { l.Changed = true }},
	} {
		if err := flagLines(file, f.opt, f.set); err != nil {
			return nil, nil, err
		}
	}

	levels, err := parseSelect(opts.selects)
	if err != nil {
		return nil, nil, err
	}
	for n, level := range levels {
		l := file.At(n)
		if l == nil {
			return nil, nil, fmt.Errorf("--select: no line %d", n)
		}
		l.Select = level
	}

	if opts.display != "" {
		lo, hi, err := parseRange(opts.display)
		if err != nil {
			return nil, nil, err
		}
		eng.Scope = lines.SelectRange(lo, hi)
		log(LogCatgApp, "Display is selection levels %d to %d\n", lo, hi)
	}

	ix, err := buildIndex(file, opts.names)
	if err != nil {
		return nil, nil, err
	}
	eng.Points = ix

	if opts.block != "" {
		b, err := parseBlock(opts.block)
		if err != nil {
			return nil, nil, err
		}
		eng.Block = b
	}

	return eng, ix, nil
}

func init() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] FILE TARGET...\n", programName)
		fmt.Fprintf(os.Stderr, "Resolve each TARGET against FILE and print the line (or column) it refers to.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")

		pflag.PrintDefaults()
	}
}

func log(category, message string, args ...interface{}) {
	if *optDebugStdout {
		fmt.Fprintf(os.Stderr, message, args...)
	}
	debugLog.Addf(category, message, args...)
}

func initDebugging() {
	target.Debug = func(message string, args ...interface{}) {
		log(LogCatgTarget, message+"\n", args...)
	}
}
