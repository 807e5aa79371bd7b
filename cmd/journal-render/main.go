package main

// A `journal-render` CLI driving the renderer against a unit's (or user
// unit's) journal entries, for manual testing. Not part of the
// renderer's tested surface.

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/pflag"
	"go.elastic.co/ecszap"
	"go.uber.org/zap"

	"github.com/jrnl-render/jrender/internal/bootid"
	"github.com/jrnl-render/jrender/internal/dispatch"
	"github.com/jrnl-render/jrender/internal/journal"
	"github.com/jrnl-render/jrender/internal/match"
	"github.com/jrnl-render/jrender/internal/pager"
	"github.com/jrnl-render/jrender/internal/render"
	"github.com/jrnl-render/jrender/internal/rlog"
	"github.com/jrnl-render/jrender/internal/sdreader"
	"github.com/jrnl-render/jrender/internal/sink"
)

var flags = pflag.NewFlagSet("journal-render", pflag.ExitOnError)
var flagVerbose = flags.BoolP("verbose", "v", false, "verbose internal logging")
var flagHelp = flags.BoolP("help", "h", false, "print this help")
var flagMode = flags.StringP("output", "o", "short",
	"output mode: short, short-monotonic, verbose, export, json, json-pretty, json-sse, cat")
var flagUser = flags.StringP("user-unit", "", "", "render a user unit's entries instead of a system unit")
var flagLines = flags.Uint64P("lines", "n", 10, "number of entries to back up from the tail")
var flagFollow = flags.BoolP("follow", "f", false, "block for new entries after draining")
var flagAll = flags.BoolP("all", "a", false, "show all fields and full field values")
var flagColor = flags.StringP("color", "", "auto", "color output: auto, always, never")
var flagColumns = flags.IntP("columns", "", 0, "terminal width; 0 resolves from the terminal")
var flagCatalog = flags.BoolP("catalog", "", false, "show catalog text in verbose mode")
var flagThisBoot = flags.BoolP("this-boot", "", true, "restrict to the current boot")
var flagFields = flags.StringSliceP("output-fields", "", nil, "restrict output to this comma-separated field list")

func errorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "journal-render: error: "+format+"\n", args...)
}

const usageBlurb = "Renders a systemd unit's journal entries to stdout in one of several " +
	"output formats, from a single short line per entry to full JSON " +
	"suitable for piping into another tool. Pass --user-unit NAME to match " +
	"a user unit of the invoking user instead; the UNIT argument is still " +
	"required and is shown as the unit hint in short mode."

func usage() {
	fmt.Println("usage: journal-render [OPTIONS] UNIT")
	fmt.Println()
	wrapAt := uint(*flagColumns)
	if wrapAt == 0 {
		wrapAt = dispatch.DefaultColumns
	}
	fmt.Println(wordwrap.WrapString(usageBlurb, wrapAt))
	fmt.Println()
	flags.PrintDefaults()
}

func resolveColor(setting string) bool {
	switch setting {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}

func main() {
	flags.SortFlags = false
	flags.Usage = usage
	flags.Parse(os.Args[1:])

	if *flagHelp {
		usage()
		os.Exit(0)
	}

	encoderConfig := ecszap.NewDefaultEncoderConfig()
	logLevel := zap.FatalLevel
	if *flagVerbose {
		logLevel = zap.DebugLevel
	}
	core := ecszap.NewCore(encoderConfig, os.Stderr, logLevel)
	logger := zap.New(core, zap.AddCaller()).Named("journal-render").Sugar()
	rlog.SetLogger(logger)

	cfg, err := loadConfig()
	if err != nil {
		errorf("%s", err)
		os.Exit(1)
	}
	if *flagColumns == 0 {
		if n, ok := cfg.GetInt("columns"); ok {
			*flagColumns = n
		}
	}
	if !flags.Changed("output") {
		if name, ok := cfg.GetString("mode"); ok {
			*flagMode = name
		}
	}

	if len(flags.Args()) != 1 {
		errorf("missing UNIT argument")
		usage()
		os.Exit(2)
	}
	unit := flags.Arg(0)

	mode, err := render.ModeFromName(*flagMode)
	if err != nil {
		errorf("%s", err)
		os.Exit(2)
	}

	reader, err := sdreader.Open(journal.LocalOnly | journal.System)
	if err != nil {
		errorf("opening journal: %s", err)
		os.Exit(1)
	}
	defer reader.Close()

	if *flagUser != "" {
		if err := match.AddMatchesForUserUnit(reader, *flagUser, os.Getuid()); err != nil {
			errorf("building user-unit match: %s", err)
			os.Exit(1)
		}
	} else {
		if err := match.AddMatchesForUnit(reader, unit); err != nil {
			errorf("building unit match: %s", err)
			os.Exit(1)
		}
	}

	var boot journal.BootID
	if *flagThisBoot {
		boot, err = bootid.Current()
		if err != nil {
			errorf("resolving boot id: %s", err)
			os.Exit(1)
		}
		if err := match.AddBootFilter(reader, boot); err != nil {
			errorf("building boot filter: %s", err)
			os.Exit(1)
		}
	}

	var renderFlags render.Flags
	if *flagAll {
		renderFlags |= render.ShowAll | render.FullWidth
	}
	if resolveColor(*flagColor) {
		renderFlags |= render.Color
	}
	if *flagCatalog {
		renderFlags |= render.Catalog
	}
	if *flagFollow {
		renderFlags |= render.Follow
	}

	opts := render.Options{
		Mode:         mode,
		Columns:      *flagColumns,
		Flags:        renderFlags,
		OutputFields: *flagFields,
		UnitHint:     unit,
	}

	s := sink.New(os.Stdout)
	disp := dispatch.New(nil)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	pagerOpts := pager.Options{
		Boot:       boot,
		HowMany:    *flagLines,
		Follow:     *flagFollow,
		WarnCutoff: true,
	}
	if err := pager.Run(ctx, s, reader, disp, opts, pagerOpts); err != nil && ctx.Err() == nil {
		errorf("%s", err)
		os.Exit(1)
	}
}
