// Command maswproc extracts dispersion curves from CSV shot gathers and
// summarises stored curve sets.
//
// Usage:
//
//	maswproc process -s settings.yaml -x -5 --id line1 -o picks.json -g shot1.csv -g shot2.csv
//	maswproc stats -i picks.json -i picks2.parquet --fmin 5 --fmax 50 -n 20 --median --mode 0
//	maswproc defaults > settings.yaml
//
// Curve sets are written as JSON, or as Parquet when the output name ends
// in ".parquet".
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/integrii/flaggy"

	"github.com/cwbudde/algo-masw/config"
	"github.com/cwbudde/algo-masw/internal/logging"
)

const (
	appName = "maswproc"
	appDesc = "Multichannel analysis of surface waves: dispersion picking and curve statistics"
)

var version = "unknown"

func main() {
	log.SetFlags(0)

	var (
		proc    processOptions
		stat    statsOptions
		level   = "info"
		console bool
		cmds    = newCommands(&proc, &stat)
	)

	parser := flaggy.NewParser(appName)
	parser.Description = appDesc
	parser.Version = version
	parser.String(&level, "l", "log-level", "log level (debug, info, warn, error)")
	parser.Bool(&console, "c", "console", "human-readable log output")
	parser.AttachSubcommand(cmds.process, 1)
	parser.AttachSubcommand(cmds.stats, 1)
	parser.AttachSubcommand(cmds.defaults, 1)
	chk(parser.Parse(), "failed to parse arguments")

	lvl, err := logging.ParseLevel(level)
	chk(err, "--log-level")
	logger := logging.New(logging.WithLevel(lvl), logging.WithConsole(console))
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	switch {
	case cmds.process.Used:
		chk(runProcess(ctx, proc, logger), "process")
	case cmds.stats.Used:
		chk(runStats(os.Stdout, stat), "stats")
	case cmds.defaults.Used:
		data, err := config.Default().Marshal()
		chk(err, "defaults")
		fmt.Print(string(data))
	default:
		parser.ShowHelpAndExit("a subcommand is required")
	}
}

type commands struct {
	process  *flaggy.Subcommand
	stats    *flaggy.Subcommand
	defaults *flaggy.Subcommand
}

func newCommands(proc *processOptions, stat *statsOptions) commands {
	process := flaggy.NewSubcommand("process")
	process.ShortName = "p"
	process.Description = "pick dispersion curves from shot gathers"
	process.String(&proc.settings, "s", "settings", "YAML settings file (defaults when empty)")
	process.StringSlice(&proc.gathers, "g", "gather", "CSV shot gather; repeat for repeated shots")
	process.Float64(&proc.source, "x", "source", "source position along the line in metres")
	process.String(&proc.id, "", "id", "configuration id stored with the picks")
	process.String(&proc.out, "o", "out", "output curve file (.json or .parquet)")
	process.Bool(&proc.append, "a", "append", "append to an existing output file")

	stats := flaggy.NewSubcommand("stats")
	stats.ShortName = "s"
	stats.Description = "mean or median curve of stored picks"
	stats.StringSlice(&stat.inputs, "i", "in", "curve file (.json or .parquet); repeatable")
	stats.Float64(&stat.fmin, "", "fmin", "lowest frequency of the statistics grid")
	stats.Float64(&stat.fmax, "", "fmax", "highest frequency of the statistics grid")
	stats.Int(&stat.n, "n", "points", "number of grid frequencies")
	stats.Bool(&stat.logSpacing, "", "log", "logarithmic grid spacing")
	stats.Bool(&stat.median, "m", "median", "median and IQR instead of mean and std")
	stats.Float64(&stat.minPower, "", "min-power", "drop picks below this power")
	stats.Int(&stat.mode, "", "mode", "ridge mode to combine (0 is the fundamental)")

	defaults := flaggy.NewSubcommand("defaults")
	defaults.Description = "print the default settings as YAML"

	return commands{process: process, stats: stats, defaults: defaults}
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
