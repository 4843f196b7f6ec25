package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ErikKalkoken/go-set"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ErikKalkoken/exprcalc/internal/appdirs"
	"github.com/ErikKalkoken/exprcalc/internal/batch"
	"github.com/ErikKalkoken/exprcalc/internal/config"
	"github.com/ErikKalkoken/exprcalc/internal/humanize"
	"github.com/ErikKalkoken/exprcalc/internal/xmaps"
	"github.com/ErikKalkoken/exprcalc/internal/xslices"
	"github.com/ErikKalkoken/exprcalc/internal/xstrings"
	"github.com/ErikKalkoken/exprcalc/pkg/expression"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

// options are the parsed command line flags.
type options struct {
	base        int
	compact     bool
	configPath  string
	file        string
	level       logLevelFlag
	logFile     bool
	postfix     bool
	precision   int
	showDirs    bool
	showPostfix bool
	thousands   bool
	tokens      bool
	workers     int

	args     []string
	explicit set.Set[string] // names of flags given on the command line
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func parseFlags(args []string, output io.Writer) (options, error) {
	o := options{level: logLevelFlag{value: slog.LevelWarn}}
	fs := flag.NewFlagSet("exprcalc", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&o.base, "base", 0, "Also show integral results in this base (2-16)")
	fs.BoolVar(&o.compact, "compact", false, "Show results in compact form, e.g. 1.23 K")
	fs.StringVar(&o.configPath, "config", "", "Path of the config file (default: in user config folder)")
	fs.StringVar(&o.file, "f", "", "Read expressions from a file, one per line. Use - for standard input")
	fs.Var(&o.level, "loglevel", "Set log level")
	fs.BoolVar(&o.logFile, "logfile", false, "Write logs to a file instead of the console")
	fs.BoolVar(&o.postfix, "postfix", false, "Expressions are in postfix notation")
	fs.IntVar(&o.precision, "precision", 0, "Maximum number of decimals (default 6, for compact results 2)")
	fs.BoolVar(&o.showDirs, "show-dirs", false, "Show directories where config and logs are stored")
	fs.BoolVar(&o.showPostfix, "show-postfix", false, "Show the postfix notation of infix expressions")
	fs.BoolVar(&o.thousands, "thousands", false, "Group digits with thousands separators")
	fs.BoolVar(&o.tokens, "tokens", false, "Only show the tokens of each expression")
	fs.IntVar(&o.workers, "workers", 0, "Maximum number of concurrent evaluations (default: number of CPUs)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	var names []string
	fs.Visit(func(f *flag.Flag) {
		names = append(names, f.Name)
	})
	o.explicit = set.Of(names...)
	o.args = fs.Args()
	return o, nil
}

// applyTo returns c updated with all settings given as flags.
func (o options) applyTo(c config.Config) config.Config {
	if o.explicit.Contains("base") {
		c.Base = o.base
	}
	if o.explicit.Contains("compact") {
		c.Compact = o.compact
	}
	if o.explicit.Contains("precision") {
		c.Precision = o.precision
	}
	if o.explicit.Contains("show-postfix") {
		c.ShowPostfix = o.showPostfix
	}
	if o.explicit.Contains("thousands") {
		c.ThousandsSeparator = o.thousands
	}
	if o.explicit.Contains("workers") {
		c.Workers = o.workers
	}
	return c
}

// inputs returns the expressions to evaluate.
func (o options) inputs(stdin io.Reader) ([]string, error) {
	switch {
	case o.file == "-":
		return batch.ReadLines(stdin)
	case o.file != "":
		f, err := os.Open(o.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return batch.ReadLines(f)
	case len(o.args) > 0:
		return o.args, nil
	}
	return batch.ReadLines(stdin)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}
	slog.SetLogLoggerLevel(o.level.value)
	ad := appdirs.New()
	if o.showDirs {
		fmt.Fprintf(stdout, "Config: %s\n", ad.ConfigFile())
		fmt.Fprintf(stdout, "Logs: %s\n", ad.Log)
		return exitOK
	}
	if o.logFile {
		fn, err := ad.InitLogFile()
		if err != nil {
			fmt.Fprintf(stderr, "log file: %s\n", err)
			return exitFailed
		}
		log.SetOutput(&lumberjack.Logger{
			Filename:   fn,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		})
	}
	// a config file given on the command line must exist
	load, p := config.LoadFile, o.configPath
	if p == "" {
		load, p = config.Load, ad.ConfigFile()
	}
	cfg, err := load(p)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailed
	}
	cfg = o.applyTo(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	slog.Debug("Configuration", "path", p, "config", cfg)
	inputs, err := o.inputs(stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailed
	}
	if o.tokens {
		for _, input := range inputs {
			tokens := xslices.Map(expression.Tokenize(input), strconv.Quote)
			fmt.Fprintf(stdout, "%s: %s\n", input, xstrings.JoinsOrEmpty(tokens, " ", "<none>"))
		}
		return exitOK
	}
	results, err := batch.Run(ctx, inputs, batch.Options{Postfix: o.postfix, Workers: cfg.Workers})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailed
	}
	printResults(stdout, stderr, results, cfg)
	failures := batch.Failures(results)
	if len(failures) == 0 {
		return exitOK
	}
	if len(results) > 1 {
		for k, v := range xmaps.OrderedMap[string, int](failures).All() {
			fmt.Fprintf(stderr, "%s: %d\n", xstrings.Title(k), v)
		}
	}
	return exitFailed
}

func printResults(stdout, stderr io.Writer, results []batch.Result, cfg config.Config) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(stderr, "%s: %s\n", r.Input, r.Err)
			continue
		}
		var b strings.Builder
		b.WriteString(r.Input)
		if cfg.ShowPostfix && r.Postfix != "" {
			fmt.Fprintf(&b, " => %s", r.Postfix)
		}
		fmt.Fprintf(&b, " = %s", humanize.Result(r.Value, cfg.FormatOptions()))
		if cfg.Base != 0 {
			if s, ok := humanize.InBase(r.Value, cfg.Base); ok {
				fmt.Fprintf(&b, " (base %d: %s)", cfg.Base, s)
			}
		}
		fmt.Fprintln(stdout, b.String())
	}
}
