// Command fibheap runs an operation script against a Fibonacci heap of
// string values and prints the results.
//
//	fibheap --script ops.txt
//	echo "insert a 3
//	insert b 1
//	print" | fibheap --color
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trim21/errgo"

	"github.com/katalvlaran/fibheap/fibheap"
	"github.com/katalvlaran/fibheap/internal/config"
	"github.com/katalvlaran/fibheap/internal/script"
)

func main() {
	setupFlagsAndEnvParser()

	cfg := mustParseConfig()

	setupLogger(cfg)

	color.NoColor = !cfg.Display.Color

	cmds, err := readScript(viper.GetString("script"))
	if err != nil {
		errExit("failed to read script:", err)
	}

	h := fibheap.New[string]()
	for _, it := range cfg.Heap.Seed {
		h.Insert(it.Value, it.Priority)
	}
	log.Debug().Int("seed", len(cfg.Heap.Seed)).Int("commands", len(cmds)).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := script.NewRunner(h, os.Stdout, log.Logger)
	r.Label = colorLabel

	st, err := r.Run(ctx, cmds)
	if err != nil {
		errExit("script failed:", err)
	}

	_, _ = fmt.Fprintf(os.Stderr, "%s commands, %s inserted, %s extracted, %s changed, %s missed, %s left\n",
		humanize.Comma(int64(st.Commands)),
		humanize.Comma(int64(st.Inserted)),
		humanize.Comma(int64(st.Extracted)),
		humanize.Comma(int64(st.Changed)),
		humanize.Comma(int64(st.Missed)),
		humanize.Comma(int64(h.Len())),
	)
}

func setupFlagsAndEnvParser() {
	pflag.String("config", "fibheap.toml", "path to config file, ignored when missing")
	pflag.String("script", "-", "operation script to run, '-' reads stdin")

	pflag.Bool("log-json", false, "log as json format")
	pflag.String("log-level", "", "log level, overrides [log] level (trace/debug/info/warn/error)")
	pflag.Bool("color", false, "colorize heap dumps, overrides [display] color")

	// this avoids 'pflag: help requested' error when calling for help message.
	if slices.Contains(os.Args[1:], "--help") || slices.Contains(os.Args[1:], "-h") {
		pflag.Usage()
		_, _ = fmt.Fprintln(os.Stderr, "\nNote: every flag can also be set as FIBHEAP_<FLAG>, e.g. FIBHEAP_LOG_LEVEL=debug.")
		os.Exit(0)
		return
	}

	pflag.Parse()

	viper.SetEnvPrefix("FIBHEAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	lo.Must0(viper.BindPFlags(pflag.CommandLine), "failed to parse combine argument with env")
}

func errExit(msg ...any) {
	_, _ = fmt.Fprintln(os.Stderr, msg...)
	os.Exit(1)
}

func parseLogLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}

	errExit(fmt.Sprintf("unknown log level %q, only %s is allowed", s, strings.Join(config.LogLevels, "/")))

	return zerolog.NoLevel
}

// setupLogger writes logs to stderr; stdout carries script output.
func setupLogger(cfg config.Config) {
	var w io.Writer = os.Stderr
	if !cfg.Log.JSON {
		w = zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !cfg.Display.Color}
	}

	log.Logger = log.Output(w).Level(parseLogLevel(cfg.Log.Level))
}

// mustParseConfig loads the config file, then lets flags and env override it.
func mustParseConfig() config.Config {
	cfg, err := config.LoadFromFile(viper.GetString("config"))
	if err != nil {
		errExit("failed to load config", err)
	}

	if lvl := viper.GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if viper.IsSet("log-json") {
		cfg.Log.JSON = viper.GetBool("log-json")
	}
	if viper.IsSet("color") {
		cfg.Display.Color = viper.GetBool("color")
	}

	return cfg
}

func readScript(path string) ([]script.Command, error) {
	if path == "" || path == "-" {
		return script.Parse(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errgo.Wrap(err, "failed to open script")
	}
	defer f.Close()

	return script.Parse(f)
}

var (
	valueColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	prioColor  = color.New(color.FgYellow).SprintFunc()
	markColor  = color.New(color.FgRed).SprintFunc()
)

// colorLabel is fibheap.DefaultLabel with colors; fatih/color drops the
// escapes itself when color.NoColor is set.
func colorLabel(n *fibheap.Node[string]) string {
	label := fmt.Sprintf("%s [p=%s d=%d]", valueColor(n.Value()), prioColor(n.Priority()), n.Degree())
	if n.Marked() {
		label += markColor("*")
	}

	return label
}
