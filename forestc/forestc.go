// Forestc parses Forest source, rewrites it, and prints
// the generated source and the value of the program
// before and after rewriting.
//
// Usage:
//
//	forestc [flags] <file or directory>
//	forestc [flags] -e <expression>
//	forestc [flags] -i
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/eaburns/forest/compile"
	"github.com/eaburns/forest/config"
	"github.com/eaburns/forest/interp"
	"github.com/eaburns/forest/mod"
	"github.com/eaburns/forest/rewrite"
	"github.com/eaburns/peggy/peg"
	"github.com/eaburns/pretty"
	"github.com/mattn/go-isatty"
)

var (
	expr        = flag.String("e", "", "compile the expression instead of files")
	configPath  = flag.String("config", "", "YAML configuration file")
	passes      = flag.String("passes", "", "comma-separated rewrite passes (default from the configuration)")
	dump        = flag.Bool("dump", false, "print the AST before and after rewriting")
	eval        = flag.Bool("eval", true, "evaluate the program before and after rewriting")
	gen         = flag.Bool("gen", true, "print the generated source before and after rewriting")
	interactive = flag.Bool("i", false, "read and evaluate lines interactively")
	verbose     = flag.Bool("v", false, "enable verbose output")
)

func main() {
	pretty.Indent = "    "
	flag.Usage = usage
	flag.Parse()

	cfg := loadConfig()
	pipeline, err := cfg.Pipeline()
	if err != nil {
		die("bad passes", err)
	}
	switch {
	case *interactive:
		repl(cfg, pipeline)
	case *expr != "":
		run(cfg, pipeline, "-e", *expr)
	case len(flag.Args()) == 1:
		m, err := mod.Load(flag.Args()[0])
		if err != nil {
			die("failed to load source", err)
		}
		srcs, err := m.Read()
		if err != nil {
			die("failed to read source", err)
		}
		for _, src := range srcs {
			run(cfg, pipeline, src.Path, src.Text)
		}
	default:
		usage()
		os.Exit(1)
	}
}

// loadConfig returns the configuration file, if any,
// overridden by the flags set on the command line.
func loadConfig() config.Config {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			die("failed to load configuration", err)
		}
		vprintf("loaded %s\n", *configPath)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "passes":
			cfg.Passes = nil
			for _, name := range strings.Split(*passes, ",") {
				if name = strings.TrimSpace(name); name != "" {
					cfg.Passes = append(cfg.Passes, name)
				}
			}
		case "dump":
			cfg.Dump = *dump
		case "eval":
			cfg.Eval = *eval
		case "gen":
			cfg.Gen = *gen
		}
	})
	return cfg
}

// run compiles one source text.
// Evaluation before and after rewriting starts from
// the configured symbols each time.
func run(cfg config.Config, pipeline []rewrite.Pass, path, text string) {
	u := compile.New(path, text)
	defer u.Close()
	vprintf("parsing %s\n", path)
	if err := u.Parse(); err != nil {
		die("", err)
	}
	report(cfg, u, "before", cfg.Scope())
	vprintf("rewriting %s\n", path)
	u.Rewrite(pipeline, vprintf)
	report(cfg, u, "after", cfg.Scope())
}

func report(cfg config.Config, u *compile.Unit, stage string, sc *interp.Scope) {
	if cfg.Dump {
		fmt.Printf("%s: %s AST:\n", u.Path(), stage)
		pretty.Print(u.Dump())
		fmt.Println("")
	}
	if cfg.Gen {
		text, err := u.Generate()
		if err != nil {
			die("failed to generate", err)
		}
		fmt.Printf("%s: %s: %s\n", u.Path(), stage, text)
	}
	if cfg.Eval {
		v, err := u.Eval(sc)
		if err != nil {
			die("failed to evaluate", err)
		}
		fmt.Printf("%s: %s = %s\n", u.Path(), stage, interp.Format(v))
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: %s [flags] <file or directory>\n", os.Args[0])
	fmt.Fprintf(out, "       %s [flags] -e <expression>\n", os.Args[0])
	fmt.Fprintf(out, "       %s [flags] -i\n", os.Args[0])
	fmt.Fprintf(out, "passes: %s\n", strings.Join(rewrite.Names(), ", "))
	flag.PrintDefaults()
}

func vprintf(f string, vs ...interface{}) {
	if *verbose {
		fmt.Fprintf(os.Stderr, f, vs...)
	}
}

// errorf prints an error message to stderr,
// in red if stderr is a terminal.
// In verbose mode, a syntax error also prints its tree of failures.
func errorf(msg string, err error) {
	if pe, ok := err.(interface{ Tree() *peg.Fail }); ok && *verbose {
		peg.PrettyWrite(os.Stderr, pe.Tree())
		fmt.Fprintln(os.Stderr, "")
	}
	s := err.Error()
	if msg != "" {
		s = msg + ": " + s
	}
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		s = "\x1b[31m" + s + "\x1b[0m"
	}
	fmt.Fprintln(os.Stderr, s)
}

func die(msg string, err error) {
	errorf(msg, err)
	os.Exit(1)
}
