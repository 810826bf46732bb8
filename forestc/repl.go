package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/eaburns/forest/compile"
	"github.com/eaburns/forest/config"
	"github.com/eaburns/forest/interp"
	"github.com/eaburns/forest/rewrite"
	"github.com/eaburns/pretty"
	"github.com/peterh/liner"
)

const historyFile = ".forestc_history"

// repl reads lines and evaluates each after rewriting.
// All lines share one scope, so assignments persist.
//
// Lines beginning with : are commands:
// :q quits, and :s prints the global symbols.
func repl(cfg config.Config, pipeline []rewrite.Pass) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}

	sc := cfg.Scope()
	for {
		line, err := ln.Prompt("forest> ")
		if errors.Is(err, io.EOF) {
			fmt.Println("")
			break
		}
		if err != nil {
			// ^C abandons the line.
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if line == ":q" {
			break
		}
		if line == ":s" {
			printGlobals(sc)
			continue
		}
		if err := evalLine(cfg, pipeline, sc, line); err != nil {
			errorf("", err)
		}
	}

	if histPath == "" {
		return
	}
	if f, err := os.Create(histPath); err == nil {
		ln.WriteHistory(f)
		f.Close()
	}
}

func evalLine(cfg config.Config, pipeline []rewrite.Pass, sc *interp.Scope, line string) error {
	u := compile.New("", line)
	defer u.Close()
	if err := u.Parse(); err != nil {
		return err
	}
	u.Rewrite(pipeline, vprintf)
	if cfg.Dump {
		pretty.Print(u.Dump())
		fmt.Println("")
	}
	if cfg.Gen && *verbose {
		text, err := u.Generate()
		if err != nil {
			return err
		}
		fmt.Println(text)
	}
	v, err := u.Eval(sc)
	if err != nil {
		return err
	}
	fmt.Println(interp.Format(v))
	return nil
}

func printGlobals(sc *interp.Scope) {
	global, ok := sc.Lookup(interp.GlobalName)
	if !ok {
		return
	}
	for _, sym := range global.Members.Symbols() {
		fmt.Printf("%s = %s\n", sym.Name, interp.Format(sym.Value))
	}
	for _, sym := range sc.Symbols() {
		if sym.Name != interp.GlobalName {
			fmt.Printf("%s = %s\n", sym.Name, interp.Format(sym.Value))
		}
	}
}
