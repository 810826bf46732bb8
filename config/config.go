// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package config loads the configuration of a forestc run from YAML.
//
// An example configuration:
//
//	passes:
//	  - remove-parenthesized
//	  - remove-nested-minus
//	  - replace-minus-by-subtract
//	symbols:
//	  a: 6
//	dump: true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/eaburns/forest/interp"
	"github.com/eaburns/forest/rewrite"
	"gopkg.in/yaml.v3"
)

// A Config is the configuration of a run.
type Config struct {
	// Passes are the names of the rewrite passes, in order.
	Passes []string `yaml:"passes"`
	// Symbols are pre-bound in the global scope of evaluation.
	// Values are numbers, booleans, strings, or null.
	Symbols map[string]interface{} `yaml:"symbols"`
	// Dump is whether to print the AST after parsing and rewriting.
	Dump bool `yaml:"dump"`
	// Eval is whether to evaluate the program before and after rewriting.
	Eval bool `yaml:"eval"`
	// Gen is whether to print the generated source before and after rewriting.
	Gen bool `yaml:"gen"`
}

// Default returns the default configuration:
// the default pipeline, evaluating and generating, without a dump.
func Default() Config {
	return Config{
		Passes: append([]string(nil), rewrite.DefaultNames...),
		Eval:   true,
		Gen:    true,
	}
}

// Load returns the configuration in the YAML file at path.
// Fields missing from the file keep their Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse returns the configuration in YAML data.
// Unknown fields are an error.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if _, err := rewrite.Passes(c.Passes...); err != nil {
		return Config{}, err
	}
	for name, v := range c.Symbols {
		switch v.(type) {
		case nil, bool, int, float64, string:
		default:
			return Config{}, fmt.Errorf("symbol %s: unsupported value %v", name, v)
		}
	}
	return c, nil
}

// Pipeline returns the configured rewrite passes.
func (c Config) Pipeline() ([]rewrite.Pass, error) { return rewrite.Passes(c.Passes...) }

// Scope returns a new scope with the configured symbols declared,
// in order of their names.
func (c Config) Scope() *interp.Scope {
	var names []string
	for name := range c.Symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	sc := interp.NewScope(nil)
	for _, name := range names {
		v := c.Symbols[name]
		if i, ok := v.(int); ok {
			v = float64(i)
		}
		sc.Declare(name, nil, v)
	}
	return sc
}
