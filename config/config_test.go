package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eaburns/forest/rewrite"
	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	c := Default()
	if diff := cmp.Diff(rewrite.DefaultNames, c.Passes); diff != "" {
		t.Errorf("passes differ: %s", diff)
	}
	if !c.Eval || !c.Gen || c.Dump {
		t.Errorf("Default()=%+v", c)
	}
	c.Passes[0] = "changed"
	if rewrite.DefaultNames[0] == "changed" {
		t.Errorf("Default shares DefaultNames")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Config
	}{
		{
			name: "empty",
			yaml: "",
			want: Default(),
		},
		{
			name: "all",
			yaml: `
passes:
  - remove-nested-minus
  - replace-minus-by-subtract
symbols:
  a: 6
  b: true
  c: hello
  d: 1.5
dump: true
eval: false
gen: false
`,
			want: Config{
				Passes: []string{"remove-nested-minus", "replace-minus-by-subtract"},
				Symbols: map[string]interface{}{
					"a": 6,
					"b": true,
					"c": "hello",
					"d": 1.5,
				},
				Dump: true,
			},
		},
		{
			name: "no passes",
			yaml: "passes: []",
			want: Config{Passes: []string{}, Eval: true, Gen: true},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse([]byte(test.yaml))
			if err != nil {
				t.Fatalf("Parse=%v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("config differs: %s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		yaml string
		want string
	}{
		{"passes: [nope]", `unknown pass "nope"`},
		{"unknown: 1", "unknown"},
		{"symbols: {a: [1, 2]}", "symbol a"},
		{"dump: [", ""},
	}
	for _, test := range tests {
		_, err := Parse([]byte(test.yaml))
		if err == nil {
			t.Errorf("Parse(%q) succeeded", test.yaml)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("Parse(%q)=%v, want containing %q", test.yaml, err, test.want)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forest.yaml")
	if err := os.WriteFile(path, []byte("symbols: {a: 6}\ndump: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load=%v", err)
	}
	if !c.Dump || c.Symbols["a"] != 6 {
		t.Errorf("Load=%+v", c)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load of a missing file succeeded")
	}
}

func TestScope(t *testing.T) {
	c := Config{Symbols: map[string]interface{}{"b": true, "a": 6, "s": "x"}}
	sc := c.Scope()
	a, err := sc.Find("a")
	if err != nil {
		t.Fatalf("Find(a)=%v", err)
	}
	if a.Value != 6.0 {
		t.Errorf("a=%v (%T), want float64 6", a.Value, a.Value)
	}
	var names []string
	for _, sym := range sc.Symbols() {
		names = append(names, sym.Name)
	}
	if diff := cmp.Diff([]string{"a", "b", "s"}, names); diff != "" {
		t.Errorf("symbols differ: %s", diff)
	}
}

func TestPipeline(t *testing.T) {
	ps, err := Default().Pipeline()
	if err != nil {
		t.Fatalf("Pipeline=%v", err)
	}
	if len(ps) != len(rewrite.DefaultNames) {
		t.Errorf("len(Pipeline)=%d, want %d", len(ps), len(rewrite.DefaultNames))
	}
}
