package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	errs "github.com/urbancharge/urbancharge/pkg/errors"
	ucio "github.com/urbancharge/urbancharge/pkg/io"
)

const pathCommunity = `ville(A).
ville(B).
ville(C).
route(A,B).
route(B,C).
`

// execute runs the command tree with isolated settings and cache directories.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"solve", "show", "check", "render", "convert", "interactive", "cache", "completion"} {
		if !slices.Contains(names, want) {
			t.Errorf("root command missing %q (have %v)", want, names)
		}
	}
	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}
}

func TestSolve(t *testing.T) {
	in := writeFile(t, "path.txt", pathCommunity)
	out := filepath.Join(t.TempDir(), "solved.txt")

	if err := execute(t, "solve", in, "--algorithm", "optimized", "-o", out); err != nil {
		t.Fatalf("solve: %v", err)
	}

	uc, err := ucio.Load(out)
	if err != nil {
		t.Fatalf("load solved file: %v", err)
	}
	if got := uc.ChargingSet(); !slices.Equal(got, []string{"B"}) {
		t.Errorf("ChargingSet() = %v, want [B]", got)
	}
}

func TestSolveRandomized(t *testing.T) {
	in := writeFile(t, "path.txt", pathCommunity)
	out := filepath.Join(t.TempDir(), "solved.json")

	err := execute(t, "solve", in, "-a", "less-naive", "-n", "50", "--seed", "7", "-o", out)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}

	uc, err := ucio.ImportJSON(out)
	if err != nil {
		t.Fatalf("import solved file: %v", err)
	}
	if !uc.IsValid() {
		t.Errorf("solved community is invalid: %v", uc.Undominated())
	}
}

func TestSolveErrors(t *testing.T) {
	in := writeFile(t, "path.txt", pathCommunity)

	tests := []struct {
		name     string
		args     []string
		wantCode errs.Code
	}{
		{"UnknownAlgorithm", []string{"solve", in, "-a", "exact"}, errs.ErrCodeInvalidAlgorithm},
		{"ZeroIterations", []string{"solve", in, "-a", "naive", "-n", "0"}, errs.ErrCodeInvalidInput},
		{"MissingFile", []string{"solve", filepath.Join(t.TempDir(), "none.txt")}, errs.ErrCodeFileNotFound},
		{"BadOutputPath", []string{"solve", in, "-o", "dir/"}, errs.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, tt.args...)
			if !errs.Is(err, tt.wantCode) {
				t.Errorf("solve error = %v, want %v", err, tt.wantCode)
			}
		})
	}
}

func TestSolveUsesSettingsFile(t *testing.T) {
	in := writeFile(t, "path.txt", pathCommunity)
	settings := writeFile(t, "settings.toml", `algorithm = "all"`)
	out := filepath.Join(t.TempDir(), "solved.txt")

	if err := execute(t, "--config", settings, "solve", in, "-o", out); err != nil {
		t.Fatalf("solve: %v", err)
	}
	uc, err := ucio.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if uc.Score() != 3 {
		t.Errorf("Score() = %d, want 3 with algorithm = all", uc.Score())
	}

	// A flag on the command line wins over the file.
	if err := execute(t, "--config", settings, "solve", in, "-a", "optimized", "-o", out); err != nil {
		t.Fatalf("solve: %v", err)
	}
	uc, err = ucio.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if uc.Score() != 1 {
		t.Errorf("Score() = %d, want 1 with -a optimized", uc.Score())
	}
}

func TestBadSettingsFile(t *testing.T) {
	in := writeFile(t, "path.txt", pathCommunity)
	settings := writeFile(t, "settings.toml", `iterations = -1`)

	err := execute(t, "--config", settings, "show", in)
	if !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestCheck(t *testing.T) {
	valid := writeFile(t, "valid.txt", pathCommunity+"recharge(B).\n")
	invalid := writeFile(t, "invalid.txt", pathCommunity+"recharge(A).\n")

	if err := execute(t, "check", valid); err != nil {
		t.Errorf("check valid: %v", err)
	}
	err := execute(t, "check", invalid)
	if !errs.Is(err, errs.ErrCodeAccessibilityViolation) {
		t.Errorf("check invalid error = %v, want ACCESSIBILITY_VIOLATION", err)
	}
	if err == nil || !strings.Contains(err.Error(), "C") {
		t.Errorf("check invalid error = %v, want it to name C", err)
	}
}

func TestShow(t *testing.T) {
	in := writeFile(t, "path.txt", pathCommunity)
	for _, args := range [][]string{{"show", in}, {"show", "--plain", in}} {
		if err := execute(t, args...); err != nil {
			t.Errorf("%v: %v", args, err)
		}
	}
}

func TestShowParseError(t *testing.T) {
	in := writeFile(t, "bad.txt", "ville(A).\nroute(A,Z).\n")
	err := execute(t, "show", in)
	if !errs.Is(err, errs.ErrCodeUnknownCity) {
		t.Errorf("show error = %v, want UNKNOWN_CITY", err)
	}
	var pe *ucio.ParseError
	if !errors.As(err, &pe) || pe.Line != 2 {
		t.Errorf("show error = %v, want parse error on line 2", err)
	}
}

func TestConvert(t *testing.T) {
	in := writeFile(t, "path.txt", pathCommunity+"recharge(B).\n")
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "city.json")
	backPath := filepath.Join(dir, "city.txt")

	if err := execute(t, "convert", in, "-o", jsonPath); err != nil {
		t.Fatalf("convert to JSON: %v", err)
	}
	var doc map[string]any
	data, _ := os.ReadFile(jsonPath)
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("converted file is not JSON: %v", err)
	}

	if err := execute(t, "convert", jsonPath, "-o", backPath); err != nil {
		t.Fatalf("convert back: %v", err)
	}
	back, _ := os.ReadFile(backPath)
	if string(back) != pathCommunity+"recharge(B).\n" {
		t.Errorf("round trip =\n%s\nwant\n%s", back, pathCommunity+"recharge(B).\n")
	}
}

func TestConvertRequiresOutput(t *testing.T) {
	in := writeFile(t, "path.txt", pathCommunity)
	if err := execute(t, "convert", in); err == nil {
		t.Error("convert without -o should fail")
	}
}

func TestRenderDOT(t *testing.T) {
	in := writeFile(t, "path.txt", pathCommunity+"recharge(B).\n")
	out := filepath.Join(t.TempDir(), "graph.dot")

	if err := execute(t, "render", in, "-f", "dot", "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "graph community {") {
		t.Errorf("render output = %.40q, want DOT", data)
	}
}

func TestRenderBadFormat(t *testing.T) {
	in := writeFile(t, "path.txt", pathCommunity)
	if err := execute(t, "render", in, "-f", "gif"); !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("render error = %v, want INVALID_FORMAT", err)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"city.txt", "city.svg"},
		{"dir/city", "dir/city.svg"},
		{"a.b/city.json", "a.b/city.svg"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.in, "svg"); got != tt.want {
			t.Errorf("outputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompletion(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"completion", "bash"})
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), appName) {
		t.Error("bash completion should mention the program name")
	}
}

func TestCacheClear(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", cacheHome)

	dir := filepath.Join(cacheHome, appName, "ab")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "entry.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("cache clear should remove entries and their directories")
	}
}
