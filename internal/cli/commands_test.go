package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/wordgrid/pkg/buildinfo"
	apperr "github.com/matzehuels/wordgrid/pkg/errors"
	"github.com/matzehuels/wordgrid/pkg/observability"
	"github.com/matzehuels/wordgrid/pkg/selfcheck"
)

// isolate points the config and cache directories at fresh temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	t.Cleanup(observability.Reset)
	return filepath.Join(cacheHome, appName)
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs, out, errOut bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSolveReferenceBoard(t *testing.T) {
	isolate(t)

	out, err := execute(t, "solve")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !strings.Contains(out, "found : 22 items :") {
		t.Errorf("missing count line:\n%s", out)
	}
	for _, w := range []string{"- knife", "- plonk", "- koji"} {
		if !strings.Contains(out, w+"\n") {
			t.Errorf("missing %q in output:\n%s", w, out)
		}
	}
}

func TestSolveJSON(t *testing.T) {
	isolate(t)

	var first solveOutput
	out, err := execute(t, "solve", "--json")
	if err != nil {
		t.Fatalf("solve --json: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &first); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if first.Count != selfcheck.CommonWordCount || len(first.Words) != first.Count {
		t.Errorf("count = %d, words = %d, want %d", first.Count, len(first.Words), selfcheck.CommonWordCount)
	}
	if first.Words[0] != "a" || first.Words[len(first.Words)-1] != "polk" {
		t.Errorf("words = %v, want search order a..polk", first.Words)
	}
	if first.Cached {
		t.Error("first solve should not be cached")
	}
	if first.Matches != nil {
		t.Error("matches should be omitted without --paths")
	}

	var second solveOutput
	out, err = execute(t, "solve", "--json", "--paths")
	if err != nil {
		t.Fatalf("second solve: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &second); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !second.Cached {
		t.Error("second solve should come from the cache")
	}
	if len(second.Matches) != second.Count {
		t.Errorf("matches = %d, want %d", len(second.Matches), second.Count)
	}
	if second.Stats != first.Stats {
		t.Errorf("cached stats = %+v, want %+v", second.Stats, first.Stats)
	}
}

func TestSolveNoCacheAndRefresh(t *testing.T) {
	for _, flag := range []string{"--no-cache", "--refresh"} {
		t.Run(flag, func(t *testing.T) {
			isolate(t)
			for i := 0; i < 2; i++ {
				out, err := execute(t, "solve", "--json", flag)
				if err != nil {
					t.Fatalf("solve: %v", err)
				}
				var doc solveOutput
				if err := json.Unmarshal([]byte(out), &doc); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if doc.Cached {
					t.Errorf("run %d: cached with %s", i, flag)
				}
			}
		})
	}
}

func TestSolveBoardFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"square letters with all", []string{"--letters", "abcd", "--builtin", "all"}, "found : 64 items :"},
		{"rows", []string{"--rows", "kno,iop"}, "found : 4 items :"},
		{"rows unique", []string{"--rows", "kno,iop", "--unique"}, "found : 2 items :"},
		{"start path", []string{"--start", "0,1,2,3,4", "--builtin", "exact:abcdef"}, "found : 1 items :"},
		{"no words", []string{"--letters", "zzzz", "--builtin", "exact:ab"}, "found : 0 items :"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			out, err := execute(t, append([]string{"solve"}, tt.args...)...)
			if err != nil {
				t.Fatalf("solve: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestSolvePaths(t *testing.T) {
	isolate(t)

	out, err := execute(t, "solve", "--rows", "kno,iop", "--unique", "--paths")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	// "no" is spelled by n(1) then the first o reached from it.
	if !strings.Contains(out, "- no  1-") {
		t.Errorf("missing path for no:\n%s", out)
	}
}

func TestSolveDictionaryFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("# test list\nab\nba\nzz\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "solve", "--rows", "ab", "--dict", path)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !strings.Contains(out, "found : 2 items :") || !strings.Contains(out, "- ab\n") || !strings.Contains(out, "- ba\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSolveConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := "[board]\nrows = [\"kno\", \"iop\"]\n\n[cache]\nbackend = \"memory\"\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", path, "solve")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !strings.Contains(out, "found : 4 items :") {
		t.Errorf("config board not used:\n%s", out)
	}
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code apperr.Code
	}{
		{"repeated start cell", []string{"solve", "--start", "0,1,0"}, apperr.ErrCodeInvalidPath},
		{"start off board", []string{"solve", "--start", "16"}, apperr.ErrCodeInvalidPath},
		{"bad start syntax", []string{"solve", "--start", "0,x"}, apperr.ErrCodeInvalidPath},
		{"negative start cell", []string{"solve", "--start", "0,-3"}, apperr.ErrCodeInvalidPath},
		{"overflowing width", []string{"solve", "--letters", "abcdefghijklmnop", "--width", "4611686018427387908", "--height", "4"}, apperr.ErrCodeInvalidBoard},
		{"unknown builtin", []string{"solve", "--builtin", "nope"}, apperr.ErrCodeInvalidDictionary},
		{"missing dictionary", []string{"solve", "--dict", "/nonexistent/words.txt"}, apperr.ErrCodeFileNotFound},
		{"missing config", []string{"--config", "/nonexistent/config.toml", "solve"}, apperr.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := execute(t, tt.args...)
			if !apperr.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestSolveInvalidBoard(t *testing.T) {
	isolate(t)
	_, err := execute(t, "solve", "--letters", "abc")
	if !apperr.IsValidation(err) {
		t.Errorf("error = %v, want a validation error", err)
	}
}

func TestSolveJSONAndInteractiveExclusive(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "solve", "--json", "--interactive"); err == nil {
		t.Error("expected an error for --json with --interactive")
	}
}

func TestNeighbors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"neighbors", "0"}, "[4 5 1]\n"},
		{[]string{"neighbors", "5"}, "[1 0 4 8 9 10 6 2]\n"},
		{[]string{"neighbors", "14"}, "[10 9 13 15 11]\n"},
		{[]string{"neighbors", "0", "--width", "5", "--height", "3"}, "[5 6 1]\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			isolate(t)
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("neighbors: %v", err)
			}
			if out != tt.want {
				t.Errorf("got %q, want %q", out, tt.want)
			}
		})
	}
}

func TestNeighborsErrors(t *testing.T) {
	tests := []struct {
		args []string
		code apperr.Code
	}{
		{[]string{"neighbors", "16"}, apperr.ErrCodeInvalidCell},
		{[]string{"neighbors", "x"}, apperr.ErrCodeInvalidCell},
		{[]string{"neighbors", "0", "--width", "0"}, apperr.ErrCodeInvalidBoard},
		{[]string{"neighbors", "0", "--width", "4611686018427387908", "--height", "4"}, apperr.ErrCodeInvalidBoard},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			isolate(t)
			_, err := execute(t, tt.args...)
			if !apperr.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestTrace(t *testing.T) {
	isolate(t)
	dot := filepath.Join(t.TempDir(), "knife.dot")

	out, err := execute(t, "trace", "knife", "-o", dot)
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if !strings.Contains(out, "knife") || !strings.Contains(out, dot) {
		t.Errorf("unexpected output:\n%s", out)
	}

	data, err := os.ReadFile(dot)
	if err != nil {
		t.Fatalf("read dot: %v", err)
	}
	if !strings.HasPrefix(string(data), "digraph") {
		t.Errorf("dot output = %q", data)
	}
}

func TestTraceErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code apperr.Code
	}{
		{"not on board", []string{"trace", "zebra"}, apperr.ErrCodeNotFound},
		{"non adjacent", []string{"trace", "ap"}, apperr.ErrCodeNotFound},
		{"bad format", []string{"trace", "knife", "-o", "knife.png"}, apperr.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := execute(t, tt.args...)
			if !apperr.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestSelfcheck(t *testing.T) {
	isolate(t)
	out, err := execute(t, "selfcheck")
	if err != nil {
		t.Fatalf("selfcheck: %v\n%s", err, out)
	}
	if !strings.Contains(out, "checks passed") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCacheCommands(t *testing.T) {
	dir := isolate(t)

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if strings.TrimSpace(out) != dir {
		t.Errorf("cache path = %q, want %q", strings.TrimSpace(out), dir)
	}

	out, err = execute(t, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear on empty cache: %v", err)
	}
	if !strings.Contains(out, "Cache is empty") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := execute(t, "solve"); err != nil {
		t.Fatalf("solve: %v", err)
	}
	out, err = execute(t, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(out, "Cleared 1 cached entries") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			isolate(t)
			out, err := execute(t, "completion", shell)
			if err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out, appName) {
				t.Errorf("%s completion does not mention %s", shell, appName)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(out, buildinfo.Version) {
		t.Errorf("version output = %q", out)
	}
}

func TestVerboseLogsSolveEvents(t *testing.T) {
	isolate(t)

	var logs, out bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"-v", "solve", "--no-cache"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("solve -v: %v", err)
	}
	if !strings.Contains(logs.String(), "solve started") {
		t.Errorf("debug logs missing solve events:\n%s", logs.String())
	}
}
