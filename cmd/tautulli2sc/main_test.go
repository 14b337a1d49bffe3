package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gamax42/tautulli-to-senscritique/internal/convert"
	"github.com/Gamax42/tautulli-to-senscritique/internal/testsupport"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	testsupport.Chdir(t, t.TempDir())
}

func TestRootRequiresAnInputTable(t *testing.T) {
	isolateEnv(t)

	cmd := newRootCommand()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected usage error without input tables")
	}
	if !strings.Contains(err.Error(), "--movies") || !strings.Contains(err.Error(), "--tv-shows") {
		t.Fatalf("expected flag names in error, got %v", err)
	}
}

func TestRootConvertsWithInteractiveAnswers(t *testing.T) {
	isolateEnv(t)

	dir := t.TempDir()
	movies := testsupport.WriteSourceCSV(t, dir, "movies.csv", [][]string{
		{"Inception", "9", "3", "2010"},
		{"Unwatched Film", "", "0", "2020"},
	})
	outputPath := filepath.Join(dir, "out.csv")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--movies", movies, "--output", outputPath})
	cmd.SetIn(strings.NewReader("n\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "universe,title,release_date,rating,is_wishlisted,is_recommended,is_done\n" +
		"movie,Inception,2010,9,false,true,false\n" +
		"movie,Unwatched Film,2020,5,true,false,false\n"
	if string(data) != want {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", string(data), want)
	}

	if !strings.Contains(out.String(), "Has 'Inception' (movie) been watched?") {
		t.Fatalf("expected watched prompt in output, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Processed 2 movie records") {
		t.Fatalf("expected progress line, got %q", out.String())
	}
	// The run summary table lists the source and the total.
	if !strings.Contains(out.String(), "Movies") || !strings.Contains(out.String(), "Total") {
		t.Fatalf("expected summary table, got %q", out.String())
	}
}

func TestRootAssumeDefaultConfigSkipsPrompting(t *testing.T) {
	isolateEnv(t)

	dir := t.TempDir()
	movies := testsupport.WriteSourceCSV(t, dir, "movies.csv", [][]string{
		{"Inception", "9", "3", "2010"},
	})
	outputPath := filepath.Join(dir, "out.csv")
	configPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(configPath, []byte("[prompt]\nassume_default = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--movies", movies, "--output", outputPath, "--config", configPath})
	// No stdin answers: the confirmation must not block.
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "movie,Inception,2010,9,false,true,true") {
		t.Fatalf("expected default-yes watched flag, got %q", string(data))
	}
	if strings.Contains(out.String(), "been watched?") {
		t.Fatalf("expected no interactive prompt, got %q", out.String())
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	isolateEnv(t)

	target := filepath.Join(t.TempDir(), "config.toml")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs([]string{"config", "init", "--path", target})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected sample config at %s: %v", target, err)
	}

	// A second init without --overwrite refuses to clobber the file.
	cmd = newRootCommand()
	cmd.SetArgs([]string{"config", "init", "--path", target})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error when config already exists")
	}
}

func TestSourceLabelDerivesDisplayNames(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/exports/movies.csv", "Movies"},
		{"tv_shows.csv", "Tv Shows"},
		{"my-movie-list.csv", "My Movie List"},
	}
	for _, tc := range cases {
		if got := sourceLabel(tc.path); got != tc.want {
			t.Fatalf("sourceLabel(%q): got %q want %q", tc.path, got, tc.want)
		}
	}
}

func TestRenderSummaryAlignsCounts(t *testing.T) {
	result := &convert.Result{
		Tables: []convert.TableCount{
			{Universe: "movie", Path: "movies.csv", Records: 2},
			{Universe: "tvshow", Path: "shows.csv", Records: 1},
		},
		Written: 3,
	}

	rendered := renderSummary(result)
	for _, want := range []string{"Source", "Universe", "Records", "Movies", "Shows", "Total", "3"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected %q in summary:\n%s", want, rendered)
		}
	}
}
