package convert

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/Gamax42/tautulli-to-senscritique/internal/catalog"
	"github.com/Gamax42/tautulli-to-senscritique/internal/logging"
	"github.com/Gamax42/tautulli-to-senscritique/internal/prompt"
	"github.com/Gamax42/tautulli-to-senscritique/internal/tabular"
	"github.com/Gamax42/tautulli-to-senscritique/internal/transform"
)

// ErrNoInput reports that neither input table was provided.
var ErrNoInput = errors.New("at least one of the movies or TV shows tables must be provided")

// Options configures one conversion run.
type Options struct {
	// MoviesPath and TVShowsPath locate the input tables. At least one must
	// be set.
	MoviesPath  string
	TVShowsPath string

	// OutputPath is the destination for the converted table.
	OutputPath string

	// Confirmer answers the watched confirmations. Nil answers every
	// question with its default.
	Confirmer prompt.Confirmer

	// Logger receives warnings from the row loop. Nil discards them.
	Logger *slog.Logger

	// Out receives user-facing progress lines. Nil discards them.
	Out io.Writer
}

// TableCount reports how many records one input table contributed.
type TableCount struct {
	Universe catalog.Universe
	Path     string
	Records  int
}

// Result summarizes a completed run.
type Result struct {
	Tables     []TableCount
	Written    int
	OutputPath string
}

type source struct {
	path     string
	universe catalog.Universe
	plural   string
	singular string
}

// Run executes the full pipeline: read and validate each provided table in
// fixed order, transform its rows, merge the records, and write the output
// table once. The first fatal error aborts the run; no partial output is
// ever written.
func Run(opts Options) (*Result, error) {
	moviesPath := strings.TrimSpace(opts.MoviesPath)
	tvShowsPath := strings.TrimSpace(opts.TVShowsPath)
	if moviesPath == "" && tvShowsPath == "" {
		return nil, ErrNoInput
	}
	outputPath := strings.TrimSpace(opts.OutputPath)
	if outputPath == "" {
		return nil, errors.New("output path is required")
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With("run_id", uuid.NewString())
	confirmer := opts.Confirmer
	if confirmer == nil {
		confirmer = prompt.AssumeDefault{}
	}

	unlock, err := lockOutput(outputPath)
	if err != nil {
		return nil, err
	}
	defer unlock()

	sources := []source{
		{path: moviesPath, universe: catalog.UniverseMovie, plural: "movies", singular: "movie"},
		{path: tvShowsPath, universe: catalog.UniverseTVShow, plural: "TV shows", singular: "TV show"},
	}

	result := &Result{OutputPath: outputPath}
	var merged []catalog.Record
	for _, src := range sources {
		if src.path == "" {
			continue
		}

		rows, err := tabular.ReadTable(src.path)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "Processing %s from: %s\n", src.plural, src.path)
		logger.Debug("table read", "path", src.path, "universe", src.universe, "rows", len(rows))

		records, err := transform.ConvertTable(logger, confirmer, src.universe, rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.path, err)
		}

		merged = append(merged, records...)
		result.Tables = append(result.Tables, TableCount{
			Universe: src.universe,
			Path:     src.path,
			Records:  len(records),
		})
		fmt.Fprintf(out, "Processed %d %s records\n", len(records), src.singular)
	}

	if len(merged) == 0 {
		fmt.Fprintln(out, "No records to write.")
		return result, nil
	}

	written, err := tabular.Write(outputPath, merged)
	if err != nil {
		return nil, err
	}
	result.Written = written
	fmt.Fprintf(out, "Successfully wrote %d records to %s\n", written, outputPath)
	logger.Debug("output written", "path", outputPath, "records", written)

	return result, nil
}

// lockOutput guards the destination against concurrent runs. The lock file
// sits next to the output so runs targeting different files do not contend.
func lockOutput(outputPath string) (func(), error) {
	lockPath := outputPath + ".lock"
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock output %q: %w", outputPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("another conversion is already writing to %q (lock held at %q)", outputPath, lockPath)
	}
	return func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}, nil
}
