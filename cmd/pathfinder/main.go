// Command pathfinder finds the shortest path between actor pairs
// through mutual movies, weighted or unweighted.
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/dmelton/costar/pkg/algorithms"
	"github.com/dmelton/costar/pkg/config"
	"github.com/dmelton/costar/pkg/dataset"
	"github.com/dmelton/costar/pkg/graph"
	"github.com/dmelton/costar/pkg/logging"
	"github.com/dmelton/costar/pkg/metrics"
)

const usage = `Usage: pathfinder movie_tsv u/w pairs_tsv output_paths
	movie_tsv -	Tab delimited file of movie actor relationships. Header row
			expected. Rows are actor name, movie title, movie year.
	u/w -		Unweighted or weighted graph usage. Weighted prefers newer
			movies with lower edge weights when finding the shortest path.
	pairs_tsv -	Tab delimited file of actors to find paths between. Header
			row expected. Rows are starting actor, ending actor.
	output_paths -	Output file for the shortest paths.`

const pathHeader = "(actor)--[movie#@year]-->(actor)--..."

func main() {
	args := os.Args[1:]
	if len(args) != 4 {
		color.Red("pathfinder called with incorrect arguments.")
		fmt.Println(usage)
		os.Exit(1)
	}
	if args[1] != "u" && args[1] != "w" {
		color.Red("wrong parameter, must be u or w")
		fmt.Println(usage)
		os.Exit(1)
	}
	if err := run(args); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel)).With(
		logging.Component("pathfinder"),
		logging.RunID(uuid.NewString()),
	)
	m := metrics.NewRegistry()

	weighting := graph.Unweighted
	if args[1] == "w" {
		weighting = graph.Weighted
	}

	buildStart := time.Now()
	records, err := readRecords(args[0])
	if err != nil {
		return err
	}
	logger.Info("dataset read", logging.Dataset(args[0]), logging.Count(len(records)))

	reg, mg := graph.BuildMultigraph(records, weighting)
	m.RecordBuild(reg.Len(), time.Since(buildStart))
	m.GraphMovies.Set(float64(mg.MovieCount()))
	logger.Info("graph built",
		logging.Int("actors", reg.Len()),
		logging.Int("movies", mg.MovieCount()),
		logging.Bool("weighted", weighting == graph.Weighted),
	)

	pairs, err := readPairs(args[2])
	if err != nil {
		return err
	}

	out, err := os.Create(args[3])
	if err != nil {
		return fmt.Errorf("create output %s: %w", args[3], err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	fmt.Fprintln(w, pathHeader)

	for _, pair := range pairs {
		queryStart := time.Now()
		res, err := algorithms.ShortestPath(mg, pair[0], pair[1])
		if err != nil {
			m.RecordQuery("shortest_path", "error", time.Since(queryStart))
			return fmt.Errorf("find path %q -> %q: %w", pair[0], pair[1], err)
		}
		m.RecordQuery("shortest_path", "ok", time.Since(queryStart))
		logger.Debug("path computed",
			logging.Actor(pair[0]),
			logging.String("end", pair[1]),
			logging.Bool("found", res.Found),
			logging.Int("distance", res.Distance),
			logging.Latency(time.Since(queryStart)),
		)
		fmt.Fprintln(w, res.ChainString())
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output %s: %w", args[3], err)
	}

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("metrics textfile not written", logging.Error(err))
		}
	}
	logger.Info("run complete", logging.Count(len(pairs)), logging.Latency(time.Since(buildStart)))
	return nil
}

func readRecords(path string) ([]dataset.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()
	records, err := dataset.ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return records, nil
}

func readPairs(path string) ([][2]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pairs %s: %w", path, err)
	}
	defer f.Close()
	pairs, err := dataset.ReadPairs(f)
	if err != nil {
		return nil, fmt.Errorf("read pairs %s: %w", path, err)
	}
	return pairs, nil
}
