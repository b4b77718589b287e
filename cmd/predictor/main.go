// Command predictor ranks, for each target actor, the strongest
// existing co-stars and the most promising new collaborators by
// counting shared neighbours in the projected actor graph.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
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

const usage = `Usage: predictor movie_tsv targets output_collaborated output_uncollaborated
	movie_tsv -		Tab delimited file of movie actor relationships. Header
				row expected. Rows are actor name, movie title, movie year.
	targets -		Newline delimited file of actors to score. Header row
				expected.
	output_collaborated -	Output file for the top ranked actors each target has
				already worked with.
	output_uncollaborated -	Output file for the top ranked actors each target has
				never worked with.`

const matchHeader = "Actor1,Actor2,Actor3,Actor4"

func main() {
	args := os.Args[1:]
	if len(args) != 4 {
		color.Red("predictor called with incorrect arguments.")
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
		logging.Component("predictor"),
		logging.RunID(uuid.NewString()),
	)
	m := metrics.NewRegistry()

	buildStart := time.Now()
	records, err := readRecords(args[0])
	if err != nil {
		return err
	}
	logger.Info("dataset read", logging.Dataset(args[0]), logging.Count(len(records)))

	reg, adj := graph.Projection(records)
	m.RecordBuild(reg.Len(), time.Since(buildStart))
	m.GraphEdges.Set(float64(adj.Edges()))
	logger.Info("graph built",
		logging.Int("actors", reg.Len()),
		logging.Int("edges", adj.Edges()),
	)

	targets, err := readTargets(args[1])
	if err != nil {
		return err
	}

	if err := writeMatches(m, logger, adj, reg, targets, algorithms.Predict, args[2]); err != nil {
		return err
	}
	if err := writeMatches(m, logger, adj, reg, targets, algorithms.Recommend, args[3]); err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("metrics textfile not written", logging.Error(err))
		}
	}
	logger.Info("run complete", logging.Count(len(targets)), logging.Latency(time.Since(buildStart)))
	return nil
}

func writeMatches(m *metrics.Registry, logger logging.Logger, adj *graph.Adjacency, reg *graph.Registry, targets []string, mode algorithms.ScoreMode, path string) error {
	engine := "predict"
	if mode == algorithms.Recommend {
		engine = "recommend"
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", path, err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	fmt.Fprintln(w, matchHeader)

	for _, target := range targets {
		queryStart := time.Now()
		names, err := algorithms.RankMatches(adj, reg, target, mode)
		if err != nil {
			m.RecordQuery(engine, "error", time.Since(queryStart))
			return fmt.Errorf("score %q: %w", target, err)
		}
		m.RecordQuery(engine, "ok", time.Since(queryStart))
		logger.Debug("matches ranked",
			logging.Actor(target),
			logging.Engine(engine),
			logging.Count(len(names)),
			logging.Latency(time.Since(queryStart)),
		)
		fmt.Fprintln(w, strings.Join(names, "\t"))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
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

func readTargets(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open targets %s: %w", path, err)
	}
	defer f.Close()
	targets, err := dataset.ReadTargets(f)
	if err != nil {
		return nil, fmt.Errorf("read targets %s: %w", path, err)
	}
	return targets, nil
}
