// Command popularityfinder peels the projected actor graph down to its
// k-core and writes the surviving actors in sorted order.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
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

const usage = `Usage: popularityfinder movie_tsv k output_actors
	movie_tsv -	Tab delimited file of movie actor relationships. Header row
			expected. Rows are actor name, movie title, movie year.
	k -		Minimum number of connections every surviving actor must keep
			to other survivors.
	output_actors -	Output file for the surviving actors, one per line, sorted.`

const coreHeader = "Actor"

func main() {
	args := os.Args[1:]
	if len(args) != 3 {
		color.Red("popularityfinder called with incorrect arguments.")
		fmt.Println(usage)
		os.Exit(1)
	}
	k, err := strconv.Atoi(args[1])
	if err != nil {
		color.Red("k must be an integer, got %q", args[1])
		fmt.Println(usage)
		os.Exit(1)
	}
	if err := run(args[0], k, args[2]); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func run(dataPath string, k int, outPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel)).With(
		logging.Component("popularityfinder"),
		logging.RunID(uuid.NewString()),
	)
	m := metrics.NewRegistry()

	buildStart := time.Now()
	f, err := os.Open(dataPath)
	if err != nil {
		return fmt.Errorf("open dataset %s: %w", dataPath, err)
	}
	records, err := dataset.ReadRecords(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("read dataset %s: %w", dataPath, err)
	}
	logger.Info("dataset read", logging.Dataset(dataPath), logging.Count(len(records)))

	reg, adj := graph.Projection(records)
	m.RecordBuild(reg.Len(), time.Since(buildStart))
	m.GraphEdges.Set(float64(adj.Edges()))
	logger.Info("graph built",
		logging.Int("actors", reg.Len()),
		logging.Int("edges", adj.Edges()),
	)

	queryStart := time.Now()
	survivors := algorithms.KCore(adj, reg, k)
	m.RecordQuery("kcore", "ok", time.Since(queryStart))
	logger.Info("core computed",
		logging.Int("k", k),
		logging.Count(len(survivors)),
		logging.Latency(time.Since(queryStart)),
	)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output %s: %w", outPath, err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	fmt.Fprintln(w, coreHeader)
	for _, name := range survivors {
		fmt.Fprintln(w, name)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output %s: %w", outPath, err)
	}

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("metrics textfile not written", logging.Error(err))
		}
	}
	logger.Info("run complete", logging.Latency(time.Since(buildStart)))
	return nil
}
