// Copyright 2025 Talentsift Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package eval

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/talentsift/talentsift/query"
)

var (
	// ErrNoTestQueries is returned when the test query set is empty.
	ErrNoTestQueries = errors.New("no test queries loaded")

	// ErrNoKValues is returned when no K values are given.
	ErrNoKValues = errors.New("no k values given")
)

// metricNames fixes the reporting order.
var metricNames = []string{"recall", "precision", "ndcg"}

// QueryProcessor is the part of the query engine the evaluator needs.
type QueryProcessor interface {
	ProcessQuery(ctx context.Context, queryText string, maxResults int) (*query.Recommendation, error)
}

// Report holds averaged metric values keyed by metric name, then by K.
type Report map[string]map[int]float64

// Evaluator runs labeled test queries through an engine and scores the
// recommendations against ground truth.
type Evaluator struct {
	testQueries map[string]string
	groundtruth map[string][]string
	logger      *slog.Logger
}

// NewEvaluator loads the test queries and ground truth from JSON files.
//
// The test query file maps query IDs to query text; the ground truth file
// maps the same IDs to lists of relevant assessment names.
func NewEvaluator(testQueriesPath, groundtruthPath string) (*Evaluator, error) {
	var testQueries map[string]string
	if err := loadJSON(testQueriesPath, &testQueries); err != nil {
		return nil, fmt.Errorf("failed to load test queries: %w", err)
	}

	var groundtruth map[string][]string
	if err := loadJSON(groundtruthPath, &groundtruth); err != nil {
		return nil, fmt.Errorf("failed to load ground truth: %w", err)
	}

	return &Evaluator{
		testQueries: testQueries,
		groundtruth: groundtruth,
		logger:      slog.Default().With("component", "evaluator"),
	}, nil
}

// Run processes every test query and returns metrics averaged over the
// query set. Queries are processed in ID order so runs are reproducible.
func (e *Evaluator) Run(ctx context.Context, processor QueryProcessor, ks []int) (Report, error) {
	if len(e.testQueries) == 0 {
		return nil, ErrNoTestQueries
	}
	if len(ks) == 0 {
		return nil, ErrNoKValues
	}

	maxK := 0
	for _, k := range ks {
		if k > maxK {
			maxK = k
		}
	}

	sums := make(map[string]map[int]float64, len(metricNames))
	for _, name := range metricNames {
		sums[name] = make(map[int]float64, len(ks))
	}

	queryIDs := make([]string, 0, len(e.testQueries))
	for id := range e.testQueries {
		queryIDs = append(queryIDs, id)
	}
	sort.Strings(queryIDs)

	for _, id := range queryIDs {
		queryText := e.testQueries[id]

		rec, err := processor.ProcessQuery(ctx, queryText, maxK)
		if err != nil {
			return nil, fmt.Errorf("query %s failed: %w", id, err)
		}

		predicted := make([]string, len(rec.Results))
		for i, r := range rec.Results {
			predicted[i] = r.Assessment.Name
		}

		relevant, ok := e.groundtruth[id]
		if !ok {
			e.logger.Warn("no ground truth for query", "id", id)
		}

		for _, k := range ks {
			sums["recall"][k] += RecallAt(predicted, relevant, k)
			sums["precision"][k] += PrecisionAt(predicted, relevant, k)
			sums["ndcg"][k] += NDCGAt(predicted, relevant, k)
		}
	}

	report := make(Report, len(metricNames))
	queryCount := float64(len(queryIDs))
	for _, name := range metricNames {
		report[name] = make(map[int]float64, len(ks))
		for _, k := range ks {
			report[name][k] = sums[name][k] / queryCount
		}
	}

	e.logger.Info("evaluation complete", "queries", len(queryIDs), "ks", ks)
	return report, nil
}

// String formats the report for terminal output.
func (r Report) String() string {
	var b strings.Builder
	b.WriteString("===== EVALUATION RESULTS =====\n")
	for _, name := range metricNames {
		values, ok := r[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(name))
		for _, k := range sortedKeys(values) {
			fmt.Fprintf(&b, "  @%d: %.4f\n", k, values[k])
		}
	}
	return b.String()
}

// WriteCSV writes the report as Metric,K,Value rows.
func (r Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Metric", "K", "Value"}); err != nil {
		return err
	}
	for _, name := range metricNames {
		values, ok := r[name]
		if !ok {
			continue
		}
		for _, k := range sortedKeys(values) {
			record := []string{name, strconv.Itoa(k), strconv.FormatFloat(values[k], 'f', 4, 64)}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func sortedKeys(values map[int]float64) []int {
	keys := make([]int, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
