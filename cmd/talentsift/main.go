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


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/talentsift/talentsift"
	"github.com/talentsift/talentsift/ai"
	"github.com/talentsift/talentsift/catalog"
	"github.com/talentsift/talentsift/core"
	"github.com/talentsift/talentsift/eval"
	"github.com/talentsift/talentsift/query"
	"github.com/talentsift/talentsift/server"
	"github.com/urfave/cli/v2"
)

func main() {
	// Missing .env is fine, environment variables still apply.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "talentsift",
		Usage: "Assessment recommendation system for hiring queries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"TALENTSIFT_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the index database directory",
				Value:   "./talentsift_db",
				EnvVars: []string{"TALENTSIFT_DB"},
			},
			&cli.StringFlag{
				Name:    "data",
				Usage:   "Path to the cached catalog JSON file",
				Value:   catalog.DefaultDataPath,
				EnvVars: []string{"TALENTSIFT_DATA"},
			},
			&cli.StringFlag{
				Name:    "catalog-url",
				Usage:   "Catalog page URL to scrape",
				Value:   catalog.DefaultCatalogURL,
				EnvVars: []string{"TALENTSIFT_CATALOG_URL"},
			},
			&cli.StringFlag{
				Name:    "embedding-host",
				Usage:   "Embedding service host URL",
				Value:   "http://localhost:11434/v1",
				EnvVars: []string{"TALENTSIFT_EMBEDDING_HOST"},
			},
			&cli.StringFlag{
				Name:    "embedding-model",
				Usage:   "Embedding model name",
				Value:   "all-minilm",
				EnvVars: []string{"TALENTSIFT_EMBEDDING_MODEL"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "scrape",
				Usage:  "Scrape the assessment catalog and refresh the local cache",
				Action: scrapeCommand,
			},
			{
				Name:   "serve",
				Usage:  "Index the catalog and serve the recommendation API",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Usage:   "HTTP listen address",
						Value:   server.DefaultAddr,
						EnvVars: []string{"TALENTSIFT_ADDR"},
					},
				},
			},
			{
				Name:      "query",
				Usage:     "Run a single query against the index",
				ArgsUsage: "<query text>",
				Action:    queryCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "max-results",
						Aliases: []string{"n"},
						Usage:   "Maximum number of recommendations",
						Value:   10,
					},
				},
			},
			{
				Name:   "repl",
				Usage:  "Interactive query session",
				Action: replCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "max-results",
						Aliases: []string{"n"},
						Usage:   "Maximum number of recommendations",
						Value:   10,
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List all indexed assessments",
				Action: listCommand,
			},
			{
				Name:   "eval",
				Usage:  "Evaluate recommendation quality against labeled queries",
				Action: evalCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "test-queries",
						Usage: "Path to test queries JSON file",
						Value: "data/test_queries.json",
					},
					&cli.StringFlag{
						Name:  "groundtruth",
						Usage: "Path to ground truth JSON file",
						Value: "data/groundtruth.json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path to save evaluation results CSV",
						Value:   "data/evaluation_results.csv",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func scrapeCommand(c *cli.Context) error {
	ctx := context.Background()

	scraper := catalog.NewScraper(
		catalog.WithURL(c.String("catalog-url")),
		catalog.WithDataPath(c.String("data")),
	)

	assessments, err := scraper.ScrapeCatalog(ctx)
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	fmt.Printf("Scraped %d assessments to %s\n", len(assessments), c.String("data"))
	return nil
}

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sys, engine, err := openIndexedSystem(ctx, c)
	if err != nil {
		return err
	}
	defer sys.Close()

	srv, err := server.New(engine, server.WithAddr(c.String("addr")))
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}

func queryCommand(c *cli.Context) error {
	queryText := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if queryText == "" {
		return fmt.Errorf("query text is required")
	}

	ctx := context.Background()
	sys, engine, err := openIndexedSystem(ctx, c)
	if err != nil {
		return err
	}
	defer sys.Close()

	rec, err := engine.ProcessQuery(ctx, queryText, c.Int("max-results"))
	if err != nil {
		return err
	}

	printConstraints(rec.Constraints)
	printResults(rec)
	return nil
}

func replCommand(c *cli.Context) error {
	ctx := context.Background()
	sys, engine, err := openIndexedSystem(ctx, c)
	if err != nil {
		return err
	}
	defer sys.Close()

	maxResults := c.Int("max-results")
	fmt.Println("Enter a hiring query, or 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return scanner.Err()
		case "help":
			fmt.Println("Commands:")
			fmt.Println("  help        show this help")
			fmt.Println("  list        list all indexed assessments")
			fmt.Println("  exit, quit  leave the session")
			fmt.Println("Anything else is treated as a query.")
			continue
		case "list":
			if err := printCatalog(ctx, sys); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			continue
		}

		rec, err := engine.ProcessQuery(ctx, line, maxResults)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		printConstraints(rec.Constraints)
		printResults(rec)
	}
	return scanner.Err()
}

func listCommand(c *cli.Context) error {
	ctx := context.Background()
	sys, _, err := openIndexedSystem(ctx, c)
	if err != nil {
		return err
	}
	defer sys.Close()

	return printCatalog(ctx, sys)
}

func evalCommand(c *cli.Context) error {
	ctx := context.Background()
	sys, engine, err := openIndexedSystem(ctx, c)
	if err != nil {
		return err
	}
	defer sys.Close()

	testQueriesPath := c.String("test-queries")
	groundtruthPath := c.String("groundtruth")
	if err := eval.EnsureSampleFixtures(testQueriesPath, groundtruthPath); err != nil {
		return fmt.Errorf("failed to prepare fixtures: %w", err)
	}

	evaluator, err := eval.NewEvaluator(testQueriesPath, groundtruthPath)
	if err != nil {
		return err
	}

	report, err := evaluator.Run(ctx, engine, []int{1, 3, 5, 10})
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	fmt.Println(report)

	outputPath := c.String("output")
	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := report.WriteCSV(out); err != nil {
		return err
	}
	fmt.Printf("Results saved to %s\n", outputPath)
	return nil
}

// openIndexedSystem opens the system, loads the catalog and makes sure
// the embedding index is populated.
func openIndexedSystem(ctx context.Context, c *cli.Context) (*talentsift.System, *query.Engine, error) {
	sys, err := talentsift.New(c.String("db"), talentsift.WithAIConfig(ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithModel(c.String("embedding-model")),
	)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open system: %w", err)
	}

	scraper := catalog.NewScraper(
		catalog.WithURL(c.String("catalog-url")),
		catalog.WithDataPath(c.String("data")),
	)
	assessments, err := scraper.LoadData(ctx)
	if err != nil {
		sys.Close()
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	indexer, err := sys.NewIndexer()
	if err != nil {
		sys.Close()
		return nil, nil, err
	}
	defer indexer.Release()

	if err := indexer.EnsureIndexed(ctx, assessments); err != nil {
		sys.Close()
		return nil, nil, fmt.Errorf("indexing failed: %w", err)
	}

	engine, err := sys.NewEngine()
	if err != nil {
		sys.Close()
		return nil, nil, err
	}

	return sys, engine, nil
}

func printCatalog(ctx context.Context, sys *talentsift.System) error {
	assessments, err := sys.Repository().ListAssessments(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%d assessments indexed\n", len(assessments))
	for _, a := range assessments {
		fmt.Printf("  %s (%s, %s)\n", a.Name, a.TestType, a.Duration)
	}
	return nil
}

func printConstraints(c query.Constraints) {
	if c.IsEmpty() {
		return
	}
	fmt.Println("Extracted constraints:")
	if c.MaxDuration > 0 {
		fmt.Printf("  max duration: %d minutes\n", c.MaxDuration)
	}
	if c.Duration > 0 {
		fmt.Printf("  duration: %d minutes\n", c.Duration)
	}
	if len(c.Skills) > 0 {
		fmt.Printf("  skills: %s\n", strings.Join(c.Skills, ", "))
	}
	if len(c.TestTypes) > 0 {
		fmt.Printf("  test types: %s\n", strings.Join(c.TestTypes, ", "))
	}
}

func printResults(rec *query.Recommendation) {
	if len(rec.Results) == 0 {
		fmt.Println("No relevant assessments found.")
		return
	}
	if rec.FallbackUsed {
		fmt.Println("Constraints matched nothing, showing closest assessments instead.")
	}
	fmt.Printf("Found %d recommendations:\n", len(rec.Results))
	for i, r := range rec.Results {
		a := r.Assessment
		duration := a.Duration
		if duration == "" {
			duration = core.FlagUnknown
		}
		fmt.Printf("%d. %s [%0.3f]\n", i+1, a.Name, r.Score)
		fmt.Printf("   Type: %s | Duration: %s | Remote: %s | Adaptive: %s\n",
			orUnknown(a.TestType), duration, orUnknown(a.RemoteTesting), orUnknown(a.AdaptiveIRT))
		if a.URL != "" {
			fmt.Printf("   %s\n", a.URL)
		}
	}
}

func orUnknown(v string) string {
	if v == "" {
		return core.FlagUnknown
	}
	return v
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
