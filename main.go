package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"seoagent-go/pkg/export"
	"seoagent-go/pkg/logger"
	"seoagent-go/pkg/research"
)

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as int or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvBoolOrDefault returns environment variable as bool or default
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func main() {
	// Global panic recovery to prevent application crash
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("CRITICAL ERROR: Application panic recovered: %v\n", r)
			os.Exit(1)
		}
	}()

	godotenv.Load()

	// Environment variable defaults (CI friendly)
	defaultAPIKey := getEnvOrDefault("OPENAI_API_KEY", "")
	defaultBaseURL := getEnvOrDefault("OPENAI_BASE_URL", "")
	defaultModel := getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini")
	defaultSerpKey := getEnvOrDefault("SERPAPI_KEY", "")
	defaultTrendsURL := getEnvOrDefault("TRENDS_API_URL", "")
	defaultMax := getEnvIntOrDefault("MAX_KEYWORDS", 25)
	defaultCountry := getEnvOrDefault("COUNTRY", "US")
	defaultBatchSize := getEnvIntOrDefault("BATCH_SIZE", 20)
	defaultDebug := getEnvBoolOrDefault("DEBUG", false)

	// Command line flags (override environment variables)
	var (
		seed      = flag.String("seed", "", "Seed keyword to research")
		seeds     = flag.String("seeds", "", "Comma-separated seed keywords for batch research")
		max       = flag.Int("max", defaultMax, "Maximum keywords to return (env: MAX_KEYWORDS)")
		country   = flag.String("country", defaultCountry, "Two-letter country code (env: COUNTRY)")
		questions = flag.Bool("questions", true, "Include question keywords")
		longTail  = flag.Bool("longtail", true, "Include long-tail keywords")
		batchSize = flag.Int("batch-size", defaultBatchSize, "Keywords analyzed concurrently (env: BATCH_SIZE)")
		apiKey    = flag.String("api-key", defaultAPIKey, "Chat API key (env: OPENAI_API_KEY)")
		model     = flag.String("model", defaultModel, "Generation model name (env: OPENAI_MODEL)")
		serpKey   = flag.String("serpapi-key", defaultSerpKey, "SerpApi key for live volumes (env: SERPAPI_KEY)")
		trendsURL = flag.String("trends-url", defaultTrendsURL, "Trends API base URL (env: TRENDS_API_URL)")
		exportTo  = flag.String("export", "", "Export results to file (.csv or .json)")
		debug     = flag.Bool("debug", defaultDebug, "Enable debug logging (env: DEBUG)")
		help      = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	if *help {
		printUsage()
		return
	}

	if *apiKey == "" {
		fmt.Println("ERROR: Chat API key is required for keyword generation.")
		fmt.Println("Use -api-key flag or OPENAI_API_KEY environment variable.")
		fmt.Println("")
		printUsage()
		os.Exit(1)
	}

	if *debug {
		os.Setenv("DEBUG", "true")
	}
	log := logger.GetLogger().WithComponent("main")

	builder := research.NewAgentBuilder().
		WithOpenAI(*apiKey, defaultBaseURL).
		WithModels(*model, "").
		WithBatchSize(*batchSize)
	if *serpKey != "" {
		builder.WithTrends(*trendsURL, *serpKey)
	}

	agent, err := builder.Build()
	if err != nil {
		log.WithError(err).Fatal("Failed to create research agent")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	switch {
	case *seeds != "":
		runBatch(ctx, agent, *seeds, *max, *country, *exportTo)
	case *seed != "":
		runSingle(ctx, agent, research.Request{
			Seed:             *seed,
			MaxKeywords:      *max,
			Country:          *country,
			IncludeQuestions: *questions,
			IncludeLongTail:  *longTail,
		}, *exportTo)
	default:
		runInteractive(ctx, agent, *max, *country, *questions, *longTail)
	}
}

func runSingle(ctx context.Context, agent *research.Agent, req research.Request, exportTo string) {
	result, err := agent.ResearchKeywords(ctx, req)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}

	printResult(result)

	if exportTo != "" {
		if err := exportResult(result, exportTo); err != nil {
			fmt.Printf("ERROR: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nResults exported to %s\n", exportTo)
	}
}

func runBatch(ctx context.Context, agent *research.Agent, seedList string, maxEach int, country, exportTo string) {
	parts := strings.Split(seedList, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}

	results, err := agent.BatchResearch(ctx, keywords, maxEach, country)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}

	succeeded := 0
	for _, seed := range keywords {
		entry := results[seed]
		fmt.Printf("\n=== %s ===\n", seed)
		if entry.Error != "" {
			fmt.Printf("FAILED: %s\n", entry.Error)
			continue
		}
		succeeded++
		printResult(entry.Result)
	}

	fmt.Printf("\nBatch complete: %d/%d seeds succeeded\n", succeeded, len(keywords))

	if exportTo != "" {
		file, err := os.Create(exportTo)
		if err != nil {
			fmt.Printf("ERROR: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		if err := export.WriteBatchJSON(file, results); err != nil {
			fmt.Printf("ERROR: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Batch results exported to %s\n", exportTo)
	}
}

func runInteractive(ctx context.Context, agent *research.Agent, max int, country string, questions, longTail bool) {
	fmt.Println("SEO Keyword Research Agent")
	fmt.Println("Type a seed keyword and press Enter. Type 'quit' to exit.")
	fmt.Println("")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("seed> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}

		result, err := agent.ResearchKeywords(ctx, research.Request{
			Seed:             input,
			MaxKeywords:      max,
			Country:          country,
			IncludeQuestions: questions,
			IncludeLongTail:  longTail,
		})
		if err != nil {
			fmt.Printf("ERROR: %v\n", err)
			continue
		}

		printResult(result)

		fmt.Print("Export results? (csv/json/no): ")
		if !scanner.Scan() {
			break
		}
		switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
		case "csv":
			name := fmt.Sprintf("keywords_%s.csv", strings.ReplaceAll(result.SeedKeyword, " ", "_"))
			if err := exportResult(result, name); err != nil {
				fmt.Printf("ERROR: %v\n", err)
			} else {
				fmt.Printf("Exported to %s\n", name)
			}
		case "json":
			name := fmt.Sprintf("keywords_%s.json", strings.ReplaceAll(result.SeedKeyword, " ", "_"))
			if err := exportResult(result, name); err != nil {
				fmt.Printf("ERROR: %v\n", err)
			} else {
				fmt.Printf("Exported to %s\n", name)
			}
		}
		fmt.Println("")
	}
}

func printResult(result *research.Result) {
	fmt.Printf("\n=== Keyword Research Results ===\n")
	fmt.Printf("Seed: %s\n", result.SeedKeyword)
	fmt.Printf("Keywords: %d\n", result.TotalKeywords)
	fmt.Printf("Processing Time: %.2fs\n", result.ProcessingTime)
	fmt.Printf("Country: %s\n\n", result.Country)

	fmt.Printf("%-4s %-40s %7s %8s %6s %5s %-14s %7s\n",
		"#", "KEYWORD", "SCORE", "VOLUME", "COMP", "DIFF", "INTENT", "CPC")
	for i, kw := range result.Keywords {
		keyword := kw.Keyword
		if len(keyword) > 40 {
			keyword = keyword[:37] + "..."
		}
		fmt.Printf("%-4d %-40s %7.1f %8d %6.2f %5d %-14s $%6.2f\n",
			i+1, keyword, kw.OpportunityScore, kw.SearchVolume,
			kw.CompetitionScore, kw.Difficulty, kw.Intent, kw.CPCEstimate)
	}
}

func exportResult(result *research.Result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return export.WriteCSV(file, result)
	}
	return export.WriteJSON(file, result)
}

func printUsage() {
	fmt.Println("SEO Keyword Research Agent")
	fmt.Println("")
	fmt.Println("USAGE:")
	fmt.Println("    ./seoagent -seed \"digital marketing\" [OPTIONS]")
	fmt.Println("    ./seoagent -seeds \"seo,content marketing\" [OPTIONS]")
	fmt.Println("    ./seoagent  # Interactive mode")
	fmt.Println("")
	fmt.Println("REQUIRED:")
	fmt.Println("    -api-key string        Chat API key (env: OPENAI_API_KEY)")
	fmt.Println("")
	fmt.Println("OPTIONS:")
	fmt.Println("    -seed string           Seed keyword to research")
	fmt.Println("    -seeds string          Comma-separated seeds for batch research")
	fmt.Println("    -max int               Max keywords to return (default: 25, env: MAX_KEYWORDS)")
	fmt.Println("    -country string        Two-letter country code (default: US, env: COUNTRY)")
	fmt.Println("    -questions             Include question keywords (default: true)")
	fmt.Println("    -longtail              Include long-tail keywords (default: true)")
	fmt.Println("    -batch-size int        Concurrent analyses (default: 20, env: BATCH_SIZE)")
	fmt.Println("    -model string          Generation model (default: gpt-4o-mini, env: OPENAI_MODEL)")
	fmt.Println("    -serpapi-key string    SerpApi key for live volumes (env: SERPAPI_KEY)")
	fmt.Println("    -trends-url string     Trends API base URL (env: TRENDS_API_URL)")
	fmt.Println("    -export string         Export results to file (.csv or .json)")
	fmt.Println("    -debug                 Enable debug logging (env: DEBUG)")
	fmt.Println("    -help                  Show this help message")
	fmt.Println("")
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("    OPENAI_API_KEY         Chat API key (required)")
	fmt.Println("    OPENAI_BASE_URL        Chat API base URL")
	fmt.Println("    OPENAI_MODEL           Generation model (gpt-4o-mini)")
	fmt.Println("    SERPAPI_KEY            SerpApi key (enables live volume lookup)")
	fmt.Println("    TRENDS_API_URL         Trends API base URL")
	fmt.Println("    MAX_KEYWORDS           Max keywords to return (25)")
	fmt.Println("    COUNTRY                Country code (US)")
	fmt.Println("    BATCH_SIZE             Concurrent analyses (20)")
	fmt.Println("    DEBUG                  Enable debug logging (false)")
	fmt.Println("")
	fmt.Println("EXAMPLES:")
	fmt.Println("    ./seoagent -seed \"running shoes\" -max 50 -export results.csv")
	fmt.Println("    ./seoagent -seeds \"seo tools,keyword research\" -export batch.json")
	fmt.Println("    OPENAI_API_KEY=sk-... ./seoagent -seed \"crm software\"")
}
