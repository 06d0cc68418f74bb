// Package cmd implements the CLI application to analyse a portfolio.
package cmd

import (
	"flag"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables providing the defaults of the global flags.
const (
	EnvAPIBase         = "SHARPEFUL_API_BASE"
	EnvFeed            = "SHARPEFUL_FEED"
	EnvPortfolio       = "SHARPEFUL_PORTFOLIO"
	EnvLedgerFile      = "SHARPEFUL_LEDGER_FILE"
	EnvInstrumentsFile = "SHARPEFUL_INSTRUMENTS_FILE"
	EnvRiskFreeRate    = "SHARPEFUL_RISK_FREE_RATE"
	EnvBenchmark       = "SHARPEFUL_BENCHMARK"
	EnvRateLimit       = "SHARPEFUL_RATE_LIMIT"
	EnvCacheDir        = "SHARPEFUL_CACHE_DIR"
	EnvVerbose         = "SHARPEFUL_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
var (
	apiBase         string
	feedName        string
	portfolioID     string
	ledgerFile      string
	instrumentsFile string
	riskFreeRate    float64
	benchmark       string
	rateLimit       float64
	cacheDir        string
	verbose         bool
)

// LoadEnv reads .env.local then .env into the environment. Variables already
// set are kept, missing files are ignored.
func LoadEnv() {
	for _, file := range []string{".env.local", ".env"} {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			log.Printf("cannot load %s: %v", file, err)
		}
	}
}

// RegisterFlags declares the global flags in fs, defaulting to the environment.
func RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&apiBase, "api-base", getenv(EnvAPIBase, "http://localhost:8000"), "Base URL of the market data proxy")
	fs.StringVar(&feedName, "feed", getenv(EnvFeed, "massive"), "Market data feed: massive, alpaca or eodhd")
	fs.StringVar(&portfolioID, "portfolio", getenv(EnvPortfolio, "portfolio-4"), "Sample portfolio to analyse when no ledger file is given")
	fs.StringVar(&ledgerFile, "ledger", getenv(EnvLedgerFile, ""), "Path to a transaction log (JSONL format)")
	fs.StringVar(&instrumentsFile, "instruments", getenv(EnvInstrumentsFile, ""), "Path to the instruments of the ledger (JSON format)")
	fs.Float64Var(&riskFreeRate, "risk-free", getenvFloat(EnvRiskFreeRate, 0.04), "Annual risk free rate")
	fs.StringVar(&benchmark, "benchmark", getenv(EnvBenchmark, "SPY"), "Benchmark symbol for beta and alpha")
	fs.Float64Var(&rateLimit, "rate-limit", getenvFloat(EnvRateLimit, 5), "Maximum requests per second to the feed")
	fs.StringVar(&cacheDir, "cache-dir", getenv(EnvCacheDir, ""), "Directory of the HTTP cache, the temp dir by default")
	fs.BoolVar(&verbose, "v", getenvBool(EnvVerbose, false), "Verbose logs")
}

// Setup applies the global flags, once parsed.
func Setup() {
	if verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		return
	}
	log.SetOutput(io.Discard)
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(getenv(key, ""), 64)
	if err != nil {
		return def
	}
	return v
}

func getenvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(getenv(key, ""))
	if err != nil {
		return def
	}
	return v
}
