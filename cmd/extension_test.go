package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFlagsDefaultToEnvironment(t *testing.T) {
	t.Setenv(EnvRiskFreeRate, "0.05")
	t.Setenv(EnvBenchmark, "QQQ")
	t.Setenv(EnvRateLimit, "not a number")
	t.Setenv(EnvVerbose, "true")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(fs)
	if riskFreeRate != 0.05 || benchmark != "QQQ" || !verbose {
		t.Errorf("flags = %v %q %v, want 0.05 QQQ true", riskFreeRate, benchmark, verbose)
	}
	if rateLimit != 5 {
		t.Errorf("rate-limit = %v, want the default 5 for an invalid value", rateLimit)
	}

	if err := fs.Parse([]string{"-benchmark", "DIA", "-v=false"}); err != nil {
		t.Fatal(err)
	}
	if benchmark != "DIA" || verbose {
		t.Errorf("parsed flags = %q %v, want DIA false", benchmark, verbose)
	}
}

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	tempDir := t.TempDir()
	out := filepath.Join(tempDir, "out.txt")
	script := "#!/bin/sh\necho \"$SHARPEFUL_LEDGER_FILE $SHARPEFUL_BENCHMARK $1\" > " + out + "\nexit 3\n"
	if err := os.WriteFile(filepath.Join(tempDir, "sharpeful-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	oldLedger, oldBenchmark := ledgerFile, benchmark
	ledgerFile, benchmark = "my.jsonl", "QQQ"
	defer func() { ledgerFile, benchmark = oldLedger, oldBenchmark }()

	found, code := RunExtension("hello", []string{"world"})
	if !found || code != 3 {
		t.Fatalf("RunExtension() = %v, %d, want true, 3", found, code)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "my.jsonl QQQ world\n" {
		t.Errorf("extension output = %q", got)
	}

	if found, _ := RunExtension("missing", nil); found {
		t.Error("RunExtension(missing) found an extension")
	}
}
