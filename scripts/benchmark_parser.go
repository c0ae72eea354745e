// Command benchmark_parser turns `go test -bench` output into a markdown
// report. Benchmarks named BenchmarkSafe<Op> are paired with their bare
// Benchmark<Op> counterpart so the mutex wrapper's overhead is visible at
// a glance.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string // name without the Benchmark/Safe prefixes and -N suffix
	Safe        bool   // true for the SafeStack variants
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// PairedResult couples a bare benchmark with its SafeStack counterpart.
type PairedResult struct {
	Operation  string
	BareNs     float64
	SafeNs     float64
	Overhead   float64 // SafeNs / BareNs
	BareMem    int64
	SafeMem    int64
	BareAllocs int64
	SafeAllocs int64
	BareOnly   bool
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	var scanner *bufio.Scanner
	var inputF *os.File
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		inputF = f
		scanner = bufio.NewScanner(f)
	} else {
		scanner = bufio.NewScanner(os.Stdin)
	}

	results := parseBenchmarks(scanner)

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	pairs := pairResults(results)

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Generated %d rows\n", len(pairs))
	}

	report := generateMarkdownReport(pairs)

	if *outputFile != "" {
		err := os.WriteFile(*outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			if inputF != nil {
				inputF.Close()
			}
			os.Exit(1)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
		}
	} else {
		fmt.Fprint(os.Stdout, report)
	}

	if inputF != nil {
		inputF.Close()
	}
}

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	// Regex to parse benchmark output lines
	// BenchmarkPushPop-8    10000    1245 ns/op    0 B/op    0 allocs/op
	benchmarkRegex := regexp.MustCompile(
		`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+([\d.]+)\s+(?:B|MB)/op)?(?:\s+([\d.]+)\s+allocs/op)?`,
	)

	for scanner.Scan() {
		line := scanner.Text()

		// Tolerate `go test -json` framing
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		name := matches[1]
		iterations, _ := strconv.Atoi(matches[2])
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)

		var bytesPerOp int64
		var allocsPerOp int64

		if matches[4] != "" {
			bytesPerOp, _ = strconv.ParseInt(matches[4], 10, 64)
		}
		if matches[5] != "" {
			allocsPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}

		operation, safe := parseBenchmarkName(name)

		results = append(results, BenchmarkResult{
			Name:        name,
			Operation:   operation,
			Safe:        safe,
			Iterations:  iterations,
			NsPerOp:     nsPerOp,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}

	return results
}

// parseBenchmarkName reduces BenchmarkSafePushPop-8 to ("PushPop", true).
// Sub-benchmark paths stay part of the operation so table rows keep their
// full identity.
func parseBenchmarkName(name string) (string, bool) {
	// Strip the GOMAXPROCS suffix from the last path element
	parts := strings.Split(name, "/")
	lastPart := parts[len(parts)-1]
	if dashIdx := strings.LastIndex(lastPart, "-"); dashIdx > 0 {
		parts[len(parts)-1] = lastPart[:dashIdx]
	}

	operation := strings.TrimPrefix(parts[0], "Benchmark")
	safe := false
	if strings.HasPrefix(operation, "Safe") {
		operation = strings.TrimPrefix(operation, "Safe")
		safe = true
	}
	parts[0] = operation

	return strings.Join(parts, "/"), safe
}

func pairResults(results []BenchmarkResult) []PairedResult {
	grouped := make(map[string]map[bool]BenchmarkResult)

	for _, result := range results {
		if grouped[result.Operation] == nil {
			grouped[result.Operation] = make(map[bool]BenchmarkResult)
		}
		grouped[result.Operation][result.Safe] = result
	}

	var pairs []PairedResult

	for op, variants := range grouped {
		bare, hasBare := variants[false]
		safe, hasSafe := variants[true]

		switch {
		case hasBare && hasSafe:
			pairs = append(pairs, PairedResult{
				Operation:  op,
				BareNs:     bare.NsPerOp,
				SafeNs:     safe.NsPerOp,
				Overhead:   safe.NsPerOp / bare.NsPerOp,
				BareMem:    bare.BytesPerOp,
				SafeMem:    safe.BytesPerOp,
				BareAllocs: bare.AllocsPerOp,
				SafeAllocs: safe.AllocsPerOp,
			})
		case hasBare:
			pairs = append(pairs, PairedResult{
				Operation:  op,
				BareNs:     bare.NsPerOp,
				BareMem:    bare.BytesPerOp,
				BareAllocs: bare.AllocsPerOp,
				BareOnly:   true,
			})
		case hasSafe:
			// A Safe benchmark without a bare twin is still worth a row
			pairs = append(pairs, PairedResult{
				Operation:  op + " (safe)",
				BareNs:     safe.NsPerOp,
				BareMem:    safe.BytesPerOp,
				BareAllocs: safe.AllocsPerOp,
				BareOnly:   true,
			})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Operation < pairs[j].Operation
	})

	return pairs
}

func generateMarkdownReport(pairs []PairedResult) string {
	var sb strings.Builder

	sb.WriteString("# Benchmark Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	pairedCount := 0
	totalOverhead := 0.0
	for _, p := range pairs {
		if !p.BareOnly {
			pairedCount++
			totalOverhead += p.Overhead
		}
	}

	avgOverhead := 0.0
	if pairedCount > 0 {
		avgOverhead = totalOverhead / float64(pairedCount)
	}

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Total benchmarks**: %d\n", len(pairs)))
	sb.WriteString(fmt.Sprintf("- **Paired** (Stack vs SafeStack): %d\n", pairedCount))
	if pairedCount > 0 {
		sb.WriteString(fmt.Sprintf("- **Average mutex overhead**: **%.2fx**\n", avgOverhead))
	}
	sb.WriteString("\n")

	sb.WriteString("## Detailed Results\n\n")
	sb.WriteString(
		"| Operation | Stack (ns/op) | SafeStack (ns/op) | Overhead | Memory (B/op) | Allocs |\n",
	)
	sb.WriteString(
		"|-----------|---------------|-------------------|----------|---------------|--------|\n",
	)

	for _, p := range pairs {
		if p.BareOnly {
			sb.WriteString(fmt.Sprintf("| %s | %s | *N/A* | *unpaired* | %s | %s |\n",
				p.Operation,
				formatNumber(p.BareNs),
				formatBytes(p.BareMem),
				formatNumber(float64(p.BareAllocs)),
			))
			continue
		}

		indicator := "✓"
		if p.Overhead > 2.0 {
			indicator = "✗"
		}

		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %.2fx %s | %s vs %s | %s vs %s |\n",
			p.Operation,
			formatNumber(p.BareNs),
			formatNumber(p.SafeNs),
			p.Overhead,
			indicator,
			formatBytes(p.BareMem),
			formatBytes(p.SafeMem),
			formatNumber(float64(p.BareAllocs)),
			formatNumber(float64(p.SafeAllocs)),
		))
	}

	sb.WriteString("\n")

	sb.WriteString("## Performance by Category\n\n")

	categories := categorizeOperations(pairs)
	for _, category := range []string{"Core Operations", "Iteration", "Snapshots", "Other"} {
		comps := categories[category]
		if len(comps) == 0 {
			continue
		}

		avg := 0.0
		count := 0
		for _, p := range comps {
			if !p.BareOnly {
				avg += p.Overhead
				count++
			}
		}

		if count > 0 {
			avg /= float64(count)
			sb.WriteString(fmt.Sprintf("- **%s**: %.2fx average mutex overhead across %d paired benchmarks\n",
				category, avg, count))
		} else {
			sb.WriteString(fmt.Sprintf("- **%s**: %d unpaired benchmarks\n", category, len(comps)))
		}
	}

	sb.WriteString("\n")

	sb.WriteString("## Notes\n\n")
	sb.WriteString("- **Overhead**: SafeStack ns/op divided by Stack ns/op, lower is better\n")
	sb.WriteString("- **✗** marks pairs where the mutex more than doubles the cost\n")
	sb.WriteString("- **Memory / Allocs**: Stack vs SafeStack per operation\n")
	sb.WriteString("- **unpaired**: no SafeStack counterpart for this benchmark\n")

	return sb.String()
}

func categorizeOperations(pairs []PairedResult) map[string][]PairedResult {
	categories := map[string][]PairedResult{
		"Core Operations": {},
		"Iteration":       {},
		"Snapshots":       {},
		"Other":           {},
	}

	for _, p := range pairs {
		op := strings.ToLower(p.Operation)

		switch {
		case strings.Contains(op, "push") || strings.Contains(op, "pop") ||
			strings.Contains(op, "peek"):
			categories["Core Operations"] = append(categories["Core Operations"], p)
		case strings.Contains(op, "walk") || strings.Contains(op, "entries") ||
			strings.Contains(op, "iter"):
			categories["Iteration"] = append(categories["Iteration"], p)
		case strings.Contains(op, "snapshot") || strings.Contains(op, "encode") ||
			strings.Contains(op, "decode"):
			categories["Snapshots"] = append(categories["Snapshots"], p)
		default:
			categories["Other"] = append(categories["Other"], p)
		}
	}

	return categories
}

func formatNumber(n float64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.2fM", n/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.0f", n)
}

func formatBytes(b int64) string {
	if b >= 1024*1024 {
		return fmt.Sprintf("%.2fMB", float64(b)/(1024*1024))
	} else if b >= 1024 {
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	}
	return fmt.Sprintf("%dB", b)
}
