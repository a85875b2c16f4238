package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/saikothasan/neno/internal/models"
)

var (
	defaultCount    = 3
	backendEndpoint = "http://localhost:8080/api/generate"

	kinds     = []models.Kind{models.KindUsername, models.KindName, models.KindBoth}
	platforms = []string{"twitter", "github", "twitch", "instagram", "reddit"}
	themes    = []string{"", "tech", "retro"}
)

func main() {
	ctx := context.Background()

	if endpoint := os.Getenv("BENCH_ENDPOINT"); endpoint != "" {
		backendEndpoint = endpoint
	}

	var results []BenchResult
	for _, c := range cases() {
		res := benchmarkCase(ctx, http.DefaultClient, backendEndpoint, c)

		if res.Err != nil {
			log.Println("ERR:", res.Kind, res.Platform, res.Err)
		} else {
			log.Printf("OK %s/%s %d results %v", res.Kind, res.Platform, res.Results, res.Duration)
		}

		results = append(results, res)
	}

	printMarkdown(os.Stdout, results)
}

func cases() []BenchCase {
	var out []BenchCase
	for _, kind := range kinds {
		for i, platform := range platforms {
			out = append(out, BenchCase{
				Kind:     kind,
				Platform: platform,
				Theme:    themes[i%len(themes)],
			})
		}
	}
	return out
}

func benchmarkCase(ctx context.Context, client *http.Client, endpoint string, c BenchCase) BenchResult {
	start := time.Now()

	req := models.GenerationRequest{
		Type:     c.Kind,
		Count:    &defaultCount,
		Platform: c.Platform,
		Theme:    c.Theme,
	}

	resp, status, err := send(ctx, client, endpoint, req)
	res := BenchResult{
		Kind:     c.Kind,
		Platform: c.Platform,
		Duration: time.Since(start),
		Status:   status,
		Err:      err,
	}
	if resp != nil {
		res.Results = len(resp.Results)
	}
	return res
}

func send(ctx context.Context, client *http.Client, endpoint string, req models.GenerationRequest) (*models.GenerateResponse, int, error) {
	body, err := sonic.Marshal(req)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal req: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Client-ID", "benchmark")

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	if resp.StatusCode != http.StatusOK {
		var e models.ErrorResponse
		if err := sonic.Unmarshal(raw, &e); err == nil && e.Error != "" {
			return nil, resp.StatusCode, fmt.Errorf("bad status %d (%s): %s", resp.StatusCode, e.Kind, e.Error)
		}
		return nil, resp.StatusCode, fmt.Errorf("bad status %d: %s",
			resp.StatusCode,
			strings.TrimSpace(string(raw)),
		)
	}

	var out models.GenerateResponse
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return &out, resp.StatusCode, nil
}

func aggregate(results []BenchResult) map[models.Kind]Agg {
	m := map[models.Kind]Agg{}
	for _, r := range results {
		a := m[r.Kind]
		a.Count++
		a.Total += r.Duration
		if r.Err != nil {
			a.Errors++
		} else {
			a.TotalResults += r.Results
		}
		m[r.Kind] = a
	}
	return m
}

func printMarkdown(w io.Writer, results []BenchResult) {
	fmt.Fprint(w, "\n## Benchmark Results\n\n")
	fmt.Fprintln(w, "| Type | Requests | Errors | Avg Time | Total Time | Avg Results |")
	fmt.Fprintln(w, "|------|----------|--------|----------|------------|-------------|")

	agg := aggregate(results)

	keys := make([]string, 0, len(agg))
	for k := range agg {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	var total Agg
	for _, k := range keys {
		a := agg[models.Kind(k)]
		fmt.Fprintf(w, "| %s | %d | %d | %v | %v | %s |\n",
			k,
			a.Count,
			a.Errors,
			(a.Total / time.Duration(a.Count)).Round(time.Millisecond),
			a.Total.Round(time.Millisecond),
			avgResults(a),
		)
		total.Count += a.Count
		total.Errors += a.Errors
		total.Total += a.Total
		total.TotalResults += a.TotalResults
	}

	if total.Count > 0 {
		fmt.Fprintf(w, "| **ALL** | %d | %d | %v | %v | %s |\n",
			total.Count,
			total.Errors,
			(total.Total / time.Duration(total.Count)).Round(time.Millisecond),
			total.Total.Round(time.Millisecond),
			avgResults(total),
		)
	}
}

func avgResults(a Agg) string {
	ok := a.Count - a.Errors
	if ok == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", float64(a.TotalResults)/float64(ok))
}
