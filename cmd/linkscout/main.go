// Command linkscout resolves a business's social media links and website.
//
// Usage:
//
//	linkscout "Joe's Pizza"
//	linkscout -country USA "Joe's Pizza"
//	GOOGLE_API_KEY=... GOOGLE_CSE_ID=... linkscout -country Kuwait "MB Vision"
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/linkscout/linkscout"
	"github.com/linkscout/linkscout/pkg/fetch"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	verbose := flag.Bool("v", false, "verbose logging (same as -debug)")
	country := flag.String("country", "", "country the business operates in (improves candidate generation)")
	noCache := flag.Bool("no-cache", false, "disable HTTP caching of search pages")
	cacheTTL := flag.Duration("cache-ttl", 24*time.Hour, "cache time-to-live for search pages")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: linkscout [options] <business name>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nEnvironment:")
		fmt.Fprintln(os.Stderr, "  GOOGLE_API_KEY, GOOGLE_CSE_ID  enable the Custom Search API provider")
		fmt.Fprintln(os.Stderr, "  (without them only web search and direct URL patterns are used)")
		os.Exit(1)
	}

	businessName := strings.Join(flag.Args(), " ")

	logLevel := slog.LevelInfo
	if *debug || *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	var opts []linkscout.Option
	opts = append(opts, linkscout.WithLogger(logger))

	if !*noCache {
		httpCache, err := fetch.New(*cacheTTL)
		if err != nil {
			logger.Warn("failed to initialize cache, continuing without cache", "error", err)
		} else {
			defer func() {
				if err := httpCache.Close(); err != nil {
					logger.Warn("failed to close cache", "error", err)
				}
			}()
			logger.Debug("HTTP cache initialized", "ttl", cacheTTL.String())
			opts = append(opts, linkscout.WithHTTPCache(httpCache))
		}
	}

	apiKey := os.Getenv("GOOGLE_API_KEY")
	cseID := os.Getenv("GOOGLE_CSE_ID")
	if apiKey != "" && cseID != "" {
		opts = append(opts, linkscout.WithCredentials(apiKey, cseID))
	} else {
		logger.Debug("no API credentials, structured search disabled")
	}

	res, err := linkscout.Find(context.Background(), businessName, *country, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1) //nolint:gocritic // exitAfterDefer is acceptable in main
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
		os.Exit(1)
	}
}
