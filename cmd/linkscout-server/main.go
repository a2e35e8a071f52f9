// Command linkscout-server exposes business link resolution over HTTP.
//
// Endpoints:
//
//	POST /api/search          {"business_name": "...", "country": "..."}  (both required)
//	GET|POST /api/find        business_name required, country optional
//
// Set GOOGLE_API_KEY and GOOGLE_CSE_ID to enable the Custom Search API
// provider; without them only web search and direct URL patterns are used.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/linkscout/linkscout"
	"github.com/linkscout/linkscout/pkg/fetch"
	"github.com/linkscout/linkscout/pkg/result"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	addr := flag.String("addr", ":5001", "listen address")
	noCache := flag.Bool("no-cache", false, "disable HTTP caching of search pages")
	cacheTTL := flag.Duration("cache-ttl", 24*time.Hour, "cache time-to-live for search pages")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	} else {
		gin.SetMode(gin.ReleaseMode)
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
			opts = append(opts, linkscout.WithHTTPCache(httpCache))
		}
	}

	apiKey := os.Getenv("GOOGLE_API_KEY")
	cseID := os.Getenv("GOOGLE_CSE_ID")
	if apiKey != "" && cseID != "" {
		opts = append(opts, linkscout.WithCredentials(apiKey, cseID))
	} else {
		logger.Info("no API credentials, structured search disabled")
	}

	srv := &server{logger: logger, opts: opts}

	router := gin.New()
	router.Use(requestID(), requestLog(logger), gin.Recovery())
	router.POST("/api/search", srv.search)
	router.GET("/api/find", srv.find)
	router.POST("/api/find", srv.find)

	logger.Info("listening", "addr", *addr)
	if err := router.Run(*addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1) //nolint:gocritic // exitAfterDefer is acceptable in main
	}
}

type server struct {
	logger *slog.Logger
	opts   []linkscout.Option
}

type searchRequest struct {
	BusinessName string `form:"business_name" json:"business_name"`
	Country      string `form:"country"       json:"country"`
}

type searchResponse struct {
	Instagram  *string  `json:"instagram"`
	Facebook   *string  `json:"facebook"`
	Website    *string  `json:"website"`
	Confidence string   `json:"confidence"`
	Sources    []string `json:"sources"`
}

type findResponse struct {
	BusinessName string  `json:"business_name"`
	Country      *string `json:"country"`
	searchResponse
}

// search handles POST /api/search. Both business_name and country are required.
func (s *server) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.BusinessName = strings.TrimSpace(req.BusinessName)
	req.Country = strings.TrimSpace(req.Country)

	if req.BusinessName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Business name is required"})
		return
	}
	if req.Country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Country is required"})
		return
	}

	res, err := s.resolve(c.Request.Context(), req.BusinessName, req.Country)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toSearchResponse(res))
}

// find handles GET and POST /api/find. Country is optional.
func (s *server) find(c *gin.Context) {
	var req searchRequest
	if c.Request.Method == http.MethodGet {
		req.BusinessName = c.Query("business_name")
		req.Country = c.Query("country")
	} else if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.BusinessName = strings.TrimSpace(req.BusinessName)
	req.Country = strings.TrimSpace(req.Country)

	if req.BusinessName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "business_name parameter is required"})
		return
	}

	res, err := s.resolve(c.Request.Context(), req.BusinessName, req.Country)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, findResponse{
		BusinessName:   req.BusinessName,
		Country:        nullable(req.Country),
		searchResponse: toSearchResponse(res),
	})
}

func (s *server) resolve(ctx context.Context, businessName, country string) (result.Result, error) {
	return linkscout.Find(ctx, businessName, country, s.opts...)
}

func toSearchResponse(res result.Result) searchResponse {
	sources := res.Sources
	if sources == nil {
		sources = []string{}
	}
	return searchResponse{
		Instagram:  nullable(res.Instagram),
		Facebook:   nullable(res.Facebook),
		Website:    nullable(res.Website),
		Confidence: string(res.Confidence),
		Sources:    sources,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// requestID tags every request with an ID for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// requestLog logs one line per request.
func requestLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.InfoContext(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
			"request_id", c.GetString("request_id"))
	}
}
