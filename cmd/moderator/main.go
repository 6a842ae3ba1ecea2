package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/config"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/moderation"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/store"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/telemetry"
)

const Version = "1.0.0"

const maxBatchSize = 100

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cfg := config.NewDefaultConfig()
		if len(os.Args) > 2 {
			cfg.Port = os.Args[2]
		}
		runHTTPServer(cfg)
	case "check":
		if len(os.Args) < 3 {
			fmt.Println("Usage: moderator check <text>")
			os.Exit(1)
		}
		runCLICheck(strings.Join(os.Args[2:], " "))
	case "batch":
		if len(os.Args) < 3 {
			fmt.Println("Usage: moderator batch <file>")
			os.Exit(1)
		}
		runCLIBatch(os.Args[2])
	case "version":
		fmt.Printf("Finance Moderator v%s\n", Version)
		fmt.Println("Multi-signal content moderation for finance communities")
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("Finance Moderator v%s\n\n", Version)
	fmt.Println("Usage:")
	fmt.Println("  moderator serve [port]    Start HTTP server (default: 8090)")
	fmt.Println("  moderator check <text>    Moderate a single message")
	fmt.Println("  moderator batch <file>    Moderate messages from a file, one per line")
	fmt.Println("  moderator version         Show version")
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("  moderator serve 8090")
	fmt.Println("  moderator check \"Guaranteed returns, DM me to join!\"")
	fmt.Println("  moderator batch messages.txt")
	fmt.Println("")
	fmt.Println("Environment Variables:")
	fmt.Println("  MODERATOR_EMBED_URL         OpenAI-compatible embeddings endpoint")
	fmt.Println("  MODERATOR_EMBED_MODEL_DIR   Local ONNX embedding model directory")
	fmt.Println("  MODERATOR_DATA_DIR          Directory with optional seeds.yaml overrides")
	fmt.Println("  MODERATOR_CACHE_URL         Redis URL for verdict caching")
	fmt.Println("  MODERATOR_AUDIT_DSN         Postgres DSN for the audit trail")
}

// ============================================================================
// HTTP Server Mode
// ============================================================================

func runHTTPServer(cfg *config.Config) {
	cfg.MustValidate()
	ctx := context.Background()

	mod, err := moderation.New(ctx, cfg)
	if err != nil {
		log.Fatalf("[STARTUP] failed to build moderator: %v", err)
	}

	cache := store.NewVerdictCache(ctx, cfg.CacheURL, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	audit := store.NewAuditLog(ctx, cfg.AuditDSN)
	metrics := telemetry.Global()

	app := fiber.New(fiber.Config{
		AppName: "Finance Moderator",
	})

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":           "ok",
			"version":          Version,
			"semantic_enabled": mod.SemanticEnabled(),
			"analyzer_enabled": mod.AnalyzerEnabled(),
			"cache_enabled":    cache.Enabled(),
			"audit_enabled":    audit.Enabled(),
			"metrics":          metrics.Read(),
		})
	})

	app.Post("/v1/moderate", func(c fiber.Ctx) error {
		var req struct {
			Text string `json:"text"`
		}
		if err := c.Bind().Body(&req); err != nil {
			metrics.RecordError()
			return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
		}

		requestID := uuid.New()

		if verdict, ok := cache.Get(c.Context(), req.Text); ok {
			metrics.RecordCacheHit()
			return c.JSON(fiber.Map{
				"request_id": requestID.String(),
				"cached":     true,
				"result":     verdict,
			})
		}

		verdict := mod.Evaluate(c.Context(), req.Text)
		metrics.RecordVerdict(verdict.Action, verdict.ElapsedMS)

		cache.Set(c.Context(), req.Text, verdict)
		audit.Record(c.Context(), requestID, req.Text, verdict)

		return c.JSON(fiber.Map{
			"request_id": requestID.String(),
			"cached":     false,
			"result":     verdict,
		})
	})

	app.Post("/v1/moderate/batch", func(c fiber.Ctx) error {
		var req struct {
			Texts []string `json:"texts"`
		}
		if err := c.Bind().Body(&req); err != nil {
			metrics.RecordError()
			return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
		}
		if len(req.Texts) == 0 {
			return c.Status(400).JSON(fiber.Map{"error": "texts field is required"})
		}
		if len(req.Texts) > maxBatchSize {
			return c.Status(400).JSON(fiber.Map{
				"error": fmt.Sprintf("batch too large, max %d", maxBatchSize),
			})
		}

		requestID := uuid.New()
		verdicts := mod.EvaluateBatch(c.Context(), req.Texts)
		for i, verdict := range verdicts {
			metrics.RecordVerdict(verdict.Action, verdict.ElapsedMS)
			audit.Record(c.Context(), requestID, req.Texts[i], verdict)
		}

		return c.JSON(fiber.Map{
			"request_id": requestID.String(),
			"count":      len(verdicts),
			"results":    verdicts,
		})
	})

	log.Printf("[STARTUP] Finance Moderator v%s listening on :%s", Version, cfg.Port)
	log.Printf("Endpoints:")
	log.Printf("  GET  /health              - Health and metrics")
	log.Printf("  POST /v1/moderate         - Moderate one message")
	log.Printf("  POST /v1/moderate/batch   - Moderate up to %d messages", maxBatchSize)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// ============================================================================
// CLI Mode
// ============================================================================

func runCLICheck(text string) {
	cfg := config.NewDefaultConfig()
	cfg.MustValidate()

	mod, err := moderation.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to build moderator: %v", err)
	}

	verdict := mod.Evaluate(context.Background(), text)
	printVerdict(text, verdict)

	output, _ := json.MarshalIndent(verdict, "", "  ")
	fmt.Println(string(output))
}

func runCLIBatch(path string) {
	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("cannot open %s: %v", path, err)
	}
	defer file.Close()

	cfg := config.NewDefaultConfig()
	cfg.MustValidate()

	mod, err := moderation.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to build moderator: %v", err)
	}

	var texts []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("reading %s: %v", path, err)
	}

	verdicts := mod.EvaluateBatch(context.Background(), texts)

	allowed, flagged, blocked := 0, 0, 0
	for i, verdict := range verdicts {
		printVerdict(texts[i], verdict)
		switch verdict.Action {
		case moderation.ActionAllow:
			allowed++
		case moderation.ActionFlag:
			flagged++
		case moderation.ActionBlock:
			blocked++
		}
	}

	fmt.Println()
	fmt.Printf("%d messages: %s %d  %s %d  %s %d\n",
		len(verdicts),
		color.GreenString("allowed"), allowed,
		color.YellowString("flagged"), flagged,
		color.RedString("blocked"), blocked)
}

func printVerdict(text string, verdict moderation.Verdict) {
	label := color.GreenString("ALLOW")
	switch verdict.Action {
	case moderation.ActionFlag:
		label = color.YellowString("FLAG ")
	case moderation.ActionBlock:
		label = color.RedString("BLOCK")
	}

	preview := text
	if len(preview) > 60 {
		preview = preview[:60] + "..."
	}
	fmt.Printf("%s  risk=%.3f  %s\n", label, verdict.RiskScore, preview)
	if verdict.Explanation != "" && verdict.Action != moderation.ActionAllow {
		fmt.Printf("       %s\n", verdict.Explanation)
	}
}
