package handler

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"seoagent-go/pkg/export"
	"seoagent-go/pkg/logger"
	"seoagent-go/pkg/research"
)

// Handler exposes the research agent over HTTP. Thin marshalling only: the
// engine's own validation decides what is a client error.
type Handler struct {
	agent *research.Agent
	log   *logger.Logger
}

func NewHandler(agent *research.Agent) *Handler {
	return &Handler{
		agent: agent,
		log:   logger.GetLogger().WithComponent("http_handler"),
	}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.Index)
	app.Get("/health", h.Health)

	api := app.Group("/api")
	api.Post("/research", h.Research)
	api.Post("/batch-research", h.BatchResearch)
	api.Post("/export/csv", h.ExportCSV)
	api.Post("/export/json", h.ExportJSON)
}

// researchRequest mirrors the engine request with HTTP-friendly defaults.
type researchRequest struct {
	SeedKeyword      string `json:"seed_keyword"`
	MaxKeywords      int    `json:"max_keywords"`
	Country          string `json:"country"`
	IncludeQuestions *bool  `json:"include_questions"`
	IncludeLongTail  *bool  `json:"include_long_tail"`
}

func (r researchRequest) toEngineRequest() research.Request {
	includeQuestions := true
	if r.IncludeQuestions != nil {
		includeQuestions = *r.IncludeQuestions
	}
	includeLongTail := true
	if r.IncludeLongTail != nil {
		includeLongTail = *r.IncludeLongTail
	}
	return research.Request{
		Seed:             r.SeedKeyword,
		MaxKeywords:      r.MaxKeywords,
		Country:          r.Country,
		IncludeQuestions: includeQuestions,
		IncludeLongTail:  includeLongTail,
	}
}

type batchRequest struct {
	SeedKeywords    []string `json:"seed_keywords"`
	MaxKeywordsEach int      `json:"max_keywords_each"`
	Country         string   `json:"country"`
}

// Health reports service liveness.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Research handles POST /api/research.
func (h *Handler) Research(c *fiber.Ctx) error {
	result, err := h.runResearch(c)
	if err != nil || result == nil {
		return err
	}
	return c.JSON(result)
}

// BatchResearch handles POST /api/batch-research.
func (h *Handler) BatchResearch(c *fiber.Ctx) error {
	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(req.SeedKeywords) == 0 {
		return badRequest(c, "seed_keywords cannot be empty")
	}
	if req.MaxKeywordsEach <= 0 {
		req.MaxKeywordsEach = 25
	}

	results, err := h.agent.BatchResearch(c.Context(), req.SeedKeywords, req.MaxKeywordsEach, req.Country)
	if err != nil {
		h.log.WithError(err).Error("Batch research failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(results)
}

// ExportCSV handles POST /api/export/csv, streaming the result as a CSV
// attachment.
func (h *Handler) ExportCSV(c *fiber.Ctx) error {
	result, err := h.runResearch(c)
	if err != nil || result == nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, result); err != nil {
		h.log.WithError(err).Error("CSV export failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filename := fmt.Sprintf("keywords_%s.csv", strings.ReplaceAll(result.SeedKeyword, " ", "_"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}

// ExportJSON handles POST /api/export/json.
func (h *Handler) ExportJSON(c *fiber.Ctx) error {
	result, err := h.runResearch(c)
	if err != nil || result == nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, result); err != nil {
		h.log.WithError(err).Error("JSON export failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filename := fmt.Sprintf("keywords_%s.json", strings.ReplaceAll(result.SeedKeyword, " ", "_"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}

// runResearch parses the common research request and executes the pipeline.
// Error responses are written here; a nil result with a nil error means the
// response has already been sent.
func (h *Handler) runResearch(c *fiber.Ctx) (*research.Result, error) {
	var req researchRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, badRequest(c, "invalid request body")
	}
	if strings.TrimSpace(req.SeedKeyword) == "" {
		return nil, badRequest(c, "seed_keyword cannot be empty")
	}

	result, err := h.agent.ResearchKeywords(c.Context(), req.toEngineRequest())
	if err != nil {
		h.log.WithError(err).WithField("seed", req.SeedKeyword).Error("Research failed")
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return result, nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
