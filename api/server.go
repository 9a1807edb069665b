package api

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"weather-widget/models"
	"weather-widget/view"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// widgetTimeout bounds how long a handler waits on the widget loop
const widgetTimeout = 2 * time.Second

// Server serves the widget page and its JSON API
type Server struct {
	widget *view.Widget
	app    *fiber.App
	port   int
}

// lookupRequest is the body of POST /api/lookup
type lookupRequest struct {
	City string `json:"city"`
}

// pageData feeds pageTemplate
type pageData struct {
	view.Panel
	SearchIcon      models.Icon
	TemperatureIcon models.Icon
}

// NewServer creates a new web server in front of a running widget. Icons come
// from assetsDir, or from the embedded set when assetsDir is empty
func NewServer(widget *view.Widget, port int, assetsDir string) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "weather-widget",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	s := &Server{widget: widget, app: app, port: port}

	// Page
	app.Get("/", s.handleIndex)
	app.Post("/search", s.handleSearch)
	app.Use("/assets", assetsHandler(assetsDir))

	// JSON API
	api := app.Group("/api", cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	api.Get("/health", s.handleHealthCheck)
	api.Get("/state", s.handleGetState)
	api.Post("/lookup", s.handleLookup)

	return s
}

// App exposes the fiber app, mainly for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Start begins serving and blocks until the server stops
func (s *Server) Start() error {
	log.Printf("Starting web server on :%d", s.port)
	return s.app.Listen(fmt.Sprintf(":%d", s.port))
}

// Shutdown stops accepting connections and waits for handlers to finish
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

// handleIndex renders the widget page
func (s *Server) handleIndex(c *fiber.Ctx) error {
	panel, err := s.panel(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	data := pageData{Panel: panel, SearchIcon: models.SearchIcon, TemperatureIcon: models.TemperatureIcon}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// handleSearch submits the form's city and sends the browser back to the page
func (s *Server) handleSearch(c *fiber.Ctx) error {
	if err := s.submit(c, c.FormValue("city")); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// handleLookup submits a lookup from JSON and returns the loading panel
func (s *Server) handleLookup(c *fiber.Ctx) error {
	var req lookupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.submit(c, req.City); err != nil {
		return err
	}

	panel, err := s.panel(c)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"city":  strings.TrimSpace(req.City),
		"panel": panel,
	})
}

// handleGetState returns the current panel
func (s *Server) handleGetState(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), widgetTimeout)
	defer cancel()

	snap, err := s.widget.State(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Widget is not running")
	}
	return c.JSON(fiber.Map{
		"seq":   snap.Seq,
		"panel": view.Render(snap),
	})
}

// handleHealthCheck handles health check requests
func (s *Server) handleHealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "weather-widget",
	})
}

func (s *Server) submit(c *fiber.Ctx, city string) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), widgetTimeout)
	defer cancel()

	if err := s.widget.Submit(ctx, city); err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Widget is not running")
	}
	return nil
}

func (s *Server) panel(c *fiber.Ctx) (view.Panel, error) {
	ctx, cancel := context.WithTimeout(c.UserContext(), widgetTimeout)
	defer cancel()

	snap, err := s.widget.State(ctx)
	if err != nil {
		return view.Panel{}, fiber.NewError(fiber.StatusServiceUnavailable, "Widget is not running")
	}
	return view.Render(snap), nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("Request %s %s failed: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
