package middleware

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/yky-hub/yky_hub/internal/logging"
)

func setupTestApp(t *testing.T) (*fiber.App, *redis.Client, *atomic.Int64, func()) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	app := fiber.New()
	logger := logging.Discard()
	app.Use(Idempotency(cache, time.Minute, logger))

	var hits atomic.Int64
	app.Post("/checkout", func(c *fiber.Ctx) error {
		hits.Add(1)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session_id": "sess_1"})
	})

	cleanup := func() {
		cache.Close()
		mr.Close()
	}

	return app, cache, &hits, cleanup
}

func TestIdempotencyPassThroughWithoutHeader(t *testing.T) {
	app, _, hits, cleanup := setupTestApp(t)
	defer cleanup()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(fiber.MethodPost, "/checkout", strings.NewReader("{}"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("expected %d got %d", fiber.StatusCreated, resp.StatusCode)
		}
	}
	if hits.Load() != 2 {
		t.Fatalf("expected handler to run twice without a key, ran %d times", hits.Load())
	}
}

func TestIdempotencyReturnsCachedResponse(t *testing.T) {
	app, _, hits, cleanup := setupTestApp(t)
	defer cleanup()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(fiber.MethodPost, "/checkout", strings.NewReader("{}"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(idempotencyKeyHeader, "abc123")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("request %d: expected %d got %d", i, fiber.StatusCreated, resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), "sess_1") {
			t.Fatalf("request %d: unexpected body %s", i, body)
		}
	}

	if hits.Load() != 1 {
		t.Fatalf("expected handler to run once, ran %d times", hits.Load())
	}
}

func TestIdempotencyConflictWhileInProgress(t *testing.T) {
	app, cache, hits, cleanup := setupTestApp(t)
	defer cleanup()

	// Another request holds the reservation: SetNX loses and the marker is
	// still present, so the duplicate must get 409 without running the handler.
	if err := cache.Set(context.Background(), idempotencyPrefix+"abc123", inProgressMarker, time.Minute).Err(); err != nil {
		t.Fatalf("seed marker: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodPost, "/checkout", strings.NewReader("{}"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(idempotencyKeyHeader, "abc123")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected %d got %d", fiber.StatusConflict, resp.StatusCode)
	}
	if hits.Load() != 0 {
		t.Fatalf("handler must not run while a duplicate is in flight, ran %d times", hits.Load())
	}
}

func TestIdempotencyIgnoresGET(t *testing.T) {
	app, _, _, cleanup := setupTestApp(t)
	defer cleanup()

	app.Get("/status", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest(fiber.MethodGet, "/status", nil)
	req.Header.Set(idempotencyKeyHeader, "abc123")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
}
