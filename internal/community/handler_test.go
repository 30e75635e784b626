package community

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeApp(handler *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			c.Locals("user_id", v)
			c.Locals("user_name", c.Get("X-User-Name"))
		}
		return c.Next()
	})
	app.Post("/api/community/post", handler.CreatePost)
	app.Get("/api/community/feed", handler.Feed)
	return app
}

func TestCreatePostAndFeed(t *testing.T) {
	handler := NewHandler(NewService(NewMemoryRepository()))
	app := makeApp(handler)

	body := `{"content":"Gate 34 is lighting up today","category":"gate_activation"}`
	req := httptest.NewRequest("POST", "/api/community/post", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set("X-User-ID", "user-1")
	req.Header.Set("X-User-Name", "Aroha")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	feedReq := httptest.NewRequest("GET", "/api/community/feed?category=gate_activation", nil)
	feedResp, err := app.Test(feedReq)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	raw, _ := io.ReadAll(feedResp.Body)

	var feed struct {
		Posts []struct {
			UserName string `json:"user_name"`
			Content  string `json:"content"`
			Category string `json:"category"`
			Likes    int    `json:"likes"`
		} `json:"posts"`
	}
	if err := json.Unmarshal(raw, &feed); err != nil {
		t.Fatalf("decode feed: %v (%s)", err, raw)
	}
	if len(feed.Posts) != 1 {
		t.Fatalf("expected one post, got %d", len(feed.Posts))
	}
	if feed.Posts[0].UserName != "Aroha" || feed.Posts[0].Likes != 0 {
		t.Fatalf("unexpected post: %+v", feed.Posts[0])
	}
}

func TestCreatePostRequiresContent(t *testing.T) {
	handler := NewHandler(NewService(NewMemoryRepository()))
	app := makeApp(handler)

	req := httptest.NewRequest("POST", "/api/community/post", strings.NewReader(`{"content":"  "}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set("X-User-ID", "user-1")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty content, got %d", resp.StatusCode)
	}
}

func TestFeedCategoryFilterAndLimit(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	handler := NewHandler(svc)
	app := makeApp(handler)

	for i := 0; i < 25; i++ {
		category := "general"
		if i%2 == 0 {
			category = "transit"
		}
		body := `{"content":"post","category":"` + category + `"}`
		req := httptest.NewRequest("POST", "/api/community/post", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set("X-User-ID", "user-1")
		if _, err := app.Test(req); err != nil {
			t.Fatalf("seed post %d: %v", i, err)
		}
	}

	cases := []struct {
		url  string
		want int
	}{
		{"/api/community/feed", 20},          // default limit
		{"/api/community/feed?limit=5", 5},   // explicit limit
		{"/api/community/feed?category=transit&limit=100", 13},
		{"/api/community/feed?category=all&limit=100", 25},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.url, nil))
		if err != nil {
			t.Fatalf("%s: %v", tc.url, err)
		}
		raw, _ := io.ReadAll(resp.Body)
		var feed struct {
			Posts []json.RawMessage `json:"posts"`
		}
		if err := json.Unmarshal(raw, &feed); err != nil {
			t.Fatalf("%s: decode: %v", tc.url, err)
		}
		if len(feed.Posts) != tc.want {
			t.Fatalf("%s: expected %d posts, got %d", tc.url, tc.want, len(feed.Posts))
		}
	}
}
