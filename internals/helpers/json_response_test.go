package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestResolvePaging(t *testing.T) {
	var got Paging

	app := fiber.New()
	app.Get("/list", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendString("ok")
	})

	cases := []struct {
		name string
		url  string
		want Paging
	}{
		{"defaults", "/list", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"page and per_page", "/list?page=3&per_page=10", Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{"limit alias", "/list?limit=5", Paging{Page: 1, PerPage: 5, Offset: 0, Limit: 5}},
		{"capped at max", "/list?per_page=500", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"garbage falls back", "/list?page=zero&per_page=-3", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := app.Test(httptest.NewRequest("GET", tc.url, nil)); err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if got != tc.want {
				t.Fatalf("paging = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	if p.TotalPages != 3 {
		t.Fatalf("total_pages = %d, want 3", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("page 2 of 3 should have both neighbors: %+v", p)
	}

	empty := BuildPaginationFromPage(0, 1, 20)
	if empty.TotalPages != 1 || empty.HasNext || empty.HasPrev {
		t.Fatalf("empty result should collapse to one page: %+v", empty)
	}
}
