package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func pagingFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendString("ok")
	})
	req := httptest.NewRequest("GET", target, nil)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return got
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		wantPage    int
		wantPerPage int
		wantOffset  int
	}{
		{name: "defaults", target: "/x", wantPage: 1, wantPerPage: 20, wantOffset: 0},
		{name: "pagina 3", target: "/x?page=3&per_page=10", wantPage: 3, wantPerPage: 10, wantOffset: 20},
		{name: "alias limit", target: "/x?limit=5", wantPage: 1, wantPerPage: 5, wantOffset: 0},
		{name: "teto", target: "/x?per_page=9999", wantPage: 1, wantPerPage: 100, wantOffset: 0},
		{name: "valores invalidos", target: "/x?page=-2&per_page=abc", wantPage: 1, wantPerPage: 20, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagingFor(t, tt.target, 20, 100)
			if p.Page != tt.wantPage || p.PerPage != tt.wantPerPage || p.Offset != tt.wantOffset {
				t.Errorf("Paging = %+v, quer page=%d per_page=%d offset=%d",
					p, tt.wantPage, tt.wantPerPage, tt.wantOffset)
			}
		})
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	if p.TotalPages != 3 {
		t.Errorf("TotalPages = %d, quer 3", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("página do meio deveria ter next e prev: %+v", p)
	}

	vazio := BuildPaginationFromPage(0, 1, 20)
	if vazio.TotalPages != 1 || vazio.HasNext || vazio.HasPrev {
		t.Errorf("total zero deveria render 1 página sem navegação: %+v", vazio)
	}
}
