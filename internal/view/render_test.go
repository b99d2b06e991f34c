package view

import (
	"strings"
	"testing"

	"github.com/stylencms/internal/content"
)

func TestMarkdownRendersAndSanitizes(t *testing.T) {
	r := NewRenderer()

	out, err := r.Markdown("**Cork** sheets\n\n<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("Markdown returned error: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, "<strong>Cork</strong>") {
		t.Fatalf("expected bold text, got %s", got)
	}
	if strings.Contains(got, "<script") {
		t.Fatalf("expected script to be removed, got %s", got)
	}

	if empty, _ := r.Markdown("   "); empty != "" {
		t.Fatalf("expected empty output, got %q", empty)
	}
}

func TestHTMLKeepsMapEmbedsOnly(t *testing.T) {
	r := NewRenderer()

	kept := string(r.HTML(`<iframe src="https://www.google.com/maps/embed?pb=abc" loading="lazy"></iframe>`))
	if !strings.Contains(kept, `src="https://www.google.com/maps/embed?pb=abc"`) {
		t.Fatalf("expected map iframe to survive, got %s", kept)
	}

	dropped := string(r.HTML(`<iframe src="https://evil.example.com/x"></iframe><p onclick="x()">Hi</p>`))
	if strings.Contains(dropped, "evil.example.com") || strings.Contains(dropped, "onclick") {
		t.Fatalf("expected unsafe markup to be removed, got %s", dropped)
	}
}

func TestRenderSection(t *testing.T) {
	r := NewRenderer()

	text := content.Section{ID: "about", Type: content.SectionText}
	got, err := r.RenderSection(text, content.Content{"text": "Since *1998*"})
	if err != nil {
		t.Fatalf("RenderSection returned error: %v", err)
	}
	if !strings.Contains(string(got.HTML), "<em>1998</em>") {
		t.Fatalf("unexpected html %s", got.HTML)
	}

	hero := content.Section{ID: "hero", Type: content.SectionHero}
	got, err = r.RenderSection(hero, content.Content{"title": "x"})
	if err != nil {
		t.Fatalf("RenderSection returned error: %v", err)
	}
	if got.HTML != "" || got.Content["title"] != "x" {
		t.Fatalf("unexpected hero render %+v", got)
	}
}
