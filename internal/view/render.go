// Package view turns resolved section content into safe HTML fragments for
// the public site.
package view

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stylencms/internal/content"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// embedSrcPattern limits iframes in html sections to map and video embeds.
var embedSrcPattern = regexp.MustCompile(
	`^https://(?:www\.)?(?:google\.com/maps/embed|youtube\.com/embed/|youtube-nocookie\.com/embed/)`,
)

// Renderer converts section text to HTML.
type Renderer struct {
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

// NewRenderer 构造带 GFM 扩展和内容白名单的渲染器。
func NewRenderer() *Renderer {
	return &Renderer{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
			goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
		),
		policy: buildSectionPolicy(),
	}
}

func buildSectionPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("iframe")
	policy.AllowAttrs("src").Matching(embedSrcPattern).OnElements("iframe")
	policy.AllowAttrs("title", "width", "height", "allowfullscreen", "frameborder", "loading", "referrerpolicy").OnElements("iframe")
	policy.AllowAttrs("class").Globally()
	return policy
}

// Markdown renders src as sanitised HTML.
func (r *Renderer) Markdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// HTML sanitises editor supplied markup.
func (r *Renderer) HTML(src string) template.HTML {
	return template.HTML(r.policy.Sanitize(src))
}

// Section is one section ready for the public site.
type Section struct {
	ID      string              `json:"id"`
	Type    content.SectionType `json:"type"`
	Content content.Content     `json:"content"`
	HTML    template.HTML       `json:"html,omitempty"`
}

// RenderSection pairs resolved content with its HTML. Only text and html
// sections produce markup; other types are rendered by the client from
// Content alone.
func (r *Renderer) RenderSection(s content.Section, resolved content.Content) (Section, error) {
	out := Section{ID: s.ID, Type: s.Type, Content: resolved}

	switch s.Type {
	case content.SectionText:
		rendered, err := r.Markdown(resolved.String("text"))
		if err != nil {
			return Section{}, err
		}
		out.HTML = rendered
	case content.SectionHTML:
		out.HTML = r.HTML(resolved.String("html"))
	}
	return out, nil
}
