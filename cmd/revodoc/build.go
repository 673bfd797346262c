package main

import (
	"embed"
	"fmt"
	"html"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/revoapp/revodoc"
)

//go:embed templates/page.gohtml
var templateFS embed.FS

// pageData feeds the page template. Content is pre-rendered HTML.
type pageData struct {
	Title   string
	Note    string
	Content template.HTML
}

// categoryOrder fixes the section order on the troubleshooting page.
var categoryOrder = []revodoc.Category{
	revodoc.CategoryWindows,
	revodoc.CategoryMacOS,
	revodoc.CategoryMacro,
	revodoc.CategoryPro,
}

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	tmpl, err := template.ParseFS(templateFS, "templates/page.gohtml")
	if err != nil {
		return fmt.Errorf("failed to parse page template: %w", err)
	}

	if err := os.MkdirAll(c.Out, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	pages := []struct {
		file string
		data pageData
	}{
		{"guide.html", pageData{
			Title:   "Guide",
			Content: template.HTML(revodoc.RenderMarkdown(deps.Renderer, guideMarkdown)),
		}},
		{"changelog.html", c.changelogPage(deps)},
		{"troubleshooting.html", c.troubleshootingPage(deps)},
	}

	for _, page := range pages {
		if err := writePage(tmpl, filepath.Join(c.Out, page.file), page.data); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "wrote %s\n", filepath.Join(c.Out, page.file))
	}

	return nil
}

func (c *BuildCmd) changelogPage(deps *Dependencies) pageData {
	page := pageData{Title: "Changelog"}

	releases, outcome := deps.Client.Releases(deps.Ctx)
	switch outcome {
	case revodoc.ServedNone:
		page.Content = template.HTML("<p>Release data is unavailable. Check your connection and rebuild.</p>")
		return page
	case revodoc.ServedStale:
		page.Note = "Showing cached releases; the update server could not be reached."
	}

	var b strings.Builder
	for _, release := range releases {
		b.WriteString("<article>\n")
		b.WriteString("<h2>" + html.EscapeString(release.DisplayName()) + "</h2>\n")
		if !release.PublishedAt.IsZero() {
			b.WriteString("<p>" + release.PublishedAt.Format("2006-01-02") + "</p>\n")
		}
		if release.Body != "" {
			b.WriteString(revodoc.RenderMarkdown(deps.Renderer, release.Body))
		}
		b.WriteString("</article>\n")
	}
	if len(releases) == 0 {
		b.WriteString("<p>No releases published yet.</p>\n")
	}

	page.Content = template.HTML(b.String())
	return page
}

func (c *BuildCmd) troubleshootingPage(deps *Dependencies) pageData {
	page := pageData{Title: "Troubleshooting"}

	issues, outcome := deps.Client.TroubleshootingIssues(deps.Ctx, c.Labels)
	switch outcome {
	case revodoc.ServedNone:
		page.Content = template.HTML("<p>Troubleshooting data is unavailable. Check your connection and rebuild.</p>")
		return page
	case revodoc.ServedStale:
		page.Note = "Showing cached fixes; the update server could not be reached."
	}

	fixes := revodoc.NormalizeIssues(issues)

	var b strings.Builder
	for _, category := range categoryOrder {
		matched := revodoc.FilterFixes(fixes, revodoc.FixFilter{Category: category})
		if len(matched) == 0 {
			continue
		}
		b.WriteString("<section>\n")
		b.WriteString("<h2>" + html.EscapeString(string(category)) + "</h2>\n")
		for _, fix := range matched {
			b.WriteString("<article>\n")
			b.WriteString(fmt.Sprintf("<h3>#%d %s</h3>\n", fix.Number, html.EscapeString(fix.Title)))
			if fix.Body != "" {
				b.WriteString(revodoc.RenderMarkdown(deps.Renderer, fix.Body))
			}
			if fix.HTMLURL != "" {
				b.WriteString(fmt.Sprintf("<p><a href=%q>Full discussion</a></p>\n", fix.HTMLURL))
			}
			b.WriteString("</article>\n")
		}
		b.WriteString("</section>\n")
	}
	if len(fixes) == 0 {
		b.WriteString("<p>No known fixes.</p>\n")
	}

	page.Content = template.HTML(b.String())
	return page
}

func writePage(tmpl *template.Template, path string, data pageData) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := tmpl.Execute(f, data); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return f.Close()
}
