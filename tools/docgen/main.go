// Command docgen renders the markdown files in docs/ into a static HTML site.
// It is a release helper, not part of the prayer-counter binary.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// NavItem is a single navigation link in the rendered site.
type NavItem struct {
	Title  string
	Href   string
	Active bool
}

// PageData is the template data for rendering a docs page.
type PageData struct {
	Title   string
	Nav     []NavItem
	Content template.HTML
}

func main() {
	docsDir := flag.String("docs", "docs", "path to docs directory")
	outDir := flag.String("out", "site", "output directory")
	tmplPath := flag.String("template", "", "path to template (default: <docs>/_template.html)")
	flag.Parse()

	if *tmplPath == "" {
		*tmplPath = filepath.Join(*docsDir, "_template.html")
	}

	tmplData, err := os.ReadFile(*tmplPath)
	if err != nil {
		fatal("reading template: %v", err)
	}
	tmpl, err := template.New("page").Parse(string(tmplData))
	if err != nil {
		fatal("parsing template: %v", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Linkify,
			extension.Strikethrough,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	pages, err := collectPages(*docsDir)
	if err != nil {
		fatal("listing docs: %v", err)
	}
	if len(pages) == 0 {
		fatal("no markdown files found in %s", *docsDir)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatal("creating %s: %v", *outDir, err)
	}

	for _, page := range pages {
		mdData, err := os.ReadFile(filepath.Join(*docsDir, page))
		if err != nil {
			fatal("reading %s: %v", page, err)
		}

		var contentBuf bytes.Buffer
		if err := md.Convert(mdData, &contentBuf); err != nil {
			fatal("converting %s: %v", page, err)
		}

		title := extractTitle(string(mdData))
		if title == "" {
			title = strings.TrimSuffix(page, ".md")
		}

		data := PageData{
			Title:   title,
			Nav:     buildNav(pages, page),
			Content: template.HTML(contentBuf.String()),
		}

		var pageBuf bytes.Buffer
		if err := tmpl.Execute(&pageBuf, data); err != nil {
			fatal("executing template for %s: %v", page, err)
		}

		outFile := filepath.Join(*outDir, htmlName(page))
		if err := os.WriteFile(outFile, pageBuf.Bytes(), 0o644); err != nil {
			fatal("writing %s: %v", outFile, err)
		}

		fmt.Printf("  generated %s\n", htmlName(page))
	}

	fmt.Printf("\n  %d pages generated\n", len(pages))
}

// collectPages lists the markdown files in the docs directory, index first.
func collectPages(docsDir string) ([]string, error) {
	entries, err := os.ReadDir(docsDir)
	if err != nil {
		return nil, err
	}

	var pages []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".md") || strings.HasPrefix(name, "_") {
			continue
		}
		pages = append(pages, name)
	}
	sort.Slice(pages, func(i, j int) bool {
		if pages[i] == "index.md" {
			return true
		}
		if pages[j] == "index.md" {
			return false
		}
		return pages[i] < pages[j]
	})
	return pages, nil
}

func buildNav(pages []string, current string) []NavItem {
	nav := make([]NavItem, len(pages))
	for i, p := range pages {
		nav[i] = NavItem{
			Title:  navTitle(p),
			Href:   htmlName(p),
			Active: p == current,
		}
	}
	return nav
}

func navTitle(page string) string {
	name := strings.TrimSuffix(page, ".md")
	if name == "index" {
		return "Home"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func htmlName(page string) string {
	if page == "index.md" {
		return "index.html"
	}
	return strings.TrimSuffix(page, ".md") + ".html"
}

// extractTitle extracts the text from the first # heading in markdown.
func extractTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimPrefix(trimmed, "# ")
		}
	}
	return ""
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "docgen: "+format+"\n", args...)
	os.Exit(1)
}
