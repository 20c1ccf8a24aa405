// Package phoenix holds the tooling around the Phoenix UI design system:
// documentation generation and a class linter for Go and templ sources.
//
// The components themselves live in package ui, the class utilities in
// packages style, merge and variant.
//
// # Documentation
//
// Render a story page and a guide for every catalog component:
//
//	result, err := phoenix.GenerateDocs(phoenix.DocsConfig{
//		OutputDir:  "docs/components",
//		Components: []string{"*"},
//	})
//
// # Linting
//
// Check ui: class usage in Go and templ files:
//
//	result, err := phoenix.Lint(phoenix.LintConfig{
//		ScanPaths:   []string{"internal/**/*.{templ,go}"},
//		Stylesheets: []string{"web/static/ui.css"},
//	})
//
// # CLI
//
//	go install github.com/phoenix-ui/phoenix/cmd/phoenix@latest
package phoenix
