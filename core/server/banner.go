package server

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	rule    = strings.Repeat("=", 60)
	title   = color.New(color.FgCyan, color.Bold)
	label   = color.New(color.Bold)
	link    = color.New(color.FgGreen)
	hint    = color.New(color.FgYellow)
	warning = color.New(color.FgRed)
)

// printBanner writes the startup banner for the running server.
func printBanner(w io.Writer, root, url, backend string) {
	fmt.Fprintln(w, rule)
	title.Fprintln(w, "Frontend Development Server")
	fmt.Fprintln(w, rule)
	if root != "" {
		fmt.Fprintf(w, "%s %s\n", label.Sprint("Serving files from:"), root)
	}
	fmt.Fprintf(w, "%s %s\n", label.Sprint("Server running at: "), link.Sprint(url))
	fmt.Fprintln(w, rule)
	if backend != "" {
		hint.Fprintf(w, "Make sure the backend API is running on %s\n", backend)
	}
	fmt.Fprintln(w, "Press Ctrl+C to stop the server")
	fmt.Fprintln(w, rule)
}

func printBrowserResult(w io.Writer, url string, err error) {
	if err != nil {
		warning.Fprintf(w, "Could not open browser automatically: %v\n", err)
		fmt.Fprintf(w, "   Please open %s manually\n", url)
		return
	}
	fmt.Fprintln(w, "Browser opened automatically")
}
