package static

import (
	"bytes"
	"html/template"
	"net/url"
	"path"
	"sort"
)

var listingTemplate = template.Must(template.New("listing").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Directory listing for {{.Dir}}</title></head>
<body>
<h1>Directory listing for {{.Dir}}</h1>
<hr>
<ul>
{{- range .Entries}}
<li><a href="{{.Href}}">{{.Label}}</a></li>
{{- end}}
</ul>
<hr>
</body>
</html>
`))

type listingLine struct {
	Href  string
	Label string
}

// renderListing renders the entries of dir as an HTML page. Directories are
// suffixed with a slash.
func renderListing(dir string, entries []Entry) ([]byte, error) {
	sorted := append([]Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	lines := make([]listingLine, 0, len(sorted))
	for _, e := range sorted {
		label := e.Name
		if e.IsDir {
			label += "/"
		}
		href := (&url.URL{Path: path.Join(dir, e.Name) + trailing(e.IsDir)}).EscapedPath()
		lines = append(lines, listingLine{Href: href, Label: label})
	}

	var buf bytes.Buffer
	err := listingTemplate.Execute(&buf, struct {
		Dir     string
		Entries []listingLine
	}{Dir: dir, Entries: lines})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func trailing(isDir bool) string {
	if isDir {
		return "/"
	}
	return ""
}
