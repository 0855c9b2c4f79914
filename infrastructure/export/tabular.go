package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"os"
	"strings"
)

// writeCSV writes the scene's flattened rows.
func writeCSV(path string, sc *scene) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, row := range sc.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// writeHTML wraps the SVG rendition and the raw chart JSON in a minimal
// standalone page.
func writeHTML(path string, sc *scene, result any) error {
	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<meta charset=\"utf-8\">\n<title>%s</title>\n", html.EscapeString(sc.Title))
	b.WriteString("<style>body{font-family:sans-serif;margin:2rem}pre{background:#f6f6f6;padding:1rem;overflow:auto}</style>\n")
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(sc.Title))
	b.WriteString(svgDocument(sc))
	b.WriteString("\n<h2>Chart data</h2>\n<pre id=\"chart-data\">")
	b.WriteString(html.EscapeString(string(raw)))
	b.WriteString("</pre>\n</body>\n</html>\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
