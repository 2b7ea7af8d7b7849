package render

import (
	"html/template"
	"strings"

	"github.com/five82/notilog/internal/logs"
)

var documentTmpl = template.Must(template.New("log").Parse(
	`<html><head></head><body><pre>` +
		`{{range .}}<span style='color:{{.Color}};'>{{.Time}} {{.Tag}} {{.Text}}</span><br/>{{end}}` +
		`</pre></body></html>`,
))

type htmlRow struct {
	Color template.CSS
	Time  string
	Tag   string
	Text  string
}

// HTML renders every entry of view, in order, as one styled document. An empty
// view yields a document with no rows.
func HTML(view []logs.Entry) string {
	rows := make([]htmlRow, 0, len(view))
	for _, e := range view {
		rows = append(rows, htmlRow{
			Color: template.CSS(Color(e.Level)),
			Time:  Timestamp(e.Time),
			Tag:   TagField(e.Tag),
			Text:  e.Text,
		})
	}

	var b strings.Builder
	if err := documentTmpl.Execute(&b, rows); err != nil {
		// Only a writer failure can get here and strings.Builder does not fail.
		return ""
	}
	return b.String()
}
