package render

import (
	"bytes"
	"html/template"
	"strings"

	"dailytake/internal/model"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
    body { font-family: Arial, sans-serif; padding: 15px; background: #f8f9fa; }
    h2 { color: #2c3e50; }
    h3 { color: #34495e; border-bottom: 1px solid #ddd; padding-bottom: 5px; }
    p { line-height: 1.6; }
    .agent { margin-bottom: 25px; background: white; padding: 15px; border-radius: 8px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
</style>
</head>
<body>
    <h2>Daily Portfolio Analyses - {{.Today}}</h2>
{{- if .Result.Failed}}
    <p style="color:red;">{{.Result.FailureReason}}</p>
{{- else}}
{{- range .Result.Analyses}}
    <div class="agent">
        <h3>{{.PersonaName}}'s View</h3>
        <p>{{nl2br .Text}}</p>
    </div>
{{- end}}
{{- end}}
</body>
</html>
`

var page = template.Must(
	template.New("widget").Funcs(template.FuncMap{"nl2br": nl2br}).Parse(pageTemplate),
)

type pageData struct {
	Result *model.DailyResult
	Today  string
}

// Render builds the widget page for one day's result. Pure: same inputs,
// same bytes.
func Render(result *model.DailyResult, today string) ([]byte, error) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, pageData{Result: result, Today: today}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// nl2br escapes s and then converts newlines to <br> tags. Escaping happens
// first, so provider text can never smuggle markup past it.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
