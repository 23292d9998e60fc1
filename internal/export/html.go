package export

import (
	"html/template"
	"io"

	"outreach-tracker/internal/models"
)

// excelTemplate is the minimal table markup spreadsheet applications open
// when served with ExcelContentType.
var excelTemplate = template.Must(template.New("excel").Parse(`<html>
<head><meta charset="utf-8"></head>
<body>
<table border="1">
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
</body>
</html>
`))

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Company Outreach Report</title>
<style>
body { font-family: Arial, sans-serif; margin: 24px; }
h1 { font-size: 18px; }
p.meta { color: #555; font-size: 12px; }
table { border-collapse: collapse; width: 100%; font-size: 12px; }
th, td { border: 1px solid #999; padding: 6px 8px; text-align: left; }
th { background: #eee; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>Company Outreach Report</h1>
<p class="meta">Generated {{.Date}} &mdash; {{.Count}} companies</p>
<table>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
</body>
</html>
`))

type tableData struct {
	Headers []string
	Rows    [][]string
	Date    string
	Count   int
}

// printDetailLimit caps free-text cells in the print layout so rows stay on
// one page width.
const printDetailLimit = 50

// WriteExcel writes the spreadsheet-openable table export. Serve or save it
// with ExcelContentType.
func WriteExcel(w io.Writer, companies []models.Company) error {
	data := tableData{Headers: Headers}
	for i := range companies {
		data.Rows = append(data.Rows, row(&companies[i]))
	}
	return excelTemplate.Execute(w, data)
}

// WritePrintHTML writes the print-ready report. Detail and contact cells are
// truncated to a fixed prefix; everything else matches the other exports.
func WritePrintHTML(w io.Writer, companies []models.Company) error {
	data := tableData{
		Headers: Headers,
		Date:    dateStamp(),
		Count:   len(companies),
	}
	for i := range companies {
		r := row(&companies[i])
		r[2] = truncate(r[2], printDetailLimit)
		r[3] = truncate(r[3], printDetailLimit)
		data.Rows = append(data.Rows, r)
	}
	return printTemplate.Execute(w, data)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
