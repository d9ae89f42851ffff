package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// The PDF variant is a single centered table: blue header band, beige
// data rows, black borders, Helvetica.
const reportHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, monospace; margin: 24px; }
  .logo { display: block; margin: 0 auto 16px auto; height: 80px; }
  table { border-collapse: collapse; margin: 0 auto; }
  th, td { border: 1px solid #000; padding: 5px 10px; text-align: center; }
  th { background-color: #1F4E78; color: #FFFFFF; font-weight: bold; }
  td { background-color: #F5F5DC; }
</style>
</head>
<body>
<img class="logo" src="data:image/png;base64,{{.Logo}}">
<table>
  <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
  {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
  {{end}}
</table>
</body>
</html>`

var reportTmpl = template.Must(template.New("reporte").Parse(reportHTML))

// renderHTML builds the printable page for a tabla.
func renderHTML(t *tabla, logoPath string) (string, error) {
	logo, err := os.ReadFile(logoPath)
	if err != nil {
		return "", fmt.Errorf("logotipo %s: %w", logoPath, err)
	}

	data := struct {
		Logo    string
		Headers []string
		Rows    [][]string
	}{
		Logo:    base64.StdEncoding.EncodeToString(logo),
		Headers: t.headers,
		Rows:    t.textRows(),
	}

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderPDF prints the tabla through headless Chrome.
func renderPDF(ctx context.Context, t *tabla, logoPath string) (*bytes.Buffer, error) {
	html, err := renderHTML(t, logoPath)
	if err != nil {
		return nil, err
	}

	cctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(cctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			out, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return bytes.NewBuffer(pdf), nil
}
