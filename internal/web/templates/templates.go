// Package templates renders the HTML pages and fragments of the merge UI.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/JonMunkholm/GradeSync/internal/core"
	"github.com/a-h/templ"
)

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>GradeSync</title>
<style>
body{font-family:system-ui,sans-serif;max-width:48rem;margin:2rem auto;padding:0 1rem;color:#1a1a1a}
h1{font-size:1.5rem}
fieldset{border:1px solid #ccc;border-radius:6px;margin-bottom:1rem;padding:1rem}
table{border-collapse:collapse;width:100%;margin:1rem 0}
th,td{border:1px solid #ddd;padding:.4rem .6rem;text-align:left;font-size:.9rem}
.alert{border:1px solid #c33;background:#fee;border-radius:6px;padding:1rem;margin:1rem 0}
.alert .code{color:#888;font-size:.8rem}
.warn{background:#fffbe6;border-color:#e6c200}
.button{display:inline-block;background:#2563eb;color:#fff;border:none;border-radius:6px;padding:.5rem 1rem;text-decoration:none;cursor:pointer}
</style>
</head>
<body>
`

const pageFoot = "</body>\n</html>\n"

// IndexPage is the upload form for the two export files.
func IndexPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, pageHead+`<h1>GradeSync</h1>
<p>Upload a gradebook export and a course provider export. Checkpoint exam
scores are copied into the gradebook by student email and the updated file
is returned for download.</p>
<form method="post" action="/api/merge" enctype="multipart/form-data">
<fieldset>
<legend>Gradebook export</legend>
<input type="file" name="gradebook" accept=".csv,.xlsx" required>
</fieldset>
<fieldset>
<legend>Course provider export</legend>
<input type="file" name="provider" accept=".csv,.xlsx" required>
</fieldset>
<button class="button" type="submit">Merge scores</button>
</form>
`+pageFoot)
		return err
	})
}

// ReportPage renders a completed merge: summary counts, warnings, and
// the download link for the updated gradebook.
func ReportPage(mergeID string, report *core.MergeReport) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead+"<h1>Merge complete</h1>\n"); err != nil {
			return err
		}

		fmt.Fprintf(w, `<p><a class="button" href="/download/%s">Download updated gradebook</a></p>`+"\n",
			templ.EscapeString(mergeID))

		fmt.Fprintf(w, `<table>
<tr><th>Students matched</th><td>%d</td></tr>
<tr><th>Scores updated</th><td>%d</td></tr>
<tr><th>Rows skipped (gradebook)</th><td>%d</td></tr>
<tr><th>Rows skipped (provider)</th><td>%d</td></tr>
<tr><th>Duplicate provider emails</th><td>%d</td></tr>
</table>
`, report.Matched, report.ScoresUpdated, report.SkippedGradebook, report.SkippedProvider, report.Ambiguities)

		if len(report.UnmatchedGradebook) > 0 {
			if err := identityTable(w, "Gradebook students without a provider row", report.UnmatchedGradebook); err != nil {
				return err
			}
		}
		if len(report.UnmatchedProvider) > 0 {
			if err := identityTable(w, "Provider students not in the gradebook", report.UnmatchedProvider); err != nil {
				return err
			}
		}

		if len(report.InvalidValues) > 0 {
			fmt.Fprintf(w, `<div class="alert warn"><strong>Values left unchanged</strong>
<table><tr><th>Student</th><th>Category</th><th>Value</th></tr>
`)
			for _, iv := range report.InvalidValues {
				fmt.Fprintf(w, "<tr><td>%s (%s)</td><td>%s</td><td>%s</td></tr>\n",
					templ.EscapeString(iv.Student.Name),
					templ.EscapeString(iv.Student.Email),
					templ.EscapeString(iv.Category),
					templ.EscapeString(iv.Value))
			}
			if _, err := io.WriteString(w, "</table></div>\n"); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<p><a href="/">Merge another pair of files</a></p>`+"\n"+pageFoot)
		return err
	})
}

func identityTable(w io.Writer, title string, rows []core.RowIdentity) error {
	fmt.Fprintf(w, `<div class="alert warn"><strong>%s</strong>
<table><tr><th>Name</th><th>Email</th></tr>
`, templ.EscapeString(title))
	for _, id := range rows {
		fmt.Fprintf(w, "<tr><td>%s</td><td>%s</td></tr>\n",
			templ.EscapeString(id.Name), templ.EscapeString(id.Email))
	}
	_, err := io.WriteString(w, "</table></div>\n")
	return err
}

// ErrorAlert is the error fragment returned to HTMX requests and
// embedded into full error pages.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="alert"><strong>%s</strong><p>%s</p><p class="code">Support code: %s</p></div>`+"\n",
			templ.EscapeString(message),
			templ.EscapeString(action),
			templ.EscapeString(code))
		return err
	})
}

// ErrorPage wraps ErrorAlert in a full page for plain browser requests.
func ErrorPage(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead+"<h1>Something went wrong</h1>\n"); err != nil {
			return err
		}
		if err := ErrorAlert(message, action, code).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<p><a href="/">Back to upload</a></p>`+"\n"+pageFoot)
		return err
	})
}
