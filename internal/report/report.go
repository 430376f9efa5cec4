package report

import (
	"bufio"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
)

// FileName is the name of the report written into the output folder.
const FileName = "index.html"

// ErrMisaligned indicates the word and count slices differ in length.
var ErrMisaligned = errors.New("words and counts are not aligned")

// Page is the data shown in a report. Counts[i] is the count of Words[i].
type Page struct {
	Name   string
	Words  []string
	Counts []int
}

type row struct {
	Word  string
	Count int
}

var pageTemplate = template.Must(template.New("report").Parse(`<html><head><title>Words Counted in {{.Name}}</title></head>
<body>
<h2>Words Counted in {{.Name}}</h2><hr>
<table border='1'>
<tr><th>Words</th><th>Counts</th></tr>
{{range .Rows}}<tr><td>{{.Word}}<td>{{.Count}}</tr>
{{end}}</table>
</body></html>
`))

// Render writes the HTML page for p to w.
func Render(w io.Writer, p Page) error {
	if len(p.Words) != len(p.Counts) {
		return fmt.Errorf("%w: %d words, %d counts", ErrMisaligned, len(p.Words), len(p.Counts))
	}
	rows := make([]row, len(p.Words))
	for i, word := range p.Words {
		rows[i] = row{Word: word, Count: p.Counts[i]}
	}
	data := struct {
		Name string
		Rows []row
	}{Name: p.Name, Rows: rows}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// WriteIndex renders p into folder/index.html and returns the file path.
// The folder must already exist.
func WriteIndex(folder string, p Page) (path string, err error) {
	if len(p.Words) != len(p.Counts) {
		return "", fmt.Errorf("%w: %d words, %d counts", ErrMisaligned, len(p.Words), len(p.Counts))
	}

	path = filepath.Join(folder, FileName)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			path = ""
			err = fmt.Errorf("close report: %w", closeErr)
		}
	}()

	buf := bufio.NewWriter(file)
	if err := Render(buf, p); err != nil {
		return "", err
	}
	if err := buf.Flush(); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
