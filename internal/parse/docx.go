package parse

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/supportops/triage/internal/common"
	"github.com/supportops/triage/internal/ticket"
)

// DOCX reads the paragraphs of a Word export and parses them with the
// shared field regexes. A .docx file is a zip archive whose main body
// lives in word/document.xml.
func DOCX(path string) (ticket.Fields, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return ticket.Fields{}, fmt.Errorf("%w: %v", common.ErrParseFailure, err)
	}
	defer func() { _ = archive.Close() }()

	var body io.ReadCloser
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			body, err = file.Open()
			if err != nil {
				return ticket.Fields{}, fmt.Errorf("%w: opening document body: %v", common.ErrParseFailure, err)
			}
			break
		}
	}
	if body == nil {
		return ticket.Fields{}, fmt.Errorf("%w: no word/document.xml in %s", common.ErrParseFailure, path)
	}
	defer func() { _ = body.Close() }()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return ticket.Fields{}, fmt.Errorf("%w: parsing document body: %v", common.ErrParseFailure, err)
	}

	var paragraphs []string
	for _, p := range doc.FindElements("//w:p") {
		var runs []string
		for _, t := range p.FindElements(".//w:t") {
			runs = append(runs, t.Text())
		}
		paragraphs = append(paragraphs, strings.Join(runs, ""))
	}

	return fieldsFromText(strings.Join(paragraphs, "\n")), nil
}
