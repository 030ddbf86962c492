package parse

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDocx builds a minimal .docx: a zip with word/document.xml holding
// one paragraph per input line.
func writeDocx(t *testing.T, lines []string) string {
	t.Helper()

	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, line := range lines {
		fmt.Fprintf(&body, `<w:p><w:r><w:t>%s</w:t></w:r></w:p>`, line)
	}
	body.WriteString(`</w:body></w:document>`)

	path := filepath.Join(t.TempDir(), "ticket.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	zw := zip.NewWriter(f)
	entry, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte(body.String()))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return path
}

func TestDOCX(t *testing.T) {
	path := writeDocx(t, []string{
		"Issue Key: RED-2048",
		"Summary: Shopify - ACL sync stuck after upgrade",
		"Priority: High",
		"Labels: acl, upgrade",
		"Description: The ACL sync job never finishes after upgrading.",
	})

	fields, err := DOCX(path)
	require.NoError(t, err)

	assert.Equal(t, "RED-2048", fields.Key)
	assert.Equal(t, "Shopify - ACL sync stuck after upgrade", fields.Summary)
	assert.Equal(t, "High", fields.Priority)
	assert.Equal(t, []string{"acl", "upgrade"}, fields.Labels)
	assert.Contains(t, fields.Description, "ACL sync job never finishes")
}

func TestDOCXNotAZip(t *testing.T) {
	path := writeTempFile(t, "bogus.docx", "this is not a zip archive")
	_, err := DOCX(path)
	assert.Error(t, err)
}

func TestDOCXMissingDocumentBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	entry, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = DOCX(path)
	assert.Error(t, err)
}
