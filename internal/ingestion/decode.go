package ingestion

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"log"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

var xmlTags = regexp.MustCompile(`<[^>]+>`)

// ExtractText decodes an uploaded document into plain UTF-8 text based on its
// file name and content type. PDF and DOCX containers are unpacked; everything
// else is treated as plain text. Undecodable input yields an empty string
// rather than an error, so downstream processing always receives a string.
func ExtractText(fileName, contentType string, data []byte) string {
	if len(data) == 0 {
		return ""
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	var (
		text string
		err  error
	)
	switch {
	case ext == ".pdf" || strings.Contains(contentType, "pdf"):
		text, err = extractPDF(data)
	case ext == ".docx":
		text, err = extractDocx(data)
	default:
		text = string(data)
	}
	if err != nil {
		log.Printf("ingestion: text extraction failed for %s: %v", fileName, err)
		return ""
	}
	return strings.TrimSpace(text)
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// extractDocx pulls word/document.xml out of the DOCX zip container and strips
// the markup, keeping paragraph boundaries as newlines.
func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		break
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}

	xml := string(docXML)
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	return xmlTags.ReplaceAllString(xml, " "), nil
}
