package resume

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// docxText extracts the document text from a DOCX file. A DOCX is a zip
// archive whose main content lives in word/document.xml; text sits in
// <w:t> runs grouped into <w:p> paragraphs.
func docxText(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}

	var document io.ReadCloser
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("open docx document: %w", err)
			}
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("read docx: word/document.xml missing")
	}
	defer document.Close()

	return collectRuns(document)
}

// collectRuns walks the XML token stream, concatenating text runs and
// terminating each paragraph with a newline.
func collectRuns(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var sb strings.Builder
	inTextRun := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse docx xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inTextRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inTextRun {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}
