package main

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

// extractWordText reads word/document.xml from the docx ZIP archive and
// returns every paragraph's text, in document order, joined with blank lines.
// Legacy .doc files take the same path; a damaged document body keeps the
// paragraphs parsed before the decoder gave up (with a logged warning), and
// fails only when nothing was recovered.
func extractWordText(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening document archive: %w", err)
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("opening document.xml: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	inText := false

	var tokenErr error
	for {
		tok, err := decoder.Token()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				tokenErr = err
			}
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = inParagraph
			}

		case xml.CharData:
			if inText {
				current.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inParagraph {
					paragraphs = append(paragraphs, current.String())
				}
				inParagraph = false
			}
		}
	}

	if tokenErr != nil {
		if len(paragraphs) == 0 {
			return "", fmt.Errorf("parsing document.xml: %w", tokenErr)
		}
		log.Printf("WARNING: document body is damaged, keeping %d parsed paragraphs: %v", len(paragraphs), tokenErr)
	}

	return strings.Join(paragraphs, "\n\n"), nil
}
