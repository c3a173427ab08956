package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"golang.org/x/text/encoding/charmap"
)

var debugEnabled bool

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

func debugLog(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// FileHandler extracts text from files it recognizes by path.
type FileHandler interface {
	CanHandle(path string) bool
	Handle(path string) (string, error)
}

// ContentReader extracts UTF-8 text from local files using a handler chain.
type ContentReader struct {
	handlers []FileHandler
}

// NewContentReader creates a reader with the default handlers.
func NewContentReader(settings *Settings) *ContentReader {
	r := &ContentReader{}

	// Register handlers (most specific first)
	r.AddHandler(&PDFHandler{})
	r.AddHandler(&WordHandler{})
	r.AddHandler(&HTMLHandler{converter: md.NewConverter("", true, nil)})
	r.AddHandler(&TextHandler{encodings: settings.Encodings}) // fallback

	return r
}

// AddHandler adds a file handler to the chain
func (r *ContentReader) AddHandler(handler FileHandler) {
	r.handlers = append(r.handlers, handler)
}

// Read extracts text from the file at path. Failures are *ReadError.
func (r *ContentReader) Read(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &ReadError{Kind: ReadNotFound, Path: path}
		}
		return "", &ReadError{Kind: ReadExtraction, Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &ReadError{Kind: ReadNotAFile, Path: path}
	}

	for _, handler := range r.handlers {
		if !handler.CanHandle(path) {
			continue
		}
		text, err := handler.Handle(path)
		if err != nil {
			if readErr, ok := err.(*ReadError); ok {
				return "", readErr
			}
			return "", &ReadError{Kind: ReadExtraction, Path: path, Err: err}
		}
		return text, nil
	}

	// The text handler accepts everything, so the chain never falls through.
	return "", &ReadError{Kind: ReadExtraction, Path: path, Err: fmt.Errorf("no handler for %s", path)}
}

func fileExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// PDFHandler handles PDF files
type PDFHandler struct{}

func (h *PDFHandler) CanHandle(path string) bool {
	return fileExt(path) == ".pdf"
}

func (h *PDFHandler) Handle(path string) (string, error) {
	return extractPDFText(path)
}

// WordHandler handles Word documents
type WordHandler struct{}

func (h *WordHandler) CanHandle(path string) bool {
	ext := fileExt(path)
	return ext == ".docx" || ext == ".doc"
}

func (h *WordHandler) Handle(path string) (string, error) {
	if fileExt(path) == ".doc" {
		log.Printf("WARNING: .doc format may not be fully supported. Consider converting to .docx")
	}
	return extractWordText(path)
}

// HTMLHandler converts HTML files to markdown text
type HTMLHandler struct {
	converter *md.Converter
}

func (h *HTMLHandler) CanHandle(path string) bool {
	ext := fileExt(path)
	return ext == ".html" || ext == ".htm"
}

func (h *HTMLHandler) Handle(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading HTML file: %w", err)
	}

	markdown, err := h.converter.ConvertString(string(data))
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}

	return markdown, nil
}

// TextHandler handles everything else, trying each configured encoding in
// order and returning the first successful decode.
type TextHandler struct {
	encodings []string
}

func (h *TextHandler) CanHandle(path string) bool {
	return true // Always handles as fallback
}

func (h *TextHandler) Handle(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}

	for _, name := range h.encodings {
		if text, ok := decodeAs(data, name); ok {
			return text, nil
		}
		debugLog("decoding %s as %s failed", path, name)
	}

	return "", &ReadError{Kind: ReadUndecodable, Path: path}
}

// decodeAs decodes data with the named encoding, reporting whether every byte
// was representable.
func decodeAs(data []byte, name string) (string, bool) {
	if name == "utf-8" || name == "utf8" {
		if utf8.Valid(data) {
			return string(data), true
		}
		return "", false
	}

	cm := charmapFor(name)
	if cm == nil {
		return "", false
	}
	decoded, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	text := string(decoded)
	// Charmap decoders substitute undefined bytes instead of failing.
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", false
	}
	return text, true
}

func charmapFor(name string) *charmap.Charmap {
	switch name {
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1
	case "windows-1252", "cp1252":
		return charmap.Windows1252
	}
	return nil
}
