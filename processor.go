package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

// dependencyRetryLimit bounds recovery after a missing-component failure:
// repair once, retry once, then give up.
const dependencyRetryLimit = 1

const resultDivider = "============================================================"

var errEmptyContent = errors.New("file appears to be empty or unreadable")

// Processor wires the content reader and summarizer together for one run.
type Processor struct {
	reader     *ContentReader
	summarizer Summarizer
	settings   *Settings
	out        io.Writer

	// repair rebuilds the summarizer after a DependencyError.
	repair func() (Summarizer, error)
}

// NewProcessor creates a processor with the default reader and OpenAI client.
func NewProcessor(apiKey string, settings *Settings, out io.Writer) *Processor {
	return &Processor{
		reader:     NewContentReader(settings),
		summarizer: NewOpenAISummarizer(apiKey, settings),
		settings:   settings,
		out:        out,
		repair: func() (Summarizer, error) {
			return NewOpenAISummarizer(apiKey, settings), nil
		},
	}
}

// ProcessFile reads the file, summarizes its content and prints the result
// block to the processor's output writer.
func (p *Processor) ProcessFile(ctx context.Context, path string, level DetailLevel) error {
	log.Printf("Reading file: %s", path)
	content, err := p.reader.Read(path)
	if err != nil {
		return err
	}

	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: %s", errEmptyContent, path)
	}

	log.Printf("File size: %d characters", len([]rune(content)))
	log.Printf("Generating %s summary using %s...", level, p.settings.Model)

	summary, err := p.summarize(ctx, content, level)
	if err != nil {
		return err
	}

	p.printSummary(summary, level)
	return nil
}

// summarize runs the summarizer, repairing a missing component and retrying
// at most dependencyRetryLimit times. Any other failure, or a repeated
// dependency failure, propagates.
func (p *Processor) summarize(ctx context.Context, content string, level DetailLevel) (string, error) {
	summary, err := p.summarizer.Summarize(ctx, content, level)

	for attempt := 0; err != nil && attempt < dependencyRetryLimit; attempt++ {
		var depErr *DependencyError
		if !errors.As(err, &depErr) {
			break
		}

		log.Printf("%v. Reinstalling...", depErr)
		repaired, repairErr := p.repair()
		if repairErr != nil {
			return "", fmt.Errorf("reinstalling %s: %w", depErr.Component, repairErr)
		}
		p.summarizer = repaired

		summary, err = p.summarizer.Summarize(ctx, content, level)
	}

	if err != nil {
		return "", err
	}
	return summary, nil
}

func (p *Processor) printSummary(summary string, level DetailLevel) {
	fmt.Fprintf(p.out, "\n%s\nSUMMARY (%s)\n%s\n\n%s\n\n%s\n",
		resultDivider, strings.ToUpper(string(level)), resultDivider, summary, resultDivider)
}
