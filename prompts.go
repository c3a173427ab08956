package main

// DetailLevel selects how thorough the generated summary should be.
type DetailLevel string

const (
	DetailBrief    DetailLevel = "brief"
	DetailMedium   DetailLevel = "medium"
	DetailDetailed DetailLevel = "detailed"
)

const briefSystemPrompt = `You are a professional summarizer. Provide a concise summary in 2-3 sentences
highlighting only the most critical points. Be direct and factual.`

const mediumSystemPrompt = `You are a professional summarizer. Provide a clear summary in one well-structured
paragraph covering the main ideas, key takeaways, and most important information.
Be comprehensive but concise.`

const detailedSystemPrompt = `You are a professional summarizer. Provide a comprehensive summary with
multiple paragraphs covering:
1. Main themes and purpose
2. Key points and arguments
3. Important details and structure
4. Conclusions or outcomes
Be thorough while maintaining clarity.`

// ValidDetailLevel reports whether level is one of the accepted values.
func ValidDetailLevel(level DetailLevel) bool {
	switch level {
	case DetailBrief, DetailMedium, DetailDetailed:
		return true
	}
	return false
}

// promptFor maps a detail level to its system prompt. An unrecognized level
// answers the medium prompt; callers that want rejection validate first.
func promptFor(level DetailLevel) string {
	switch level {
	case DetailBrief:
		return briefSystemPrompt
	case DetailDetailed:
		return detailedSystemPrompt
	default:
		return mediumSystemPrompt
	}
}
