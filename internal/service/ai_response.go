package service

import (
	"encoding/json"
	"fmt"
	"interview_prep_backend/internal/util"
	"regexp"
	"strings"
)

// GeneratedQuestion is one element of the question-generation payload.
type GeneratedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
}

// Explanation is the concept-explanation payload.
type Explanation struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
}

// Evaluation is the answer-evaluation payload.
type Evaluation struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// CleanJSONText strips markdown code-fence markers the model tends to wrap
// its JSON in.
func CleanJSONText(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ParseQuestions strict-parses a question array. No salvage here: a question
// set with holes is worse than a retried call.
func ParseQuestions(raw string) ([]GeneratedQuestion, error) {
	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(CleanJSONText(raw)), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrParse, err)
	}
	return questions, nil
}

// ParseEvaluation strict-parses an evaluation object.
func ParseEvaluation(raw string) (*Evaluation, error) {
	var eval Evaluation
	if err := json.Unmarshal([]byte(CleanJSONText(raw)), &eval); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrParse, err)
	}
	return &eval, nil
}

var (
	titleRe      = regexp.MustCompile(`"title"\s*:\s*"([^"]+)"`)
	explGreedyRe = regexp.MustCompile(`"explanation"\s*:\s*"([\s\S]*)"\s*}`)
	explLazyRe   = regexp.MustCompile(`"explanation"\s*:\s*"([\s\S]*?)"\s*[,}]`)

	unescapeReplacer = strings.NewReplacer(`\n`, "\n", `\"`, `"`)
)

// ParseExplanation coerces a raw model reply into {title, explanation}. It
// tries strict JSON first, then falls back to regex field extraction for the
// near-valid JSON the provider is known to emit (truncated output, stray
// trailing text). As a last resort the whole reply becomes the explanation
// under a placeholder title, so this path always yields something usable.
// The fallback is deliberately narrow: it only exists for the explanation
// payload, not as a general JSON repair step.
func ParseExplanation(raw string) *Explanation {
	cleaned := CleanJSONText(raw)

	var parsed Explanation
	if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil && parsed.Explanation != "" {
		if parsed.Title == "" {
			parsed.Title = "Explanation"
		}
		return &parsed
	}

	// Greedy match grabs everything up to the final quote before a closing
	// brace, which keeps embedded escaped quotes intact; the lazy variant
	// handles output truncated before the brace.
	explMatch := explGreedyRe.FindStringSubmatch(raw)
	if explMatch == nil {
		explMatch = explLazyRe.FindStringSubmatch(raw)
	}
	if explMatch != nil {
		title := "Explanation"
		if m := titleRe.FindStringSubmatch(raw); m != nil {
			title = m[1]
		}
		return &Explanation{
			Title:       title,
			Explanation: unescapeReplacer.Replace(explMatch[1]),
		}
	}

	return &Explanation{
		Title:       "Explanation",
		Explanation: raw,
	}
}
