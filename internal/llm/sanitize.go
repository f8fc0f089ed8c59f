package llm

import (
	"regexp"
	"strings"
)

// Model output arrives with markdown fences, LaTeX delimiters and ragged
// whitespace. Sanitize flattens all of that into clean display text and,
// for step-by-step math answers, applies structural emphasis. The whole
// pipeline is idempotent: Sanitize(Sanitize(x)) == Sanitize(x).

var (
	fencedBlockRe = regexp.MustCompile("(?s)```.*?```")
	dollarRunRe   = regexp.MustCompile(`\$+`)
	spaceRunRe    = regexp.MustCompile(`[ \t]{2,}`)
	lineEdgeRe    = regexp.MustCompile(`(?m)^[ \t]+|[ \t]+$`)
	manyNewlineRe = regexp.MustCompile(`\n{3,}`)
	stepLabelRe   = regexp.MustCompile(`(?i)\bstep\s*(\d+)\s*:`)
	finalAnswerRe = regexp.MustCompile(`(?i)\bfinal answer\s*:`)

	latexReplacer = strings.NewReplacer(`\(`, "(", `\)`, ")", `\[`, "[", `\]`, "]")
)

// solutionRule delimits a formatted math solution block. Its presence at the
// start of the text is the guard against wrapping twice.
const solutionRule = "---"

func Sanitize(raw string) string {
	s := fencedBlockRe.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, "`", "")

	s = dollarRunRe.ReplaceAllString(s, "")
	s = latexReplacer.Replace(s)

	s = spaceRunRe.ReplaceAllString(s, " ")
	s = lineEdgeRe.ReplaceAllString(s, "")
	s = manyNewlineRe.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)

	if stepLabelRe.MatchString(s) && finalAnswerRe.MatchString(s) {
		if !strings.Contains(s, "**Step") {
			s = stepLabelRe.ReplaceAllString(s, "**Step $1:**")
		}
		if !strings.Contains(s, "**Final Answer:**") {
			s = finalAnswerRe.ReplaceAllString(s, "**Final Answer:**")
		}
		if !strings.HasPrefix(s, solutionRule+"\n") {
			s = solutionRule + "\n" + s + "\n" + solutionRule
		}
	}

	return s
}
