package llm

import (
	"strings"
	"testing"
)

func TestSanitize_StripsMarkdownAndLatex(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"fenced block", "before\n```go\ncode\n```\nafter", "before\n\nafter"},
		{"inline backticks", "use `fmt.Println` here", "use fmt.Println here"},
		{"dollar runs", "the answer is $$x$$ or $y$", "the answer is x or y"},
		{"latex delimiters", `result \(a+b\) and \[c\]`, "result (a+b) and [c]"},
		{"space runs", "a    b\t\tc", "a b c"},
		{"line edges", "  padded line  \n\tnext", "padded line\nnext"},
		{"newline collapse", "a\n\n\n\n\nb", "a\n\nb"},
		{"surrounding space", "  \n hello \n ", "hello"},
	}
	for _, tc := range cases {
		if got := Sanitize(tc.in); got != tc.want {
			t.Errorf("%s: Sanitize(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestSanitize_MathStructure(t *testing.T) {
	in := "Step 1: isolate x\nStep 2: divide both sides\nFinal Answer: x = 4"
	got := Sanitize(in)

	if !strings.HasPrefix(got, "---\n") || !strings.HasSuffix(got, "\n---") {
		t.Errorf("expected solution wrapped in rules, got %q", got)
	}
	if !strings.Contains(got, "**Step 1:**") || !strings.Contains(got, "**Step 2:**") {
		t.Errorf("expected bolded step labels, got %q", got)
	}
	if !strings.Contains(got, "**Final Answer:**") {
		t.Errorf("expected bolded final answer, got %q", got)
	}
}

func TestSanitize_NoStructureWithoutFinalAnswer(t *testing.T) {
	in := "Step 1: isolate x\nStep 2: divide both sides"
	got := Sanitize(in)
	if strings.Contains(got, "**Step") || strings.HasPrefix(got, "---") {
		t.Errorf("structure applied without a final answer marker: %q", got)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"plain text stays plain",
		"Step 1: isolate x\nFinal Answer: x = 4",
		"code ```x := 1``` and $math$",
		"  messy \n\n\n\n whitespace  ",
		ScopeRefusal,
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce:  %q\ntwice: %q", in, once, twice)
		}
	}
}

func TestSanitize_RefusalUnchanged(t *testing.T) {
	if got := Sanitize(ScopeRefusal); got != ScopeRefusal {
		t.Errorf("refusal string altered: %q", got)
	}
}
