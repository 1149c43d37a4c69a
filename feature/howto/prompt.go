package howto

import (
	"fmt"
	"strings"
)

// guideSchema is the JSON contract the prompt pins the model to. It matches
// the Guide struct field for field.
const guideSchema = `{
  "title": <string>,
  "description": <string>,
  "steps": [{"number": <int>, "title": <string>, "action": <string>, "why": <string>, "check": <string>, "illustration_caption": <string>}],
  "pro_tip": <string>,
  "troubleshooting": [{"issue": <string>, "fix": <string>}],
  "safety": [<string>]
}`

// BuildPrompt renders the generation prompt. With context chunks the model
// is restricted to them and told to abstain when they cannot answer; without
// any it writes from general knowledge.
func BuildPrompt(question string, contexts []string) string {
	if len(contexts) == 0 {
		return fmt.Sprintf(`You are a careful technical writer. Write a step-action how-to guide as JSON with this schema:

%s

Rules:
- Use general knowledge and best practices to answer.
- Keep each step concise and atomic.
- Keep tone neutral and instructional.

Question: %s

Respond with ONLY JSON (no commentary).
`, guideSchema, question)
	}

	numbered := make([]string, 0, len(contexts))
	for i, chunk := range contexts {
		numbered = append(numbered, fmt.Sprintf("[%d] %s", i+1, chunk))
	}

	return fmt.Sprintf(`You are a careful technical writer. Using ONLY the information below, write a step-action how-to guide as JSON with this schema:

%s

Rules:
- If the context does not contain enough information to answer, set "steps": [] and include only "abstain": true.
- Keep each step concise and atomic.
- Keep tone neutral and instructional.

Question: %s

Context:
%s

Respond with ONLY JSON (no commentary).
`, guideSchema, question, strings.Join(numbered, "\n\n"))
}
