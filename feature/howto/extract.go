package howto

import (
	"errors"
	"regexp"
	"strings"
)

// codeFenceRe captures the body of a markdown code fence.
var codeFenceRe = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)```")

// ExtractJSON pulls the outermost JSON object out of raw model output,
// tolerating code fences and surrounding prose.
func ExtractJSON(raw string) ([]byte, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("empty model output")
	}

	if m := codeFenceRe.FindStringSubmatch(raw); m != nil {
		raw = strings.TrimSpace(m[1])
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return nil, errors.New("no JSON object in model output")
	}
	return []byte(raw[start : end+1]), nil
}
