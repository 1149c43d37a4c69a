package howto

import (
	"encoding/json"

	"guidegen/core/utils"
)

// FlexInt is an int that tolerates the number, string and bool encodings
// language models produce for numeric fields.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = FlexInt(utils.ToInt(raw))
	return nil
}

// FlexBool is a bool that also accepts 1/"true" style encodings.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = FlexBool(utils.ToBool(raw))
	return nil
}

// FlexStrings is a string list that also accepts a single scalar.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = FlexStrings(utils.ToStringSlice(raw))
	return nil
}

// TroubleshootItem is one issue/fix pair. Models sometimes emit plain
// strings here; those become the issue with an empty fix.
type TroubleshootItem struct {
	Issue string `json:"issue"`
	Fix   string `json:"fix"`
}

func (t *TroubleshootItem) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case map[string]any:
		t.Issue = utils.ToString(v["issue"])
		t.Fix = utils.ToString(v["fix"])
	default:
		t.Issue = utils.ToString(v)
	}
	return nil
}

// Step is one actionable step of a guide.
type Step struct {
	Number FlexInt `json:"number"`
	Title  string  `json:"title"`
	Action string  `json:"action"`
	// Why explains the purpose of the step.
	Why string `json:"why,omitempty"`
	// Check tells the reader how to verify the step worked.
	Check string `json:"check,omitempty"`
	// IllustrationCaption labels the step's illustration.
	IllustrationCaption string `json:"illustration_caption,omitempty"`
	// ImageURL is the public path of the step illustration. It is set even
	// when generation failed, clients probe it and fall back on 404.
	ImageURL string `json:"image_url,omitempty"`
	// ImageError carries the generation failure, if any.
	ImageError string `json:"image_error,omitempty"`
}

// Guide is the structured how-to document the service produces and serves.
type Guide struct {
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Steps           []Step             `json:"steps"`
	ProTip          string             `json:"pro_tip"`
	Troubleshooting []TroubleshootItem `json:"troubleshooting"`
	Safety          FlexStrings        `json:"safety"`
	// Abstain is set by the model when the retrieved context cannot answer
	// the question.
	Abstain FlexBool `json:"abstain,omitempty"`
}

// HasSteps reports whether the guide already carries steps.
func (g *Guide) HasSteps() bool {
	return len(g.Steps) > 0
}

// Normalize replaces nil slices so responses always carry arrays.
func (g *Guide) Normalize() {
	if g.Steps == nil {
		g.Steps = []Step{}
	}
	if g.Troubleshooting == nil {
		g.Troubleshooting = []TroubleshootItem{}
	}
	if g.Safety == nil {
		g.Safety = FlexStrings{}
	}
}

// Request is the body accepted by the guide endpoints. A body already
// carrying steps is passed through untouched; otherwise Question drives
// generation, optionally narrowed to documents whose name contains Source.
type Request struct {
	Guide
	Question string `json:"question"`
	Source   string `json:"source"`
}
