package coach

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation marks a boundary schema-validation failure. Validation
// failures never escape into aggregation logic as untyped errors.
var ErrValidation = errors.New("validation failed")

// Personas for the counselling flow.
const (
	PersonaMindfulness = "mindfulness_guide"
	PersonaAddiction   = "addiction_counsellor"
	PersonaGrief       = "grief_support"
)

var personas = map[string]string{
	PersonaMindfulness: "You are Asha, a calm mindfulness guide. You speak gently, suggest small grounding exercises, and never lecture.",
	PersonaAddiction:   "You are Sam, a compassionate addiction-recovery counsellor. You meet people where they are, celebrate small wins, and never shame a relapse.",
	PersonaGrief:       "You are Noor, a warm grief-support companion. You hold space, validate feelings, and avoid platitudes.",
}

// ChatTurn is one prior message in a counselling conversation.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// --- flow inputs ---

type CounsellingRequest struct {
	Persona string     `json:"persona"`
	Message string     `json:"message"`
	History []ChatTurn `json:"history,omitempty"`
}

func (r *CounsellingRequest) Validate() error {
	if _, ok := personas[r.Persona]; !ok {
		return fmt.Errorf("%w: unknown persona %q", ErrValidation, r.Persona)
	}
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	for _, turn := range r.History {
		if turn.Role != "user" && turn.Role != "assistant" {
			return fmt.Errorf("%w: history role must be user or assistant", ErrValidation)
		}
	}
	return nil
}

type CoachingRequest struct {
	Days int `json:"days"`
}

func (r *CoachingRequest) Validate() error {
	if r.Days == 0 {
		r.Days = 7
	}
	if r.Days < 1 || r.Days > 30 {
		return fmt.Errorf("%w: days must be between 1 and 30", ErrValidation)
	}
	return nil
}

type ExtractRequest struct {
	Text string `json:"text"`
}

func (r *ExtractRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("%w: text is required", ErrValidation)
	}
	return nil
}

type TranscribeRequest struct {
	AudioBase64 string `json:"audio_base64"`
	Format      string `json:"format"` // "wav", "mp3", ...
}

func (r *TranscribeRequest) Validate() error {
	if r.AudioBase64 == "" {
		return fmt.Errorf("%w: audio_base64 is required", ErrValidation)
	}
	if r.Format == "" {
		r.Format = "wav"
	}
	return nil
}

type AnalyzeRequest struct {
	Days int `json:"days"`
}

func (r *AnalyzeRequest) Validate() error {
	if r.Days == 0 {
		r.Days = 7
	}
	if r.Days < 1 || r.Days > 30 {
		return fmt.Errorf("%w: days must be between 1 and 30", ErrValidation)
	}
	return nil
}

// --- flow outputs ---

type CounsellingResponse struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"fallback"`
}

type CoachingResponse struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"fallback"`
}

// ExtractedActivity is one activity the model recognised in free text.
// Names are validated against the catalog; unknown names are dropped.
type ExtractedActivity struct {
	ActivityName string   `json:"activity_name"`
	Quantity     *float64 `json:"quantity,omitempty"`
}

type ExtractResponse struct {
	Activities []ExtractedActivity `json:"activities"`
	Fallback   bool                `json:"fallback"`
}

type TranscribeResponse struct {
	Transcript string `json:"transcript"`
	Fallback   bool   `json:"fallback"`
}

type AnalyzeResponse struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights,omitempty"`
}
