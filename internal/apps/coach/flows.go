package coach

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karmajournal/karma-backend/internal/apps/catalog"
	"github.com/karmajournal/karma-backend/internal/apps/journal"
	"github.com/karmajournal/karma-backend/internal/apps/wellness"
	"github.com/karmajournal/karma-backend/internal/storage"
)

// disclaimerMarker is the phrase every counselling reply must contain;
// Disclaimer is appended when the model omits it.
const (
	disclaimerMarker = "not a licensed therapist"
	Disclaimer       = "Please remember: I'm an AI companion, not a licensed therapist. If you're struggling, consider reaching out to a professional or a local helpline."
)

const (
	counsellingFallback = "I'm sorry, I couldn't respond just now. Take a slow breath, and try again in a moment. " + Disclaimer
	coachingFallback    = "I couldn't review your week just now, but showing up at all is the win. Keep logging, keep going."
	transcribeFallback  = "Sorry, I couldn't transcribe that recording. You can type your journal entry instead."
)

// CoachService implements the AI flows. Every flow is a single attempt:
// failures degrade to a static fallback, except AnalyzeJournal which
// propagates the error to its caller.
type CoachService struct {
	client *Client
	db     *gorm.DB
	store  storage.Store
}

func NewCoachService(client *Client, db *gorm.DB, store storage.Store) *CoachService {
	return &CoachService{client: client, db: db, store: store}
}

// Counselling runs one persona-based counselling exchange.
func (s *CoachService) Counselling(req CounsellingRequest) *CounsellingResponse {
	system := personas[req.Persona] +
		" Keep replies under 150 words. Always close with this exact sentence: " + Disclaimer

	messages := []chatMessage{{Role: "system", Content: system}}
	for _, turn := range req.History {
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Text})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Message})

	reply, err := s.client.Complete(messages, false)
	if err != nil {
		slog.Warn("counselling flow failed", "persona", req.Persona, "error", err)
		return &CounsellingResponse{Reply: counsellingFallback, Fallback: true}
	}

	// Deterministic safety net: the disclaimer goes out whether or not the
	// model complied.
	if !strings.Contains(strings.ToLower(reply), disclaimerMarker) {
		reply = reply + "\n\n" + Disclaimer
	}
	return &CounsellingResponse{Reply: reply}
}

// Coaching summarises the user's recent days and asks the model for an
// encouraging coach reply.
func (s *CoachService) Coaching(userID uuid.UUID, req CoachingRequest) *CoachingResponse {
	summary := s.recentSummary(userID, req.Days)

	messages := []chatMessage{
		{Role: "system", Content: "You are a supportive karma coach. Given a summary of the user's recent days, reply with specific, encouraging guidance in under 120 words. Plain text only."},
		{Role: "user", Content: summary},
	}

	reply, err := s.client.Complete(messages, false)
	if err != nil {
		slog.Warn("coaching flow failed", "error", err)
		return &CoachingResponse{Reply: coachingFallback, Fallback: true}
	}
	return &CoachingResponse{Reply: reply}
}

// ExtractActivities asks the model to recognise catalog activities in free
// journal text. Unknown activity names are dropped from the reply.
func (s *CoachService) ExtractActivities(req ExtractRequest) *ExtractResponse {
	names := make([]string, 0)
	for _, a := range catalog.All() {
		names = append(names, a.Name)
	}

	system := fmt.Sprintf(`You extract tracked activities from journal text.
Known activities: %s.
Return ONLY a JSON array like [{"activity_name":"...","quantity":2}], quantity optional. Use only known activity names. Return [] when nothing matches.`,
		strings.Join(names, ", "))

	messages := []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: req.Text},
	}

	reply, err := s.client.Complete(messages, false)
	if err != nil {
		slog.Warn("extract flow failed", "error", err)
		return &ExtractResponse{Activities: []ExtractedActivity{}, Fallback: true}
	}

	var extracted []ExtractedActivity
	if err := decodeJSON(reply, &extracted); err != nil {
		slog.Warn("extract flow returned malformed JSON", "error", err)
		return &ExtractResponse{Activities: []ExtractedActivity{}, Fallback: true}
	}

	valid := make([]ExtractedActivity, 0, len(extracted))
	for _, e := range extracted {
		if _, ok := catalog.Find(e.ActivityName); ok {
			valid = append(valid, e)
		}
	}
	return &ExtractResponse{Activities: valid}
}

// Transcribe converts a voice journal recording into text.
func (s *CoachService) Transcribe(req TranscribeRequest) *TranscribeResponse {
	messages := []chatMessage{
		{Role: "system", Content: "Transcribe the user's voice journal recording verbatim. Return only the transcript text."},
		{Role: "user", Content: []chatContentPart{
			{Type: "input_audio", InputAudio: &chatInputAudio{Data: req.AudioBase64, Format: req.Format}},
		}},
	}

	transcript, err := s.client.Complete(messages, true)
	if err != nil {
		slog.Warn("transcription flow failed", "error", err)
		return &TranscribeResponse{Transcript: "", Fallback: true}
	}
	return &TranscribeResponse{Transcript: transcript}
}

// AnalyzeJournal produces a weekly insight summary. Unlike the other flows
// this one re-raises failures to the caller instead of masking them.
func (s *CoachService) AnalyzeJournal(userID uuid.UUID, req AnalyzeRequest) (*AnalyzeResponse, error) {
	var b strings.Builder
	today := time.Now().UTC()
	for i := req.Days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		refl := journal.LoadReflection(s.store, userID, day)
		if refl.Text == "" && refl.Mood == "" {
			continue
		}
		fmt.Fprintf(&b, "%s (mood: %s): %s\n", refl.Date, orDash(refl.Mood), refl.Text)
	}
	if b.Len() == 0 {
		return &AnalyzeResponse{Summary: "No journal entries to analyze yet."}, nil
	}

	messages := []chatMessage{
		{Role: "system", Content: `You analyze a week of journal entries. Return ONLY a JSON object: {"summary":"...","highlights":["...","..."]}. The summary is under 100 words; highlights are at most three short observations.`},
		{Role: "user", Content: b.String()},
	}

	reply, err := s.client.Complete(messages, false)
	if err != nil {
		return nil, fmt.Errorf("journal analysis: %w", err)
	}

	var analysis AnalyzeResponse
	if err := decodeJSON(reply, &analysis); err != nil {
		return nil, fmt.Errorf("journal analysis: %w", err)
	}
	if analysis.Summary == "" {
		return nil, fmt.Errorf("journal analysis: empty summary in reply")
	}
	return &analysis, nil
}

// recentSummary renders the user's recent scores, streak and wellness into
// the prompt payload for the coaching flow.
func (s *CoachService) recentSummary(userID uuid.UUID, days int) string {
	var b strings.Builder
	today := time.Now().UTC()

	var streak journal.Streak
	if err := s.db.Where("user_id = ?", userID).First(&streak).Error; err == nil {
		fmt.Fprintf(&b, "Journaling streak: %d days (longest %d).\n", streak.CurrentStreak, streak.LongestStreak)
	}

	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		log := journal.LoadDayLog(s.store, userID, day)
		if len(log.Activities) == 0 {
			continue
		}
		record := wellness.Aggregate(log)
		fmt.Fprintf(&b, "%s: score %d, %d activities, wellness d%d/s%d/o%d/e%d\n",
			log.Date, journal.Score(log), len(log.Activities),
			record.Dopamine.Score, record.Serotonin.Score, record.Oxytocin.Score, record.Endorphins.Score)
	}

	if b.Len() == 0 {
		return "The user has not logged any activities recently."
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
