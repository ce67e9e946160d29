package coach

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/karmajournal/karma-backend/internal/config"
)

var ErrNoProvider = errors.New("no AI provider configured")

// --- chat-completions wire types ---

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type chatContentPart struct {
	Type       string          `json:"type"`
	Text       string          `json:"text,omitempty"`
	InputAudio *chatInputAudio `json:"input_audio,omitempty"`
}

type chatInputAudio struct {
	Data   string `json:"data"`
	Format string `json:"format,omitempty"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content interface{} `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client calls a hosted chat-completions provider. Each Complete call is a
// single attempt against a single provider: GLM when configured, otherwise
// DeepSeek. There is no retry and no second attempt on failure.
type Client struct {
	cfg *config.Config
}

func NewClient(cfg *config.Config) *Client {
	return &Client{cfg: cfg}
}

// Complete sends one chat request and returns the reply text.
func (c *Client) Complete(messages []chatMessage, useAudioModel bool) (string, error) {
	apiURL, apiKey, model := c.provider(useAudioModel)
	if apiKey == "" {
		return "", ErrNoProvider
	}

	reqBody := chatRequest{Model: model, Messages: messages, Temperature: 0.7}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	timeout := c.cfg.AITimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("AI API error: status %d", resp.StatusCode)
	}

	var completion chatResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("no response from AI")
	}

	var content string
	switch v := completion.Choices[0].Message.Content.(type) {
	case string:
		content = v
	default:
		contentBytes, err := json.Marshal(v)
		if err != nil {
			return "", errors.New("failed to extract content from AI response")
		}
		content = string(contentBytes)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", errors.New("empty response from AI")
	}
	return content, nil
}

func (c *Client) provider(useAudioModel bool) (apiURL, apiKey, model string) {
	if c.cfg.GLMAPIKey != "" {
		model = c.cfg.GLMModel
		if useAudioModel {
			model = c.cfg.GLMAudioModel
		}
		return c.cfg.GLMAPIURL, c.cfg.GLMAPIKey, model
	}
	return c.cfg.DeepSeekAPIURL, c.cfg.DeepSeekAPIKey, c.cfg.DeepSeekModel
}

// stripFences removes a markdown code fence wrapper, if present.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}

// decodeJSON parses a model reply into v, recovering from replies that wrap
// the JSON object in prose or fences.
func decodeJSON(content string, v interface{}) error {
	content = stripFences(content)
	if err := json.Unmarshal([]byte(content), v); err == nil {
		return nil
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if bs, be := strings.Index(content, "["), strings.LastIndex(content, "]"); bs >= 0 && (start < 0 || bs < start) {
		start, end = bs, be
	}
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(content[start:end+1]), v); err != nil {
			return fmt.Errorf("parse AI reply: %w", err)
		}
		return nil
	}
	return errors.New("no JSON found in AI reply")
}
