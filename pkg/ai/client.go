package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"cv-studio/pkg/ai/formatters"
)

// Client calls the ai-service to draft a professional summary from the
// session's profile. It is an opaque, fallible, single-shot call: there is
// no retry policy, and a failure never touches the existing summary.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient() *Client {
	base := os.Getenv("AI_SERVICE_URL")
	if base == "" {
		base = "http://ai-service:8000"
	}
	return &Client{BaseURL: base, HTTP: &http.Client{Timeout: 60 * time.Second}}
}

// SummaryRequest carries the profile facts the drafting prompt is built
// from: name, title, "title at company" pairs, and skill names.
type SummaryRequest struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Experience []string `json:"experience"`
	Skills     []string `json:"skills"`
}

// GenerateSummary asks the ai-service for a drafted summary paragraph.
func (c *Client) GenerateSummary(ctx context.Context, req SummaryRequest) (string, error) {
	reqObj := map[string]interface{}{
		"agent": "auto",
		"input": formatters.BuildSummaryPrompt(req.Name, req.Title, req.Experience, req.Skills),
	}
	b, _ := json.Marshal(reqObj)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/chat", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai-service returned non-200 status: %d", resp.StatusCode)
	}

	var chatResp struct {
		Agent  string `json:"agent"`
		Output string `json:"output"`
	}
	if err := json.Unmarshal(rb, &chatResp); err != nil {
		return "", err
	}

	out := strings.TrimSpace(chatResp.Output)
	if out == "" {
		return "", fmt.Errorf("ai-service returned an empty summary")
	}
	return out, nil
}
