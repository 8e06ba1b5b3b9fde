package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"
)

type hfRequest struct {
	Inputs string `json:"inputs"`
}

type hfLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type HuggingFace struct {
	endpoint string
	token    string
	client   *http.Client
}

func NewHuggingFace(endpoint, token string, timeout time.Duration) *HuggingFace {
	return &HuggingFace{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: timeout},
	}
}

func (h *HuggingFace) Name() string {
	return "huggingface:" + path.Base(strings.TrimRight(h.endpoint, "/"))
}

func (h *HuggingFace) Classify(ctx context.Context, text string) (Prediction, error) {
	raw, err := json.Marshal(hfRequest{Inputs: text})
	if err != nil {
		return Prediction{}, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(raw))
	if err != nil {
		return Prediction{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("sentiment request: %w", err)
	}
	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return Prediction{}, fmt.Errorf("read sentiment response: %w", readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := strings.TrimSpace(string(body))
		if short := Truncate(snippet, 220); short != snippet {
			snippet = short + "..."
		}
		return Prediction{}, fmt.Errorf("sentiment provider status %d: %s", resp.StatusCode, snippet)
	}

	labels, err := decodeLabels(body)
	if err != nil {
		return Prediction{}, err
	}
	best := labels[0]
	for _, l := range labels[1:] {
		if l.Score > best.Score {
			best = l
		}
	}
	return Prediction{
		Label:    canonicalLabel(best.Label),
		Score:    best.Score,
		Provider: h.Name(),
	}, nil
}

// decodeLabels accepts both the nested [[...]] shape returned for a single
// input and a flat [...] list.
func decodeLabels(body []byte) ([]hfLabel, error) {
	var nested [][]hfLabel
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}
	var flat []hfLabel
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}
	return nil, fmt.Errorf("unexpected sentiment response: %.120s", string(body))
}

func canonicalLabel(label string) string {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "POSITIVE", "POS", "LABEL_1":
		return LabelPositive
	case "NEGATIVE", "NEG", "LABEL_0":
		return LabelNegative
	default:
		return strings.ToUpper(strings.TrimSpace(label))
	}
}
