package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"
)

// DifficultyOracle estimates how hard a character is to guess. The stat
// assigner treats any error as grounds for its random fallback.
type DifficultyOracle interface {
	PredictDifficulty(ctx context.Context, characterName string) (float64, error)
}

// MLServiceClient calls the Python ML sidecar's /predict-difficulty endpoint.
type MLServiceClient struct {
	baseURL string
	client  *http.Client
}

type predictDifficultyRequest struct {
	CharacterName string `json:"character_name"`
}

type predictDifficultyResponse struct {
	DifficultyScore float64 `json:"difficulty_score"`
	Confidence      float64 `json:"confidence"`
}

// NewMLServiceClient builds a client for the ML sidecar from the environment.
// ML_SERVICE_URL defaults to the sidecar's local dev port; the request timeout
// bounds every prediction so a stalled sidecar degrades into the fallback path
// instead of blocking award requests.
func NewMLServiceClient() *MLServiceClient {
	baseURL := os.Getenv("ML_SERVICE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5001"
	}

	timeoutMS := 3000
	if val := os.Getenv("ML_SERVICE_TIMEOUT_MS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			timeoutMS = n
		}
	}

	return &MLServiceClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: time.Duration(timeoutMS) * time.Millisecond},
	}
}

// PredictDifficulty asks the sidecar for a 0-100 difficulty score. Network
// errors, non-2xx statuses and malformed bodies all surface as errors; the
// caller decides how to degrade.
func (m *MLServiceClient) PredictDifficulty(ctx context.Context, characterName string) (float64, error) {
	body, err := json.Marshal(predictDifficultyRequest{CharacterName: characterName})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/predict-difficulty", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("ml service returned status %d", resp.StatusCode)
	}

	var out predictDifficultyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("ml service returned invalid body: %w", err)
	}

	score := out.DifficultyScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, nil
}
