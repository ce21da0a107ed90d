package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sejongbiz/backend/internal/domain"
	"github.com/sejongbiz/backend/internal/scoring"
)

// NarrativeService generates analysis commentary through a local Ollama
// endpoint. It is a best-effort enrichment: the numeric scoring path never
// depends on it, and any failure falls back to a deterministic templated
// comment.
type NarrativeService struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewNarrativeService creates a new narrative service
func NewNarrativeService(baseURL, model string) *NarrativeService {
	return &NarrativeService{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ollamaGenerateRequest is the POST /api/generate body
type ollamaGenerateRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

// ollamaGenerateResponse is the POST /api/generate response
type ollamaGenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// TryGenerate produces an analysis comment for the given metrics. It probes
// the endpoint first and issues a single non-streaming generate request; on
// any failure (endpoint down, non-2xx, malformed payload) it returns the
// templated fallback. No retries, no surfaced errors.
func (s *NarrativeService) TryGenerate(ctx context.Context, req domain.NarrativeRequest) domain.NarrativeResponse {
	if err := s.Health(ctx); err != nil {
		return s.fallbackComment(req)
	}

	body, err := json.Marshal(ollamaGenerateRequest{
		Model:  s.model,
		Prompt: s.buildPrompt(req),
		Stream: false,
		Options: ollamaOptions{
			Temperature: 0.7,
			NumPredict:  300,
		},
	})
	if err != nil {
		return s.fallbackComment(req)
	}

	url := fmt.Sprintf("%s/api/generate", s.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return s.fallbackComment(req)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return s.fallbackComment(req)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return s.fallbackComment(req)
	}

	var generated ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&generated); err != nil {
		return s.fallbackComment(req)
	}
	if strings.TrimSpace(generated.Response) == "" {
		return s.fallbackComment(req)
	}

	return domain.NarrativeResponse{
		Comment:    strings.TrimSpace(generated.Response),
		Model:      generated.Model,
		IsFallback: false,
	}
}

// Health probes endpoint liveness via GET /api/tags; any 2xx counts as up.
func (s *NarrativeService) Health(ctx context.Context) error {
	url := fmt.Sprintf("%s/api/tags", s.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("narrative: failed to create probe request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("narrative: liveness probe failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("narrative: liveness probe returned status %d", resp.StatusCode)
	}

	return nil
}

// buildPrompt renders the fixed analysis prompt template
func (s *NarrativeService) buildPrompt(req domain.NarrativeRequest) string {
	return fmt.Sprintf(`당신은 세종시 상권 분석 전문가 AI입니다. 다음 데이터를 기반으로 창업 입지 분석 코멘트를 2-3문장으로 간결하게 작성해주세요.

지역: %s
업종: %s
인구: %d명
월 카드매출: %.1f억원
공실률: %.1f%%
입지 점수: %.1f점 (100점 만점)

위 데이터를 종합하여 이 지역에서 %s 창업의 장단점과 추천 여부를 분석해주세요. 한국어로 답변하세요.`,
		req.DistrictName, req.BusinessType, req.Population,
		req.CardSales/1e8, req.VacancyRate, req.Score, req.BusinessType)
}

// fallbackComment builds the deterministic templated comment used whenever
// the inference endpoint is unavailable.
func (s *NarrativeService) fallbackComment(req domain.NarrativeRequest) domain.NarrativeResponse {
	grade := scoring.ScoreGrade(req.Score)

	var outlook string
	switch grade.Grade {
	case "S", "A":
		outlook = "입지 조건이 우수하여 창업을 적극 검토할 만한 지역입니다."
	case "B":
		outlook = "입지 조건이 양호하나 차별화 전략이 필요한 지역입니다."
	case "C":
		outlook = "입지 조건이 보통 수준으로 신중한 검토가 필요합니다."
	default:
		outlook = "입지 조건이 불리하여 대안 지역 검토를 권장합니다."
	}

	comment := fmt.Sprintf(
		"%s %s 창업 분석: 입지 점수 %.1f점(%s등급), 공실률 %.1f%%, 인구 %d명. %s",
		req.DistrictName, req.BusinessType, req.Score, grade.Grade,
		req.VacancyRate, req.Population, outlook,
	)

	return domain.NarrativeResponse{
		Comment:    comment,
		IsFallback: true,
	}
}
