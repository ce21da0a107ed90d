package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sejongbiz/backend/internal/domain"
)

func narrativeRequest() domain.NarrativeRequest {
	return domain.NarrativeRequest{
		DistrictName: "도담동",
		BusinessType: "카페",
		Population:   25300,
		CardSales:    18.4e9,
		VacancyRate:  13.8,
		Score:        83.5,
	}
}

func TestTryGenerateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tags":
			w.WriteHeader(http.StatusOK)
		case "/api/generate":
			var req map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("generate body did not decode: %v", err)
			}
			if req["stream"] != false {
				t.Errorf("stream = %v, want false", req["stream"])
			}
			prompt, _ := req["prompt"].(string)
			if !strings.Contains(prompt, "도담동") {
				t.Error("prompt missing district name")
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"model":    "llama3.2",
				"response": " 도담동은 카페 창업에 유리한 입지입니다. ",
				"done":     true,
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	svc := NewNarrativeService(srv.URL, "llama3.2")
	got := svc.TryGenerate(context.Background(), narrativeRequest())

	if got.IsFallback {
		t.Error("IsFallback = true, want generated comment")
	}
	if got.Comment != "도담동은 카페 창업에 유리한 입지입니다." {
		t.Errorf("comment = %q, want trimmed model response", got.Comment)
	}
	if got.Model != "llama3.2" {
		t.Errorf("model = %q, want llama3.2", got.Model)
	}
}

func TestTryGenerateFallbackWhenEndpointDown(t *testing.T) {
	// Reserved port with no listener
	svc := NewNarrativeService("http://127.0.0.1:1", "llama3.2")
	got := svc.TryGenerate(context.Background(), narrativeRequest())

	if !got.IsFallback {
		t.Fatal("IsFallback = false, want fallback")
	}
	if !strings.Contains(got.Comment, "도담동") {
		t.Errorf("fallback comment = %q, want district name included", got.Comment)
	}
	if !strings.Contains(got.Comment, "S등급") {
		t.Errorf("fallback comment = %q, want grade for score 83.5", got.Comment)
	}
}

func TestTryGenerateFallbackOnGenerateError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewNarrativeService(srv.URL, "llama3.2")
	got := svc.TryGenerate(context.Background(), narrativeRequest())

	if !got.IsFallback {
		t.Error("IsFallback = false, want fallback on non-200 generate")
	}
}

func TestTryGenerateFallbackOnMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	svc := NewNarrativeService(srv.URL, "llama3.2")
	got := svc.TryGenerate(context.Background(), narrativeRequest())

	if !got.IsFallback {
		t.Error("IsFallback = false, want fallback on malformed payload")
	}
}

func TestTryGenerateFallbackOnEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"model": "llama3.2", "response": "   ", "done": true,
		})
	}))
	defer srv.Close()

	svc := NewNarrativeService(srv.URL, "llama3.2")
	got := svc.TryGenerate(context.Background(), narrativeRequest())

	if !got.IsFallback {
		t.Error("IsFallback = false, want fallback on blank response")
	}
}

func TestHealthProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("probe path = %q, want /api/tags", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("probe method = %q, want GET", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewNarrativeService(srv.URL, "llama3.2")
	if err := svc.Health(context.Background()); err != nil {
		t.Errorf("Health = %v, want nil", err)
	}

	down := NewNarrativeService("http://127.0.0.1:1", "llama3.2")
	if err := down.Health(context.Background()); err == nil {
		t.Error("Health on dead endpoint = nil, want error")
	}
}

func TestFallbackCommentGradeBands(t *testing.T) {
	svc := NewNarrativeService("http://127.0.0.1:1", "llama3.2")

	tests := []struct {
		score float64
		want  string
	}{
		{85, "적극 검토"},
		{72, "적극 검토"},
		{65, "차별화 전략"},
		{55, "신중한 검토"},
		{40, "대안 지역 검토"},
	}

	for _, tt := range tests {
		req := narrativeRequest()
		req.Score = tt.score
		got := svc.fallbackComment(req)
		if !strings.Contains(got.Comment, tt.want) {
			t.Errorf("fallbackComment(score=%v) = %q, want substring %q", tt.score, got.Comment, tt.want)
		}
	}
}
