package domain

import "time"

// Reason is one entry of the score explanation: the factor's category label,
// a human-readable description, the raw 0-100 factor value, and the weighted
// contribution that factor added to the total score.
type Reason struct {
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Value        float64 `json:"value"`
	Contribution float64 `json:"contribution"`
}

// RecommendationResult is the ranked, explained scoring output for one
// district under one business profile. Recomputed from scratch on every
// invocation, never persisted.
type RecommendationResult struct {
	District District `json:"district"`
	Score    float64  `json:"score"`
	Rank     int      `json:"rank"`
	Reasons  []Reason `json:"reasons"`
}

// Grade is a letter grade plus display color derived from a final score.
type Grade struct {
	Grade string `json:"grade"`
	Color string `json:"color"`
}

// AnalysisLog records one recommendation run for later inspection.
type AnalysisLog struct {
	BusinessID   string    `json:"business_id"`
	BusinessName string    `json:"business_name"`
	TopDistrict  string    `json:"top_district"`
	TopScore     float64   `json:"top_score"`
	DistrictN    int       `json:"district_count"`
	Timestamp    time.Time `json:"timestamp"`
}

// NarrativeRequest carries the metrics handed to the narrative provider for
// commentary generation.
type NarrativeRequest struct {
	DistrictName string  `json:"district_name"`
	BusinessType string  `json:"business_type"`
	Population   int     `json:"population"`
	CardSales    float64 `json:"card_sales"`
	VacancyRate  float64 `json:"vacancy_rate"`
	Score        float64 `json:"score"`
}

// NarrativeResponse wraps a generated comment. IsFallback marks comments
// produced by the deterministic template rather than the inference endpoint.
type NarrativeResponse struct {
	Comment    string `json:"comment"`
	Model      string `json:"model,omitempty"`
	IsFallback bool   `json:"is_fallback"`
}
