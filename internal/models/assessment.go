package models

import "time"

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

func ParseRiskLevel(s string) (RiskLevel, bool) {
	switch RiskLevel(s) {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return RiskLevel(s), true
	case "low":
		return RiskLevelLow, true
	case "medium":
		return RiskLevelMedium, true
	case "high":
		return RiskLevelHigh, true
	default:
		return "", false
	}
}

// RiskAssessment scores are all within [0, 100].
type RiskAssessment struct {
	OverallRisk float64   `json:"overall_risk"`
	SnowRisk    float64   `json:"snow_risk"`
	RainRisk    float64   `json:"rain_risk"`
	FireRisk    float64   `json:"fire_risk"`
	TrafficRisk float64   `json:"traffic_risk"`
	RiskLevel   RiskLevel `json:"risk_level"`
}

// AssessmentRecord is a history row written each time a session is re-assessed.
type AssessmentRecord struct {
	ID               string         `json:"id"`
	SessionID        string         `json:"session_id"`
	Origin           string         `json:"origin"`
	Destination      string         `json:"destination"`
	Factors          Factors        `json:"factors"`
	Assessment       RiskAssessment `json:"assessment"`
	RecommendedRoute int            `json:"recommended_route"`
	RouteCount       int            `json:"route_count"`
	CreatedAt        time.Time      `json:"created_at"`
}
