package models

type Recommendation string

const (
	RecommendationHighly  Recommendation = "Highly Recommended"
	RecommendationDefault Recommendation = "Recommended"
	RecommendationCaution Recommendation = "Use with Caution"
	RecommendationAvoid   Recommendation = "Not Recommended"
)

type WeatherImpacts struct {
	Snow float64 `json:"snow_impact"`
	Fire float64 `json:"fire_impact"`
	Rain float64 `json:"rain_impact"`
}

type EmergencyService struct {
	Type            string  `json:"type"`
	DistanceKm      float64 `json:"distance_km"`
	ResponseTimeMin float64 `json:"response_time_min"`
}

type HistoricalSafety struct {
	PastIncidents         int     `json:"past_incidents"`
	AvgResponseTimeMin    float64 `json:"avg_response_time"`
	EvacuationSuccessRate float64 `json:"evacuation_success_rate"`
}

type RoadConditions struct {
	RoadQuality float64 `json:"road_quality"`
	TrafficFlow float64 `json:"traffic_flow"`
	Visibility  float64 `json:"visibility"`
}

// ExitDetails holds the simulated, illustrative fields of an exit candidate.
type ExitDetails struct {
	EmergencyServices []EmergencyService `json:"emergency_services"`
	HistoricalSafety  HistoricalSafety   `json:"historical_safety"`
	RoadConditions    RoadConditions     `json:"road_conditions"`
	TerrainDifficulty float64            `json:"terrain_difficulty"`
	CellCoverage      float64            `json:"cell_coverage"`
}

type ExitCandidate struct {
	Latitude       float64        `json:"lat"`
	Longitude      float64        `json:"lon"`
	Direction      string         `json:"direction"`
	SafetyScore    float64        `json:"safety_score"`
	Recommendation Recommendation `json:"recommendation"`
	WeatherImpacts WeatherImpacts `json:"weather_impacts"`
	ExitDetails
}

func (e *ExitCandidate) Coordinates() Coordinates {
	return Coordinates{
		Latitude:  e.Latitude,
		Longitude: e.Longitude,
	}
}

type NearestHazards struct {
	SnowKm *float64 `json:"snow_distance_km"`
	FireKm *float64 `json:"fire_distance_km"`
	RainKm *float64 `json:"rain_distance_km"`
}

type HourlySafety struct {
	Hour        int     `json:"hour"`
	SafetyScore float64 `json:"safety_score"`
	SnowImpact  float64 `json:"snow_impact"`
	FireImpact  float64 `json:"fire_impact"`
	RainImpact  float64 `json:"rain_impact"`
}

type ComparativeMetrics struct {
	EmergencyServiceProximity float64 `json:"emergency_service_proximity"`
	RoadAccessibility         float64 `json:"road_accessibility"`
	EvacuationSpeed           float64 `json:"evacuation_speed"`
	ShelterAvailability       float64 `json:"shelter_availability"`
	CommunicationReliability  float64 `json:"communication_reliability"`
}

type Resource struct {
	Name         string  `json:"name"`
	Availability float64 `json:"availability"`
}

type EvacuationYear struct {
	Year                 int     `json:"year"`
	SuccessRate          float64 `json:"success_rate"`
	AvgEvacuationTimeMin float64 `json:"avg_evacuation_time"`
	Incidents            int     `json:"incidents"`
}

type TerrainAnalysis struct {
	Elevation         float64 `json:"elevation"`
	Slope             float64 `json:"slope"`
	VegetationDensity float64 `json:"vegetation_density"`
	WaterBodies       int     `json:"water_bodies"`
}

// AnalyticsDetails holds the simulated part of an exit analysis.
type AnalyticsDetails struct {
	ComparativeMetrics   ComparativeMetrics `json:"comparative_metrics"`
	ResourceAvailability []Resource         `json:"resource_availability"`
	HistoricalEvacuation []EvacuationYear   `json:"historical_evacuation"`
	TerrainAnalysis      TerrainAnalysis    `json:"terrain_analysis"`
}

type ExitAnalytics struct {
	Exit           ExitCandidate  `json:"exit"`
	NearestHazards NearestHazards `json:"nearest_hazards"`
	SafetyForecast []HourlySafety `json:"safety_forecast"`
	AnalyticsDetails
}
