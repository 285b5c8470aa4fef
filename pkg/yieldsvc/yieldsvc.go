// Package yieldsvc describes the contract of the remote crop yield
// service: the shapes of its requests and replies and the Service
// interface that transports them. All predictive computation happens on
// the service side.
package yieldsvc

import (
	"context"
)

// DefaultUnits are shown with a predicted yield when the service does not
// report units.
const DefaultUnits = "tons/ha"

// Service is the remote prediction and trend service.
//
// Implementations return an error only when the call itself fails
// (unreachable service, unreadable reply). A reply that carries an
// explicit error string is returned without error.
type Service interface {
	// Metadata returns the reference vocabulary of counties and crops.
	Metadata(ctx context.Context) (*MetadataResponse, error)

	// Predict asks for a yield prediction.
	Predict(ctx context.Context, req PredictionRequest) (*PredictionResponse, error)

	// Trend asks for the historical yield trend of a county/crop pair.
	Trend(ctx context.Context, req TrendRequest) (*TrendResponse, error)

	// Status checks that the service is running.
	Status(ctx context.Context) (*StatusResponse, error)
}

// MetadataResponse is the reference vocabulary as sent by the service.
type MetadataResponse struct {
	Counties []string `json:"counties"`
	Crops    []string `json:"crops"`
}

// PredictionRequest is the payload of a prediction query.
type PredictionRequest struct {
	// Year is the current calendar year computed by the client.
	Year int `json:"year"`

	// AreaHa is the cultivated area in hectares.
	AreaHa float64 `json:"area_ha"`

	// Crop is the selected crop.
	Crop string `json:"crop"`

	// AllCrops is the full crop vocabulary. The service builds its
	// one-hot crop features from it, so it is never only the selected
	// crop.
	AllCrops []string `json:"all_crops"`
}

// PredictionResponse carries either a predicted yield or an error.
type PredictionResponse struct {
	PredictedYield *float64 `json:"predicted_yield,omitempty"`
	Units          string   `json:"units,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// TrendRequest is the payload of a trend query.
type TrendRequest struct {
	County string `json:"county"`
	Crop   string `json:"crop"`
}

// TrendResponse carries either a trend with its note or an error. A reply
// without an error and without trend points is ambiguous-empty.
type TrendResponse struct {
	Trend     []TrendPoint `json:"trend,omitempty"`
	TrendNote string       `json:"trend_note,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// StatusResponse is the reply of the service health probe.
type StatusResponse struct {
	Message string `json:"message"`
}
