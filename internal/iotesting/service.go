// Package iotesting provides shared test doubles for the remote service
// and the presentation surface. This is an internal package for test
// infrastructure only.
package iotesting

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/mavunowatch/mavuno/pkg/yieldsvc"
)

// ErrNotConfigured is returned by FakeService methods that have no
// function set.
var ErrNotConfigured = errors.New("fake service: call not configured")

// FakeService implements yieldsvc.Service with programmable replies.
// It records every request it receives.
//
// Usage:
//
//	svc := &iotesting.FakeService{
//	    PredictFn: func(ctx context.Context, req yieldsvc.PredictionRequest) (*yieldsvc.PredictionResponse, error) {
//	        return &yieldsvc.PredictionResponse{PredictedYield: iotesting.Float(9.8)}, nil
//	    },
//	}
type FakeService struct {
	MetadataFn func(context.Context) (*yieldsvc.MetadataResponse, error)
	PredictFn  func(context.Context, yieldsvc.PredictionRequest) (*yieldsvc.PredictionResponse, error)
	TrendFn    func(context.Context, yieldsvc.TrendRequest) (*yieldsvc.TrendResponse, error)
	StatusFn   func(context.Context) (*yieldsvc.StatusResponse, error)

	mu            sync.Mutex
	metadataCalls int
	predictions   []yieldsvc.PredictionRequest
	trends        []yieldsvc.TrendRequest
}

// Metadata implements yieldsvc.Service.
func (s *FakeService) Metadata(ctx context.Context) (*yieldsvc.MetadataResponse, error) {
	s.mu.Lock()
	s.metadataCalls++
	s.mu.Unlock()
	if s.MetadataFn == nil {
		return nil, ErrNotConfigured
	}
	return s.MetadataFn(ctx)
}

// Predict implements yieldsvc.Service.
func (s *FakeService) Predict(
	ctx context.Context,
	req yieldsvc.PredictionRequest,
) (*yieldsvc.PredictionResponse, error) {
	s.mu.Lock()
	req.AllCrops = slices.Clone(req.AllCrops)
	s.predictions = append(s.predictions, req)
	s.mu.Unlock()
	if s.PredictFn == nil {
		return nil, ErrNotConfigured
	}
	return s.PredictFn(ctx, req)
}

// Trend implements yieldsvc.Service.
func (s *FakeService) Trend(
	ctx context.Context,
	req yieldsvc.TrendRequest,
) (*yieldsvc.TrendResponse, error) {
	s.mu.Lock()
	s.trends = append(s.trends, req)
	s.mu.Unlock()
	if s.TrendFn == nil {
		return nil, ErrNotConfigured
	}
	return s.TrendFn(ctx, req)
}

// Status implements yieldsvc.Service.
func (s *FakeService) Status(ctx context.Context) (*yieldsvc.StatusResponse, error) {
	if s.StatusFn == nil {
		return nil, ErrNotConfigured
	}
	return s.StatusFn(ctx)
}

// MetadataCalls returns how many times Metadata was called.
func (s *FakeService) MetadataCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metadataCalls
}

// Predictions returns the prediction requests received so far.
func (s *FakeService) Predictions() []yieldsvc.PredictionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.predictions)
}

// Trends returns the trend requests received so far.
func (s *FakeService) Trends() []yieldsvc.TrendRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.trends)
}

// Float returns a pointer to f.
func Float(f float64) *float64 {
	return &f
}

// StaticMetadata returns a MetadataFn that always replies with the given
// names.
func StaticMetadata(
	counties, crops []string,
) func(context.Context) (*yieldsvc.MetadataResponse, error) {
	return func(context.Context) (*yieldsvc.MetadataResponse, error) {
		return &yieldsvc.MetadataResponse{Counties: counties, Crops: crops}, nil
	}
}
