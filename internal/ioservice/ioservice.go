// Package ioservice implements yieldsvc.Service over HTTP. This is an
// impure I/O package that implements contracts defined in pkg/.
package ioservice

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/mavunowatch/mavuno/pkg/config"
	"github.com/mavunowatch/mavuno/pkg/yieldsvc"
)

// Endpoints of the service relative to its base URL.
const (
	PathStatus   = "/"
	PathMetadata = "/metadata"
	PathPredict  = "/predict"
	PathTrend    = "/trend"
)

// httpService implements yieldsvc.Service using net/http and the JSON
// encoder of gnfmt.
type httpService struct {
	baseURL string
	client  *http.Client
	enc     gnfmt.GNjson
}

// New creates a client of the service described by cfg. It does not
// contact the service.
func New(cfg config.ServiceConfig) yieldsvc.Service {
	client := &http.Client{}
	if cfg.Timeout > 0 {
		client.Timeout = time.Duration(cfg.Timeout) * time.Second
	}
	return &httpService{
		baseURL: cfg.URL,
		client:  client,
		enc:     gnfmt.GNjson{},
	}
}

// Metadata implements yieldsvc.Service.
func (s *httpService) Metadata(
	ctx context.Context,
) (*yieldsvc.MetadataResponse, error) {
	var res yieldsvc.MetadataResponse
	url := s.baseURL + PathMetadata
	status, err := s.call(ctx, http.MethodGet, url, nil, &res)
	if err != nil {
		return nil, err
	}
	if !isOK(status) {
		return nil, StatusError(url, status)
	}
	return &res, nil
}

// Predict implements yieldsvc.Service.
func (s *httpService) Predict(
	ctx context.Context,
	req yieldsvc.PredictionRequest,
) (*yieldsvc.PredictionResponse, error) {
	var res yieldsvc.PredictionResponse
	url := s.baseURL + PathPredict
	status, err := s.call(ctx, http.MethodPost, url, req, &res)
	if err != nil {
		return nil, err
	}
	if !isOK(status) && res.Error == "" {
		return nil, StatusError(url, status)
	}
	return &res, nil
}

// Trend implements yieldsvc.Service.
func (s *httpService) Trend(
	ctx context.Context,
	req yieldsvc.TrendRequest,
) (*yieldsvc.TrendResponse, error) {
	var res yieldsvc.TrendResponse
	url := s.baseURL + PathTrend
	status, err := s.call(ctx, http.MethodPost, url, req, &res)
	if err != nil {
		return nil, err
	}
	if !isOK(status) && res.Error == "" {
		return nil, StatusError(url, status)
	}
	return &res, nil
}

// Status implements yieldsvc.Service.
func (s *httpService) Status(
	ctx context.Context,
) (*yieldsvc.StatusResponse, error) {
	var res yieldsvc.StatusResponse
	url := s.baseURL + PathStatus
	status, err := s.call(ctx, http.MethodGet, url, nil, &res)
	if err != nil {
		return nil, err
	}
	if !isOK(status) {
		return nil, StatusError(url, status)
	}
	return &res, nil
}

// call sends the payload, if any, as JSON and decodes the reply body into
// out whatever the status code is. A body that is not JSON is a decode
// error for 2xx replies and a status error otherwise.
func (s *httpService) call(
	ctx context.Context,
	method, url string,
	payload, out any,
) (int, error) {
	var body io.Reader
	if payload != nil {
		data, err := s.enc.Encode(payload)
		if err != nil {
			return 0, EncodeError(url, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, RequestError(url, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, RequestError(url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, RequestError(url, err)
	}
	slog.Debug("Service replied",
		"method", method,
		"url", url,
		"status", resp.StatusCode,
		"bytes", len(data),
		"duration", time.Since(start),
	)

	if err = s.enc.Decode(data, out); err != nil {
		if !isOK(resp.StatusCode) {
			return 0, StatusError(url, resp.StatusCode)
		}
		return 0, DecodeError(url, err)
	}
	return resp.StatusCode, nil
}

func isOK(status int) bool {
	return status >= 200 && status < 300
}
