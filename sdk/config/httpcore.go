// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// RestHTTP is the request core shared by the catalog and disk services.
type RestHTTP interface {
	BuildURL(resource string, params map[string]string) string
	Do(ctx context.Context, method, url string, data []byte) ([]byte, int, error)
}

// RestConfig configures a single API surface. AuthScheme is the Authorization
// header prefix ("OAuth" for the disk API); leave AuthToken empty for public APIs.
type RestConfig struct {
	BaseURL    string
	AuthScheme string
	AuthToken  string
}

type httpRest struct {
	httpClient *http.Client
	restConfig RestConfig
}

func NewHTTPRest(httpClient *http.Client, restConfig RestConfig) RestHTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &httpRest{httpClient: httpClient, restConfig: restConfig}
}

// BuildURL joins the base URL with a resource path and query parameters.
// Parameter values are escaped; upload sources are themselves full URLs.
func (httpRest *httpRest) BuildURL(resource string, params map[string]string) string {
	base := strings.TrimSuffix(httpRest.restConfig.BaseURL, "/")
	if resource != "" {
		base += "/" + strings.TrimPrefix(resource, "/")
	}
	if len(params) == 0 {
		return base
	}
	q := url.Values{}
	for k, v := range params {
		if v == "" {
			continue
		}
		q.Set(k, v)
	}
	if enc := q.Encode(); enc != "" {
		base += "?" + enc
	}
	return base
}

func (httpRest *httpRest) Do(ctx context.Context, method, url string, data []byte) ([]byte, int, error) {
	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, 0, err
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// If a token is set, add the Authorization header
	if tok := httpRest.restConfig.AuthToken; tok != "" {
		scheme := httpRest.restConfig.AuthScheme
		if scheme == "" {
			scheme = "Bearer"
		}
		req.Header.Set("Authorization", scheme+" "+tok)
	}

	resp, err := httpRest.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	b, rerr := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var m map[string]any
		if json.Unmarshal(b, &m) == nil {
			if msg, ok := m["message"].(string); ok && msg != "" {
				return b, resp.StatusCode, fmt.Errorf("api responded with: %s - %s", resp.Status, msg)
			}
		}
		return b, resp.StatusCode, fmt.Errorf("api responded with: %s", resp.Status)
	}
	return b, resp.StatusCode, rerr
}
