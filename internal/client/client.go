// Package client is a typed HTTP client for the media backend. It exposes
// one repository per entity kind (exercises, music) with list, create,
// update and remove operations. Every call is single-shot: failures are
// classified and returned, never retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"mindful/media-admin/internal/domain"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultUserAgent = "mindful-admin/0.1"
	requestTimeout   = 30 * time.Second
)

// Client talks to the media backend HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	token     string
}

// NewClient builds a Client for the given base URL, e.g. "http://localhost:8080".
func NewClient(base string) (*Client, error) {
	u, err := parseBaseURL(base)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// SetToken attaches a bearer token to all subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Exercises returns the exercise repository view of this client.
func (c *Client) Exercises() *ExerciseRepository {
	return &ExerciseRepository{c: c}
}

// Music returns the music repository view of this client.
func (c *Client) Music() *MusicRepository {
	return &MusicRepository{c: c}
}

// Login authenticates against the backend and stores the returned token on
// the client for use by subsequent mutations.
func (c *Client) Login(ctx context.Context, email, password string) error {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return &DecodeError{Err: err}
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", bytes.NewReader(payload), "application/json", &resp); err != nil {
		return err
	}
	if resp.Token == "" {
		return &DecodeError{Err: fmt.Errorf("login response carried no token")}
	}
	c.token = resp.Token
	return nil
}

// serverMessage is the success/failure envelope used by mutation endpoints.
type serverMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// doJSON issues a request and decodes a JSON response into dest.
// Failures are classified per the error taxonomy: transport problems
// become NetworkError, non-2xx statuses ServerError (with the backend's
// own message when the body carried one), and unparseable bodies
// DecodeError.
func (c *Client) doJSON(ctx context.Context, method, path string, body io.Reader, contentType string, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return &NetworkError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope serverMessage
		if jsonErr := json.Unmarshal(raw, &envelope); jsonErr == nil && envelope.Error != "" {
			return &ServerError{Status: resp.StatusCode, Message: envelope.Error}
		}
		return &ServerError{Status: resp.StatusCode}
	}

	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// doMultipart submits a multipart form with one file part plus metadata
// fields, then decodes the response envelope.
func (c *Client) doMultipart(ctx context.Context, path, fileField string, media domain.MediaFile, fields map[string]string, dest any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fileField, media.FileName)
	if err != nil {
		return &NetworkError{Err: err}
	}
	if _, err := io.Copy(part, media.Content); err != nil {
		return &NetworkError{Err: err}
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return &NetworkError{Err: err}
		}
	}
	if err := writer.Close(); err != nil {
		return &NetworkError{Err: err}
	}

	return c.doJSON(ctx, http.MethodPost, path, &buf, writer.FormDataContentType(), dest)
}

// message runs a mutation and returns the server's human-readable message.
func (c *Client) message(ctx context.Context, method, path string, body io.Reader, contentType string) (string, error) {
	var envelope serverMessage
	if err := c.doJSON(ctx, method, path, body, contentType, &envelope); err != nil {
		return "", err
	}
	return envelope.Message, nil
}

func parseBaseURL(base string) (*url.URL, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = "http://localhost:8080"
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", base, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// MediaURL composes a playable URL for a stored-media reference by taking
// its last path segment and joining it with the backend's static prefix.
func (c *Client) MediaURL(prefix, filePath string) string {
	if filePath == "" {
		return ""
	}
	segments := strings.Split(filePath, "/")
	fileName := segments[len(segments)-1]
	return c.baseURL.String() + "/uploads/" + prefix + "/" + fileName
}
