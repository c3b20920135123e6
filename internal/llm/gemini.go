package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// geminiAPIBase is a var to allow test overrides via httptest.
var geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta"

// GeminiAPIBase returns the current Gemini API base URL.
// Exposed for use by integration tests via httptest servers.
func GeminiAPIBase() string { return geminiAPIBase }

// SetGeminiAPIBase overrides the Gemini API base URL.
// Intended for use in tests only.
func SetGeminiAPIBase(u string) { geminiAPIBase = u }

type geminiProvider struct {
	model   string
	apiKey  string // unexported; never serialized by encoding/json
	timeout time.Duration
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	ModelVersion string `json:"modelVersion"`
	Error        *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (p *geminiProvider) buildRequest(req *Request) geminiRequest {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.UserPrompt}}},
		},
		GenerationConfig: geminiGenConfig{
			Temperature:     0,
			MaxOutputTokens: maxTokens,
		},
	}
	if req.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemPrompt}}}
	}
	return body
}

func (p *geminiProvider) resolveModel(req *Request) string {
	if req.Model != "" {
		return req.Model
	}
	return p.model
}

func (p *geminiProvider) newHTTPRequest(ctx context.Context, url string, body any) (*http.Request, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", p.apiKey)
	return httpReq, nil
}

func (p *geminiProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := applyTimeout(ctx, p.timeout)
	defer cancel()

	model := p.resolveModel(req)
	url := fmt.Sprintf("%s/models/%s:generateContent", geminiAPIBase, model)
	httpReq, err := p.newHTTPRequest(ctx, url, p.buildRequest(req))
	if err != nil {
		return nil, err
	}

	resp, err := sharedHTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	const maxBodyBytes = 10 * 1024 * 1024 // 10 MiB
	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{Provider: "gemini", StatusCode: resp.StatusCode, Body: string(respBytes)}
	}

	var gr geminiResponse
	if err := json.Unmarshal(respBytes, &gr); err != nil {
		return nil, fmt.Errorf("parsing response JSON (body: %s): %w", truncate(string(respBytes), 200), err)
	}
	if gr.Error != nil {
		return nil, fmt.Errorf("gemini: %s: %s", gr.Error.Status, gr.Error.Message)
	}
	if len(gr.Candidates) == 0 {
		return nil, fmt.Errorf("gemini: no candidates in response")
	}

	var content string
	for _, part := range gr.Candidates[0].Content.Parts {
		content += part.Text
	}
	if content == "" {
		return nil, fmt.Errorf("gemini: no text content in response")
	}

	return &Response{
		Content: content,
		Model:   fmt.Sprintf("gemini:%s", model),
	}, nil
}

func (p *geminiProvider) Stream(ctx context.Context, req *Request) (<-chan string, <-chan error) {
	deltas := make(chan string, 64)
	errs := make(chan error, 1)

	go func() {
		defer close(deltas)
		defer close(errs)

		ctx, cancel := applyTimeout(ctx, p.timeout)
		defer cancel()

		url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse", geminiAPIBase, p.resolveModel(req))
		httpReq, err := p.newHTTPRequest(ctx, url, p.buildRequest(req))
		if err != nil {
			errs <- err
			return
		}
		httpReq.Header.Set("Accept", "text/event-stream")

		resp, err := sharedHTTPClient.Do(httpReq)
		if err != nil {
			errs <- fmt.Errorf("HTTP request failed: %w", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
			errs <- &ProviderError{Provider: "gemini", StatusCode: resp.StatusCode, Body: string(body)}
			return
		}

		if err := decodeGeminiSSE(ctx, resp.Body, deltas); err != nil {
			errs <- err
		}
	}()

	return deltas, errs
}

// decodeGeminiSSE reads the streamGenerateContent event stream; each frame
// is a full geminiResponse whose candidate parts carry the text delta.
func decodeGeminiSSE(ctx context.Context, body io.Reader, deltas chan<- string) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		data, ok := sseData(scanner.Text())
		if !ok {
			continue
		}
		if data == "[DONE]" {
			return nil
		}

		var frame geminiResponse
		if err := json.Unmarshal([]byte(data), &frame); err != nil {
			continue
		}
		if frame.Error != nil {
			return fmt.Errorf("gemini: %s: %s", frame.Error.Status, frame.Error.Message)
		}
		if len(frame.Candidates) == 0 {
			continue
		}
		for _, part := range frame.Candidates[0].Content.Parts {
			if part.Text == "" {
				continue
			}
			select {
			case deltas <- part.Text:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("reading event stream: %w", err)
	}
	return nil
}
