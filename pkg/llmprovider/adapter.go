package llmprovider

import (
	"context"
	"errors"

	"intent-gateway/pkg/deepseek"
	"intent-gateway/pkg/gemini"
)

// geminiClient is the subset of *gemini.Client used by the adapter.
type geminiClient interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	Model() string
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client geminiClient
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client geminiClient) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	geminiReq := gemini.GenerateRequest{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Contents:          convertToGeminiContents(req.Messages),
	}
	if req.Temperature > 0 || req.MaxTokens > 0 || req.JSONMode {
		geminiReq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
		if req.JSONMode {
			geminiReq.GenerationConfig.ResponseMIMEType = "application/json"
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, unavailable(ProviderGemini, err)
	}

	text, err := resp.Text()
	if err != nil {
		if errors.Is(err, gemini.ErrBlocked) {
			return nil, blocked(ProviderGemini, err)
		}
		return nil, unavailable(ProviderGemini, err)
	}

	out := &Response{
		Content: Message{
			Role:  RoleAssistant,
			Parts: []Part{{Text: text}},
		},
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.UsageMetadata != nil {
		out.Usage = &Usage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.TotalTokenCount,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	role := msg.Role
	if role == RoleAssistant {
		role = geminiModelRole
	}
	if role == RoleSystem {
		role = ""
	}
	return &gemini.Content{Role: role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	deepseekReq := &deepseek.Request{
		Messages:    convertToDeepSeekMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		deepseekReq.ResponseFormat = &deepseek.ResponseFormat{Type: deepseek.ResponseFormatJSON}
	}

	// Add system instruction as first message if present
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		systemMsg := deepseek.Message{
			Role:    RoleSystem,
			Content: req.SystemInstruction.Parts[0].Text,
		}
		deepseekReq.Messages = append([]deepseek.Message{systemMsg}, deepseekReq.Messages...)
	}

	resp, err := a.client.GenerateContent(ctx, deepseekReq)
	if err != nil {
		return nil, unavailable(ProviderDeepSeek, err)
	}

	text, err := resp.Text()
	if err != nil {
		if errors.Is(err, deepseek.ErrContentFiltered) {
			return nil, blocked(ProviderDeepSeek, err)
		}
		return nil, unavailable(ProviderDeepSeek, err)
	}

	return &Response{
		Content: Message{
			Role:  RoleAssistant,
			Parts: []Part{{Text: text}},
		},
		ProviderName: ProviderDeepSeek,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return ProviderDeepSeek
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for DeepSeek
func convertToDeepSeekMessages(msgs []Message) []deepseek.Message {
	messages := make([]deepseek.Message, 0, len(msgs))
	for _, msg := range msgs {
		dsMsg := deepseek.Message{Role: msg.Role}
		for _, p := range msg.Parts {
			dsMsg.Content += p.Text
		}
		messages = append(messages, dsMsg)
	}
	return messages
}
