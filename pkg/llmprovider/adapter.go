package llmprovider

import (
	"context"
	"errors"

	"relationship-os/pkg/deepseek"
	"relationship-os/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: toGeminiContent(req.SystemInstruction),
		Messages:          toGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONOutput:        req.JSONOutput,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      fromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	c := toGeminiContents([]Message{*msg})
	return &c[0]
}

func toGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, msg := range msgs {
		parts := make([]gemini.Part, len(msg.Parts))
		for j, p := range msg.Parts {
			parts[j] = gemini.Part{Text: p.Text}
			if p.InlineData != nil {
				parts[j].InlineData = &gemini.Blob{
					MIMEType: p.InlineData.MIMEType,
					Data:     p.InlineData.Data,
				}
			}
		}
		contents[i] = gemini.Content{Role: msg.Role, Parts: parts}
	}
	return contents
}

func fromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface. The chat completions API is
// text-only, so requests carrying inline media are rejected up front and the
// manager falls through to the next provider.
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if hasInlineData(req) {
		return nil, &ProviderError{Provider: a.Name(), Err: errors.New("media input not supported")}
	}

	dsReq := &deepseek.Request{
		Messages:    toDeepSeekMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONOutput {
		dsReq.ResponseFormat = &deepseek.ResponseFormat{Type: "json_object"}
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	out := &Response{
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Content = Message{
			Role:  resp.Choices[0].Message.Role,
			Parts: []Part{{Text: resp.Choices[0].Message.Content}},
		}
	}
	return out, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// toDeepSeekMessages flattens the normalized request into the OpenAI-style
// role/content message list; the system instruction becomes the first message.
func toDeepSeekMessages(req *Request) []deepseek.Message {
	var msgs []deepseek.Message
	if req.SystemInstruction != nil {
		msgs = append(msgs, deepseek.Message{Role: "system", Content: flattenParts(req.SystemInstruction.Parts)})
	}
	for _, m := range req.Messages {
		role := m.Role
		if role == "" {
			role = "user"
		}
		msgs = append(msgs, deepseek.Message{Role: role, Content: flattenParts(m.Parts)})
	}
	return msgs
}

func flattenParts(parts []Part) string {
	var out string
	for _, p := range parts {
		out += p.Text
	}
	return out
}

func hasInlineData(req *Request) bool {
	for _, m := range req.Messages {
		for _, p := range m.Parts {
			if p.InlineData != nil {
				return true
			}
		}
	}
	return false
}
