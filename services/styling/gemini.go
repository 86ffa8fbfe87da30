package styling

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemPrompt = "You are a personal fashion and beauty styling assistant for an Indian " +
	"storefront. Give concise, practical advice about outfits, colors, and salon services. " +
	"Prices the user mentions are in rupees."

// GeminiClient wraps the generative model used for styling advice.
type GeminiClient struct {
	model *genai.GenerativeModel
}

// NewGeminiClient builds the client; the API key comes from config.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{model: client.GenerativeModel("models/gemini-1.5-pro")}, nil
}

// GenerateContent runs one prompt and concatenates the text parts.
func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

// DefaultAdvisor implements Advisor over the Gemini client and a context
// store.
type DefaultAdvisor struct {
	client  *GeminiClient
	context ContextStore
}

func NewDefaultAdvisor(client *GeminiClient, store ContextStore) *DefaultAdvisor {
	return &DefaultAdvisor{client: client, context: store}
}

// Advise replays the session history into the prompt, generates a reply, and
// records both turns.
func (a *DefaultAdvisor) Advise(ctx context.Context, sessionID, prompt string) (string, error) {
	history, err := a.context.History(ctx, sessionID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")
	for _, turn := range history {
		sb.WriteString(turn)
		sb.WriteString("\n")
	}
	sb.WriteString("user: ")
	sb.WriteString(prompt)

	reply, err := a.client.GenerateContent(ctx, sb.String())
	if err != nil {
		return "", err
	}

	if err := a.context.Append(ctx, sessionID, "user", prompt); err != nil {
		return "", err
	}
	if err := a.context.Append(ctx, sessionID, "assistant", reply); err != nil {
		return "", err
	}
	return reply, nil
}
