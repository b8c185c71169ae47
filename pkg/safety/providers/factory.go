// Package providers は、複数のLLMプロバイダー（Google Gemini / OpenAI / Anthropic）を
// Eino の ChatModel インターフェースへ統一して扱います。
package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	openaimodel "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"
)

// ProviderType はサポートするLLMプロバイダーの識別子です。
type ProviderType string

const (
	ProviderGoogle    ProviderType = "google"
	ProviderOpenAI    ProviderType = "openai"
	ProviderAnthropic ProviderType = "anthropic"
)

// ProviderConfig はプロバイダー接続に必要な設定情報です。
type ProviderConfig struct {
	Type      ProviderType
	APIKey    string
	BaseURL   string // OpenAI互換エンドポイントを使う場合のみ
	ModelName string
	MaxTokens int
}

// EnvKeyFor は、プロバイダーに対応するAPIキーの環境変数名を返します。
func EnvKeyFor(t ProviderType) string {
	switch ProviderType(strings.ToLower(string(t))) {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "GOOGLE_API_KEY"
	}
}

// NewChatModel は指定された設定に基づいて Eino ChatModel を生成します。
// APIキーが空の場合は ErrNotConfigured を返します。
func NewChatModel(ctx context.Context, cfg ProviderConfig) (model.ToolCallingChatModel, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: %s is empty", ErrNotConfigured, EnvKeyFor(cfg.Type))
	}

	providerType := ProviderType(strings.ToLower(string(cfg.Type)))
	switch providerType {
	case ProviderGoogle:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("Failed to create genai client: %w", err)
		}
		chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
			Client: client,
			Model:  cfg.ModelName,
		})
		if err != nil {
			return nil, fmt.Errorf("Failed to create gemini chat model: %w", err)
		}
		return chatModel, nil
	case ProviderOpenAI:
		chatModel, err := openaimodel.NewChatModel(ctx, &openaimodel.ChatModelConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.ModelName,
		})
		if err != nil {
			return nil, fmt.Errorf("Failed to create openai chat model: %w", err)
		}
		return chatModel, nil
	case ProviderAnthropic:
		chatModel, err := claude.NewChatModel(ctx, &claude.Config{
			APIKey:    cfg.APIKey,
			Model:     cfg.ModelName,
			MaxTokens: cfg.MaxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("Failed to create claude chat model: %w", err)
		}
		return chatModel, nil
	default:
		return nil, fmt.Errorf("Unsupported provider type: %s", cfg.Type)
	}
}
