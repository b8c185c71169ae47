package providers

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ChatTurn は、会話履歴の1ターンです。Role は "user" または "assistant" です。
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Generate は、システム指示・会話履歴・ユーザーメッセージを1回の生成呼び出しへ
// まとめます。timeout を超えた場合は ErrUpstreamTimeout、空応答は
// ErrMalformedResponse を返します。自動リトライはしません。
func Generate(ctx context.Context, llm model.ToolCallingChatModel, system string, history []ChatTurn, user string, timeout time.Duration) (string, error) {
	if llm == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	msgs := make([]*schema.Message, 0, len(history)+2)
	msgs = append(msgs, schema.SystemMessage(system))
	for _, turn := range history {
		if strings.TrimSpace(turn.Content) == "" {
			continue
		}
		if strings.ToLower(turn.Role) == "assistant" {
			msgs = append(msgs, schema.AssistantMessage(turn.Content, nil))
		} else {
			msgs = append(msgs, schema.UserMessage(turn.Content))
		}
	}
	msgs = append(msgs, schema.UserMessage(user))

	out, err := llm.Generate(ctx, msgs)
	if err != nil {
		return "", Classify(err)
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return "", ErrMalformedResponse
	}
	return out.Content, nil
}
