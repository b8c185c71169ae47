package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChatModel は、Generate の組み立てとエラー処理を検証するためのスタブです。
type fakeChatModel struct {
	reply   string
	err     error
	gotMsgs []*schema.Message
}

func (f *fakeChatModel) Generate(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.gotMsgs = in
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func (f *fakeChatModel) Stream(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not implemented")
}

func (f *fakeChatModel) WithTools(tools []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	return f, nil
}

func TestGenerate(t *testing.T) {
	fake := &fakeChatModel{reply: "技能講習の修了が必要です。"}
	history := []ChatTurn{
		{Role: "user", Content: "フォークリフトについて教えて"},
		{Role: "assistant", Content: "どのような点でしょうか。"},
	}

	reply, err := Generate(context.Background(), fake, "system prompt", history, "運転資格は？", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "技能講習の修了が必要です。", reply)

	// system + 履歴2件 + 今回のユーザーメッセージ
	require.Len(t, fake.gotMsgs, 4)
	assert.Equal(t, schema.System, fake.gotMsgs[0].Role)
	assert.Equal(t, schema.User, fake.gotMsgs[1].Role)
	assert.Equal(t, schema.Assistant, fake.gotMsgs[2].Role)
	assert.Equal(t, "運転資格は？", fake.gotMsgs[3].Content)
}

func TestGenerateSkipsEmptyHistoryTurns(t *testing.T) {
	fake := &fakeChatModel{reply: "ok"}
	history := []ChatTurn{
		{Role: "user", Content: "  "},
		{Role: "assistant", Content: ""},
	}
	_, err := Generate(context.Background(), fake, "sys", history, "質問", 5*time.Second)
	require.NoError(t, err)
	assert.Len(t, fake.gotMsgs, 2)
}

func TestGenerateNilModel(t *testing.T) {
	_, err := Generate(context.Background(), nil, "sys", nil, "質問", time.Second)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGenerateEmptyReply(t *testing.T) {
	fake := &fakeChatModel{reply: "   "}
	_, err := Generate(context.Background(), fake, "sys", nil, "質問", time.Second)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGenerateUpstreamError(t *testing.T) {
	fake := &fakeChatModel{err: errors.New("429 Too Many Requests")}
	_, err := Generate(context.Background(), fake, "sys", nil, "質問", time.Second)
	assert.ErrorIs(t, err, ErrUpstreamRejected)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"deadline", context.DeadlineExceeded, ErrUpstreamTimeout},
		{"timeout message", errors.New("request timeout"), ErrUpstreamTimeout},
		{"quota", errors.New("RESOURCE_EXHAUSTED: quota exceeded"), ErrUpstreamRejected},
		{"rate limit", errors.New("rate limit reached"), ErrUpstreamRejected},
		{"overloaded", errors.New("Overloaded"), ErrUpstreamRejected},
		{"auth", errors.New("401 unauthorized: invalid api key"), ErrNotConfigured},
		{"already classified", ErrMalformedResponse, ErrMalformedResponse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.in)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}

	t.Run("判別不能な失敗は分類しない", func(t *testing.T) {
		in := errors.New("connection reset by peer")
		got := Classify(in)
		assert.ErrorIs(t, got, in)
		assert.NotErrorIs(t, got, ErrUpstreamRejected)
		assert.NotErrorIs(t, got, ErrUpstreamTimeout)
		assert.NotErrorIs(t, got, ErrNotConfigured)
	})
}

func TestNewChatModelRequiresKey(t *testing.T) {
	_, err := NewChatModel(context.Background(), ProviderConfig{Type: ProviderGoogle})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestEnvKeyFor(t *testing.T) {
	assert.Equal(t, "GOOGLE_API_KEY", EnvKeyFor(ProviderGoogle))
	assert.Equal(t, "OPENAI_API_KEY", EnvKeyFor(ProviderOpenAI))
	assert.Equal(t, "ANTHROPIC_API_KEY", EnvKeyFor(ProviderAnthropic))
	assert.Equal(t, "GOOGLE_API_KEY", EnvKeyFor("unknown"))
}
