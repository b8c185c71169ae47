package providers

import (
	"context"
	"errors"
	"strings"
)

// プロバイダー呼び出しの失敗は以下の4種へ分類されます。
// 呼び出し側はこの分類だけを見てユーザー向けメッセージを決め、
// 生のエラー内容はログにのみ残します。
var (
	// ErrNotConfigured は、APIキー未設定などの構成不備です。
	ErrNotConfigured = errors.New("ai provider is not configured")
	// ErrUpstreamRejected は、クォータ超過やレート制限などの上流拒否です。
	ErrUpstreamRejected = errors.New("ai provider rejected the request")
	// ErrUpstreamTimeout は、タイムアウトによる中断です。
	ErrUpstreamTimeout = errors.New("ai provider request timed out")
	// ErrMalformedResponse は、空応答などの不正な上流応答です。
	ErrMalformedResponse = errors.New("ai provider returned a malformed response")
)

// Classify は、上流エラーを4分類のいずれかへ写像します。
// 判別できないもの（接続断など）はそのまま返し、
// 呼び出し側で一般的なチャット失敗として扱われます。
// ErrUpstreamRejected はクォータ超過・レート制限の兆候がある場合に限ります。
func Classify(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{ErrNotConfigured, ErrUpstreamRejected, ErrUpstreamTimeout, ErrMalformedResponse} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errors.Join(ErrUpstreamTimeout, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return errors.Join(ErrUpstreamTimeout, err)
	case strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "rate_limit") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "429") ||
		strings.Contains(msg, "overloaded"):
		return errors.Join(ErrUpstreamRejected, err)
	case strings.Contains(msg, "api key") ||
		strings.Contains(msg, "api_key") ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "401"):
		return errors.Join(ErrNotConfigured, err)
	default:
		return err
	}
}
