package rterr

type err struct {
	code uint16
	msg  string
}

var (
	BadRequest          = err{code: 1, msg: "Bad Request."}
	Unauthorized        = err{code: 2, msg: "認証が必要です。"}
	NotFound            = err{code: 3, msg: "Not Found."}
	InternalServerError = err{code: 4, msg: "Internal Server Error."}
	Required            = err{code: 5, msg: "This field is required."}
	Max                 = err{code: 6, msg: "This field must be %s characters or less."}
	Min                 = err{code: 7, msg: "This field must be at least %s characters."}
	Oneof               = err{code: 8, msg: "This field must match one of (%s)."}
	NotEmptyStrArr      = err{code: 9, msg: "This field must not be an empty array."}
	ValidCategory       = err{code: 10, msg: "このIDに一致するカテゴリーが見つかりません。"}
	AiNotConfigured     = err{code: 11, msg: "APIキーが設定されていません。.envファイルに%sを設定してください。"}
	AiUpstreamRejected  = err{code: 12, msg: "AIプロバイダーの利用上限に達しました。しばらく待ってから再度お試しください。"}
	AiUpstreamTimeout   = err{code: 13, msg: "AIプロバイダーの応答がタイムアウトしました。もう一度お試しください。"}
	AiChatFailed        = err{code: 14, msg: "チャット処理中にエラーが発生しました。"}
	KnowledgeSaveFailed = err{code: 15, msg: "ナレッジの保存に失敗しました。"}
)

func (e *err) Code() uint16 {
	return e.code
}

func (e *err) Msg() string {
	return e.msg
}
