package config

const VERSION = "v1.2.0"

const TIME_ZONE = "Asia/Tokyo"

const REST_PORT = 3000

// DEFAULT_DATA_DIR は、ナレッジベースJSONファイルを配置するディレクトリです。
const DEFAULT_DATA_DIR = "./data"

// ナレッジベースファイル名（データディレクトリ直下に配置）
const (
	KNOWLEDGE_FILE = "knowledge.json"
	JIREI_FILE     = "jirei.json"
	LAWS_FILE      = "laws.json"
)

// 静的ファイル（チャットUI）の配置ディレクトリ
const PUBLIC_DIR = "./public"

// DEFAULT_LLM_TIMEOUT_SEC は、LLM呼び出しのタイムアウト秒数のデフォルト値です。
const DEFAULT_LLM_TIMEOUT_SEC = 60

// プロバイダーごとのデフォルトモデル名
const (
	DEFAULT_GOOGLE_MODEL    = "gemini-2.5-pro"
	DEFAULT_OPENAI_MODEL    = "gpt-4o-mini"
	DEFAULT_ANTHROPIC_MODEL = "claude-3-5-sonnet-20241022"
)

// DEFAULT_MAX_TOKENS は、回答生成の最大トークン数のデフォルト値です。
const DEFAULT_MAX_TOKENS = 1024

// --- 検索チューニング定数 ---
// 重みクラスとN-gram閾値は経験的な調整値です。リテラルを散在させず、
// search.Weights / search.Limits のデフォルトとしてここに集約します。

// NGRAM_BIGRAM_MIN_RUNES は、2文字N-gram展開を行う最小単語長です。
const NGRAM_BIGRAM_MIN_RUNES = 4

// NGRAM_TRIGRAM_MIN_RUNES は、3文字N-gram展開を行う最小単語長です。
const NGRAM_TRIGRAM_MIN_RUNES = 5

// MIN_TERM_RUNES は、検索語として採用する最小文字数です。
// 1文字の助詞などのノイズを除外します。
const MIN_TERM_RUNES = 2

// スコアリングの重みクラス
const (
	WEIGHT_TITLE_EXACT = 5 // 質問/タイトルにクエリ全文が含まれる
	WEIGHT_TITLE_TERM  = 2 // 質問/タイトルに単語が含まれる（加算）
	WEIGHT_TAG_EXACT   = 4 // キーワードとクエリの双方向包含
	WEIGHT_TAG_TERM    = 2 // キーワードと単語の双方向包含
	WEIGHT_BODY_TERM   = 1 // 本文に単語が含まれる
	WEIGHT_CASE_BONUS  = 1 // 災害事例カテゴリーのボーナス
	WEIGHT_LAW_BONUS   = 1 // 法令語彙を含むクエリでの法令ボーナス
)

// コンテキストに注入するカテゴリー別の最大件数
const (
	MAX_CONTEXT_LAWS      = 5
	MAX_CONTEXT_CASES     = 5
	MAX_CONTEXT_KNOWLEDGE = 3
)

// LAW_SUMMARY_MAX_RUNES は、法令条文の要約として注入する最大文字数です。
// 条文全文は注入しません。
const LAW_SUMMARY_MAX_RUNES = 200

type Env struct {
	Name  string
	Empty bool
}

var (
	LocalEnv Env = Env{Name: "local"}
	DevEnv   Env = Env{Name: "dev"}
	StgEnv   Env = Env{Name: "stg"}
	ProdEnv  Env = Env{Name: "prod"}
)

func GetEnv(e string) *Env {
	switch e {
	case LocalEnv.Name:
		return &LocalEnv
	case DevEnv.Name:
		return &DevEnv
	case StgEnv.Name:
		return &StgEnv
	case ProdEnv.Name:
		return &ProdEnv
	default:
		return &Env{Empty: true}
	}
}
