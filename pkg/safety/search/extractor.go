// Package search は、ナレッジベースに対するキーワード関連度検索を提供します。
// クエリからの検索語抽出、フィールド別の重み付きスコアリング、
// カテゴリー別上限つきランキングの3段で構成されます。
package search

import (
	"regexp"
	"strings"

	"github.com/dzr01145/chatbot/config"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

var querySplitRe = regexp.MustCompile(`[\s,、。]+`)

// Extractor は、自由入力のクエリから検索語の集合を導出します。
// 分かち書きされない日本語のため、空白区切りに加えて文字n-gramと
// kagomeによる名詞抽出、固定語彙の照合を重ねます。
type Extractor struct {
	tok *tokenizer.Tokenizer
}

// NewExtractor は形態素解析器を初期化します。辞書の構築に失敗した場合でも
// n-gramと語彙照合だけで動作します（抽出は決して失敗しません）。
func NewExtractor(tok *tokenizer.Tokenizer) *Extractor {
	return &Extractor{tok: tok}
}

// Extract は、クエリから重複のない検索語リストを返します。
// 返り値の順序は 分割語 → n-gram → 語彙語 → 連想語 → 名詞 の出現順で決定的です。
// 空のクエリには nil を返します。
func (e *Extractor) Extract(query string) []string {
	raw := strings.ToLower(strings.TrimSpace(query))
	if raw == "" {
		return nil
	}

	seen := map[string]bool{}
	terms := []string{}
	add := func(t string) {
		if t != "" && !seen[t] {
			seen[t] = true
			terms = append(terms, t)
		}
	}

	// 1. 空白・読点での分割と文字n-gram展開
	for _, w := range querySplitRe.Split(raw, -1) {
		r := []rune(w)
		if len(r) < config.MIN_TERM_RUNES {
			continue
		}
		add(w)
		if len(r) >= config.NGRAM_BIGRAM_MIN_RUNES {
			for i := 0; i+2 <= len(r); i++ {
				add(string(r[i : i+2]))
			}
		}
		if len(r) >= config.NGRAM_TRIGRAM_MIN_RUNES {
			for i := 0; i+3 <= len(r); i++ {
				add(string(r[i : i+3]))
			}
		}
	}

	// 2. 固定語彙の照合と作業環境からの連想展開
	for _, dt := range domainTerms {
		if strings.Contains(raw, strings.ToLower(dt)) {
			add(strings.ToLower(dt))
		}
	}
	for _, er := range envRiskTerms {
		if strings.Contains(raw, strings.ToLower(er.env)) {
			for _, rk := range er.risks {
				add(strings.ToLower(rk))
			}
		}
	}

	// 3. 形態素解析による名詞の追加
	if e.tok != nil {
		for _, t := range e.tok.Tokenize(raw) {
			pos := t.POS()
			if len(pos) > 1 && pos[0] == "名詞" &&
				(pos[1] == "固有名詞" || pos[1] == "一般" || pos[1] == "サ変接続") {
				surface := strings.ToLower(t.Surface)
				if len([]rune(surface)) >= config.MIN_TERM_RUNES && !isSymbolOnly(surface) {
					add(surface)
				}
			}
		}
	}

	// 4. フォールバック: 何も取れなければ空白区切りのトークンをそのまま使う
	if len(terms) == 0 {
		for _, w := range strings.Fields(raw) {
			if len([]rune(w)) >= config.MIN_TERM_RUNES {
				add(w)
			}
		}
	}

	return terms
}

// isSymbolOnly は文字列が記号のみで構成されているかをチェックします。
func isSymbolOnly(s string) bool {
	for _, r := range s {
		if (r >= 'ぁ' && r <= 'ゖ') ||
			(r >= 'ァ' && r <= 'ヺ') ||
			(r >= '一' && r <= '龯') ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') {
			return false
		}
	}
	return len(s) > 0
}
