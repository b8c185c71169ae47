package search

import (
	"strings"

	"github.com/dzr01145/chatbot/config"
	"github.com/dzr01145/chatbot/enum/category"
	"github.com/dzr01145/chatbot/pkg/safety/store"
)

// Weights は、フィールド別のスコア重みです。チューニング定数であり、
// 既定値は config に置いてあります。
type Weights struct {
	TitleExact int // タイトルがクエリ全文を含む
	TitleTerm  int // タイトルが検索語を含む（語ごとに加算）
	TagExact   int // タグとクエリ全文の双方向部分一致
	TagTerm    int // タグと検索語の双方向部分一致（語ごとに加算）
	BodyTerm   int // 本文が検索語を含む（語ごとに加算）
	CaseBonus  int // 災害事例へのボーナス（score > 0 のとき1回）
	LawBonus   int // 法令意図クエリでの法令条文へのボーナス
}

func DefaultWeights() Weights {
	return Weights{
		TitleExact: config.WEIGHT_TITLE_EXACT,
		TitleTerm:  config.WEIGHT_TITLE_TERM,
		TagExact:   config.WEIGHT_TAG_EXACT,
		TagTerm:    config.WEIGHT_TAG_TERM,
		BodyTerm:   config.WEIGHT_BODY_TERM,
		CaseBonus:  config.WEIGHT_CASE_BONUS,
		LawBonus:   config.WEIGHT_LAW_BONUS,
	}
}

// Score は、1レコードのクエリに対する関連度を返します。0は不一致を意味します。
// (レコード, クエリ) のみから決まる純関数で、同一入力は常に同一スコアを返します。
func (w Weights) Score(doc *store.Document, rawQuery string, terms []string) int {
	raw := strings.ToLower(strings.TrimSpace(rawQuery))
	if raw == "" {
		return 0
	}

	score := 0
	title := strings.ToLower(doc.Title)
	body := strings.ToLower(doc.Body)

	// タイトル: 全文一致を優先し、なければ語ごとの部分一致
	if strings.Contains(title, raw) {
		score += w.TitleExact
	} else {
		for _, t := range terms {
			if strings.Contains(title, t) {
				score += w.TitleTerm
			}
		}
	}

	// タグ: クエリ全文との双方向一致、なければ語ごとの双方向一致
	for _, tag := range doc.Tags {
		lt := strings.ToLower(tag)
		if lt == "" {
			continue
		}
		if strings.Contains(lt, raw) || strings.Contains(raw, lt) {
			score += w.TagExact
			continue
		}
		for _, t := range terms {
			if strings.Contains(lt, t) || strings.Contains(t, lt) {
				score += w.TagTerm
			}
		}
	}

	// 本文: 語ごとの部分一致
	for _, t := range terms {
		if strings.Contains(body, t) {
			score += w.BodyTerm
		}
	}

	// カテゴリーボーナス
	if score > 0 && doc.Category == category.CASES {
		score += w.CaseBonus
	}
	if score > 0 && doc.Category == category.LAWS && hasLegalIntent(raw) {
		score += w.LawBonus
	}

	return score
}

// hasLegalIntent は、クエリが法令を尋ねる語調を含むかを判定します。
func hasLegalIntent(raw string) bool {
	for _, t := range legalRegisterTerms {
		if strings.Contains(raw, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
