package search

import (
	"sort"
	"strings"

	"github.com/dzr01145/chatbot/config"
	"github.com/dzr01145/chatbot/enum/category"
	"github.com/dzr01145/chatbot/pkg/safety/store"
)

// Limits は、カテゴリー別の採用上限です。
type Limits struct {
	Laws      int
	Cases     int
	Knowledge int
}

func DefaultLimits() Limits {
	return Limits{
		Laws:      config.MAX_CONTEXT_LAWS,
		Cases:     config.MAX_CONTEXT_CASES,
		Knowledge: config.MAX_CONTEXT_KNOWLEDGE,
	}
}

// Result は、スコア付きの検索ヒット1件です。
type Result struct {
	Doc   store.Document
	Score int
}

// Searcher は、抽出・スコアリング・ランキングをまとめた検索器です。
type Searcher struct {
	extractor *Extractor
	weights   Weights
	limits    Limits
}

func NewSearcher(e *Extractor, w Weights, l Limits) *Searcher {
	return &Searcher{extractor: e, weights: w, limits: l}
}

// Search は、クエリに関連するレコードをスコア降順で返します。
// 同点のレコードはストアの読み込み順を保ちます（安定ソート）。
// カテゴリー別上限は全体ソートの後に適用するため、
// 高スコアのカテゴリーが他カテゴリーの枠を奪うことはありません。
// 空白のみのクエリやヒットなしは nil を返します。
func (s *Searcher) Search(docs []store.Document, query string) []Result {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	terms := s.extractor.Extract(query)

	results := []Result{}
	for i := range docs {
		sc := s.weights.Score(&docs[i], query, terms)
		if sc > 0 {
			results = append(results, Result{Doc: docs[i], Score: sc})
		}
	}
	if len(results) == 0 {
		return nil
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	counts := map[category.Category]int{}
	capped := []Result{}
	for _, r := range results {
		if counts[r.Doc.Category] >= s.limitFor(r.Doc.Category) {
			continue
		}
		counts[r.Doc.Category]++
		capped = append(capped, r)
	}
	return capped
}

func (s *Searcher) limitFor(c category.Category) int {
	switch c {
	case category.LAWS:
		return s.limits.Laws
	case category.CASES:
		return s.limits.Cases
	default:
		return s.limits.Knowledge
	}
}
