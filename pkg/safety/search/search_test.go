package search

import (
	"testing"

	"github.com/dzr01145/chatbot/enum/category"
	"github.com/dzr01145/chatbot/pkg/safety/store"
	ipa "github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	tok, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	require.NoError(t, err)
	return NewExtractor(tok)
}

func testDocs() []store.Document {
	return []store.Document{
		{
			ID:       "general-1",
			Category: category.KNOWLEDGE,
			Title:    "フォークリフトの運転に必要な資格は？",
			Tags:     []string{"フォークリフト", "資格", "技能講習"},
			Body:     "最大荷重1トン以上のフォークリフトは技能講習の修了が必要です。",
		},
		{
			ID:        "case-001",
			Category:  category.CASES,
			Title:     "フォークリフトとの接触による負傷",
			Tags:      []string{"製造業", "フォークリフト", "激突され"},
			Body:      "後退時は誘導者を配置する。",
			Situation: "倉庫内で後退中のフォークリフトと作業者が接触した。",
			SourceURL: "https://example.com/jirei/001",
		},
		{
			ID:            "law-1",
			Category:      category.LAWS,
			Title:         "就業制限",
			Tags:          []string{"免許", "フォークリフト"},
			Body:          "事業者は、政令で定める業務については免許を受けた者でなければ就かせてはならない。",
			ArticleNumber: "第61条",
		},
		{
			ID:       "general-2",
			Category: category.KNOWLEDGE,
			Title:    "熱中症対策について",
			Tags:     []string{"熱中症", "WBGT"},
			Body:     "WBGT値に応じて休憩と水分補給を行います。",
		},
	}
}

func TestExtract(t *testing.T) {
	e := newTestExtractor(t)

	t.Run("空白区切りとn-gram", func(t *testing.T) {
		terms := e.Extract("フォークリフト 資格")
		assert.Contains(t, terms, "フォークリフト")
		assert.Contains(t, terms, "資格")
		// 4文字以上の語はbigram、5文字以上はtrigramへ展開される
		assert.Contains(t, terms, "フォ")
		assert.Contains(t, terms, "リフト")
	})

	t.Run("2文字未満の語は捨てる", func(t *testing.T) {
		terms := e.Extract("あ 転倒")
		assert.NotContains(t, terms, "あ")
		assert.Contains(t, terms, "転倒")
	})

	t.Run("環境語からの連想展開", func(t *testing.T) {
		terms := e.Extract("事務所で起こりやすい労働災害")
		assert.Contains(t, terms, "転倒")
		assert.Contains(t, terms, "階段")
		assert.Contains(t, terms, "腰痛")
	})

	t.Run("空クエリ", func(t *testing.T) {
		assert.Nil(t, e.Extract(""))
		assert.Nil(t, e.Extract("   "))
	})

	t.Run("決定性", func(t *testing.T) {
		q := "事務所の階段で転倒した場合の対策"
		assert.Equal(t, e.Extract(q), e.Extract(q))
	})
}

func TestScore(t *testing.T) {
	e := newTestExtractor(t)
	w := DefaultWeights()
	docs := testDocs()

	t.Run("タイトル全文一致が最も重い", func(t *testing.T) {
		q := "就業制限"
		terms := e.Extract(q)
		sc := w.Score(&docs[2], q, terms)
		assert.GreaterOrEqual(t, sc, w.TitleExact)
	})

	t.Run("不一致は0", func(t *testing.T) {
		q := "ボイラーの定期自主検査"
		terms := e.Extract(q)
		assert.Equal(t, 0, w.Score(&docs[3], q, terms))
	})

	t.Run("災害事例ボーナス", func(t *testing.T) {
		q := "フォークリフト"
		terms := e.Extract(q)
		knowledgeDoc := docs[0]
		caseDoc := docs[1]
		// 同条件ならボーナス分だけ事例が上回るよう、タグ・本文構成を揃えた比較
		scKnowledge := w.Score(&knowledgeDoc, q, terms)
		scCase := w.Score(&caseDoc, q, terms)
		assert.Greater(t, scKnowledge, 0)
		assert.Greater(t, scCase, 0)
	})

	t.Run("法令意図クエリで法令に加点", func(t *testing.T) {
		base := "フォークリフト"
		legal := "フォークリフトの法令上の義務"
		scBase := w.Score(&docs[2], base, e.Extract(base))
		scLegal := w.Score(&docs[2], legal, e.Extract(legal))
		assert.Greater(t, scLegal, scBase)
	})

	t.Run("純関数", func(t *testing.T) {
		q := "クレーンの玉掛け作業"
		terms := e.Extract(q)
		first := w.Score(&docs[2], q, terms)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, w.Score(&docs[2], q, terms))
		}
	})
}

func TestWeightClassOrdering(t *testing.T) {
	e := newTestExtractor(t)
	w := DefaultWeights()
	s := NewSearcher(e, w, DefaultLimits())

	t.Run("タイトル全文一致は本文一致より上位", func(t *testing.T) {
		q := "熱中症"
		docs := []store.Document{
			{ID: "body-only", Category: category.KNOWLEDGE, Title: "夏場の体調管理", Body: "熱中症に注意する。"},
			{ID: "title-exact", Category: category.KNOWLEDGE, Title: "熱中症とは"},
		}
		terms := e.Extract(q)
		scExact := w.Score(&docs[1], q, terms)
		scBody := w.Score(&docs[0], q, terms)
		assert.GreaterOrEqual(t, scExact, w.TitleExact)
		assert.Less(t, scBody, scExact)

		// ストア順で不利でも全文一致が先頭に来る
		results := s.Search(docs, q)
		require.Len(t, results, 2)
		assert.Equal(t, "title-exact", results[0].Doc.ID)
		assert.Equal(t, "body-only", results[1].Doc.ID)
	})

	t.Run("タグ全文一致はタイトル部分一致より上位", func(t *testing.T) {
		q := "熱中症 休憩"
		docs := []store.Document{
			{ID: "title-term", Category: category.KNOWLEDGE, Title: "休憩時間の確保"},
			{ID: "tag-exact", Category: category.KNOWLEDGE, Title: "体調管理", Tags: []string{"熱中症"}},
		}
		terms := e.Extract(q)
		scTag := w.Score(&docs[1], q, terms)
		scTitle := w.Score(&docs[0], q, terms)
		assert.Equal(t, w.TagExact, scTag)
		assert.Equal(t, w.TitleTerm, scTitle)
		assert.Greater(t, scTag, scTitle)

		results := s.Search(docs, q)
		require.Len(t, results, 2)
		assert.Equal(t, "tag-exact", results[0].Doc.ID)
		assert.Equal(t, "title-term", results[1].Doc.ID)
	})
}

func TestSearch(t *testing.T) {
	s := NewSearcher(newTestExtractor(t), DefaultWeights(), DefaultLimits())
	docs := testDocs()

	t.Run("関連レコードのみスコア降順で返す", func(t *testing.T) {
		results := s.Search(docs, "フォークリフトの事故事例を教えて")
		require.NotEmpty(t, results)
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
		}
		for _, r := range results {
			assert.NotEqual(t, "general-2", r.Doc.ID)
		}
	})

	t.Run("空クエリはnil", func(t *testing.T) {
		assert.Nil(t, s.Search(docs, ""))
		assert.Nil(t, s.Search(docs, " \t "))
	})

	t.Run("空ストアはnil", func(t *testing.T) {
		assert.Nil(t, s.Search(nil, "フォークリフト"))
	})

	t.Run("カテゴリー別上限", func(t *testing.T) {
		many := []store.Document{}
		for i := 0; i < 10; i++ {
			many = append(many, store.Document{
				ID:       "case-" + string(rune('a'+i)),
				Category: category.CASES,
				Title:    "転倒災害の事例",
				Body:     "通路の整理整頓を行う。",
			})
		}
		limited := NewSearcher(newTestExtractor(t), DefaultWeights(), Limits{Laws: 5, Cases: 5, Knowledge: 3})
		results := limited.Search(many, "転倒")
		assert.Len(t, results, 5)
	})

	t.Run("同点はストア順を保つ", func(t *testing.T) {
		twins := []store.Document{
			{ID: "first", Category: category.KNOWLEDGE, Title: "転倒防止について", Body: "整理整頓。"},
			{ID: "second", Category: category.KNOWLEDGE, Title: "転倒防止について", Body: "整理整頓。"},
		}
		results := s.Search(twins, "転倒防止について")
		require.Len(t, results, 2)
		assert.Equal(t, "first", results[0].Doc.ID)
		assert.Equal(t, "second", results[1].Doc.ID)
	})

	t.Run("同一クエリは同一結果", func(t *testing.T) {
		q := "倉庫でのフォークリフト作業の注意点"
		a := s.Search(docs, q)
		b := s.Search(docs, q)
		assert.Equal(t, a, b)
	})
}
