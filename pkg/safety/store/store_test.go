package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dzr01145/chatbot/enum/category"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFixtures(t *testing.T, dir string) {
	t.Helper()

	kb := KnowledgeBase{
		Categories: []KnowledgeCategory{
			{
				ID:   "general",
				Name: "一般",
				Items: []KnowledgeItem{
					{
						Question: "フォークリフトの運転資格は？",
						Answer:   "最大荷重1トン以上は技能講習の修了が必要です。",
						Keywords: []string{"フォークリフト", "資格"},
					},
				},
			},
		},
		Metadata: KnowledgeMeta{LastUpdated: "2025-01-01"},
	}
	cf := CaseFile{
		Version:    "1.0",
		TotalCases: 1,
		Cases: []CaseReport{
			{
				ID:        "case-001",
				URL:       "https://example.com/jirei/001",
				Title:     "フォークリフトとの接触による負傷",
				Situation: "倉庫内で後退中のフォークリフトと作業者が接触した。",
				Cause:     "誘導者を配置していなかった。",
				Measure:   "後退時は誘導者を配置し、立入禁止区域を設定する。",
				Industry:  "製造業",
				Equipment: "フォークリフト",
				Type:      "激突され",
			},
		},
	}
	lf := LawFile{
		Version:       "1.0",
		TotalArticles: 1,
		Laws: []LawArticle{
			{
				Category:      "労働安全衛生法",
				Law:           "労働安全衛生法",
				ArticleNumber: "第61条",
				Chapter:       "第6章",
				Title:         "就業制限",
				Content:       "事業者は、クレーンの運転その他の業務で、政令で定めるものについては、都道府県労働局長の当該業務に係る免許を受けた者でなければ、当該業務に就かせてはならない。",
				Tags:          []string{"免許", "就業制限", "フォークリフト"},
			},
		},
	}

	for name, v := range map[string]any{
		"knowledge.json": &kb,
		"jirei.json":     &cf,
		"laws.json":      &lf,
	} {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)

	s := Load(dir, "knowledge.json", "jirei.json", "laws.json", zap.NewNop())
	docs := s.Documents()
	require.Len(t, docs, 3)

	// 読み込み順は 一般ナレッジ → 災害事例 → 法令
	assert.Equal(t, category.KNOWLEDGE, docs[0].Category)
	assert.Equal(t, category.CASES, docs[1].Category)
	assert.Equal(t, category.LAWS, docs[2].Category)

	assert.Equal(t, "フォークリフトの運転資格は？", docs[0].Title)
	assert.Equal(t, []string{"フォークリフト", "資格"}, docs[0].Tags)

	assert.Equal(t, "https://example.com/jirei/001", docs[1].SourceURL)
	assert.Equal(t, []string{"製造業", "フォークリフト", "激突され"}, docs[1].Tags)
	assert.Equal(t, docs[1].Measure, docs[1].Body)

	assert.Equal(t, "第61条", docs[2].ArticleNumber)
	assert.Equal(t, "労働安全衛生法", docs[2].CategoryName)
}

func TestLoadMissingFiles(t *testing.T) {
	// ファイルが無くてもエラーにせず、空のストアに縮退する
	s := Load(t.TempDir(), "knowledge.json", "jirei.json", "laws.json", zap.NewNop())
	assert.Empty(t, s.Documents())
	assert.Empty(t, s.Knowledge().Categories)
}

func TestAddKnowledgeItem(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	s := Load(dir, "knowledge.json", "jirei.json", "laws.json", zap.NewNop())

	item := KnowledgeItem{
		Question: "保護帽の着用義務は？",
		Answer:   "墜落や飛来落下の危険がある作業では保護帽の着用が必要です。",
		Keywords: []string{"保護帽", "ヘルメット"},
	}
	require.NoError(t, s.AddKnowledgeItem("general", item, "2025-06-01"))

	kb := s.Knowledge()
	require.Len(t, kb.Categories[0].Items, 2)
	assert.Equal(t, "2025-06-01", kb.Metadata.LastUpdated)

	// 検索ビューにも反映される
	docs := s.Documents()
	assert.Equal(t, "保護帽の着用義務は？", docs[1].Title)

	// ディスクにも永続化されている
	data, err := os.ReadFile(filepath.Join(dir, "knowledge.json"))
	require.NoError(t, err)
	var saved KnowledgeBase
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Len(t, saved.Categories[0].Items, 2)
}

func TestKnowledgeReturnsIsolatedCopy(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	s := Load(dir, "knowledge.json", "jirei.json", "laws.json", zap.NewNop())

	snapshot := s.Knowledge()
	require.Len(t, snapshot.Categories[0].Items, 1)

	item := KnowledgeItem{Question: "q2", Answer: "a2", Keywords: []string{"k2"}}
	require.NoError(t, s.AddKnowledgeItem("general", item, "2025-06-01"))

	// 取得済みスナップショットは追記の影響を受けない
	assert.Len(t, snapshot.Categories[0].Items, 1)
	assert.Equal(t, "2025-01-01", snapshot.Metadata.LastUpdated)

	// 逆方向も同様で、スナップショットへの変更はストアに波及しない
	snapshot.Categories[0].Items[0].Question = "書き換え"
	assert.Equal(t, "フォークリフトの運転資格は？", s.Knowledge().Categories[0].Items[0].Question)
}

func TestKnowledgeConcurrentReadersAndWriter(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	s := Load(dir, "knowledge.json", "jirei.json", "laws.json", zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				kb := s.Knowledge()
				if _, err := json.Marshal(&kb); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 20; j++ {
			item := KnowledgeItem{Question: fmt.Sprintf("q-%d", j), Answer: "a", Keywords: []string{"k"}}
			if err := s.AddKnowledgeItem("general", item, "2025-06-01"); err != nil {
				t.Error(err)
				return
			}
		}
	}()
	wg.Wait()

	assert.Len(t, s.Knowledge().Categories[0].Items, 21)
}

func TestAddKnowledgeItemPersistFailureRollsBack(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	s := Load(dir, "knowledge.json", "jirei.json", "laws.json", zap.NewNop())

	// データディレクトリを消して書き戻しを失敗させる
	require.NoError(t, os.RemoveAll(dir))

	err := s.AddKnowledgeItem("general", KnowledgeItem{Question: "q", Answer: "a"}, "2025-06-01")
	require.Error(t, err)

	// メモリ上の追記と更新日時も巻き戻されている
	assert.Len(t, s.Knowledge().Categories[0].Items, 1)
	assert.Equal(t, "2025-01-01", s.LastUpdated())
	assert.Len(t, s.Documents(), 3)
}

func TestAddKnowledgeItemUnknownCategory(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	s := Load(dir, "knowledge.json", "jirei.json", "laws.json", zap.NewNop())

	err := s.AddKnowledgeItem("no-such-category", KnowledgeItem{Question: "q", Answer: "a"}, "2025-06-01")
	assert.Error(t, err)

	// 失敗時は一切変更されない
	assert.Len(t, s.Knowledge().Categories[0].Items, 1)
	assert.Equal(t, "2025-01-01", s.LastUpdated())
}
