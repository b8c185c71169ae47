// Package store は、ナレッジベース（一般ナレッジ・災害事例・法令条文）を
// プロセス起動時に一度だけJSONファイルから読み込み、メモリ上に保持します。
// 提供パスでの変更は一般ナレッジへの追記のみで、既存レコードは不変です。
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dzr01145/chatbot/enum/category"
	"go.uber.org/zap"
)

// KnowledgeItem は、一般ナレッジの1件（Q&A形式）です。
type KnowledgeItem struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords"`
}

type KnowledgeCategory struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Items []KnowledgeItem `json:"items"`
}

type KnowledgeMeta struct {
	LastUpdated string `json:"last_updated,omitempty"`
}

// KnowledgeBase は knowledge.json 全体に対応します。
type KnowledgeBase struct {
	Categories []KnowledgeCategory `json:"categories"`
	Metadata   KnowledgeMeta       `json:"metadata"`
}

// CaseReport は、災害事例1件です。convert-jirei（convモード）の出力形式と一致します。
type CaseReport struct {
	ID             string `json:"id"`
	URL            string `json:"url"`
	Title          string `json:"title"`
	Situation      string `json:"situation"`
	Cause          string `json:"cause"`
	Measure        string `json:"measure"`
	Industry       string `json:"industry"`
	Equipment      string `json:"equipment"`
	Type           string `json:"type"`
	Categorization string `json:"categorization"`
}

type CaseFile struct {
	Version    string       `json:"version"`
	Generated  string       `json:"generated"`
	TotalCases int          `json:"totalCases"`
	Cases      []CaseReport `json:"cases"`
}

// LawArticle は、法令の条文1件です。convert-laws（convモード）の出力形式と一致します。
// URL は外部の条文ページへの参照で、掲載する場合は文字列をそのまま使用します。
// IDや条文番号からURLを組み立てることはしません。
type LawArticle struct {
	Category      string   `json:"category"`
	Law           string   `json:"law"`
	ArticleNumber string   `json:"articleNumber"`
	Chapter       string   `json:"chapter"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Tags          []string `json:"tags"`
	URL           string   `json:"url,omitempty"`
}

type LawFile struct {
	Version       string       `json:"version"`
	Generated     string       `json:"generated"`
	TotalArticles int          `json:"totalArticles"`
	Laws          []LawArticle `json:"laws"`
}

// Document は、検索用に統一されたレコードのビューです。
// スコアリング対象は Title / Tags / Body の3フィールドで、
// Situation / Cause / Measure / ArticleNumber / Chapter は整形時にのみ使用します。
type Document struct {
	ID           string
	Category     category.Category
	CategoryName string
	Title        string
	Tags         []string
	Body         string

	// 災害事例のみ
	Situation string
	Cause     string
	Measure   string

	// 法令条文のみ
	Law           string
	ArticleNumber string
	Chapter       string

	// 外部参照URL（空の場合あり）。掲載時は必ずこの文字列をそのまま使用すること。
	SourceURL string
}

// Store は、読み込み済みナレッジベースの保持者です。
// 読み込み後は読み取り専用で、唯一の変更操作 AddKnowledgeItem は
// mu により直列化されます（追記と永続化の間の更新消失を防ぐため）。
type Store struct {
	mu            sync.Mutex
	dir           string
	knowledgeFile string
	l             *zap.Logger

	knowledge KnowledgeBase
	cases     []CaseReport
	laws      []LawArticle

	docs []Document
}

// Load は、dir 直下の knowledge.json / jirei.json / laws.json を読み込みます。
// ファイルの欠落や破損は空のコレクションに縮退し、エラーにはなりません
// （空ストアへの検索は正当に0件を返します）。
func Load(dir string, knowledgeFile, jireiFile, lawsFile string, l *zap.Logger) *Store {
	s := &Store{dir: dir, knowledgeFile: knowledgeFile, l: l}

	if err := readJSON(filepath.Join(dir, knowledgeFile), &s.knowledge); err != nil {
		l.Warn(fmt.Sprintf("Failed to load knowledge base (%s): %s", knowledgeFile, err.Error()))
		s.knowledge = KnowledgeBase{Categories: []KnowledgeCategory{}}
	}

	var cf CaseFile
	if err := readJSON(filepath.Join(dir, jireiFile), &cf); err != nil {
		l.Warn(fmt.Sprintf("Failed to load disaster cases (%s): %s", jireiFile, err.Error()))
	}
	s.cases = cf.Cases

	var lf LawFile
	if err := readJSON(filepath.Join(dir, lawsFile), &lf); err != nil {
		l.Warn(fmt.Sprintf("Failed to load law articles (%s): %s", lawsFile, err.Error()))
	}
	s.laws = lf.Laws

	s.rebuildDocs()
	l.Info("Knowledge store loaded.",
		zap.Int("knowledge_items", s.knowledgeCount()),
		zap.Int("cases", len(s.cases)),
		zap.Int("laws", len(s.laws)),
	)
	return s
}

func readJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

// Documents は、読み込み順のレコード一覧を返します。
// この順序が同点スコア時の表示順になります（安定ソートの前提）。
func (s *Store) Documents() []Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs
}

// Knowledge は、一般ナレッジ全体の深いコピーを返します（GET /api/knowledge 用）。
// 返り値は内部状態と配列を共有しないため、呼び出し側はロック外で
// 自由に走査・シリアライズできます。
func (s *Store) Knowledge() KnowledgeBase {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]KnowledgeCategory, len(s.knowledge.Categories))
	for i, c := range s.knowledge.Categories {
		items := make([]KnowledgeItem, len(c.Items))
		copy(items, c.Items)
		categories[i] = KnowledgeCategory{ID: c.ID, Name: c.Name, Items: items}
	}
	return KnowledgeBase{Categories: categories, Metadata: s.knowledge.Metadata}
}

// HasCategory は、一般ナレッジに指定IDのカテゴリーが存在するかを返します。
func (s *Store) HasCategory(categoryID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.knowledge.Categories {
		if s.knowledge.Categories[i].ID == categoryID {
			return true
		}
	}
	return false
}

func (s *Store) LastUpdated() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.knowledge.Metadata.LastUpdated
}

// AddKnowledgeItem は、指定カテゴリーへナレッジを1件追記し、
// knowledge.json をディスクへ書き戻します。存在しないカテゴリーIDはエラーです。
// 永続化に失敗した場合はメモリ上の追記と更新日時も巻き戻すため、
// 部分書き込みは発生しません。
func (s *Store) AddKnowledgeItem(categoryID string, item KnowledgeItem, today string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.knowledge.Categories {
		if s.knowledge.Categories[i].ID == categoryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("category not found: %s", categoryID)
	}

	cat := &s.knowledge.Categories[idx]
	prevItems := cat.Items
	prevUpdated := s.knowledge.Metadata.LastUpdated
	cat.Items = append(cat.Items, item)
	s.knowledge.Metadata.LastUpdated = today

	if err := s.persistKnowledge(); err != nil {
		cat.Items = prevItems
		s.knowledge.Metadata.LastUpdated = prevUpdated
		return fmt.Errorf("failed to persist knowledge base: %w", err)
	}

	s.rebuildDocs()
	return nil
}

func (s *Store) persistKnowledge() error {
	data, err := json.MarshalIndent(&s.knowledge, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, s.knowledgeFile), data, 0644)
}

func (s *Store) knowledgeCount() int {
	n := 0
	for _, c := range s.knowledge.Categories {
		n += len(c.Items)
	}
	return n
}

// rebuildDocs は、検索用ビューを 一般ナレッジ → 災害事例 → 法令 の順で構築します。
// 呼び出し側で mu を保持していること。
func (s *Store) rebuildDocs() {
	docs := make([]Document, 0, s.knowledgeCount()+len(s.cases)+len(s.laws))

	for _, cat := range s.knowledge.Categories {
		for i, item := range cat.Items {
			docs = append(docs, Document{
				ID:           fmt.Sprintf("%s-%d", cat.ID, i+1),
				Category:     category.KNOWLEDGE,
				CategoryName: cat.Name,
				Title:        item.Question,
				Tags:         item.Keywords,
				Body:         item.Answer,
			})
		}
	}

	for _, cr := range s.cases {
		docs = append(docs, Document{
			ID:           cr.ID,
			Category:     category.CASES,
			CategoryName: category.CASES.Label(),
			Title:        cr.Title,
			Tags:         caseTags(&cr),
			Body:         cr.Measure,
			Situation:    cr.Situation,
			Cause:        cr.Cause,
			Measure:      cr.Measure,
			SourceURL:    cr.URL,
		})
	}

	for i, la := range s.laws {
		docs = append(docs, Document{
			ID:            fmt.Sprintf("law-%d", i+1),
			Category:      category.LAWS,
			CategoryName:  la.Category,
			Title:         la.Title,
			Tags:          la.Tags,
			Body:          la.Content,
			Law:           la.Law,
			ArticleNumber: la.ArticleNumber,
			Chapter:       la.Chapter,
			SourceURL:     la.URL,
		})
	}

	s.docs = docs
}

// caseTags は、事例の分類フィールドのうち空でないものをタグとして扱います。
func caseTags(cr *CaseReport) []string {
	tags := []string{}
	for _, t := range []string{cr.Industry, cr.Equipment, cr.Type, cr.Categorization} {
		if strings.TrimSpace(t) != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
