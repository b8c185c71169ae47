package conv

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dzr01145/chatbot/pkg/safety/store"
)

// 法令markdownのカテゴリーディレクトリと法令名の対応です。
var lawCategories = []struct {
	Dir  string
	Name string
}{
	{"aneihou", "労働安全衛生法"},
	{"kisoku", "労働安全衛生規則"},
	{"sekourei", "労働安全衛生法施行令"},
}

var (
	frontmatterRe = regexp.MustCompile(`(?s)^---\n(.*?)\n---`)
	lawTitleRe    = regexp.MustCompile(`(?m)^# (.+)$`)
	lawNameRe     = regexp.MustCompile(`(?m)^\*\*法令:\*\* (.+)$`)
	articleNumRe  = regexp.MustCompile(`(?m)^\*\*条文番号:\*\* (.+)$`)
	chapterRe     = regexp.MustCompile(`(?m)^\*\*章:\*\* (.+)$`)
	lawContentRe  = regexp.MustCompile(`(?s)## 条文\s*\n(.+)$`)
	tagLineRe     = regexp.MustCompile(`(?m)^  - (.+)$`)
)

// ConvertLaws は、lawsDir 配下のカテゴリーディレクトリを順に読み、
// 条文markdownを LawArticle の配列へ変換します。
// 解析できないファイルは読み飛ばします（部分的な破損で全体を止めません）。
func ConvertLaws(lawsDir string) ([]store.LawArticle, error) {
	laws := []store.LawArticle{}
	found := false

	for _, cat := range lawCategories {
		dir := filepath.Join(lawsDir, cat.Dir)
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		found = true
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			if la, ok := parseLawMarkdown(string(data), cat.Name); ok {
				laws = append(laws, la)
			}
		}
	}

	if !found {
		return nil, fmt.Errorf("no law category directories under %s", lawsDir)
	}
	return laws, nil
}

// parseLawMarkdown は、YAMLフロントマター付きの条文markdownを1件解析します。
// フロントマター、タイトル行、「## 条文」セクションのいずれかを欠くものは対象外です。
func parseLawMarkdown(content string, category string) (store.LawArticle, bool) {
	content = strings.TrimPrefix(content, "\uFEFF")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	fm := frontmatterRe.FindStringSubmatch(content)
	if fm == nil {
		return store.LawArticle{}, false
	}
	title := lawTitleRe.FindStringSubmatch(content)
	if title == nil {
		return store.LawArticle{}, false
	}
	body := lawContentRe.FindStringSubmatch(content)
	if body == nil || strings.TrimSpace(body[1]) == "" {
		return store.LawArticle{}, false
	}

	law := category
	if m := lawNameRe.FindStringSubmatch(content); m != nil {
		law = strings.TrimSpace(m[1])
	}
	articleNumber := ""
	if m := articleNumRe.FindStringSubmatch(content); m != nil {
		articleNumber = strings.TrimSpace(m[1])
	}
	chapter := ""
	if m := chapterRe.FindStringSubmatch(content); m != nil {
		chapter = strings.TrimSpace(m[1])
	}

	tags := []string{}
	for _, m := range tagLineRe.FindAllStringSubmatch(fm[1], -1) {
		tags = append(tags, strings.TrimSpace(m[1]))
	}

	return store.LawArticle{
		Category:      category,
		Law:           law,
		ArticleNumber: articleNumber,
		Chapter:       chapter,
		Title:         strings.TrimSpace(title[1]),
		Content:       strings.TrimSpace(body[1]),
		Tags:          tags,
	}, true
}
