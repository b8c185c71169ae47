package prompt

import (
	"fmt"
	"strings"

	"github.com/dzr01145/chatbot/config"
	"github.com/dzr01145/chatbot/enum/category"
	"github.com/dzr01145/chatbot/pkg/safety/search"
)

// BuildContext は、検索結果をLLMへ渡すコンテキスト文へ整形します。
// セクション順は 一般ナレッジ → 災害事例 → 関連法令 で固定、
// 各セクション内は検索結果の順位を保ちます。結果が空なら空文字列を返します。
// 入力のみから決まる純関数です。
func BuildContext(results []search.Result, disclosure Disclosure) string {
	if len(results) == 0 {
		return ""
	}

	var knowledge, cases, laws []search.Result
	for _, r := range results {
		switch r.Doc.Category {
		case category.CASES:
			cases = append(cases, r)
		case category.LAWS:
			laws = append(laws, r)
		default:
			knowledge = append(knowledge, r)
		}
	}

	var b strings.Builder

	if len(knowledge) > 0 {
		b.WriteString("\n\n【参考ナレッジベース】\n")
		for i, r := range knowledge {
			fmt.Fprintf(&b, "\n%d. Q: %s\n   A: %s\n", i+1, r.Doc.Title, r.Doc.Body)
		}
	}

	if len(cases) > 0 {
		b.WriteString("\n\n【災害事例】\n")
		for i, r := range cases {
			if disclosure == DisclosureExamples {
				fmt.Fprintf(&b, "\n%d. %s\n", i+1, r.Doc.Title)
				if r.Doc.Situation != "" {
					fmt.Fprintf(&b, "   発生状況: %s\n", r.Doc.Situation)
				}
				if r.Doc.Cause != "" {
					fmt.Fprintf(&b, "   原因: %s\n", r.Doc.Cause)
				}
				if r.Doc.Measure != "" {
					fmt.Fprintf(&b, "   対策: %s\n", r.Doc.Measure)
				}
				if r.Doc.SourceURL != "" {
					fmt.Fprintf(&b, "   出典URL: %s\n", r.Doc.SourceURL)
				}
			} else {
				fmt.Fprintf(&b, "\n%d. 対策: %s\n", i+1, r.Doc.Measure)
			}
		}
		if disclosure == DisclosureExamples {
			b.WriteString("\n" + caseDetailInstruction + "\n")
		} else {
			b.WriteString("\n" + caseGeneralInstruction + "\n")
		}
	}

	if len(laws) > 0 {
		b.WriteString("\n\n【関連法令】\n")
		for i, r := range laws {
			fmt.Fprintf(&b, "\n%d. %s %s（%s）\n", i+1, r.Doc.Law, r.Doc.ArticleNumber, r.Doc.Title)
			if r.Doc.Chapter != "" {
				fmt.Fprintf(&b, "   章: %s\n", r.Doc.Chapter)
			}
			if r.Doc.Body != "" {
				fmt.Fprintf(&b, "   概要: %s\n", summarize(r.Doc.Body, config.LAW_SUMMARY_MAX_RUNES))
			}
			if r.Doc.SourceURL != "" {
				fmt.Fprintf(&b, "   URL: %s\n", r.Doc.SourceURL)
			}
		}
		b.WriteString("\n" + lawCitationInstruction + "\n")
	}

	return b.String()
}

// LengthInstruction は、responseLength の指定を指示文へ変換します。
// 未指定や不明な値は指示なし（空文字列）です。
func LengthInstruction(responseLength string) string {
	switch responseLength {
	case "short":
		return "\n\n" + shortAnswerInstruction
	case "long":
		return "\n\n" + longAnswerInstruction
	default:
		return ""
	}
}

// summarize は、条文本文を目標文字数付近の自然な境界（文末や読点）で切り詰めます。
// 条文全文はコンテキストへ載せません。
func summarize(text string, targetRunes int) string {
	runes := []rune(text)
	if len(runes) <= targetRunes {
		return text
	}
	cut := splitAtNaturalBoundary(text, targetRunes, 20)
	return strings.TrimRight(string(runes[:cut]), "\n") + "…"
}

var sentenceEnders = map[rune]bool{
	'。': true, '！': true, '？': true, '．': true, '\n': true, '!': true, '?': true,
}

// splitAtNaturalBoundary は、目標文字数付近の自然な境界位置を返します。
// 目標位置から前後 maxSearchRangePercent% の範囲を、近い順に文末記号、
// 次いで読点・スペースの順で探し、見つからなければ目標位置で強制分割します。
func splitAtNaturalBoundary(text string, targetChars int, maxSearchRangePercent int) int {
	runes := []rune(text)
	textLen := len(runes)
	if targetChars >= textLen {
		return textLen
	}

	rangeChars := targetChars * maxSearchRangePercent / 100
	minPos := targetChars - rangeChars
	maxPos := targetChars + rangeChars
	if minPos < 0 {
		minPos = 0
	}
	if maxPos > textLen {
		maxPos = textLen
	}

	for offset := 0; offset <= rangeChars; offset++ {
		backPos := targetChars + offset
		if backPos < maxPos && sentenceEnders[runes[backPos]] {
			return backPos + 1
		}
		frontPos := targetChars - offset
		if frontPos > minPos && sentenceEnders[runes[frontPos]] {
			return frontPos + 1
		}
	}

	secondary := map[rune]bool{'、': true, ' ': true, '　': true, ',': true}
	for offset := 0; offset <= rangeChars; offset++ {
		backPos := targetChars + offset
		if backPos < maxPos && secondary[runes[backPos]] {
			return backPos + 1
		}
		frontPos := targetChars - offset
		if frontPos > minPos && secondary[runes[frontPos]] {
			return frontPos + 1
		}
	}

	return targetChars
}
