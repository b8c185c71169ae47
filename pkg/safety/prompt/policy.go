package prompt

import "regexp"

// Disclosure は、災害事例の詳細とURLをコンテキストへ含めてよいかを表す2状態です。
type Disclosure int

const (
	// DisclosureGeneral は一般的な質問。対策内容のみを開示します。
	DisclosureGeneral Disclosure = iota
	// DisclosureExamples は事例の明示要求。発生状況・原因・対策とURLを開示します。
	DisclosureExamples
)

// 「事例を見せてほしい」という意図を表す定型パターンです。
// 判定はこの1箇所に集約し、整形側は状態のみを見ます。
var exampleRequestRe = regexp.MustCompile(
	`事例|実例|具体例|事故例|災害例|ケーススタディ|どんな事故|どのような事故|どんな災害|どのような災害`)

// Classify は、ユーザーの生メッセージから開示状態を判定します。
func Classify(message string) Disclosure {
	if exampleRequestRe.MatchString(message) {
		return DisclosureExamples
	}
	return DisclosureGeneral
}
