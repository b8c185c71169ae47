package category

// Category は、レコードが属するコレクションの識別子です。
// 各レコードは必ずひとつのカテゴリーに属します。
type Category uint8

const (
	KNOWLEDGE Category = 1 // 一般ナレッジ（Q&A）
	CASES     Category = 2 // 災害事例集
	LAWS      Category = 3 // 法令条文
)

func (c Category) Val() uint8 {
	return uint8(c)
}

// Label は、コンテキスト整形やログで使用する日本語名を返します。
func (c Category) Label() string {
	switch c {
	case KNOWLEDGE:
		return "一般ナレッジ"
	case CASES:
		return "災害事例集"
	case LAWS:
		return "法令条文"
	default:
		return "不明"
	}
}
