package search

// 労働安全分野の固定語彙です。クエリに部分一致した語彙語はそのまま検索語に加えます。
// 形態素解析やn-gramで拾い切れない複合語（専門用語）の取りこぼしを防ぐための補完層です。
var domainTerms = []string{
	// 災害の型
	"墜落", "転落", "転倒", "激突", "はさまれ", "巻き込まれ", "挟まれ",
	"崩壊", "倒壊", "飛来", "落下", "感電", "火災", "爆発", "破裂",
	"酸欠", "酸素欠乏", "中毒", "熱中症", "腰痛", "切れ", "こすれ",
	// 機械・設備
	"フォークリフト", "クレーン", "玉掛け", "足場", "脚立", "はしご",
	"プレス", "グラインダー", "ベルトコンベア", "コンベア", "チェーンソー",
	"高所作業車", "トラック", "ショベル", "ボイラー", "遠心機械",
	// 場所・作業環境
	"事務所", "倉庫", "工場", "建設現場", "作業場", "通路", "階段", "屋根",
	"開口部", "ピット", "タンク", "マンホール",
	// 管理・制度
	"安全衛生", "衛生管理者", "安全管理者", "産業医", "作業主任者",
	"技能講習", "特別教育", "免許", "資格", "健康診断", "ストレスチェック",
	"リスクアセスメント", "ヒヤリハット", "KY活動", "安全衛生委員会",
	// 保護具
	"保護帽", "ヘルメット", "安全帯", "墜落制止用器具", "フルハーネス",
	"保護具", "防じんマスク", "防毒マスク", "安全靴",
}

// 作業環境を表す語から、その環境で起こりやすい災害の型への連想マップです。
// 「事務所で起こりやすい災害は？」のようなクエリで、環境語だけでは
// 災害レコードの語彙と重ならない問題を補います。
type envRisk struct {
	env   string
	risks []string
}

var envRiskTerms = []envRisk{
	{"事務所", []string{"転倒", "階段", "通路", "腰痛"}},
	{"倉庫", []string{"フォークリフト", "転倒", "落下", "荷崩れ"}},
	{"工場", []string{"はさまれ", "巻き込まれ", "プレス", "感電"}},
	{"建設現場", []string{"墜落", "転落", "足場", "クレーン"}},
	{"屋根", []string{"墜落", "転落", "踏み抜き"}},
	{"階段", []string{"転倒", "転落"}},
	{"タンク", []string{"酸欠", "酸素欠乏", "中毒"}},
	{"ピット", []string{"酸欠", "転落"}},
	{"マンホール", []string{"酸欠", "酸素欠乏"}},
}

// 法令を尋ねる意図を示す語です。クエリにこれらが含まれる場合、
// 法令条文レコードへ加点します（字面の一致だけでは法令意図が過小評価されるため）。
var legalRegisterTerms = []string{
	"法令", "法律", "法的", "規則", "条文", "条項", "第何条",
	"義務", "罰則", "違反", "遵守", "規制", "基準", "省令", "政令",
	"安衛法", "安衛則", "労働安全衛生法", "労働安全衛生規則",
}
