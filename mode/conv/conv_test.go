package conv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertJirei(t *testing.T) {
	csv := "\uFEFFid,url,title,situation,cause,measure,industry,equipment,type,categorization\n" +
		"case-001,https://example.com/1,フォークリフトとの接触,\"倉庫内で、\n後退中に接触した。\",誘導者の未配置,誘導者を配置する,製造業,フォークリフト,激突され,輸送機械\n" +
		",https://example.com/x,IDなし行,状況,原因,対策\n" +
		"case-002,https://example.com/2,\"タイトルに\"\"引用符\"\"あり\",状況2,原因2,対策2\n"

	path := filepath.Join(t.TempDir(), "jirei.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	cases, err := ConvertJirei(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, "case-001", cases[0].ID)
	assert.Equal(t, "https://example.com/1", cases[0].URL)
	// フィールド内改行は保持される
	assert.Contains(t, cases[0].Situation, "\n")
	assert.Equal(t, "製造業", cases[0].Industry)
	assert.Equal(t, "輸送機械", cases[0].Categorization)

	// 引用符エスケープと列不足（任意列は空）の行
	assert.Equal(t, `タイトルに"引用符"あり`, cases[1].Title)
	assert.Equal(t, "", cases[1].Industry)
}

func TestConvertJireiMissingFile(t *testing.T) {
	_, err := ConvertJirei(filepath.Join(t.TempDir(), "none.csv"))
	assert.Error(t, err)
}

const lawMd = `---
tags:
  - 免許
  - 就業制限
---

# 就業制限

**法令:** 労働安全衛生法
**条文番号:** 第61条
**章:** 第6章 労働者の就業に当たつての措置

## 条文

事業者は、クレーンの運転その他の業務で、政令で定めるものについては、免許を受けた者でなければ、当該業務に就かせてはならない。
`

func TestConvertLaws(t *testing.T) {
	dir := t.TempDir()
	aneihou := filepath.Join(dir, "aneihou")
	require.NoError(t, os.MkdirAll(aneihou, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(aneihou, "art61.md"), []byte(lawMd), 0644))
	// 条文セクションの無いファイルは読み飛ばす
	require.NoError(t, os.WriteFile(filepath.Join(aneihou, "broken.md"), []byte("# タイトルだけ\n"), 0644))

	laws, err := ConvertLaws(dir)
	require.NoError(t, err)
	require.Len(t, laws, 1)

	la := laws[0]
	assert.Equal(t, "労働安全衛生法", la.Category)
	assert.Equal(t, "労働安全衛生法", la.Law)
	assert.Equal(t, "第61条", la.ArticleNumber)
	assert.Equal(t, "第6章 労働者の就業に当たつての措置", la.Chapter)
	assert.Equal(t, "就業制限", la.Title)
	assert.Contains(t, la.Content, "免許を受けた者でなければ")
	assert.Equal(t, []string{"免許", "就業制限"}, la.Tags)
}

func TestConvertLawsEmptyDir(t *testing.T) {
	_, err := ConvertLaws(t.TempDir())
	assert.Error(t, err)
}
