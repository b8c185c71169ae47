package conv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/dzr01145/chatbot/pkg/safety/store"
)

// ConvertJirei は、災害事例CSVを読み込み CaseReport の配列へ変換します。
// 列構成は id, url, title, situation, cause, measure, industry, equipment,
// type, categorization で、先頭行はヘッダーとして読み飛ばします。
// フィールド内の改行や引用符エスケープを含む行もそのまま扱えます。
func ConvertJirei(csvPath string) ([]store.CaseReport, error) {
	data, err := os.ReadFile(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	content := strings.TrimPrefix(string(data), "\uFEFF")

	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	cases := []store.CaseReport{}
	for i, row := range rows {
		if i == 0 {
			continue // ヘッダー行
		}
		if len(row) < 6 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		cases = append(cases, store.CaseReport{
			ID:             strings.TrimSpace(row[0]),
			URL:            strings.TrimSpace(row[1]),
			Title:          strings.TrimSpace(row[2]),
			Situation:      strings.TrimSpace(row[3]),
			Cause:          strings.TrimSpace(row[4]),
			Measure:        strings.TrimSpace(row[5]),
			Industry:       fieldAt(row, 6),
			Equipment:      fieldAt(row, 7),
			Type:           fieldAt(row, 8),
			Categorization: fieldAt(row, 9),
		})
	}
	return cases, nil
}

func fieldAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
