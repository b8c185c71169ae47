package common

import "time"

const (
	DATETIME_LAYOUT = "2006-01-02T15:04:05"
	DATE_LAYOUT     = "2006-01-02"
)

func GetNow() time.Time {
	return time.Now().In(time.Local)
}

func GetNowStr() string {
	return GetNow().Format(DATETIME_LAYOUT)
}

// GetTodayStr は、ナレッジベースの last_updated に使用する日付文字列を返します。
func GetTodayStr() string {
	return GetNow().Format(DATE_LAYOUT)
}
