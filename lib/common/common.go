package common

import (
	"os"
	"strconv"
)

func StrToInt(strNum string) int {
	if r, err := strconv.ParseInt(strNum, 10, 64); err == nil {
		return int(r)
	}
	return 0
}

// GetenvOr は、環境変数が空の場合にデフォルト値を返します。
func GetenvOr(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
