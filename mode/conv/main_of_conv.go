// Package conv は、生データ（災害事例CSV・法令markdown）を
// rtモードが読み込むナレッジベースJSONへ変換します。
package conv

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dzr01145/chatbot/config"
	"github.com/dzr01145/chatbot/lib/common"
	"github.com/dzr01145/chatbot/pkg/safety/store"
	"go.uber.org/zap"
)

type ConvFlags struct {
	JireiCsv string
	LawsDir  string
	OutDir   string
}

func MainOfConv() {
	flgs := ConvFlags{}
	_, cflgs, l, _, err := common.Init("chatbot conv mode", &[]common.Flag{
		{Dst: &flgs.JireiCsv, Name: "jirei", Default: "", Doc: "Path of jirei csv file."},
		{Dst: &flgs.LawsDir, Name: "laws", Default: "", Doc: "Directory of structured law markdown files."},
		{Dst: &flgs.OutDir, Name: "out", Default: config.DEFAULT_DATA_DIR, Doc: "Output directory of knowledge base json files."},
	})
	if err != nil {
		log.Fatalf("Error: %s", err.Error())
		return
	}
	l.Info(
		"Set CONV flags: ",
		zap.String("e", cflgs.Env),
		zap.String("l", cflgs.LogLevel),
		zap.String("o", cflgs.Output),
		zap.String("jirei", flgs.JireiCsv),
		zap.String("laws", flgs.LawsDir),
		zap.String("out", flgs.OutDir),
	)
	defer l.Info("Conversion was finished.")

	if flgs.JireiCsv == "" && flgs.LawsDir == "" {
		l.Warn("Nothing to convert. Specify -jirei and/or -laws.")
		return
	}

	if flgs.JireiCsv != "" {
		cases, err := ConvertJirei(flgs.JireiCsv)
		if err != nil {
			l.Error(fmt.Sprintf("Failed to convert jirei csv: %s", err.Error()))
			return
		}
		out := store.CaseFile{
			Version:    "1.0",
			Generated:  common.GetNowStr(),
			TotalCases: len(cases),
			Cases:      cases,
		}
		if err := writeJSON(filepath.Join(flgs.OutDir, config.JIREI_FILE), &out); err != nil {
			l.Error(fmt.Sprintf("Failed to write %s: %s", config.JIREI_FILE, err.Error()))
			return
		}
		l.Info(fmt.Sprintf("Created %s.", config.JIREI_FILE), zap.Int("cases", len(cases)))
	}

	if flgs.LawsDir != "" {
		laws, err := ConvertLaws(flgs.LawsDir)
		if err != nil {
			l.Error(fmt.Sprintf("Failed to convert law markdown files: %s", err.Error()))
			return
		}
		out := store.LawFile{
			Version:       "1.0",
			Generated:     common.GetNowStr(),
			TotalArticles: len(laws),
			Laws:          laws,
		}
		if err := writeJSON(filepath.Join(flgs.OutDir, config.LAWS_FILE), &out); err != nil {
			l.Error(fmt.Sprintf("Failed to write %s: %s", config.LAWS_FILE, err.Error()))
			return
		}
		l.Info(fmt.Sprintf("Created %s.", config.LAWS_FILE), zap.Int("laws", len(laws)))
	}
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
