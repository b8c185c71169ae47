package rtres

type ChatResData struct {
	Reply          string `json:"reply"`
	KnowledgeUsed  bool   `json:"knowledge_used"`
	KnowledgeCount int    `json:"knowledge_count"`
	CaseCount      int    `json:"case_count"`
	LawCount       int    `json:"law_count"`
	Provider       string `json:"provider"`
	Model          string `json:"model"`
} // @name ChatResData

type ChatRes struct {
	Data   ChatResData `json:"data"`
	Errors []Err       `json:"errors"`
} // @name ChatRes
