package rtres

type GetHealthResData struct {
	Status        string `json:"status"`
	Provider      string `json:"provider"`
	Model         string `json:"model"`
	APIConfigured bool   `json:"api_configured"`
	Version       string `json:"version"`
	Timestamp     string `json:"timestamp"`
} // @name GetHealthResData

type GetHealthRes struct {
	Data   GetHealthResData `json:"data"`
	Errors []Err            `json:"errors"`
} // @name GetHealthRes
