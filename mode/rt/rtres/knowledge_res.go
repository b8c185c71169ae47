package rtres

import "github.com/dzr01145/chatbot/pkg/safety/store"

type KnowledgeItemResData struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords"`
} // @name KnowledgeItemResData

type KnowledgeCategoryResData struct {
	ID    string                 `json:"id"`
	Name  string                 `json:"name"`
	Items []KnowledgeItemResData `json:"items"`
} // @name KnowledgeCategoryResData

type GetKnowledgeResData struct {
	Categories  []KnowledgeCategoryResData `json:"categories"`
	LastUpdated string                     `json:"last_updated"`
} // @name GetKnowledgeResData

func (d *GetKnowledgeResData) Of(kb *store.KnowledgeBase) *GetKnowledgeResData {
	categories := []KnowledgeCategoryResData{}
	for _, c := range kb.Categories {
		items := []KnowledgeItemResData{}
		for _, it := range c.Items {
			items = append(items, KnowledgeItemResData{
				Question: it.Question,
				Answer:   it.Answer,
				Keywords: it.Keywords,
			})
		}
		categories = append(categories, KnowledgeCategoryResData{ID: c.ID, Name: c.Name, Items: items})
	}
	return &GetKnowledgeResData{Categories: categories, LastUpdated: kb.Metadata.LastUpdated}
}

type GetKnowledgeRes struct {
	Data   GetKnowledgeResData `json:"data"`
	Errors []Err               `json:"errors"`
} // @name GetKnowledgeRes

type AddKnowledgeResData struct {
} // @name AddKnowledgeResData

type AddKnowledgeRes struct {
	Data   AddKnowledgeResData `json:"data"`
	Errors []Err               `json:"errors"`
} // @name AddKnowledgeRes
