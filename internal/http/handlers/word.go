package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/kotoba-backend/internal/http/response"
	"github.com/yungbote/kotoba-backend/internal/services"
)

type WordHandler struct {
	wordService services.WordService
}

func NewWordHandler(wordService services.WordService) *WordHandler {
	return &WordHandler{wordService: wordService}
}

// GET /api/words
func (wh *WordHandler) ListWords(c *gin.Context) {
	p, err := bindPagination(c)
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	env, err := wh.wordService.List(c.Request.Context(), nil, p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, env)
}

// GET /api/words/:word_id
func (wh *WordHandler) GetWord(c *gin.Context) {
	id, err := pathID(c, "word_id")
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	word, err := wh.wordService.Get(c.Request.Context(), nil, id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, word)
}
