// Package httpresp concentra os envelopes de resposta de sucesso.
package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse embrulha coleções com o total junto, o formato que o
// painel espera em toda listagem.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
