// Package httperr padroniza o envelope de erro da API: um código
// snake_case estável para o consumidor programar em cima e uma mensagem
// em português para exibir direto.
package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{Code: code, Message: message})
}

func BadRequest(c *gin.Context, code, message string) {
	write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	write(c, http.StatusNotFound, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	write(c, http.StatusUnauthorized, code, message)
}

func Internal(c *gin.Context, code, message string) {
	write(c, http.StatusInternalServerError, code, message)
}
