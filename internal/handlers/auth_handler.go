package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-mvp/internal/config"
	"github.com/BruksfildServices01/barber-mvp/internal/httperr"
)

// AuthHandler valida a credencial única do painel. MVP single-tenant:
// não há cadastro de usuários, só o admin configurado no ambiente.
type AuthHandler struct {
	config       *config.Config
	passwordHash []byte
}

func NewAuthHandler(cfg *config.Config) (*AuthHandler, error) {
	// a senha configurada vira hash uma vez na subida; o login sempre
	// compara via bcrypt
	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &AuthHandler{config: cfg, passwordHash: hashed}, nil
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email != strings.ToLower(h.config.AdminEmail) {
		httperr.Unauthorized(c, "invalid_credentials", "Email ou senha inválidos.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Email ou senha inválidos.")
		return
	}

	token, err := h.generateToken(email)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token de acesso.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  gin.H{"email": email},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
