package devserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/booshananamudara/zoura-mobile/internal/client/models"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "name, email and a password of at least 8 characters are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "could not hash password")
		return
	}

	account, err := s.store.CreateAccount(req.Name, req.Email, hash, models.TierFree)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			fail(c, http.StatusConflict, "email already registered")
			return
		}
		fail(c, http.StatusInternalServerError, "could not create account")
		return
	}

	s.log.Info(c.Request.Context(), "account registered", "email", account.Email)
	c.JSON(http.StatusCreated, gin.H{"user": account.User()})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "email and password are required")
		return
	}

	account, ok := s.store.AccountByEmail(req.Email)
	if !ok || bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(req.Password)) != nil {
		fail(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.mintToken(account.ID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "could not issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

func (s *Server) handleProfile(c *gin.Context) {
	account, ok := s.store.AccountByID(userID(c))
	if !ok {
		fail(c, http.StatusNotFound, "account not found")
		return
	}
	c.JSON(http.StatusOK, account.User())
}

func (s *Server) mintToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
