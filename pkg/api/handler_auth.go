package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/delverhq/delver/pkg/models"
)

// registerHandler handles POST /api/v1/auth/register.
func (s *Server) registerHandler(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}

	user, err := s.users.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}

	token, expires, err := s.tokens.Issue(user)
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusCreated, models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: expires,
	})
}

// loginHandler handles POST /api/v1/auth/login.
func (s *Server) loginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}

	user, err := s.users.Authenticate(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}

	token, expires, err := s.tokens.Issue(user)
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusOK, models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: expires,
	})
}

// refreshHandler handles POST /api/v1/auth/refresh. The presented token
// must still be valid; refresh extends a live session, it does not revive
// an expired one.
func (s *Server) refreshHandler(c *gin.Context) {
	user, err := s.users.Get(c.Request.Context(), c.GetString(ctxUserID))
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}

	token, expires, err := s.tokens.Issue(user)
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusOK, models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: expires,
	})
}

// logoutHandler handles POST /api/v1/auth/logout. Tokens are stateless;
// the client discards its copy and the token ages out at its expiry.
func (s *Server) logoutHandler(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{"message": "logged out"})
}

// meHandler handles GET /api/v1/auth/me.
func (s *Server) meHandler(c *gin.Context) {
	user, err := s.users.Get(c.Request.Context(), c.GetString(ctxUserID))
	if err != nil {
		respondServiceError(c, s.logger, err)
		return
	}
	respondOK(c, http.StatusOK, user)
}
