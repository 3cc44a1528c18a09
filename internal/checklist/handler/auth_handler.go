package handler

import (
	"github.com/bouvin87/System-by-Sections/internal/checklist/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type tokenRequest struct {
	OperatorName string `json:"operator_name" binding:"required"`
}

// IssueToken creates an operator session token.
// POST /api/v1/auth/token
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "operator_name is required")
		return
	}

	result, err := h.svc.IssueToken(req.OperatorName)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Success(c, result)
}
