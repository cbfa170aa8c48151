package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"travelsure/models"
	"travelsure/services/policy"

	"github.com/gin-gonic/gin"
)

// PolicyReader looks issued policies up.
type PolicyReader interface {
	Policy(ctx context.Context, policyNumber string) (*models.Policy, error)
}

// PolicyHandler serves issued policies to holders of a policy access token.
type PolicyHandler struct {
	Policies PolicyReader
}

func NewPolicyHandler(policies PolicyReader) *PolicyHandler {
	return &PolicyHandler{Policies: policies}
}

// GetPolicy handles GET /api/policies/:policyNumber.
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	p, err := h.Policies.Policy(c.Request.Context(), c.Param("policyNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DownloadCertificate handles GET /api/policies/:policyNumber/certificate. A
// stored document is served by redirect; otherwise the certificate is rendered.
func (h *PolicyHandler) DownloadCertificate(c *gin.Context) {
	p, err := h.Policies.Policy(c.Request.Context(), c.Param("policyNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	if strings.HasPrefix(p.DocumentURL, "https://") {
		c.Redirect(http.StatusFound, p.DocumentURL)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", p.PolicyNumber+".txt"))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(policy.Certificate(*p)))
}
