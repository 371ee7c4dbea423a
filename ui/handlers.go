package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edujbarrios/real-iop-estimator/internal/errors"
)

// estimateRequest is the wire contract of the estimation endpoint: one
// free-text line of comma-separated readings.
type estimateRequest struct {
	Readings string `json:"readings" binding:"required"`
}

func (s *Server) handleEstimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "readings field is required",
			"code":  errors.CodeParseError,
		})
		return
	}

	report, err := s.service.EvaluateText(req.Readings)
	if err != nil {
		appErr := errors.FromDomain(err)
		s.logger.Debug("estimate rejected: %v", appErr)
		c.JSON(statusForCode(appErr.Code), gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := s.templates.ExecuteTemplate(c.Writer, "index.html", nil); err != nil {
		s.logger.Error("render index: %v", err)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusForCode maps application error codes onto HTTP statuses. All
// validation failures are the caller's to fix.
func statusForCode(code string) int {
	switch code {
	case errors.CodeParseError, errors.CodeRangeError, errors.CodeInsufficientData:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
