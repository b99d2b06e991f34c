package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stylencms/internal/service"
)

type leadPayload struct {
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	UserType    string `json:"user_type"`
	Requirement string `json:"requirement"`
}

func (p leadPayload) toInput() service.LeadInput {
	return service.LeadInput{
		FullName:    p.FullName,
		Phone:       p.Phone,
		UserType:    p.UserType,
		Requirement: p.Requirement,
	}
}

// SubmitLead 接收公开站点的询盘表单。
func (a *API) SubmitLead(c *gin.Context) {
	var payload leadPayload
	if !bindJSON(c, &payload, "invalid enquiry payload") {
		return
	}

	lead, err := a.leads.CreateLead(c.Request.Context(), payload.toInput())
	if err != nil {
		respondServiceError(c, err, "failed to submit enquiry")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": lead.ID})
}

// ListLeads returns captured leads newest first.
func (a *API) ListLeads(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"leads": a.leads.ListLeads(c.Request.Context())})
}

// SyncLead pushes one lead to the CRM webhook.
func (a *API) SyncLead(c *gin.Context) {
	if err := a.leads.SyncLead(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "failed to sync lead")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "lead synced"})
}
