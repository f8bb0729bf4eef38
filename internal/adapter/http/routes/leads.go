package routes

import (
	"crm_imobiliario/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads   = "/leads"
	PathKanban  = "/kanban"
	PathSession = "/session"
)

func addLeadRoutes(rg *gin.RouterGroup, leadHandler *handlers.LeadHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.GET("", leadHandler.ListLeads)
		leads.POST("", leadHandler.CreateLead)
		leads.POST("/refresh", leadHandler.RefreshLeads)
		leads.PATCH("/:id", leadHandler.UpdateLead)
		leads.PUT("/:id/kanban", leadHandler.UpdateLeadFromKanban)
		leads.DELETE("/:id", leadHandler.DeleteLead)
	}

	rg.GET(PathKanban, leadHandler.GetKanban)
	rg.DELETE(PathSession, leadHandler.CloseSession)
}
