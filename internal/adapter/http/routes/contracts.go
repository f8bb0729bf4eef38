package routes

import (
	"crm_imobiliario/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContracts = "/contracts"
)

func addContractRoutes(rg *gin.RouterGroup, contractHandler *handlers.ContractTemplateHandler) {
	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.UploadContractTemplate)
		contracts.GET("", contractHandler.ListContractTemplates)
		contracts.GET("/:id/download", contractHandler.GetDownloadURL)
		contracts.DELETE("/:id", contractHandler.DeleteContractTemplate)
	}
}
