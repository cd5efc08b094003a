package controller

import (
	"pretty_exam_backend/internal/service"
	"pretty_exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GenerationController struct {
	Service *service.GenerationService
	Storage *service.StorageService
}

func NewGenerationController(svc *service.GenerationService, storage *service.StorageService) *GenerationController {
	return &GenerationController{Service: svc, Storage: storage}
}

// @Summary Generar borradores de preguntas con IA
// @Tags Generación
// @Accept json
// @Produce json
// @Param body body service.GenerateRequest true "Texto fuente y configuración"
// @Success 200 {object} util.Response
// @Router /api/generation/questions [post]
func (c *GenerationController) Generate(ctx *gin.Context) {
	var req service.GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	drafts, err := c.Service.GenerateQuestions(req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, drafts)
}

// @Summary Importar preguntas generadas
// @Tags Generación
// @Accept json
// @Produce json
// @Param body body service.ImportRequest true "Preguntas revisadas y categoría destino"
// @Success 201 {object} util.Response
// @Router /api/generation/import [post]
func (c *GenerationController) Import(ctx *gin.Context) {
	var req service.ImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	imported, err := c.Service.Import(req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, imported)
}

// @Summary Subir documento fuente
// @Tags Generación
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Documento fuente (texto o PDF)"
// @Success 201 {object} util.Response
// @Router /api/generation/documents [post]
func (c *GenerationController) UploadDocument(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "El archivo es requerido")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.FromError(ctx, util.NewExternalError("No se pudo leer el archivo", err))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	objectName, url, err := c.Storage.StoreDocument(ctx.Request.Context(), fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		util.FromError(ctx, util.NewExternalError("No se pudo guardar el documento", err))
		return
	}

	util.Created(ctx, gin.H{"objectName": objectName, "url": url})
}
