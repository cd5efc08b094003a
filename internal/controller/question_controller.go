package controller

import (
	"pretty_exam_backend/internal/service"
	"pretty_exam_backend/internal/util"
	"pretty_exam_backend/internal/validation"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// parseCategoryIDs reads "categoryIds" as a comma-separated list.
func parseCategoryIDs(ctx *gin.Context) []uint {
	raw := ctx.Query("categoryIds")
	if raw == "" {
		return nil
	}
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		if parsed, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32); err == nil {
			ids = append(ids, uint(parsed))
		}
	}
	return ids
}

// @Summary Buscar preguntas
// @Tags Preguntas
// @Produce json
// @Param search query string false "Texto a buscar (insensible a acentos)"
// @Param categoryIds query string false "IDs de categorías separados por coma"
// @Success 200 {object} util.Response
// @Router /api/questions [get]
func (c *QuestionController) Search(ctx *gin.Context) {
	questions, err := c.Service.Search(ctx.Query("search"), parseCategoryIDs(ctx))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary Obtener pregunta
// @Tags Preguntas
// @Produce json
// @Param id path int true "ID de la pregunta"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [get]
func (c *QuestionController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID inválido")
		return
	}

	question, svcErr := c.Service.GetByID(uint(id))
	if svcErr != nil {
		util.FromError(ctx, svcErr)
		return
	}
	util.Success(ctx, question)
}

// @Summary Crear pregunta
// @Tags Preguntas
// @Accept json
// @Produce json
// @Param body body validation.QuestionInput true "Datos de la pregunta"
// @Success 201 {object} util.Response
// @Router /api/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req validation.QuestionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.Create(req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// @Summary Actualizar pregunta
// @Tags Preguntas
// @Accept json
// @Produce json
// @Param id path int true "ID de la pregunta"
// @Param body body validation.QuestionUpdateInput true "Campos a actualizar"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID inválido")
		return
	}

	var req validation.QuestionUpdateInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, svcErr := c.Service.Update(uint(id), req)
	if svcErr != nil {
		util.FromError(ctx, svcErr)
		return
	}
	util.Success(ctx, question)
}

// @Summary Eliminar pregunta
// @Tags Preguntas
// @Produce json
// @Param id path int true "ID de la pregunta"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID inválido")
		return
	}

	if err := c.Service.Delete(uint(id)); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Listar preguntas de una categoría
// @Tags Preguntas
// @Produce json
// @Param id path int true "ID de la categoría"
// @Success 200 {object} util.Response
// @Router /api/categories/{id}/questions [get]
func (c *QuestionController) GetByCategory(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID inválido")
		return
	}

	questions, svcErr := c.Service.GetByCategory(uint(id))
	if svcErr != nil {
		util.FromError(ctx, svcErr)
		return
	}
	util.Success(ctx, questions)
}
