package controller

import (
	"pretty_exam_backend/internal/service"
	"pretty_exam_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	Service *service.ResultService
}

func NewResultController(svc *service.ResultService) *ResultController {
	return &ResultController{Service: svc}
}

// @Summary Guardar resultado de una simulación
// @Tags Resultados
// @Accept json
// @Produce json
// @Param body body service.ResultRequest true "Resultado con respuestas opcionales"
// @Success 201 {object} util.Response
// @Router /api/results [post]
func (c *ResultController) Create(ctx *gin.Context) {
	var req service.ResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Create(req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// @Summary Obtener resultado
// @Tags Resultados
// @Produce json
// @Param id path int true "ID del resultado"
// @Success 200 {object} util.Response
// @Router /api/results/{id} [get]
func (c *ResultController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID inválido")
		return
	}

	result, svcErr := c.Service.GetByID(uint(id))
	if svcErr != nil {
		util.FromError(ctx, svcErr)
		return
	}
	util.Success(ctx, result)
}

// @Summary Listar resultados de un examen
// @Tags Resultados
// @Produce json
// @Param id path int true "ID del examen"
// @Success 200 {object} util.Response
// @Router /api/exams/{id}/results [get]
func (c *ResultController) GetByExam(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID inválido")
		return
	}

	results, svcErr := c.Service.GetByExamID(uint(id))
	if svcErr != nil {
		util.FromError(ctx, svcErr)
		return
	}
	util.Success(ctx, results)
}

// @Summary Eliminar resultado
// @Tags Resultados
// @Produce json
// @Param id path int true "ID del resultado"
// @Success 200 {object} util.Response
// @Router /api/results/{id} [delete]
func (c *ResultController) Delete(ctx *gin.Context) {
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

// @Summary Registrar una respuesta individual
// @Tags Resultados
// @Accept json
// @Produce json
// @Param id path int true "ID del resultado"
// @Param body body service.UserAnswerRequest true "Respuesta"
// @Success 201 {object} util.Response
// @Router /api/results/{id}/answers [post]
func (c *ResultController) RecordAnswer(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID inválido")
		return
	}

	var req service.UserAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.RecordAnswer(uint(id), req); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, nil)
}
