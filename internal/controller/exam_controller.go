package controller

import (
	"pretty_exam_backend/internal/service"
	"pretty_exam_backend/internal/util"
	"pretty_exam_backend/internal/validation"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	Service *service.ExamService
}

func NewExamController(svc *service.ExamService) *ExamController {
	return &ExamController{Service: svc}
}

type examQuestionsRequest struct {
	QuestionIDs []int64 `json:"questionIds" binding:"required"`
}

// @Summary Listar exámenes
// @Tags Exámenes
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/exams [get]
func (c *ExamController) GetAll(ctx *gin.Context) {
	exams, err := c.Service.GetAll()
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, exams)
}

// @Summary Obtener examen
// @Tags Exámenes
// @Produce json
// @Param id path int true "ID del examen"
// @Success 200 {object} util.Response
// @Router /api/exams/{id} [get]
func (c *ExamController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID inválido")
		return
	}

	exam, svcErr := c.Service.GetByID(uint(id))
	if svcErr != nil {
		util.FromError(ctx, svcErr)
		return
	}
	util.Success(ctx, exam)
}

// @Summary Crear examen
// @Tags Exámenes
// @Accept json
// @Produce json
// @Param body body validation.ExamInput true "Datos del examen"
// @Success 201 {object} util.Response
// @Router /api/exams [post]
func (c *ExamController) Create(ctx *gin.Context) {
	var req validation.ExamInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.Service.Create(req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, exam)
}

// @Summary Actualizar examen
// @Tags Exámenes
// @Accept json
// @Produce json
// @Param id path int true "ID del examen"
// @Param body body validation.ExamUpdateInput true "Campos a actualizar"
// @Success 200 {object} util.Response
// @Router /api/exams/{id} [put]
func (c *ExamController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID inválido")
		return
	}

	var req validation.ExamUpdateInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, svcErr := c.Service.Update(uint(id), req)
	if svcErr != nil {
		util.FromError(ctx, svcErr)
		return
	}
	util.Success(ctx, exam)
}

// @Summary Eliminar examen
// @Tags Exámenes
// @Produce json
// @Param id path int true "ID del examen"
// @Success 200 {object} util.Response
// @Router /api/exams/{id} [delete]
func (c *ExamController) Delete(ctx *gin.Context) {
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

// @Summary Listar preguntas de un examen
// @Tags Exámenes
// @Produce json
// @Param id path int true "ID del examen"
// @Success 200 {object} util.Response
// @Router /api/exams/{id}/questions [get]
func (c *ExamController) GetQuestions(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID inválido")
		return
	}

	questions, svcErr := c.Service.GetQuestions(uint(id))
	if svcErr != nil {
		util.FromError(ctx, svcErr)
		return
	}
	util.Success(ctx, questions)
}

// @Summary Agregar preguntas a un examen
// @Tags Exámenes
// @Accept json
// @Produce json
// @Param id path int true "ID del examen"
// @Param body body examQuestionsRequest true "IDs de preguntas"
// @Success 200 {object} util.Response
// @Router /api/exams/{id}/questions [post]
func (c *ExamController) AddQuestions(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID inválido")
		return
	}

	var req examQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.AddQuestions(uint(id), req.QuestionIDs); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Quitar preguntas de un examen
// @Tags Exámenes
// @Accept json
// @Produce json
// @Param id path int true "ID del examen"
// @Param body body examQuestionsRequest true "IDs de preguntas"
// @Success 200 {object} util.Response
// @Router /api/exams/{id}/questions [delete]
func (c *ExamController) RemoveQuestions(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID inválido")
		return
	}

	var req examQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.RemoveQuestions(uint(id), req.QuestionIDs); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
