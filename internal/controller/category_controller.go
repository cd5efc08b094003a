package controller

import (
	"pretty_exam_backend/internal/service"
	"pretty_exam_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Service *service.CategoryService
}

func NewCategoryController(svc *service.CategoryService) *CategoryController {
	return &CategoryController{Service: svc}
}

// @Summary Listar categorías
// @Tags Categorías
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/categories [get]
func (c *CategoryController) GetAll(ctx *gin.Context) {
	categories, err := c.Service.GetAll()
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// @Summary Crear categoría
// @Tags Categorías
// @Accept json
// @Produce json
// @Param body body service.CategoryRequest true "Datos de la categoría"
// @Success 201 {object} util.Response
// @Router /api/categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req service.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.Service.Create(req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

// @Summary Actualizar categoría
// @Tags Categorías
// @Accept json
// @Produce json
// @Param id path int true "ID de la categoría"
// @Param body body service.CategoryRequest true "Datos de la categoría"
// @Success 200 {object} util.Response
// @Router /api/categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID inválido")
		return
	}

	var req service.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, svcErr := c.Service.Update(uint(id), req)
	if svcErr != nil {
		util.FromError(ctx, svcErr)
		return
	}
	util.Success(ctx, category)
}

// @Summary Eliminar categoría
// @Tags Categorías
// @Produce json
// @Param id path int true "ID de la categoría"
// @Success 200 {object} util.Response
// @Router /api/categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
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

// @Summary Verificar si un nombre de categoría existe
// @Tags Categorías
// @Produce json
// @Param name query string true "Nombre a verificar"
// @Param excludeId query int false "ID a excluir de la comparación"
// @Success 200 {object} util.Response
// @Router /api/categories/name-exists [get]
func (c *CategoryController) NameExists(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		util.BadRequest(ctx, "El parámetro name es requerido")
		return
	}

	excludeID := uint(0)
	if raw := ctx.Query("excludeId"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil {
			excludeID = uint(parsed)
		}
	}

	category, exists, err := c.Service.NameExists(name, excludeID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	payload := gin.H{"exists": exists}
	if exists {
		payload["category"] = category
	}
	util.Success(ctx, payload)
}
