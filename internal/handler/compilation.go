package handler

import (
	"net/http"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateCompilation(c *ginext.Context) {
	var req dto.CreateCompilationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	comp, err := h.compService.Create(c.Request.Context(), domain.CreateCompilationInput{
		Title:  req.Title,
		Pinned: req.Pinned,
		Events: req.Events,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCompilationResponse(comp))
}

func (h *Handler) UpdateCompilation(c *ginext.Context) {
	id, ok := pathID(c, "compId")
	if !ok {
		return
	}

	var req dto.UpdateCompilationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	comp, err := h.compService.Update(c.Request.Context(), id, domain.CompilationPatch{
		Title:  req.Title,
		Pinned: req.Pinned,
		Events: req.Events,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompilationResponse(comp))
}

func (h *Handler) DeleteCompilation(c *ginext.Context) {
	id, ok := pathID(c, "compId")
	if !ok {
		return
	}

	if err := h.compService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListCompilations(c *ginext.Context) {
	pinned, err := queryBool(c, "pinned")
	if err != nil {
		h.handleError(c, err)
		return
	}
	page, err := queryPage(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	comps, err := h.compService.List(c.Request.Context(), pinned, page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompilationList(comps))
}

func (h *Handler) GetCompilation(c *ginext.Context) {
	id, ok := pathID(c, "compId")
	if !ok {
		return
	}

	comp, err := h.compService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompilationResponse(comp))
}
