package handler

import (
	"net/http"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SearchEvents(c *ginext.Context) {
	page, err := queryPage(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	start, err := queryTime(c, "rangeStart")
	if err != nil {
		h.handleError(c, err)
		return
	}
	end, err := queryTime(c, "rangeEnd")
	if err != nil {
		h.handleError(c, err)
		return
	}
	paid, err := queryBool(c, "paid")
	if err != nil {
		h.handleError(c, err)
		return
	}
	onlyAvailable, err := queryBool(c, "onlyAvailable")
	if err != nil {
		h.handleError(c, err)
		return
	}

	events, err := h.catalogService.SearchPublic(c.Request.Context(), domain.PublicSearch{
		Text:          c.Query("text"),
		Categories:    queryList(c, "categories"),
		Paid:          paid,
		RangeStart:    start,
		RangeEnd:      end,
		OnlyAvailable: onlyAvailable != nil && *onlyAvailable,
		Sort:          domain.EventSort(c.Query("sort")),
		Page:          page,
	}, hitFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventShortList(events))
}

func (h *Handler) GetPublishedEvent(c *ginext.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}

	event, err := h.catalogService.GetPublished(c.Request.Context(), eventID, hitFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFullResponse(event))
}
