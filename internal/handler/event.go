package handler

import (
	"net/http"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Initiator endpoints

func (h *Handler) CreateEvent(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := parseDateTime("eventDate", req.EventDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	input := domain.CreateEventInput{
		Title:             req.Title,
		Annotation:        req.Annotation,
		Description:       req.Description,
		CategoryID:        req.Category,
		Lat:               *req.Location.Lat,
		Lon:               *req.Location.Lon,
		EventDate:         eventDate,
		Paid:              req.Paid,
		ParticipantLimit:  req.ParticipantLimit,
		RequestModeration: req.RequestModeration,
	}

	event, err := h.eventService.Create(c.Request.Context(), userID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventFullResponse(event))
}

func (h *Handler) ListOwnerEvents(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	page, err := queryPage(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	events, err := h.catalogService.ListByOwner(c.Request.Context(), userID, page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventShortList(events))
}

func (h *Handler) GetOwnerEvent(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	event, err := h.catalogService.GetByOwner(c.Request.Context(), userID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFullResponse(event))
}

func (h *Handler) UpdateOwnerEvent(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch, err := toPatch(&req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	action, err := domain.ParseOwnerAction(req.StateAction)
	if err != nil {
		h.handleError(c, err)
		return
	}

	event, err := h.eventService.UpdateByOwner(c.Request.Context(), userID, eventID,
		domain.OwnerEdit{Patch: patch, Action: action})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFullResponse(event))
}

// Admin endpoints

func (h *Handler) SearchAdminEvents(c *ginext.Context) {
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

	events, err := h.catalogService.SearchAdmin(c.Request.Context(), domain.AdminSearch{
		Users:      queryList(c, "users"),
		States:     queryList(c, "states"),
		Categories: queryList(c, "categories"),
		RangeStart: start,
		RangeEnd:   end,
		Page:       page,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFullList(events))
}

func (h *Handler) UpdateAdminEvent(c *ginext.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch, err := toPatch(&req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	action, err := domain.ParseAdminAction(req.StateAction)
	if err != nil {
		h.handleError(c, err)
		return
	}

	event, err := h.eventService.UpdateByAdmin(c.Request.Context(), eventID,
		domain.AdminEdit{Patch: patch, Action: action})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFullResponse(event))
}

func toPatch(req *dto.UpdateEventRequest) (domain.EventPatch, error) {
	patch := domain.EventPatch{
		Title:             req.Title,
		Annotation:        req.Annotation,
		Description:       req.Description,
		CategoryID:        req.Category,
		Paid:              req.Paid,
		ParticipantLimit:  req.ParticipantLimit,
		RequestModeration: req.RequestModeration,
	}
	if req.Location != nil {
		patch.Location = &domain.Location{Lat: *req.Location.Lat, Lon: *req.Location.Lon}
	}
	if req.EventDate != nil {
		t, err := parseDateTime("eventDate", *req.EventDate)
		if err != nil {
			return domain.EventPatch{}, err
		}
		patch.EventDate = &t
	}
	return patch, nil
}
