package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sgulyaev/aviatickets/internal/domain"
	"github.com/sgulyaev/aviatickets/internal/service/tickets"
)

type TicketHandler struct {
	service tickets.TicketUseCase
}

type ticketResponse struct {
	ID           int64  `json:"id"`
	TicketUID    string `json:"ticket_uid"`
	Username     string `json:"username"`
	FlightNumber string `json:"flight_number"`
	Price        int    `json:"price"`
	Status       string `json:"status"`
}

func NewTicketHandler(service tickets.TicketUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.GET("/user/:username", h.listByUser)
	router.GET("/:ticketUid", h.get)
	router.POST("", h.create)
	router.DELETE("/:ticketUid", h.remove)
}

func (h *TicketHandler) listByUser(c *gin.Context) {
	userTickets, err := h.service.ListByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]ticketResponse, 0, len(userTickets))
	for _, t := range userTickets {
		response = append(response, toTicketResponse(t))
	}
	c.JSON(http.StatusOK, response)
}

func (h *TicketHandler) get(c *gin.Context) {
	ticketUID, err := uuid.Parse(c.Param("ticketUid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket uid"})
		return
	}

	ticket, err := h.service.GetByUID(c.Request.Context(), ticketUID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(*ticket))
}

func (h *TicketHandler) create(c *gin.Context) {
	var req tickets.CreateTicketInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			c.JSON(http.StatusForbidden, gin.H{"message": "Ticket with this UUID already exists"})
		case errors.Is(err, tickets.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, toTicketResponse(*ticket))
}

func (h *TicketHandler) remove(c *gin.Context) {
	ticketUID, err := uuid.Parse(c.Param("ticketUid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket uid"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), ticketUID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func toTicketResponse(t domain.Ticket) ticketResponse {
	return ticketResponse{
		ID:           t.ID,
		TicketUID:    t.TicketUID.String(),
		Username:     t.Username,
		FlightNumber: t.FlightNumber,
		Price:        t.Price,
		Status:       string(t.Status),
	}
}
