package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sgulyaev/aviatickets/internal/domain"
	"github.com/sgulyaev/aviatickets/internal/service/bonus"
)

type PrivilegeHandler struct {
	service bonus.BonusUseCase
}

type privilegeResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Status   string `json:"status"`
	Balance  int    `json:"balance"`
}

type historyResponse struct {
	ID            int64  `json:"id"`
	PrivilegeID   int64  `json:"privilege_id"`
	TicketUID     string `json:"ticket_uid"`
	Date          string `json:"datetime"`
	BalanceDiff   int    `json:"balance_diff"`
	OperationType string `json:"operation_type"`
}

func NewPrivilegeHandler(service bonus.BonusUseCase) *PrivilegeHandler {
	return &PrivilegeHandler{service: service}
}

func (h *PrivilegeHandler) Register(router *gin.RouterGroup) {
	router.GET("/:username", h.get)
	router.GET("/:username/history", h.history)
	router.GET("/:username/history/:ticketUid", h.historyByTicket)
	router.POST("/:username/history", h.addTransaction)
	router.DELETE("/:username/history/:ticketUid", h.revertTransaction)
}

func (h *PrivilegeHandler) get(c *gin.Context) {
	privilege, err := h.service.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toPrivilegeResponse(*privilege))
}

func (h *PrivilegeHandler) history(c *gin.Context) {
	history, err := h.service.History(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]historyResponse, 0, len(history))
	for _, record := range history {
		response = append(response, toHistoryResponse(record))
	}
	c.JSON(http.StatusOK, response)
}

func (h *PrivilegeHandler) historyByTicket(c *gin.Context) {
	ticketUID, err := uuid.Parse(c.Param("ticketUid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket uid"})
		return
	}

	record, err := h.service.HistoryByTicket(c.Request.Context(), c.Param("username"), ticketUID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toHistoryResponse(*record))
}

func (h *PrivilegeHandler) addTransaction(c *gin.Context) {
	var req bonus.AddTransactionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.service.AddTransaction(c.Request.Context(), c.Param("username"), req)
	if err != nil {
		switch {
		case errors.Is(err, bonus.ErrInvalidOperation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User account not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, toHistoryResponse(*record))
}

func (h *PrivilegeHandler) revertTransaction(c *gin.Context) {
	ticketUID, err := uuid.Parse(c.Param("ticketUid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket uid"})
		return
	}

	if _, err := h.service.RevertTransaction(c.Request.Context(), c.Param("username"), ticketUID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func toPrivilegeResponse(p domain.Privilege) privilegeResponse {
	return privilegeResponse{
		ID:       p.ID,
		Username: p.Username,
		Status:   string(p.Status),
		Balance:  p.Balance,
	}
}

func toHistoryResponse(h domain.PrivilegeHistory) historyResponse {
	return historyResponse{
		ID:            h.ID,
		PrivilegeID:   h.PrivilegeID,
		TicketUID:     h.TicketUID.String(),
		Date:          h.Date.Format(time.RFC3339),
		BalanceDiff:   h.BalanceDiff,
		OperationType: string(h.OperationType),
	}
}
