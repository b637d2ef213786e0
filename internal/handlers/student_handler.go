package handlers

import (
	"context"
	"errors"
	"net/http"

	"assessment-service/internal/service"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	Service *service.StudentService
}

func NewStudentHandler(s *service.StudentService) *StudentHandler {
	return &StudentHandler{Service: s}
}

type registerStudentRequest struct {
	Name  string `json:"name" binding:"required"`
	SapNo string `json:"sap_no" binding:"required"`
}

func (h *StudentHandler) RegisterStudent(c *gin.Context) {
	var req registerStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	student, err := h.Service.RegisterStudent(context.Background(), req.Name, req.SapNo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, student)
}

func (h *StudentHandler) GetBySapNo(c *gin.Context) {
	student, err := h.Service.GetBySapNo(context.Background(), c.Param("sap"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, student)
}
