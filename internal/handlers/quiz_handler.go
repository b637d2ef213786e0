package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"assessment-service/internal/engine"
	"assessment-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Assessment *service.AssessmentService
	Progress   *service.ProgressService
}

func NewQuizHandler(assessment *service.AssessmentService, progress *service.ProgressService) *QuizHandler {
	return &QuizHandler{Assessment: assessment, Progress: progress}
}

func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	studentID := c.Param("studentId")
	size := 0
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a positive integer"})
			return
		}
		size = n
	}

	quiz, err := h.Assessment.GenerateQuiz(context.Background(), studentID, size)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	questions := make([]map[string]interface{}, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, q.Public())
	}
	c.JSON(http.StatusOK, gin.H{
		"quiz_id":           quiz.ID,
		"student_id":        quiz.StudentID,
		"questions":         questions,
		"count":             len(quiz.Questions),
		"requested":         quiz.Requested,
		"under_filled":      quiz.UnderFilled,
		"target_difficulty": quiz.TargetDifficulty,
	})
}

type submitRequest struct {
	QuizID    string `json:"quiz_id" binding:"required"`
	StudentID string `json:"student_id" binding:"required"`
	Answers   []struct {
		QuestionID string `json:"question_id" binding:"required"`
		Option     int    `json:"option"`
	} `json:"answers"`
}

func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	answers := make(map[string]int, len(req.Answers))
	for _, a := range req.Answers {
		answers[a.QuestionID] = a.Option
	}

	record, err := h.Assessment.SubmitQuiz(context.Background(), req.QuizID, req.StudentID, answers)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuizNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, engine.ErrUnknownQuestion):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"student_id": record.StudentID,
		"score":      record.Score,
		"total":      record.Total,
		"percent":    record.Percent(),
		"outcomes":   record.Outcomes,
	})
}

func (h *QuizHandler) GetDashboard(c *gin.Context) {
	dash, err := h.Progress.Dashboard(context.Background(), c.Param("studentId"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dash)
}

func (h *QuizHandler) GetTopicProfile(c *gin.Context) {
	profile, err := h.Progress.TopicProfile(context.Background(), c.Param("studentId"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}
