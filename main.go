package main

import (
	"context"
	"log"
	"time"

	"assessment-service/internal/config"
	"assessment-service/internal/db"
	"assessment-service/internal/engine"
	"assessment-service/internal/event"
	"assessment-service/internal/handlers"
	"assessment-service/internal/repository"
	"assessment-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	if cfg.MongoDB.URI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoDB.URI)
	defer db.Disconnect()

	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	database := db.Client.Database(cfg.MongoDB.Database)

	questionRepo := repository.NewQuestionRepository(database)
	attemptRepo := repository.NewAttemptRepository(database)
	settingsRepo := repository.NewSettingsRepository(database)
	studentRepo := repository.NewStudentRepository(database)

	// Refuse to start with undefined thresholds: validate the stored engine
	// settings before serving anything.
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	engineCfg, err := settingsRepo.Load(bootCtx)
	bootCancel()
	if err != nil {
		log.Fatalf("Invalid engine settings: %v", err)
	}
	log.Printf("Engine settings loaded: quiz_size=%d lookback=%d weak_lookback=%d",
		engineCfg.QuizSize, engineCfg.LookbackQuizzes, engineCfg.WeakLookback)

	composer := engine.NewComposer(questionRepo, attemptRepo)
	assessmentService := service.NewAssessmentService(composer, attemptRepo, settingsRepo, studentRepo)
	progressService := service.NewProgressService(attemptRepo, settingsRepo, studentRepo)
	questionService := service.NewQuestionService(questionRepo)
	studentService := service.NewStudentService(studentRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	quizHandler := handlers.NewQuizHandler(assessmentService, progressService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	studentHandler := handlers.NewStudentHandler(studentService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	quiz := r.Group("/quiz")
	{
		quiz.GET("/generate/:studentId", func(c *gin.Context) {
			quizHandler.GenerateQuiz(c)
			if publisher != nil {
				publisher.Publish("quiz.generated", gin.H{
					"student_id": c.Param("studentId"),
					"timestamp":  time.Now(),
				})
			}
		})
		quiz.POST("/submit", func(c *gin.Context) {
			quizHandler.SubmitQuiz(c)
			if publisher != nil {
				publisher.Publish("quiz.submitted", gin.H{
					"timestamp": time.Now(),
				})
			}
		})
		quiz.GET("/dashboard/:studentId", quizHandler.GetDashboard)
		quiz.GET("/profile/:studentId", quizHandler.GetTopicProfile)
		quiz.GET("/settings", settingsHandler.ListSettings)
		quiz.POST("/settings", func(c *gin.Context) {
			settingsHandler.UpdateSetting(c)
			if publisher != nil {
				publisher.Publish("settings.updated", gin.H{
					"timestamp": time.Now(),
				})
			}
		})
		quiz.GET("/questions", questionHandler.ListQuestions)
		quiz.GET("/questions/:id", questionHandler.GetQuestion)
	}

	admin := r.Group("/admin/questions")
	{
		admin.POST("/", questionHandler.CreateQuestion)
		admin.PUT("/:id", questionHandler.UpdateQuestion)
		admin.DELETE("/:id", questionHandler.DeleteQuestion)
		admin.POST("/seed", questionHandler.SeedSampleQuestions)
	}

	students := r.Group("/students")
	{
		students.POST("/", func(c *gin.Context) {
			studentHandler.RegisterStudent(c)
			if publisher != nil {
				publisher.Publish("student.created", gin.H{
					"timestamp": time.Now(),
				})
			}
		})
		students.GET("/sap/:sap", studentHandler.GetBySapNo)
	}

	r.Run(cfg.Server.Host + ":" + cfg.Server.Port)
}
