package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mhzhou/bikeshare-survey-go/internal/config"
	"github.com/mhzhou/bikeshare-survey-go/internal/database"
	"github.com/mhzhou/bikeshare-survey-go/internal/handler"
	"github.com/mhzhou/bikeshare-survey-go/internal/middleware"
	"github.com/mhzhou/bikeshare-survey-go/internal/repository"
	"github.com/mhzhou/bikeshare-survey-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Bikeshare Survey API is running",
		})
	})

	// 依赖装配
	tripRepo := repository.NewTripRepository(database.GetDB())
	tripService := service.NewTripService(tripRepo)
	surveyService := service.NewSurveyService(tripRepo, cfg.DurationCeiling, cfg.SRSSampleSize)
	tripHandler := handler.NewTripHandler(tripService)
	surveyHandler := handler.NewSurveyHandler(surveyService)

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	{
		// 行程接口
		trips := api.Group("/trips")
		{
			trips.GET("", tripHandler.GetTrips)
			trips.GET("/:id", tripHandler.GetTripByID)
			trips.POST("/import", middleware.Auth(cfg.JWTSecret), tripHandler.ImportTrips)
		}

		// 抽样调查接口
		surveyGroup := api.Group("/survey")
		{
			surveyGroup.GET("/population", surveyHandler.GetPopulationSummary)
			surveyGroup.GET("/strata", surveyHandler.GetStrata)
			surveyGroup.POST("/allocation", surveyHandler.BuildAllocation)
			surveyGroup.POST("/estimate", surveyHandler.Estimate)
			surveyGroup.POST("/corrected-size", surveyHandler.CorrectSampleSize)
			surveyGroup.POST("/compare", surveyHandler.Compare)
		}
	}

	return r
}
