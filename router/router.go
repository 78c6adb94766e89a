package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sportsnews/controllers"
	"sportsnews/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(
		middlewares.RequestID(),
		middlewares.GinLogger(),
		middlewares.GinRecovery(),
	)
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/session", middlewares.AuthRequired(), controllers.GetSession)
		auth.POST("/logout", middlewares.AuthRequired(), controllers.Logout)
	}

	articles := api.Group("/articles")
	{
		articles.GET("", controllers.ListArticles)
		articles.GET("/top", controllers.GetTopArticles)
		articles.GET("/:id", controllers.GetArticleByID)
		articles.GET("/:id/comments", controllers.ListComments)
		articles.GET("/:id/like", middlewares.AuthOptional(), controllers.GetLikeStatus)

		articles.GET("/all", middlewares.AuthRequired(), controllers.ListAllArticles)
		articles.POST("", middlewares.AuthRequired(), controllers.CreateArticle)
		articles.DELETE("/:id", middlewares.AuthRequired(), controllers.DeleteArticle)
		articles.POST("/:id/comments", middlewares.AuthRequired(), controllers.CreateComment)
		articles.POST("/:id/like", middlewares.AuthRequired(), controllers.ToggleLike)
	}

	return r
}
