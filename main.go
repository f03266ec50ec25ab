// @title           Floor Plan Designer API
// @version         1.0
// @description     Floor plan design and construction material estimation API.

// @contact.name   API Support

// @license.name  MIT

// @BasePath  /api/v1

// @schemes http https
package main

import (
	_ "backend/docs"
	"backend/handlers"
	"backend/storage"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization",
		"Cache-Control", "Accept-Language",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Content-Type", "Content-Disposition",
	}
	corsConfig.MaxAge = 12 * time.Hour // Cache preflight requests for 12 hours
	return corsConfig
}

func main() {
	storage.InitStore()
	store := storage.GetStore()

	r := gin.Default()

	r.Use(cors.New(CORSConfig()))

	api := r.Group("/api/v1")

	// ==================== 1. HEALTH ====================
	api.GET("/health", handlers.HealthCheck())

	// ==================== 2. PROJECTS ====================
	api.GET("/projects", handlers.ListProjects(store))
	api.POST("/projects", handlers.CreateProject(store))
	api.GET("/projects/:project_id", handlers.GetProject(store))
	api.DELETE("/projects/:project_id", handlers.DeleteProject(store))

	// ==================== 3. FLOOR PLANS ====================
	api.GET("/projects/:project_id/floors", handlers.GetFloorPlans(store))
	api.POST("/projects/:project_id/floors", handlers.AddFloorPlan(store))
	api.POST("/projects/:project_id/floors/import", handlers.ImportFloorPlan(store))
	api.GET("/floorplans/example", handlers.ExampleFloorPlanDefinition())

	// ==================== 4. ROOMS & WALLS ====================
	api.GET("/projects/:project_id/floors/:floor_id/rooms", handlers.GetRooms(store))
	api.POST("/projects/:project_id/floors/:floor_id/rooms", handlers.AddRoom(store))
	api.POST("/projects/:project_id/floors/:floor_id/walls", handlers.AddWall(store))

	// ==================== 5. MATERIAL CALCULATIONS ====================
	api.POST("/projects/:project_id/calculate", handlers.CalculateProjectMaterials(store))
	api.POST("/projects/:project_id/floors/:floor_id/calculate", handlers.CalculateFloorMaterials(store))

	// ==================== 6. MATERIAL CATALOG ====================
	api.GET("/materials", handlers.ListMaterials())
	api.GET("/materials/:category", handlers.ListMaterialsByCategory())
	api.GET("/room-types", handlers.ListRoomTypes())

	// ==================== 7. RENDERING ====================
	api.GET("/projects/:project_id/floors/:floor_id/render.svg", handlers.RenderFloorPlanSVG(store))
	api.GET("/projects/:project_id/floors/:floor_id/render.html", handlers.RenderFloorPlanHTML(store))

	// ==================== 8. EXPORTS ====================
	api.GET("/projects/:project_id/export_csv", handlers.ExportEstimateCSV(store))
	api.GET("/projects/:project_id/export_xlsx", handlers.ExportEstimateXLSX(store))
	api.GET("/projects/:project_id/estimate_pdf", handlers.GenerateEstimatePDF(store))
	api.GET("/projects/:project_id/qr", handlers.GenerateProjectQRCode(store))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}

	// Validate port is numeric
	portInt, err := strconv.Atoi(port)
	if err != nil {
		log.Fatalf("Invalid PORT environment variable: %s. Must be a number.", port)
	}
	if portInt < 0 || portInt > 65535 {
		log.Fatalf("Invalid PORT: %d. Must be between 0 and 65535.", portInt)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
