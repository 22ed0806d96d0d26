package main

import (
	"log"
	"os"

	_ "delivery-backend/api/swagger" // swagger docs
	"delivery-backend/internal/database"
	"delivery-backend/internal/handler"
	"delivery-backend/internal/middleware"
	"delivery-backend/internal/repository"
	"delivery-backend/internal/service"
	"delivery-backend/internal/session"
	"delivery-backend/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// devSessionSecret is used only outside release mode when SESSION_SECRET is unset
const devSessionSecret = "dev-secret-change-me"

func sessionSecret() string {
	secret := os.Getenv("SESSION_SECRET")
	if secret != "" {
		return secret
	}
	if os.Getenv("GIN_MODE") == "release" {
		log.Fatal("SESSION_SECRET must be set in release mode")
	}
	log.Println("WARNING: SESSION_SECRET not set, using development fallback")
	return devSessionSecret
}

// @title           Delivery Management API
// @version         1.0
// @description     Order, courier and fleet management backend for a delivery service.
// @host            localhost:8080
// @BasePath        /api
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbSslMode := os.Getenv("DB_SSLMODE")

	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	if dbUser == "" {
		dbUser = "postgres"
	}
	if dbPassword == "" {
		dbPassword = "postgres"
	}
	if dbName == "" {
		dbName = "delivery"
	}
	if dbSslMode == "" {
		dbSslMode = "disable"
	}

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	if err := database.Seed(db); err != nil {
		log.Fatalf("Database seeding failed: %v", err)
	}

	codec := session.NewCodec(sessionSecret())
	middleware.Init(db, codec)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	courierRepo := repository.NewCourierRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	logRepo := repository.NewLogRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	logService := service.NewLogService(logRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	userService := service.NewUserService(userRepo, roleRepo, codec, logService)
	roleService := service.NewRoleService(roleRepo)
	customerService := service.NewCustomerService(customerRepo)
	orderService := service.NewOrderService(orderRepo, customerRepo, courierRepo, txManager, logService, notificationService, wsHub)
	courierService := service.NewCourierService(courierRepo, orderRepo, wsHub)
	vehicleService := service.NewVehicleService(vehicleRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, courierRepo, vehicleRepo)

	// Initialize Handlers
	userHandler := handler.NewUserHandler(userService, logService)
	orderHandler := handler.NewOrderHandler(orderService)
	courierHandler := handler.NewCourierHandler(courierService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService, logService)
	roleHandler := handler.NewRoleHandler(roleService, logService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	logHandler := handler.NewLogHandler(logService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	customerHandler := handler.NewCustomerHandler(customerService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// Register API Routes
	api := router.Group("/api")
	userHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)
	courierHandler.RegisterRoutes(api)
	vehicleHandler.RegisterRoutes(api)
	roleHandler.RegisterRoutes(api)
	analyticsHandler.RegisterRoutes(api)
	logHandler.RegisterRoutes(api)
	notificationHandler.RegisterRoutes(api)
	customerHandler.RegisterRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
