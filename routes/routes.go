package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"assetvault/services"
)

// ServiceContainer holds all services and shared settings for route wiring.
type ServiceContainer struct {
	DB                 *mongo.Database
	JWTSecret          string
	JWTExpiration      time.Duration
	JWTIssuer          string
	DefaultDepartment  string
	MaxPreviewFileSize int64

	AuthService       *services.AuthService
	PermissionService *services.PermissionService
	AssetService      *services.AssetService
	DocumentService   *services.DocumentService
	CategoryService   *services.CategoryService
	AuditService      *services.AuditService
	DashboardService  *services.DashboardService
}

// ContainerConfig carries the settings the container needs from config.
type ContainerConfig struct {
	JWTSecret          string
	JWTExpiration      time.Duration
	JWTIssuer          string
	DefaultDepartment  string
	MaxPreviewFileSize int64
}

// NewServiceContainer initializes every service against one database handle.
func NewServiceContainer(db *mongo.Database, cfg ContainerConfig) *ServiceContainer {
	auditService := services.NewAuditService(db)

	return &ServiceContainer{
		DB:                 db,
		JWTSecret:          cfg.JWTSecret,
		JWTExpiration:      cfg.JWTExpiration,
		JWTIssuer:          cfg.JWTIssuer,
		DefaultDepartment:  cfg.DefaultDepartment,
		MaxPreviewFileSize: cfg.MaxPreviewFileSize,

		AuthService:       services.NewAuthService(db),
		PermissionService: services.NewPermissionService(db),
		AssetService:      services.NewAssetService(db),
		DocumentService:   services.NewDocumentService(db),
		CategoryService:   services.NewCategoryService(db),
		AuditService:      auditService,
		DashboardService:  services.NewDashboardService(db, auditService),
	}
}

// SetupRoutes registers all API route groups.
func SetupRoutes(api *gin.RouterGroup, container *ServiceContainer) {
	RegisterAuthRoutes(api, container)
	RegisterDigitalAssetRoutes(api, container)
	RegisterDocumentRoutes(api, container)
	RegisterCategoryRoutes(api, container)
	RegisterPermissionRoutes(api, container)
	RegisterDashboardRoutes(api, container)
	RegisterAdminRoutes(api, container)
}
