package server

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"planboard/internal/api"
	"planboard/internal/config"
	"planboard/internal/importer"
	"planboard/internal/service/plan"
	"planboard/internal/store"
)

// Server HTTP 服务器
type Server struct {
	router      *gin.Engine
	store       *store.Store
	plans       *plan.Manager
	coordinator *importer.Coordinator
	api         *api.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "planboard.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	plans := plan.NewManager()
	coordinator := importer.NewCoordinator(sqliteStore, plans, cfg.Excel.SheetName)
	handler := api.NewHandler(sqliteStore, plans, coordinator)

	s := &Server{
		router:      gin.Default(),
		store:       sqliteStore,
		plans:       plans,
		coordinator: coordinator,
		api:         handler,
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API 路由
	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	if devMode {
		// 开发模式：其余请求代理到前端开发服务器
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		s.router.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})
	}
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// ImportFile 启动时从本地路径预加载计划
func (s *Server) ImportFile(path string) error {
	_, err := s.coordinator.ImportFile(path, filepath.Base(path))
	return err
}

// Store 获取存储（测试用）
func (s *Server) Store() *store.Store {
	return s.store
}

// Plans 获取计划持有者（测试用）
func (s *Server) Plans() *plan.Manager {
	return s.plans
}
