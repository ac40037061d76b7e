package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"gallery-backend/internal/config"
	infraCache "gallery-backend/internal/infrastructure/cache"
	"gallery-backend/internal/infrastructure/database"
	"gallery-backend/internal/infrastructure/storage"
	"gallery-backend/pkg/cache"
	"gallery-backend/pkg/logger"

	adminHandler "gallery-backend/internal/domains/admin/handler"
	adminRepo "gallery-backend/internal/domains/admin/repository"
	adminService "gallery-backend/internal/domains/admin/service"
	feedbackHandler "gallery-backend/internal/domains/feedback/handler"
	feedbackRepo "gallery-backend/internal/domains/feedback/repository"
	feedbackService "gallery-backend/internal/domains/feedback/service"
	imageHandler "gallery-backend/internal/domains/image/handler"
	imageRepo "gallery-backend/internal/domains/image/repository"
	imageService "gallery-backend/internal/domains/image/service"
)

// Store là phần chung của PostgresDB và SQLiteDB mà container cần
type Store interface {
	EnsureSchema(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Close() error
}

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
type Container struct {
	// INFRASTRUCTURE LAYER
	Config   *config.Config
	Store    Store
	Cache    cache.Cache // nil khi REDIS_ADDR trống
	Uploader storage.Uploader

	// REPOSITORY LAYER
	ImageRepo    imageRepo.ImageRepository
	FeedbackRepo feedbackRepo.FeedbackRepository
	AdminRepo    adminRepo.AdminRepository

	// SERVICE LAYER
	ImageService    imageService.ServiceInterface
	FeedbackService feedbackService.ServiceInterface
	AdminService    adminService.ServiceInterface

	// HANDLER LAYER
	ImageHandler    *imageHandler.ImageHandler
	FeedbackHandler *feedbackHandler.FeedbackHandler
	AdminHandler    *adminHandler.AdminHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config
// 2. Infrastructure (Store, Cache, Uploader)
// 3. Repositories
// 4. Services
// 5. Handlers
func NewContainer(ctx context.Context) (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	logger.Init(cfg.App.Environment)

	c := &Container{Config: cfg}

	if err := c.initInfrastructure(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	c.initServices()
	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// NewWithDependencies build phần còn lại của graph từ các dependencies có sẵn
// Dùng cho tests và cho các entry point không đọc environment
func NewWithDependencies(
	cfg *config.Config,
	images imageRepo.ImageRepository,
	feedbacks feedbackRepo.FeedbackRepository,
	admins adminRepo.AdminRepository,
	uploader storage.Uploader,
) *Container {
	c := &Container{
		Config:       cfg,
		Uploader:     uploader,
		ImageRepo:    images,
		FeedbackRepo: feedbacks,
		AdminRepo:    admins,
	}
	c.initServices()
	c.initHandlers()
	return c
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.Config

	// STEP 1: STORE (lỗi ở đây là fatal)
	log.Printf("🗄️  Opening %s store...", cfg.Database.Driver)
	if err := c.initStore(ctx); err != nil {
		return err
	}
	if err := c.Store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	log.Println("✅ Store ready")

	// STEP 2: CACHE (optional, lỗi chỉ log warning)
	if cfg.Redis.Enabled() {
		log.Println("🔴 Connecting to Redis...")
		rc := infraCache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := rc.Connect(ctx); err != nil {
			logger.Warn("Redis connection failed (non-critical), list cache disabled", err)
			_ = rc.Close()
		} else {
			c.Cache = rc
			c.ImageRepo = imageRepo.NewCachedRepository(c.ImageRepo, rc, cfg.Redis.CacheTTL)
			c.FeedbackRepo = feedbackRepo.NewCachedRepository(c.FeedbackRepo, rc, cfg.Redis.CacheTTL)
			log.Println("✅ Redis connected")
		}
	}

	// STEP 3: MEDIA UPLOADER
	log.Printf("☁️  Initializing %s uploader...", cfg.Media.Provider)
	uploader, err := storage.NewUploader(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to init media uploader: %w", err)
	}
	c.Uploader = uploader

	return nil
}

// initStore mở store theo STORE_DRIVER và tạo repositories tương ứng
func (c *Container) initStore(ctx context.Context) error {
	dbCfg := c.Config.Database

	switch dbCfg.Driver {
	case config.StoreDriverSQLite:
		db, err := database.OpenSQLite(dbCfg.ConnectionString())
		if err != nil {
			return fmt.Errorf("failed to open sqlite: %w", err)
		}
		c.Store = db
		c.ImageRepo = imageRepo.NewSQLiteRepository(db.DB)
		c.FeedbackRepo = feedbackRepo.NewSQLiteRepository(db.DB)
		c.AdminRepo = adminRepo.NewSQLiteRepository(db.DB)

	default:
		db := database.NewPostgresDB(&database.DBConfig{
			URL:            dbCfg.ConnectionString(),
			MaxConns:       dbCfg.MaxConns,
			MinConns:       dbCfg.MinConns,
			ConnectTimeout: dbCfg.ConnectTimeout,
		})
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.Store = db
		c.ImageRepo = imageRepo.NewPostgresRepository(db.Pool)
		c.FeedbackRepo = feedbackRepo.NewPostgresRepository(db.Pool)
		c.AdminRepo = adminRepo.NewPostgresRepository(db.Pool)
	}

	return nil
}

func (c *Container) initServices() {
	c.ImageService = imageService.NewImageService(c.ImageRepo, c.Uploader)
	c.FeedbackService = feedbackService.NewFeedbackService(c.FeedbackRepo)
	c.AdminService = adminService.NewAdminService(c.AdminRepo)
}

func (c *Container) initHandlers() {
	c.ImageHandler = imageHandler.NewImageHandler(c.ImageService)
	c.FeedbackHandler = feedbackHandler.NewFeedbackHandler(c.FeedbackService)
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService)
}

// ProvisionAdmin chạy admin provisioning với timeout riêng
func (c *Container) ProvisionAdmin(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	return c.AdminService.EnsureDefaultAdmin(ctx)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			logger.Error("Failed to close store", err)
		} else {
			log.Println("✅ Store closed")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		} else {
			log.Println("✅ Redis connections closed")
		}
	}

	if closer, ok := c.Uploader.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	log.Println("✅ Container cleanup completed")
}
