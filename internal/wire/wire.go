package wire

import (
	"Pulse/internal/api"
	"Pulse/internal/api/config"
	"Pulse/internal/api/handler"
	"Pulse/internal/job"
	"Pulse/internal/pkg/connector"
	"Pulse/internal/pkg/cron"
	"Pulse/internal/pkg/kafka"
	"Pulse/internal/pkg/thumbnail"
	"Pulse/internal/repository"
	"Pulse/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	contentRepo := repository.NewContentRepo(db)
	snapshotRepo := repository.NewSnapshotRepo(db)
	inputRepo := repository.NewInputRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	thumbnails := thumbnail.NewRegistry()
	connectors := connector.NewRegistry(connector.Config{
		YouTubeAPIKey:  cfg.Connector.YouTubeAPIKey,
		InstagramToken: cfg.Connector.InstagramToken,
		UserAgent:      cfg.Connector.UserAgent,
		EnableBrowser:  cfg.Connector.EnableBrowser,
	})

	snapshotJob := job.NewSnapshotJob(inputRepo, contentRepo, snapshotRepo, connectors, thumbnail.NewMirror())

	authService := service.NewAuthService(userRepo, roleRepo)
	contentService := service.NewContentService(contentRepo, thumbnails)
	dashboardService := service.NewDashboardService(contentRepo)
	sampleService := service.NewSampleService(snapshotRepo, contentRepo)
	inputService := service.NewInputService(inputRepo, snapshotJob)

	handlers := &api.HandlersGroup{
		AuthHandler:      handler.NewAuthHandler(authService),
		ContentHandler:   handler.NewContentHandler(contentService),
		DashboardHandler: handler.NewDashboardHandler(dashboardService),
		SampleHandler:    handler.NewSampleHandler(sampleService),
		InputHandler:     handler.NewInputHandler(inputService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(snapshotJob)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, snapshotRepo, contentRepo)
	if err != nil {
		return nil, err
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}
