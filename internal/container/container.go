package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/vaanicall/vaani-backend/config"
	"github.com/vaanicall/vaani-backend/internal/domain/repository"
	"github.com/vaanicall/vaani-backend/internal/navigation"
	"github.com/vaanicall/vaani-backend/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client

	profileStore repository.ProfileStore
	walletRepo   repository.WalletRepository
	navManager   *navigation.Manager
	reviewPub    *helpers.RabbitPublisher
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }

func SetProfileStore(s repository.ProfileStore)   { profileStore = s }
func GetProfileStore() repository.ProfileStore    { return profileStore }
func SetWalletRepo(r repository.WalletRepository) { walletRepo = r }
func GetWalletRepo() repository.WalletRepository  { return walletRepo }

func SetNavManager(m *navigation.Manager) { navManager = m }
func GetNavManager() *navigation.Manager {
	if navManager == nil {
		navManager = navigation.NewManager()
	}
	return navManager
}

func SetReviewPub(p *helpers.RabbitPublisher) { reviewPub = p }
func GetReviewPub() *helpers.RabbitPublisher  { return reviewPub }
