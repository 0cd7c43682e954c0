package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oktarian/shopstock/config"
	"github.com/oktarian/shopstock/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	mongoDB     *mongo.Database
	redisClient *redis.Client
	auditPool   *pgxpool.Pool
	rabbitPub   *helpers.RabbitPublisher
	esClient    *elasticsearch.Client
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger { return logger }
func SetMongoDB(d *mongo.Database) { mongoDB = d }
func GetMongoDB() *mongo.Database { return mongoDB }
func SetRedis(r *redis.Client) { redisClient = r }
func GetRedis() *redis.Client { return redisClient }
func SetAuditPool(p *pgxpool.Pool) { auditPool = p }
func GetAuditPool() *pgxpool.Pool { return auditPool }

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher { return rabbitPub }
func SetES(c *elasticsearch.Client) { esClient = c }
func GetES() *elasticsearch.Client { return esClient }
