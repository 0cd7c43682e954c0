package application

import (
	"context"
	"errors"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oktarian/shopstock/internal/domain/entity"
	"github.com/oktarian/shopstock/internal/domain/repository"
	"github.com/oktarian/shopstock/pkg/events"
	"github.com/oktarian/shopstock/pkg/helpers"
)

var (
	// ErrInvalidInput rejects requests before they ever reach the store.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound reports a lookup that matched nothing. It is the normal
	// branch driver for create-vs-update, not a failure.
	ErrNotFound = errors.New("product not found")
)

// SessionContext carries the one piece of state an editing session holds
// between a Find and the following Save: the id of the last found record.
// It is passed explicitly by the caller so Save stays pure and testable.
type SessionContext struct {
	LastFoundID string
}

// SaveInput is the validated payload for a product save.
type SaveInput struct {
	Name     string
	Quantity int
	Price    float64
}

// ProductService implements the find-or-create upsert keyed by the
// normalized product name. Redis and the event publisher are optional; the
// service works against the bare repository when they are nil.
type ProductService struct {
	Repo     repository.ProductRepository
	Redis    *redis.Client
	Pub      *helpers.RabbitPublisher
	ES       *elasticsearch.Client
	ESIndex  string
	Logger   *logrus.Logger
	CacheTTL time.Duration
}

func NewProductService(repo repository.ProductRepository, rdb *redis.Client, pub *helpers.RabbitPublisher, es *elasticsearch.Client, esIndex string, logger *logrus.Logger, cacheTTL time.Duration) *ProductService {
	return &ProductService{Repo: repo, Redis: rdb, Pub: pub, ES: es, ESIndex: esIndex, Logger: logger, CacheTTL: cacheTTL}
}

func cacheKey(name string) string {
	return "product:name:" + name
}

// Find normalizes the name and returns the first matching record with its
// store-assigned id.
func (s *ProductService) Find(ctx context.Context, name string) (*entity.Product, error) {
	n := entity.NormalizeName(name)
	if n == "" {
		return nil, ErrInvalidInput
	}

	if s.Redis != nil {
		var cached entity.Product
		if hit, err := helpers.CacheGetJSON(ctx, s.Redis, cacheKey(n), &cached); err == nil && hit {
			return &cached, nil
		}
	}

	p, err := s.Repo.FindByName(ctx, n)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("name", n).Warn("product lookup failed")
		}
		return nil, ErrUnavailable
	}

	if s.Redis != nil {
		if err := helpers.CacheSetJSON(ctx, s.Redis, cacheKey(n), p, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("product cache set failed")
		}
	}
	return p, nil
}

// Save merge-upserts name, quantity and price. The target key is the id a
// prior Find resolved in this session, or the normalized name itself for
// first-time inserts, which makes the normalized name the canonical id.
// Calling Save twice with identical arguments and target key is a pure
// overwrite; concurrent saves resolve last-write-wins at the store.
func (s *ProductService) Save(ctx context.Context, in SaveInput, sess SessionContext) (*entity.Product, error) {
	n := entity.NormalizeName(in.Name)
	if n == "" || in.Quantity < 0 || in.Price < 0 {
		return nil, ErrInvalidInput
	}

	id := sess.LastFoundID
	if id == "" {
		id = n
	}

	p := &entity.Product{ID: id, Name: n, Quantity: in.Quantity, Price: in.Price}
	if err := s.Repo.Upsert(ctx, id, p); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("id", id).Warn("product upsert failed")
		}
		return nil, ErrUnavailable
	}

	if s.Redis != nil {
		if err := helpers.CacheDel(ctx, s.Redis, cacheKey(n)); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("product cache invalidation failed")
		}
	}

	s.publishUpserted(ctx, p)
	return p, nil
}

// publishUpserted emits a ProductUpserted event for the index worker.
// Best-effort: a broker outage never fails the save.
func (s *ProductService) publishUpserted(ctx context.Context, p *entity.Product) {
	if s.Pub == nil {
		return
	}
	evt := events.ProductUpserted{
		EventID:    uuid.NewString(),
		ProductID:  p.ID,
		Name:       p.Name,
		Quantity:   p.Quantity,
		Price:      p.Price,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.Pub.PublishJSON(ctx, evt); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("product_id", p.ID).Warn("event publish failed")
	}
}
