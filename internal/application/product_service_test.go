package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oktarian/shopstock/internal/domain/entity"
	"github.com/oktarian/shopstock/internal/domain/repository"
)

type fakeProductRepo struct {
	docs      map[string]entity.Product // keyed by id
	findErr   error
	upsertErr error
	upserts   int
}

func (f *fakeProductRepo) FindByName(_ context.Context, name string) (*entity.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, p := range f.docs {
		if p.Name == name {
			found := p
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProductRepo) Upsert(_ context.Context, id string, p *entity.Product) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts++
	f.docs[id] = entity.Product{ID: id, Name: p.Name, Quantity: p.Quantity, Price: p.Price}
	return nil
}

func newProductFixture(seed ...entity.Product) (*ProductService, *fakeProductRepo) {
	repo := &fakeProductRepo{docs: map[string]entity.Product{}}
	for _, p := range seed {
		repo.docs[p.ID] = p
	}
	return NewProductService(repo, nil, nil, nil, "", nil, 0), repo
}

func TestFindNormalizesName(t *testing.T) {
	svc, _ := newProductFixture(entity.Product{ID: "apple", Name: "apple", Quantity: 10, Price: 1.50})

	for _, in := range []string{"apple", "Apple", "APPLE", " Apple "} {
		p, err := svc.Find(context.Background(), in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, "apple", p.ID)
		assert.Equal(t, 10, p.Quantity)
	}
}

func TestFindEmptyName(t *testing.T) {
	svc, _ := newProductFixture()

	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := svc.Find(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", in)
	}
}

func TestFindNotFound(t *testing.T) {
	svc, _ := newProductFixture()

	_, err := svc.Find(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindBackendFailure(t *testing.T) {
	svc, repo := newProductFixture()
	repo.findErr = errors.New("no reachable servers")

	_, err := svc.Find(context.Background(), "apple")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSaveCreatesWithNormalizedNameAsID(t *testing.T) {
	svc, repo := newProductFixture()

	p, err := svc.Save(context.Background(), SaveInput{Name: "Apple", Quantity: 10, Price: 1.50}, SessionContext{})
	require.NoError(t, err)
	assert.Equal(t, "apple", p.ID)
	assert.Equal(t, "apple", p.Name)
	assert.Equal(t, 10, p.Quantity)
	assert.Equal(t, 1.50, p.Price)

	stored, ok := repo.docs["apple"]
	require.True(t, ok)
	assert.Equal(t, *p, stored)
}

func TestSavePreservesFoundID(t *testing.T) {
	// A legacy record whose id differs from its name must keep its id
	// across edits.
	svc, repo := newProductFixture(entity.Product{ID: "legacy-123", Name: "apple", Quantity: 10, Price: 1.50})

	found, err := svc.Find(context.Background(), "Apple")
	require.NoError(t, err)
	assert.Equal(t, "legacy-123", found.ID)

	p, err := svc.Save(context.Background(), SaveInput{Name: "apple", Quantity: 5, Price: 1.75}, SessionContext{LastFoundID: found.ID})
	require.NoError(t, err)
	assert.Equal(t, "legacy-123", p.ID)

	assert.Len(t, repo.docs, 1, "update must not create a second record")
	assert.Equal(t, 5, repo.docs["legacy-123"].Quantity)
	assert.Equal(t, 1.75, repo.docs["legacy-123"].Price)
}

func TestSaveCreateThenUpdate(t *testing.T) {
	svc, repo := newProductFixture()

	created, err := svc.Save(context.Background(), SaveInput{Name: "Apple", Quantity: 10, Price: 1.50}, SessionContext{})
	require.NoError(t, err)

	found, err := svc.Find(context.Background(), "apple")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	updated, err := svc.Save(context.Background(), SaveInput{Name: "apple", Quantity: 5, Price: 1.75}, SessionContext{LastFoundID: found.ID})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Len(t, repo.docs, 1)
}

func TestSaveZeroValuesAreValid(t *testing.T) {
	svc, _ := newProductFixture()

	p, err := svc.Save(context.Background(), SaveInput{Name: "water", Quantity: 0, Price: 0}, SessionContext{})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Quantity)
	assert.Equal(t, 0.0, p.Price)
}

func TestSaveRejectsNegativeValues(t *testing.T) {
	svc, repo := newProductFixture()

	_, err := svc.Save(context.Background(), SaveInput{Name: "apple", Quantity: -1, Price: 1}, SessionContext{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Save(context.Background(), SaveInput{Name: "apple", Quantity: 1, Price: -0.01}, SessionContext{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, repo.upserts, "invalid input must never reach the store")
}

func TestSaveRejectsEmptyName(t *testing.T) {
	svc, _ := newProductFixture()

	_, err := svc.Save(context.Background(), SaveInput{Name: "   ", Quantity: 1, Price: 1}, SessionContext{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSaveIdempotent(t *testing.T) {
	svc, repo := newProductFixture()
	in := SaveInput{Name: "apple", Quantity: 10, Price: 1.50}

	_, err := svc.Save(context.Background(), in, SessionContext{})
	require.NoError(t, err)
	after1 := repo.docs["apple"]

	_, err = svc.Save(context.Background(), in, SessionContext{})
	require.NoError(t, err)
	after2 := repo.docs["apple"]

	assert.Equal(t, after1, after2)
	assert.Len(t, repo.docs, 1)
}

func TestSaveBackendFailure(t *testing.T) {
	svc, repo := newProductFixture()
	repo.upsertErr = errors.New("write concern timeout")

	_, err := svc.Save(context.Background(), SaveInput{Name: "apple", Quantity: 1, Price: 1}, SessionContext{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSearchProductsWithoutESReturnsEmpty(t *testing.T) {
	svc, _ := newProductFixture()

	hits, err := svc.SearchProducts(context.Background(), "apple", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
