package usecase

import (
	"context"
	"fmt"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/pkg/utils"

	"github.com/google/uuid"
)

// In-memory repository fakes shared by the service tests.

type fakeIdentityRepo struct {
	identities map[string]*entity.Identity // keyed by email
	createErr  error
	findErr    error
	created    []*entity.Identity
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{identities: map[string]*entity.Identity{}}
}

func (f *fakeIdentityRepo) Create(ctx context.Context, identity *entity.Identity) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.identities[identity.Email] = identity
	f.created = append(f.created, identity)
	return nil
}

func (f *fakeIdentityRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, identity := range f.identities {
		if identity.ID == id {
			return identity, nil
		}
	}
	return nil, nil
}

func (f *fakeIdentityRepo) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.identities[email], nil
}

type fakeProfileRepo struct {
	profiles  map[uuid.UUID]*entity.Profile
	createErr error
	created   []*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]*entity.Profile{}}
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.profiles[profile.UserID] = profile
	f.created = append(f.created, profile)
	return nil
}

func (f *fakeProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return f.profiles[userID], nil
}

type fakeSessionRepo struct {
	sessions  map[string]*entity.Session
	createErr error
	revoked   []string
	revokeErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*entity.Session{}}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return f.sessions[token], nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	if f.revokeErr != nil {
		return f.revokeErr
	}
	f.revoked = append(f.revoked, token)
	return nil
}

type fakeProductRepo struct {
	products  []*entity.Product
	createErr error
	findErr   error
	updateErr error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	return &fakeProductRepo{products: products}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.products = append(f.products, product)
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID, status *entity.ProductStatus) (*entity.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, product := range f.products {
		if product.ID != id {
			continue
		}
		if status != nil && product.Status != *status {
			return nil, nil
		}
		return product, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context, status *entity.ProductStatus) ([]*entity.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var matched []*entity.Product
	for _, product := range f.products {
		if status != nil && product.Status != *status {
			continue
		}
		matched = append(matched, product)
	}
	return matched, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, existing := range f.products {
		if existing.ID == product.ID {
			f.products[i] = product
			return nil
		}
	}
	return fmt.Errorf("product %s not found", product.ID.String())
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, existing := range f.products {
		if existing.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product %s not found", id.String())
}

type fakeOrderRepo struct {
	orders  []*entity.Order
	findErr error
}

func (f *fakeOrderRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var matched []*entity.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			matched = append(matched, order)
		}
	}
	return matched, nil
}

func newTestRepo() (*repository.Repository, *fakeIdentityRepo, *fakeProfileRepo, *fakeSessionRepo) {
	identityRepo := newFakeIdentityRepo()
	profileRepo := newFakeProfileRepo()
	sessionRepo := newFakeSessionRepo()

	repo := &repository.Repository{
		Identity: identityRepo,
		Profile:  profileRepo,
		Session:  sessionRepo,
		Product:  newFakeProductRepo(),
		Order:    &fakeOrderRepo{},
	}
	return repo, identityRepo, profileRepo, sessionRepo
}

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{TTLHours: 24},
	}
}
