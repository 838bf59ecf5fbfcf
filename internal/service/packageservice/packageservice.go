package packageservice

import (
	"context"
	"errors"

	"github.com/dnochieng/mvest/internal/domain"
	"go.uber.org/zap"
)

var ErrPackageNotFound = errors.New("package not found")

type PackageRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Package, error)
	Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	Update(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	Delete(ctx context.Context, id int) error
	ListActive(ctx context.Context) ([]domain.Package, error)
	ListAll(ctx context.Context) ([]domain.Package, error)
}

// Cache holds the active catalog; a nil Cache disables caching.
type Cache interface {
	GetActive(ctx context.Context) ([]domain.Package, bool)
	SetActive(ctx context.Context, packages []domain.Package)
	Invalidate(ctx context.Context)
}

type Service struct {
	packageRepo PackageRepo
	cache       Cache
}

func New(packageRepo PackageRepo, cache Cache) *Service {
	return &Service{
		packageRepo: packageRepo,
		cache:       cache,
	}
}

// ListActive returns the purchasable catalog, cheapest first.
func (s *Service) ListActive(ctx context.Context) ([]domain.Package, error) {
	if s.cache != nil {
		if packages, ok := s.cache.GetActive(ctx); ok {
			return packages, nil
		}
	}

	packages, err := s.packageRepo.ListActive(ctx)
	if err != nil {
		zap.L().Error("failed to list active packages", zap.Error(err))
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetActive(ctx, packages)
	}
	return packages, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Package, error) {
	packages, err := s.packageRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to list packages", zap.Error(err))
		return nil, err
	}
	return packages, nil
}

func (s *Service) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	created, err := s.packageRepo.Create(ctx, pkg)
	if err != nil {
		zap.L().Error("failed to create package", zap.Error(err))
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	existing, err := s.packageRepo.GetByID(ctx, pkg.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPackageNotFound
	}

	updated, err := s.packageRepo.Update(ctx, pkg)
	if err != nil {
		zap.L().Error("failed to update package", zap.Error(err))
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	existing, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPackageNotFound
	}

	if err := s.packageRepo.Delete(ctx, id); err != nil {
		zap.L().Error("failed to delete package", zap.Error(err))
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return nil
}
