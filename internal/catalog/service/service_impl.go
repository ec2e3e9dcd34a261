package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/catalog/internal/catalog/domain"
	"github.com/smallbiznis/catalog/internal/clock"
	"github.com/smallbiznis/catalog/internal/config"
	"github.com/smallbiznis/catalog/pkg/log/ctxlogger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
	Clock  clock.Clock
	Repo   domain.Repository
}

type Service struct {
	log          *zap.Logger
	clk          clock.Clock
	repo         domain.Repository
	defaultLimit int
}

func New(p Params) domain.Service {
	return &Service{
		log:          p.Log.Named("catalog.service"),
		clk:          p.Clock,
		repo:         p.Repo,
		defaultLimit: p.Config.DefaultPageLimit,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	if err := domain.ValidateCreate(req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(*req.Name)
	existingID, err := s.repo.FindIDByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existingID != "" {
		return nil, domain.NewConflictError(name, existingID)
	}

	p := domain.New(req, s.clk.Now())
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}

	ctxlogger.WithContext(ctx, s.log).Info("product created",
		zap.String("product_id", p.ID),
		zap.String("product_name", p.Name),
	)
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	if err := domain.ValidateProductID(id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateProductRequest) (*domain.Product, error) {
	return s.apply(ctx, id, req, false)
}

func (s *Service) Patch(ctx context.Context, id string, req domain.UpdateProductRequest) (*domain.Product, error) {
	return s.apply(ctx, id, req, true)
}

// apply is the shared full-update and partial-patch path; the full update
// only differs in requiring every field to be present.
func (s *Service) apply(ctx context.Context, id string, req domain.UpdateProductRequest, partial bool) (*domain.Product, error) {
	if err := domain.ValidateProductID(id); err != nil {
		return nil, err
	}
	if err := domain.ValidateUpdate(req, partial); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousName := existing.Name
	if req.Name != nil {
		// Updating to the product's own current name is not a conflict.
		newName := strings.TrimSpace(*req.Name)
		if newName != existing.Name {
			otherID, err := s.repo.FindIDByName(ctx, newName)
			if err != nil {
				return nil, err
			}
			if otherID != "" && otherID != id {
				return nil, domain.NewConflictError(newName, otherID)
			}
		}
	}

	existing.Apply(req, s.clk.Now())
	if err := s.repo.Save(ctx, existing, previousName); err != nil {
		return nil, err
	}

	ctxlogger.WithContext(ctx, s.log).Info("product updated",
		zap.String("product_id", existing.ID),
		zap.String("product_name", existing.Name),
		zap.Bool("partial", partial),
	)
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateProductID(id); err != nil {
		return err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, existing); err != nil {
		return err
	}

	ctxlogger.WithContext(ctx, s.log).Info("product deleted",
		zap.String("product_id", existing.ID),
		zap.String("product_name", existing.Name),
	)
	return nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (*domain.ProductPage, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Limit == 0 {
		req.Limit = s.defaultLimit
	}
	if err := domain.ValidateList(req); err != nil {
		return nil, err
	}

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := all[:0:0]
	for i := range all {
		if req.Filters.Matches(&all[i]) {
			filtered = append(filtered, all[i])
		}
	}

	total := len(filtered)
	totalPages := (total + req.Limit - 1) / req.Limit
	start := (req.Page - 1) * req.Limit
	end := start + req.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := filtered[start:end]
	if items == nil {
		items = []domain.Product{}
	}

	return &domain.ProductPage{
		Items: items,
		Pagination: domain.PageMeta{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
		Filters: req.Filters,
	}, nil
}

func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Stats{
		TotalProducts: count,
		Timestamp:     s.clk.Now(),
	}, nil
}

func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	ctxlogger.WithContext(ctx, s.log).Info("catalog cleared")
	return nil
}
