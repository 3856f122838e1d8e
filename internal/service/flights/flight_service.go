package flights

import (
	"context"

	"github.com/sgulyaev/aviatickets/internal/domain"
	"github.com/sgulyaev/aviatickets/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context, page, size int) (*domain.FlightPage, error)
	GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error)
}

type FlightService struct {
	repo        repository.FlightRepository
	defaultSize int
	maxSize     int
}

func NewFlightService(repo repository.FlightRepository, defaultSize, maxSize int) *FlightService {
	return &FlightService{repo: repo, defaultSize: defaultSize, maxSize: maxSize}
}

func (s *FlightService) List(ctx context.Context, page, size int) (*domain.FlightPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = s.defaultSize
	}
	if size > s.maxSize {
		size = s.maxSize
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, size, (page-1)*size)
	if err != nil {
		return nil, err
	}

	return &domain.FlightPage{
		Page:          page,
		PageSize:      size,
		TotalElements: total,
		Items:         items,
	}, nil
}

func (s *FlightService) GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error) {
	return s.repo.GetByNumber(ctx, flightNumber)
}

var _ FlightUseCase = (*FlightService)(nil)
