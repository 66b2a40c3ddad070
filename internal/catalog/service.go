package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourbrand/tours-backend/pkg/db/models"
	pkgerrors "github.com/yourbrand/tours-backend/pkg/errors"
)

type catalogRepository interface {
	ListDestinations(ctx context.Context) ([]models.Destination, error)
	FindDestinationByID(ctx context.Context, id uuid.UUID) (*models.Destination, error)
	FindActivityByID(ctx context.Context, id uuid.UUID) (*models.Activity, error)
}

// Service exposes public catalog reads.
type Service interface {
	ListDestinations(ctx context.Context) ([]DestinationDTO, error)
	GetDestination(ctx context.Context, id uuid.UUID) (*DestinationDTO, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*ActivityDTO, error)
}

type service struct {
	repo catalogRepository
}

// NewService builds a catalog service with the provided repository.
func NewService(repo catalogRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListDestinations(ctx context.Context) ([]DestinationDTO, error) {
	destinations, err := s.repo.ListDestinations(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list destinations")
	}

	dtos := make([]DestinationDTO, 0, len(destinations))
	for i := range destinations {
		dtos = append(dtos, *DestinationFromModel(&destinations[i]))
	}
	return dtos, nil
}

func (s *service) GetDestination(ctx context.Context, id uuid.UUID) (*DestinationDTO, error) {
	destination, err := s.repo.FindDestinationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "destination not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load destination")
	}
	return DestinationFromModel(destination), nil
}

func (s *service) GetActivity(ctx context.Context, id uuid.UUID) (*ActivityDTO, error) {
	activity, err := s.repo.FindActivityByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "activity not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load activity")
	}
	return ActivityFromModel(activity), nil
}
