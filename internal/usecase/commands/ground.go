package commands

import (
	"context"

	"turfbook/internal/domain/ground"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/queries"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrGroundNameTaken = errs.New("ground name already in use")

type CreateGroundRequest struct {
	Name           string
	City           string
	BasePriceCents int64
	OpenTime       string
	CloseTime      string
}

type GroundCommands interface {
	CreateGround(ctx context.Context, req CreateGroundRequest, ownerID uuid.UUID) (*queries.GroundView, error)
}

type groundUseCaseImpl struct {
	uow           shared.UnitOfWork
	groundQueries queries.GroundQueries
}

func NewGroundUseCase(uow shared.UnitOfWork, groundQueries queries.GroundQueries) GroundCommands {
	return &groundUseCaseImpl{uow: uow, groundQueries: groundQueries}
}

// CreateGround onboards a ground under the acting admin. The unique index
// on the ground name decides ties between concurrent onboardings.
func (uc *groundUseCaseImpl) CreateGround(ctx context.Context, req CreateGroundRequest, ownerID uuid.UUID) (*queries.GroundView, error) {
	hours, err := ground.NewOperatingHours(req.OpenTime, req.CloseTime)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := ground.NewGround(req.Name, ownerID, req.City, req.BasePriceCents, hours)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var groundID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Grounds().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			return txErr
		}
		groundID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrGroundNameTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := uc.groundQueries.GetByID(ctx, groundID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
