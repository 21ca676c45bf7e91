package businessflow

import (
	"context"

	"github.com/hye2gold/Salendar/app/dto"
	"github.com/hye2gold/Salendar/repository"
)

// BrandFlow serves the public brand directory
type BrandFlow interface {
	ListActiveBrands(ctx context.Context) (*dto.BrandListResponse, error)
}

type BrandFlowImpl struct {
	brandRepo repository.BrandRepository
}

func NewBrandFlow(brandRepo repository.BrandRepository) BrandFlow {
	return &BrandFlowImpl{brandRepo: brandRepo}
}

func (f *BrandFlowImpl) ListActiveBrands(ctx context.Context) (*dto.BrandListResponse, error) {
	brands, err := f.brandRepo.ListActive(ctx)
	if err != nil {
		return nil, NewBusinessError("FETCH_BRANDS_FAILED", "Failed to fetch brands", err)
	}

	items := make([]dto.BrandDTO, 0, len(brands))
	for _, b := range brands {
		items = append(items, ToBrandDTO(*b))
	}

	return &dto.BrandListResponse{
		Brands: items,
		Total:  len(items),
	}, nil
}
