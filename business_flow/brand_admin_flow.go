package businessflow

import (
	"bytes"
	"context"
	"image"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	// Register decoders for logo validation
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/google/uuid"
	"github.com/hye2gold/Salendar/app/dto"
	"github.com/hye2gold/Salendar/app/services"
	"github.com/hye2gold/Salendar/models"
	"github.com/hye2gold/Salendar/repository"
	"github.com/hye2gold/Salendar/utils"
	"gorm.io/gorm"
)

// maxLogoBytes bounds uploaded logo size
const maxLogoBytes = 5 * 1024 * 1024

// LogoUpload carries a logo file lifted out of a multipart request
type LogoUpload struct {
	Filename    string
	Data        []byte
	ContentType string
}

// AdminBrandFlow covers the dashboard's brand management operations
type AdminBrandFlow interface {
	ListBrands(ctx context.Context) (*dto.AdminBrandListResponse, error)
	BrandDetail(ctx context.Context, brandUUID string) (*dto.AdminBrandDetailResponse, error)
	CreateBrand(ctx context.Context, req *dto.CreateBrandRequest, logo *LogoUpload) (*dto.BrandDTO, error)
	UpdateBrand(ctx context.Context, brandUUID string, req *dto.UpdateBrandRequest, logo *LogoUpload) (*dto.BrandDTO, error)
	DeleteBrand(ctx context.Context, brandUUID string) error
}

type AdminBrandFlowImpl struct {
	brandRepo    repository.BrandRepository
	eventRepo    repository.EventRepository
	favoriteRepo repository.FavoriteRepository
	storage      services.ObjectStorage
	cache        *EventCache
	db           *gorm.DB
}

func NewAdminBrandFlow(
	brandRepo repository.BrandRepository,
	eventRepo repository.EventRepository,
	favoriteRepo repository.FavoriteRepository,
	storage services.ObjectStorage,
	cache *EventCache,
	db *gorm.DB,
) AdminBrandFlow {
	return &AdminBrandFlowImpl{
		brandRepo:    brandRepo,
		eventRepo:    eventRepo,
		favoriteRepo: favoriteRepo,
		storage:      storage,
		cache:        cache,
		db:           db,
	}
}

func (f *AdminBrandFlowImpl) ListBrands(ctx context.Context) (*dto.AdminBrandListResponse, error) {
	brands, err := f.brandRepo.ListAll(ctx)
	if err != nil {
		return nil, NewBusinessError("FETCH_BRANDS_FAILED", "Failed to fetch brands", err)
	}

	items := make([]dto.AdminBrandDTO, 0, len(brands))
	for _, b := range brands {
		events, err := f.eventRepo.ListByBrandID(ctx, b.ID)
		if err != nil {
			return nil, NewBusinessError("FETCH_EVENTS_FAILED", "Failed to fetch brand events", err)
		}
		favorites, err := f.favoriteRepo.ListByBrandID(ctx, b.ID)
		if err != nil {
			return nil, NewBusinessError("FETCH_FAVORITES_FAILED", "Failed to fetch brand favorites", err)
		}
		items = append(items, dto.AdminBrandDTO{
			BrandDTO:      ToBrandDTO(*b),
			EventCount:    int64(len(events)),
			FavoriteCount: int64(len(favorites)),
		})
	}

	return &dto.AdminBrandListResponse{Brands: items, Total: len(items)}, nil
}

func (f *AdminBrandFlowImpl) BrandDetail(ctx context.Context, brandUUID string) (*dto.AdminBrandDetailResponse, error) {
	brand, err := f.findBrand(ctx, brandUUID)
	if err != nil {
		return nil, err
	}

	events, err := f.eventRepo.ListByBrandID(ctx, brand.ID)
	if err != nil {
		return nil, NewBusinessError("FETCH_EVENTS_FAILED", "Failed to fetch brand events", err)
	}
	eventDTOs := make([]dto.AdminEventDTO, 0, len(events))
	for _, e := range events {
		eventDTOs = append(eventDTOs, ToAdminEventDTO(*e, *brand))
	}

	favorites, err := f.favoriteRepo.ListByBrandID(ctx, brand.ID)
	if err != nil {
		return nil, NewBusinessError("FETCH_FAVORITES_FAILED", "Failed to fetch brand favorites", err)
	}
	userIDs := make([]uuid.UUID, 0, len(favorites))
	for _, fav := range favorites {
		userIDs = append(userIDs, fav.UserID)
	}
	names, err := f.favoriteRepo.DisplayNamesByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, NewBusinessError("FETCH_PROFILES_FAILED", "Failed to fetch user profiles", err)
	}
	favoriteDTOs := make([]dto.FavoriteDTO, 0, len(favorites))
	for _, fav := range favorites {
		favoriteDTOs = append(favoriteDTOs, dto.FavoriteDTO{
			UserID:      fav.UserID.String(),
			DisplayName: names[fav.UserID],
			CreatedAt:   fav.CreatedAt.Format(time.RFC3339),
		})
	}

	return &dto.AdminBrandDetailResponse{
		Brand:     ToBrandDTO(*brand),
		Events:    eventDTOs,
		Favorites: favoriteDTOs,
	}, nil
}

func (f *AdminBrandFlowImpl) CreateBrand(ctx context.Context, req *dto.CreateBrandRequest, logo *LogoUpload) (*dto.BrandDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewBusinessError("VALIDATION_ERROR", "brand name is required", ErrBrandNameRequired)
	}
	category, ok := models.ParseCategory(req.Category)
	if !ok {
		return nil, NewBusinessErrorf("VALIDATION_ERROR", "brand category %q is invalid", ErrBrandCategoryInvalid, req.Category)
	}

	existing, err := f.brandRepo.ByFilter(ctx, models.BrandFilter{Name: &name}, "", 1, 0)
	if err != nil {
		return nil, NewBusinessError("FETCH_BRANDS_FAILED", "Failed to check brand name", err)
	}
	if len(existing) > 0 {
		return nil, NewBusinessErrorf("BRAND_NAME_TAKEN", "brand %q already exists", ErrBrandNameTaken, name)
	}

	var logoURL *string
	if logo != nil {
		url, err := f.uploadLogo(ctx, logo)
		if err != nil {
			return nil, err
		}
		logoURL = &url
	}

	brand := &models.Brand{
		UUID:        uuid.New(),
		Name:        name,
		Category:    category.String(),
		LogoURL:     logoURL,
		OfficialURL: req.OfficialURL,
		IsActive:    req.IsActive,
		CreatedAt:   utils.UTCNow(),
		UpdatedAt:   utils.UTCNow(),
	}
	if brand.IsActive == nil {
		brand.IsActive = utils.ToPtr(true)
	}

	if err := f.brandRepo.Save(ctx, brand); err != nil {
		return nil, NewBusinessError("CREATE_BRAND_FAILED", "Failed to create brand", err)
	}

	f.cache.Invalidate(ctx)

	result := ToBrandDTO(*brand)
	return &result, nil
}

func (f *AdminBrandFlowImpl) UpdateBrand(ctx context.Context, brandUUID string, req *dto.UpdateBrandRequest, logo *LogoUpload) (*dto.BrandDTO, error) {
	brand, err := f.findBrand(ctx, brandUUID)
	if err != nil {
		return nil, err
	}

	if req.Name == nil && req.Category == nil && req.OfficialURL == nil && req.IsActive == nil && logo == nil {
		return nil, NewBusinessError("VALIDATION_ERROR", "at least one field must be provided for update", ErrBrandUpdateRequired)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewBusinessError("VALIDATION_ERROR", "brand name is required", ErrBrandNameRequired)
		}
		if name != brand.Name {
			existing, err := f.brandRepo.ByFilter(ctx, models.BrandFilter{Name: &name}, "", 1, 0)
			if err != nil {
				return nil, NewBusinessError("FETCH_BRANDS_FAILED", "Failed to check brand name", err)
			}
			if len(existing) > 0 {
				return nil, NewBusinessErrorf("BRAND_NAME_TAKEN", "brand %q already exists", ErrBrandNameTaken, name)
			}
		}
		brand.Name = name
	}
	if req.Category != nil {
		category, ok := models.ParseCategory(*req.Category)
		if !ok {
			return nil, NewBusinessErrorf("VALIDATION_ERROR", "brand category %q is invalid", ErrBrandCategoryInvalid, *req.Category)
		}
		brand.Category = category.String()
	}
	if req.OfficialURL != nil {
		brand.OfficialURL = req.OfficialURL
	}
	if req.IsActive != nil {
		brand.IsActive = req.IsActive
	}

	// Logo is replaced only when a new file is sent
	if logo != nil {
		url, err := f.uploadLogo(ctx, logo)
		if err != nil {
			return nil, err
		}
		brand.LogoURL = &url
	}

	if err := f.brandRepo.Update(ctx, *brand); err != nil {
		return nil, NewBusinessError("UPDATE_BRAND_FAILED", "Failed to update brand", err)
	}

	f.cache.Invalidate(ctx)

	updated, err := f.brandRepo.ByID(ctx, brand.ID)
	if err != nil || updated == nil {
		result := ToBrandDTO(*brand)
		return &result, nil
	}
	result := ToBrandDTO(*updated)
	return &result, nil
}

// DeleteBrand removes a brand and its events atomically. The FK already
// cascades at DB level; the explicit delete keeps the behavior identical
// on schemas migrated without the constraint.
func (f *AdminBrandFlowImpl) DeleteBrand(ctx context.Context, brandUUID string) error {
	brand, err := f.findBrand(ctx, brandUUID)
	if err != nil {
		return err
	}

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.eventRepo.DeleteByBrandID(txCtx, brand.ID); err != nil {
			return err
		}
		return f.brandRepo.Delete(txCtx, brand.ID)
	})
	if err != nil {
		return NewBusinessError("DELETE_BRAND_FAILED", "Failed to delete brand", err)
	}

	f.cache.Invalidate(ctx)

	return nil
}

func (f *AdminBrandFlowImpl) findBrand(ctx context.Context, brandUUID string) (*models.Brand, error) {
	if strings.TrimSpace(brandUUID) == "" {
		return nil, NewBusinessError("VALIDATION_ERROR", "brand UUID is required", ErrBrandUUIDRequired)
	}
	brand, err := f.brandRepo.ByUUID(ctx, brandUUID)
	if err != nil {
		return nil, NewBusinessError("FETCH_BRANDS_FAILED", "Failed to fetch brand", err)
	}
	if brand == nil {
		return nil, NewBusinessErrorf("BRAND_NOT_FOUND", "brand %s not found", ErrBrandNotFound, brandUUID)
	}
	return brand, nil
}

// uploadLogo validates the payload decodes as an image, makes sure the
// bucket exists, and upserts the object, returning its public URL.
func (f *AdminBrandFlowImpl) uploadLogo(ctx context.Context, logo *LogoUpload) (string, error) {
	if f.storage == nil {
		return "", NewBusinessError("STORAGE_NOT_CONFIGURED", "object storage is not configured", ErrStorageNotConfigured)
	}
	if len(logo.Data) == 0 {
		return "", NewBusinessError("VALIDATION_ERROR", "logo file is empty", ErrLogoFileEmpty)
	}
	if len(logo.Data) > maxLogoBytes {
		return "", NewBusinessError("VALIDATION_ERROR", "logo file is too large", ErrLogoFileTooLarge)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(logo.Data)); err != nil {
		return "", NewBusinessError("VALIDATION_ERROR", "logo file is not a valid image", ErrLogoNotAnImage)
	}

	if _, err := f.storage.EnsureBucket(ctx); err != nil {
		return "", NewBusinessError("STORAGE_BUCKET_FAILED", "Failed to ensure logo bucket", err)
	}

	contentType := logo.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(logo.Data)
	}

	objectPath := services.LogoObjectPath(filepath.Base(logo.Filename))
	if err := f.storage.Upload(ctx, objectPath, logo.Data, contentType); err != nil {
		return "", NewBusinessError("STORAGE_UPLOAD_FAILED", "Failed to upload logo", err)
	}

	return f.storage.PublicURL(objectPath), nil
}
