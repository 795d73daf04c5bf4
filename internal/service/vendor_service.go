package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/model"
	"chefos/backend/internal/repository"
)

// ── vendor business errors ──

var ErrVendorNotFound = errors.New("vendor not found")

// VendorService manages the supplier directory.
type VendorService interface {
	CreateVendor(ctx context.Context, orgID string, req *dto.CreateVendorRequest) (*dto.VendorResponse, error)
	GetVendor(ctx context.Context, orgID, id string) (*dto.VendorResponse, error)
	ListVendors(ctx context.Context, orgID string) ([]dto.VendorResponse, error)
	UpdateVendor(ctx context.Context, orgID, id string, req *dto.UpdateVendorRequest) (*dto.VendorResponse, error)
	DeleteVendor(ctx context.Context, orgID, id string) error
}

type vendorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewVendorService creates a VendorService.
func NewVendorService(repo *repository.Repository, logger *zap.Logger) VendorService {
	return &vendorService{repo: repo, logger: logger}
}

func (s *vendorService) CreateVendor(ctx context.Context, orgID string, req *dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	vendor := &model.Vendor{
		OrgID: orgID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := s.repo.Vendor.Create(ctx, vendor); err != nil {
		s.logger.Error("create vendor failed", zap.Error(err))
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

func (s *vendorService) GetVendor(ctx context.Context, orgID, id string) (*dto.VendorResponse, error) {
	vendor, err := s.getOrgVendor(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

func (s *vendorService) ListVendors(ctx context.Context, orgID string) ([]dto.VendorResponse, error) {
	vendors, err := s.repo.Vendor.List(ctx, orgID)
	if err != nil {
		s.logger.Error("list vendors failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.VendorResponse, 0, len(vendors))
	for i := range vendors {
		result = append(result, *toVendorResponse(&vendors[i]))
	}
	return result, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, orgID, id string, req *dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	vendor, err := s.getOrgVendor(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.Email != nil {
		vendor.Email = req.Email
	}
	if req.Phone != nil {
		vendor.Phone = req.Phone
	}

	if err := s.repo.Vendor.Update(ctx, vendor); err != nil {
		s.logger.Error("update vendor failed", zap.Error(err))
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

func (s *vendorService) DeleteVendor(ctx context.Context, orgID, id string) error {
	if _, err := s.getOrgVendor(ctx, orgID, id); err != nil {
		return err
	}
	return s.repo.Vendor.Delete(ctx, orgID, id)
}

func (s *vendorService) getOrgVendor(ctx context.Context, orgID, id string) (*model.Vendor, error) {
	vendor, err := s.repo.Vendor.GetByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		s.logger.Error("lookup vendor failed", zap.Error(err))
		return nil, err
	}
	return vendor, nil
}

func toVendorResponse(vendor *model.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:    vendor.VendorID,
		Name:  vendor.Name,
		Email: vendor.Email,
		Phone: vendor.Phone,
	}
}
