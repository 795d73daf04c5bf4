package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/matcher"
	"chefos/backend/internal/model"
	"chefos/backend/internal/repository"
)

// ── invoice business errors ──

var (
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvoiceLineNotFound = errors.New("invoice line not found")
)

// InvoiceService records supplier invoices and reconciles their free-text
// lines against the ingredient catalog.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, orgID string, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, orgID, id string) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, orgID string, page, pageSize int) ([]dto.InvoiceResponse, int64, error)
	MatchInvoiceLines(ctx context.Context, orgID, id string) ([]dto.LineMatchCandidatesResponse, error)
	ConfirmLineMatch(ctx context.Context, orgID, invoiceID, lineID, userID string, req *dto.ConfirmLineMatchRequest) (*dto.InvoiceResponse, error)
}

type invoiceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInvoiceService creates an InvoiceService.
func NewInvoiceService(repo *repository.Repository, logger *zap.Logger) InvoiceService {
	return &invoiceService{repo: repo, logger: logger}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, orgID string, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if _, err := s.repo.Vendor.GetByID(ctx, orgID, req.VendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}

	date, err := time.Parse(model.DateOnly, req.InvoiceDate)
	if err != nil {
		return nil, ErrBadDate
	}

	invoice := &model.Invoice{
		OrgID:         orgID,
		VendorID:      req.VendorID,
		InvoiceNumber: req.InvoiceNumber,
		InvoiceDate:   date,
		Total:         req.Total,
		Status:        model.InvoicePending,
	}
	lines := make([]model.InvoiceLine, 0, len(req.Lines))
	for i, lr := range req.Lines {
		lines = append(lines, model.InvoiceLine{
			RawText:   lr.RawText,
			Quantity:  lr.Quantity,
			Unit:      lr.Unit,
			UnitPrice: lr.UnitPrice,
			Position:  i,
		})
	}

	if err := s.repo.Invoice.Create(ctx, invoice, lines); err != nil {
		s.logger.Error("create invoice failed", zap.Error(err))
		return nil, err
	}
	return s.GetInvoice(ctx, orgID, invoice.InvoiceID)
}

func (s *invoiceService) GetInvoice(ctx context.Context, orgID, id string) (*dto.InvoiceResponse, error) {
	invoice, err := s.getOrgInvoice(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, orgID string, page, pageSize int) ([]dto.InvoiceResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	invoices, total, err := s.repo.Invoice.List(ctx, orgID, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("list invoices failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		result = append(result, *toInvoiceResponse(&invoices[i]))
	}
	return result, total, nil
}

// MatchInvoiceLines runs the matcher over every line's raw text, stores
// each line's best candidate, and returns the full ranked candidate
// lists for review. The invoice moves to matched once every line found
// at least one candidate.
func (s *invoiceService) MatchInvoiceLines(ctx context.Context, orgID, id string) ([]dto.LineMatchCandidatesResponse, error) {
	invoice, err := s.getOrgInvoice(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	ingredients, err := s.repo.Ingredient.List(ctx, orgID, "", "")
	if err != nil {
		s.logger.Error("load catalog for invoice matching failed", zap.Error(err))
		return nil, err
	}
	candidates := make([]matcher.Ingredient, 0, len(ingredients))
	for i := range ingredients {
		candidates = append(candidates, matcher.Ingredient{
			ID:   ingredients[i].IngredientID,
			Name: ingredients[i].Name,
		})
	}

	allMatched := true
	result := make([]dto.LineMatchCandidatesResponse, 0, len(invoice.Lines))
	for i := range invoice.Lines {
		line := &invoice.Lines[i]
		matches := matcher.FindSimilar(line.RawText, candidates, matcher.DefaultThreshold)

		lc := dto.LineMatchCandidatesResponse{
			LineID:     line.LineID,
			RawText:    line.RawText,
			Candidates: make([]dto.IngredientMatchResponse, 0, len(matches)),
		}
		for _, m := range matches {
			lc.Candidates = append(lc.Candidates, dto.IngredientMatchResponse{
				ID:         m.ID,
				Name:       m.Name,
				Similarity: m.Similarity,
				MatchType:  string(m.MatchType),
			})
		}
		result = append(result, lc)

		if len(matches) == 0 {
			allMatched = false
			continue
		}

		best := matches[0]
		mt := string(best.MatchType)
		line.MatchedIngredientID = &best.ID
		line.MatchSimilarity = &best.Similarity
		line.MatchType = &mt
		if err := s.repo.Invoice.UpdateLineMatch(ctx, line); err != nil {
			s.logger.Error("store line match failed", zap.Error(err))
			return nil, err
		}
	}

	if allMatched && invoice.Status == model.InvoicePending {
		if err := s.repo.Invoice.UpdateStatus(ctx, invoice.InvoiceID, model.InvoiceMatched); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ConfirmLineMatch pins a line to an ingredient, refreshes that
// ingredient's cost and unit from the invoice line, and books the
// delivered quantity as a received inventory adjustment.
func (s *invoiceService) ConfirmLineMatch(ctx context.Context, orgID, invoiceID, lineID, userID string, req *dto.ConfirmLineMatchRequest) (*dto.InvoiceResponse, error) {
	invoice, err := s.getOrgInvoice(ctx, orgID, invoiceID)
	if err != nil {
		return nil, err
	}

	line, err := s.repo.Invoice.GetLine(ctx, invoiceID, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceLineNotFound
		}
		return nil, err
	}

	ing, err := s.repo.Ingredient.GetByID(ctx, orgID, req.IngredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}

	sim := 1.0
	mt := string(matcher.MatchExact)
	line.MatchedIngredientID = &ing.IngredientID
	line.MatchSimilarity = &sim
	line.MatchType = &mt
	if err := s.repo.Invoice.UpdateLineMatch(ctx, line); err != nil {
		s.logger.Error("confirm line match failed", zap.Error(err))
		return nil, err
	}

	if line.UnitPrice > 0 {
		ing.CostPerUnit = line.UnitPrice
		if line.Unit != "" {
			ing.Unit = line.Unit
		}
		if err := s.repo.Ingredient.Update(ctx, ing); err != nil {
			s.logger.Error("update ingredient cost from invoice failed", zap.Error(err))
			return nil, err
		}
	}

	if line.Quantity > 0 {
		if err := s.receiveStock(ctx, orgID, ing, line, userID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Invoice.UpdateStatus(ctx, invoice.InvoiceID, model.InvoiceProcessed); err != nil {
		return nil, err
	}
	return s.GetInvoice(ctx, orgID, invoiceID)
}

// receiveStock books the delivered quantity onto the ingredient's stock
// record, creating it when absent.
func (s *invoiceService) receiveStock(ctx context.Context, orgID string, ing *model.Ingredient, line *model.InvoiceLine, userID string) error {
	item, err := s.repo.Inventory.GetByIngredient(ctx, orgID, ing.IngredientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		unit := line.Unit
		if unit == "" {
			unit = ing.Unit
		}
		item = &model.InventoryItem{
			OrgID:        orgID,
			IngredientID: ing.IngredientID,
			OnHand:       line.Quantity,
			Unit:         unit,
		}
		if err := s.repo.Inventory.Upsert(ctx, item); err != nil {
			return err
		}
		item, err = s.repo.Inventory.GetByIngredient(ctx, orgID, ing.IngredientID)
		if err != nil {
			return err
		}
	} else if err != nil {
		return err
	} else {
		item.OnHand += line.Quantity
		if err := s.repo.Inventory.UpdateVersioned(ctx, item); err != nil {
			return err
		}
	}

	note := "invoice " + line.InvoiceID
	return s.repo.Inventory.RecordAdjustment(ctx, &model.InventoryAdjustment{
		ItemID:     item.ItemID,
		Delta:      line.Quantity,
		Reason:     model.AdjustReceived,
		Note:       &note,
		AdjustedBy: userID,
	})
}

func (s *invoiceService) getOrgInvoice(ctx context.Context, orgID, id string) (*model.Invoice, error) {
	invoice, err := s.repo.Invoice.GetByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		s.logger.Error("lookup invoice failed", zap.Error(err))
		return nil, err
	}
	return invoice, nil
}

func toInvoiceResponse(invoice *model.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            invoice.InvoiceID,
		VendorID:      invoice.VendorID,
		InvoiceNumber: invoice.InvoiceNumber,
		InvoiceDate:   invoice.InvoiceDate.Format(model.DateOnly),
		Total:         invoice.Total,
		Status:        invoice.Status,
		Lines:         make([]dto.InvoiceLineResponse, 0, len(invoice.Lines)),
		CreatedAt:     invoice.CreatedAt.Format(time.RFC3339),
	}
	if invoice.Vendor != nil {
		resp.VendorName = invoice.Vendor.Name
	}
	for i := range invoice.Lines {
		line := &invoice.Lines[i]
		resp.Lines = append(resp.Lines, dto.InvoiceLineResponse{
			ID:                  line.LineID,
			RawText:             line.RawText,
			Quantity:            line.Quantity,
			Unit:                line.Unit,
			UnitPrice:           line.UnitPrice,
			MatchedIngredientID: line.MatchedIngredientID,
			MatchSimilarity:     line.MatchSimilarity,
			MatchType:           line.MatchType,
			Position:            line.Position,
		})
	}
	return resp
}
