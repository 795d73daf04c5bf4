package repository

import (
	"context"

	"gorm.io/gorm"

	"chefos/backend/internal/model"
)

// InvoiceRepository is the invoices data-access interface.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice, lines []model.InvoiceLine) error
	GetByID(ctx context.Context, orgID, id string) (*model.Invoice, error)
	List(ctx context.Context, orgID string, offset, limit int) ([]model.Invoice, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
	GetLine(ctx context.Context, invoiceID, lineID string) (*model.InvoiceLine, error)
	UpdateLineMatch(ctx context.Context, line *model.InvoiceLine) error
}

type invoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, invoice *model.Invoice, lines []model.InvoiceLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].InvoiceID = invoice.InvoiceID
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *invoiceRepo) GetByID(ctx context.Context, orgID, id string) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("org_id = ? AND invoice_id = ?", orgID, id).
		First(&invoice).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepo) List(ctx context.Context, orgID string, offset, limit int) ([]model.Invoice, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Invoice{}).
		Where("org_id = ?", orgID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []model.Invoice
	err := q.Preload("Vendor").
		Order("invoice_date DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Invoice{}).
		Where("invoice_id = ?", id).
		Update("status", status).Error
}

func (r *invoiceRepo) GetLine(ctx context.Context, invoiceID, lineID string) (*model.InvoiceLine, error) {
	var line model.InvoiceLine
	err := r.db.WithContext(ctx).
		Where("invoice_id = ? AND line_id = ?", invoiceID, lineID).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *invoiceRepo) UpdateLineMatch(ctx context.Context, line *model.InvoiceLine) error {
	return r.db.WithContext(ctx).
		Model(&model.InvoiceLine{}).
		Where("line_id = ?", line.LineID).
		Updates(map[string]interface{}{
			"matched_ingredient_id": line.MatchedIngredientID,
			"match_similarity":      line.MatchSimilarity,
			"match_type":            line.MatchType,
		}).Error
}
