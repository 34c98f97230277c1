package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/collegeerp/internal/app/models"
	"github.com/yigit/collegeerp/internal/app/models/dto"
	"github.com/yigit/collegeerp/internal/app/repositories"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
	"github.com/yigit/collegeerp/internal/pkg/validation"
)

// FeeService defines the fee operations
type FeeService interface {
	ListForStudent(ctx context.Context, studentID, caste string) ([]*models.Fee, error)
	MarkPaid(ctx context.Context, feeID string) (*models.Fee, error)
	Invoice(ctx context.Context, feeID string) (*dto.InvoiceResponse, error)
	CreateForAllCastes(ctx context.Context, studentID string, req *dto.CreateFeesForAllCastesRequest) ([]*models.Fee, error)
}

// FeeServiceConfig tunes fee handling
type FeeServiceConfig struct {
	// InvoiceBaseURL is used to build an invoice link for fees that carry none
	InvoiceBaseURL string
}

// feeServiceImpl implements FeeService
type feeServiceImpl struct {
	feeRepo repositories.IFeeRepository
	cfg     FeeServiceConfig
	logger  zerolog.Logger
}

// NewFeeService creates a new FeeService
func NewFeeService(feeRepo repositories.IFeeRepository, cfg FeeServiceConfig, logger zerolog.Logger) FeeService {
	return &feeServiceImpl{
		feeRepo: feeRepo,
		cfg:     cfg,
		logger:  logger,
	}
}

// ListForStudent returns the fees of a student, highest amount first
func (s *feeServiceImpl) ListForStudent(ctx context.Context, studentID, caste string) ([]*models.Fee, error) {
	if err := validation.ID("student id", studentID); err != nil {
		return nil, err
	}

	fees, err := s.feeRepo.ListByStudent(ctx, studentID, caste)
	if err != nil {
		return nil, fmt.Errorf("listing fees: %w", err)
	}
	return fees, nil
}

// MarkPaid sets a fee to paid
func (s *feeServiceImpl) MarkPaid(ctx context.Context, feeID string) (*models.Fee, error) {
	if err := validation.ID("fee id", feeID); err != nil {
		return nil, err
	}

	fee, err := s.feeRepo.UpdateStatus(ctx, feeID, models.FeePaid)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrFeeNotFound
		}
		return nil, fmt.Errorf("marking fee paid: %w", err)
	}
	return fee, nil
}

// Invoice returns the invoice link of a fee
func (s *feeServiceImpl) Invoice(ctx context.Context, feeID string) (*dto.InvoiceResponse, error) {
	if err := validation.ID("fee id", feeID); err != nil {
		return nil, err
	}

	fee, err := s.feeRepo.GetByID(ctx, feeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrFeeNotFound
		}
		return nil, fmt.Errorf("getting fee: %w", err)
	}

	url := fee.InvoiceURL
	if url == "" && s.cfg.InvoiceBaseURL != "" {
		url = strings.TrimRight(s.cfg.InvoiceBaseURL, "/") + "/" + fee.ID
	}
	return &dto.InvoiceResponse{InvoiceURL: url}, nil
}

// CreateForAllCastes creates one unpaid fee per caste tier in models.FeeCastes order.
// Missing amounts are 0. Inserts are sequential and not rolled back: on failure the
// records inserted so far stay.
func (s *feeServiceImpl) CreateForAllCastes(ctx context.Context, studentID string, req *dto.CreateFeesForAllCastesRequest) ([]*models.Fee, error) {
	if err := validation.ID("student id", studentID); err != nil {
		return nil, err
	}
	if req == nil || req.Semester < 1 {
		return nil, apperrors.NewValidationError("semester must be at least 1")
	}
	for caste, amount := range req.Amounts {
		if amount < 0 {
			return nil, apperrors.NewValidationError("amount for %s must not be negative", caste)
		}
	}

	fees := make([]*models.Fee, 0, len(models.FeeCastes))
	for _, caste := range models.FeeCastes {
		fee := &models.Fee{
			ID:        uuid.NewString(),
			StudentID: studentID,
			Semester:  req.Semester,
			Amount:    req.Amounts[caste],
			Status:    models.FeeUnpaid,
			Caste:     caste,
		}
		if err := s.feeRepo.Create(ctx, fee); err != nil {
			s.logger.Error().Err(err).
				Str("studentId", studentID).
				Str("caste", caste).
				Int("created", len(fees)).
				Msg("Creating caste fee failed")
			return nil, fmt.Errorf("creating %s fee: %w", caste, err)
		}
		fees = append(fees, fee)
	}
	return fees, nil
}
