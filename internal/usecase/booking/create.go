package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/cleankart/marketplace-api/internal/domain/booking"
	"github.com/cleankart/marketplace-api/internal/httperr"
	"github.com/cleankart/marketplace-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID uint

	VendorID  uint
	ServiceID uint

	SlotDate time.Time
	SlotTime string

	Address string
	Notes   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo domain.Repository
}

func NewCreateBooking(repo domain.Repository) *CreateBooking {
	return &CreateBooking{repo: repo}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Service not found")
		}
		return nil, err
	}

	vendor, err := uc.repo.GetVendor(ctx, in.VendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Vendor not found")
		}
		return nil, err
	}

	if !vendor.IsApproved() {
		return nil, httperr.BadRequest("Vendor is not approved")
	}

	// total_amount is snapshotted here; catalog price changes must not
	// retroactively reprice existing bookings.
	b := &models.Booking{
		UserID:      in.UserID,
		VendorID:    in.VendorID,
		ServiceID:   in.ServiceID,
		SlotDate:    in.SlotDate,
		SlotTime:    in.SlotTime,
		Address:     in.Address,
		Notes:       in.Notes,
		TotalAmount: svc.BasePrice,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
