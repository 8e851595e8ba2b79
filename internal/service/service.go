package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/ipsqr/internal/entity"
	"github.com/samandr77/ipsqr/internal/ips"
	"github.com/samandr77/ipsqr/pkg/broker"
	"github.com/samandr77/ipsqr/pkg/logger"
	"github.com/samandr77/ipsqr/pkg/qrimage"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateSlip(ctx context.Context, slip entity.SharedSlip) error
	Slip(ctx context.Context, id uuid.UUID, now time.Time) (entity.SharedSlip, error)
	Slips(ctx context.Context, now time.Time, filter entity.SlipFilter) ([]entity.SharedSlip, int, error)
	DeleteExpiredSlips(ctx context.Context, now time.Time) (int64, error)
}

type Producer interface {
	SendSlipShared(ctx context.Context, event broker.SlipSharedEvent)
}

type Options struct {
	SlipTTL       time.Duration
	PublicBaseURL string
	QRSize        int
}

type Service struct {
	repo     Repository
	producer Producer
	opts     Options
	now      func() time.Time
}

func New(repo Repository, producer Producer, opts Options) *Service {
	if opts.SlipTTL <= 0 {
		opts.SlipTTL = entity.DefaultSlipTTL
	}

	if opts.QRSize <= 0 {
		opts.QRSize = qrimage.DefaultSize
	}

	opts.PublicBaseURL = strings.TrimRight(opts.PublicBaseURL, "/")

	return &Service{
		repo:     repo,
		producer: producer,
		opts:     opts,
		now:      time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Payload encodes the slip and runs the form checks. A missing payload is
// the normal state of a half-filled form, so it is not an error here.
func (s *Service) Payload(ctx context.Context, p entity.PaymentRecord) entity.PayloadResult {
	res := entity.PayloadResult{
		Errors:         ValidatePaymentRecord(p),
		DisplayAmount:  ips.DisplayAmount(ips.CanonicalAmount(p.Amount)),
		DisplayAccount: ips.FormatAccountDisplay(p.ReceiverAccount),
	}

	payload, err := ips.Encode(p)
	if err != nil {
		slog.DebugContext(ctx, "payload not ready", "reason", err)
		return res
	}

	res.Payload = &payload

	return res
}

// QRCode renders the payload of p as PNG. Size 0 means the configured default.
func (s *Service) QRCode(ctx context.Context, p entity.PaymentRecord, size int) ([]byte, error) {
	payload, err := ips.Encode(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrNoPayload, err)
	}

	return s.render(ctx, payload, size)
}

// ShareSlip stores the slip, with its payload when there is one, and returns
// the stored slip and its public link.
func (s *Service) ShareSlip(ctx context.Context, p entity.PaymentRecord) (entity.SharedSlip, string, error) {
	now := s.now().UTC()

	slip := entity.SharedSlip{
		ID:        uuid.Must(uuid.NewV4()),
		Data:      p,
		CreatedAt: now,
		ExpiresAt: now.Add(s.opts.SlipTTL),
	}

	if payload, err := ips.Encode(p); err == nil {
		slip.QRString = &payload
	}

	ctx = logger.WithSlipID(ctx, slip.ID.String())

	err := s.repo.CreateSlip(ctx, slip)
	if err != nil {
		return entity.SharedSlip{}, "", fmt.Errorf("create slip: %w", err)
	}

	s.producer.SendSlipShared(ctx, broker.SlipSharedEvent{
		SlipID:       slip.ID,
		ReceiverName: p.ReceiverName,
		Amount:       ips.CanonicalAmount(p.Amount),
		Currency:     p.Currency,
		HasPayload:   slip.QRString != nil,
		ExpiresAt:    slip.ExpiresAt,
	})

	slog.InfoContext(ctx, "slip shared", "expires_at", slip.ExpiresAt, "has_payload", slip.QRString != nil)

	return slip, s.ShareURL(slip.ID), nil
}

func (s *Service) ShareURL(id uuid.UUID) string {
	return s.opts.PublicBaseURL + "/share/" + id.String()
}

// SharedSlip returns a stored slip. Expired and missing slips are both ErrNotFound.
func (s *Service) SharedSlip(ctx context.Context, id uuid.UUID) (entity.SharedSlip, error) {
	now := s.now()

	slip, err := s.repo.Slip(ctx, id, now)
	if err != nil {
		return entity.SharedSlip{}, fmt.Errorf("get slip %s: %w", id, err)
	}

	if slip.Expired(now) {
		return entity.SharedSlip{}, fmt.Errorf("slip %s expired at %s: %w", id, slip.ExpiresAt, entity.ErrNotFound)
	}

	return slip, nil
}

// SharedSlipQRCode renders the stored payload of a shared slip.
func (s *Service) SharedSlipQRCode(ctx context.Context, id uuid.UUID, size int) ([]byte, error) {
	slip, err := s.SharedSlip(ctx, id)
	if err != nil {
		return nil, err
	}

	if slip.QRString == nil {
		return nil, fmt.Errorf("slip %s: %w", id, entity.ErrNoPayload)
	}

	return s.render(ctx, *slip.QRString, size)
}

// Slips lists slips that have not expired yet.
func (s *Service) Slips(ctx context.Context, filter entity.SlipFilter) ([]entity.SharedSlip, int, error) {
	if filter.OrderBy == "" {
		filter.OrderBy = entity.DESC
	}

	if !filter.OrderBy.IsValid() {
		return nil, 0, fmt.Errorf("%w: order %q", entity.ErrInvalidArgument, filter.OrderBy)
	}

	if filter.Page == 0 || filter.Limit == 0 {
		return nil, 0, fmt.Errorf("%w: page and limit must be positive", entity.ErrInvalidArgument)
	}

	if filter.Page > entity.MaxSlipPage {
		return nil, 0, fmt.Errorf("%w: page %d is beyond %d", entity.ErrInvalidArgument, filter.Page, entity.MaxSlipPage)
	}

	slips, total, err := s.repo.Slips(ctx, s.now(), filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list slips: %w", err)
	}

	return slips, total, nil
}

// PurgeExpiredSlips deletes slips whose expiry has passed.
func (s *Service) PurgeExpiredSlips(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpiredSlips(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("delete expired slips: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "expired slips purged", "count", n)
	}

	return n, nil
}

func (s *Service) render(ctx context.Context, payload string, size int) ([]byte, error) {
	if size == 0 {
		size = s.opts.QRSize
	}

	png, err := qrimage.Render(payload, size)
	if err != nil {
		slog.ErrorContext(ctx, "render qr code", "error", err)
		return nil, err
	}

	return png, nil
}
