package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/ipsqr/internal/entity"
)

// @title IPS QR API
// @version 1.0
// @description Builds NBS IPS QR payloads for Serbian payment slips, renders them and shares slips by link
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	Payload(ctx context.Context, p entity.PaymentRecord) entity.PayloadResult
	QRCode(ctx context.Context, p entity.PaymentRecord, size int) ([]byte, error)
	ShareSlip(ctx context.Context, p entity.PaymentRecord) (entity.SharedSlip, string, error)
	SharedSlip(ctx context.Context, id uuid.UUID) (entity.SharedSlip, error)
	SharedSlipQRCode(ctx context.Context, id uuid.UUID, size int) ([]byte, error)
	Slips(ctx context.Context, filter entity.SlipFilter) ([]entity.SharedSlip, int, error)
	PurgeExpiredSlips(ctx context.Context) (int64, error)
	ProcessBatch(ctx context.Context, xlsx []byte) ([]byte, error)
}

const (
	maxBatchSize = 10 << 20
	xlsxMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

type DisplayResponse struct {
	Amount  string `json:"amount"`
	Account string `json:"account"`
}

type PayloadResponse struct {
	Payload *string           `json:"payload"`
	Valid   bool              `json:"valid"`
	Errors  map[string]string `json:"errors"`
	Display DisplayResponse   `json:"display"`
}

// Payload builds the IPS QR payload for a payment slip
// @Summary Build payload
// @Description Returns the IPS QR payload, or null while required fields are missing, together with form validation errors
// @Tags ips
// @Accept json
// @Produce json
// @Param PaymentRecord body entity.PaymentRecord true "Payment slip"
// @Success 200 {object} PayloadResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Router /v1/ips/payload [post]
func (h *Handler) Payload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := decodeRecord(w, r)
	if !ok {
		return
	}

	res := h.s.Payload(ctx, p)

	errs := res.Errors
	if errs == nil {
		errs = entity.ValidationErrors{}
	}

	SendJSON(ctx, w, http.StatusOK, PayloadResponse{
		Payload: res.Payload,
		Valid:   res.Valid(),
		Errors:  errs,
		Display: DisplayResponse{
			Amount:  res.DisplayAmount,
			Account: res.DisplayAccount,
		},
	})
}

// QRCode renders the payload of a payment slip as PNG
// @Summary Render QR code
// @Tags ips
// @Accept json
// @Produce png
// @Param PaymentRecord body entity.PaymentRecord true "Payment slip"
// @Param size query int false "Image size in pixels, 128..1024"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse "Invalid JSON or size"
// @Failure 422 {object} ErrorResponse "Payment slip is not complete"
// @Failure 500 {object} ErrorResponse "Failed to render QR code"
// @Router /v1/ips/qr [post]
func (h *Handler) QRCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	size, err := parseSize(r.URL.Query())
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Neispravna veličina slike")
		return
	}

	p, ok := decodeRecord(w, r)
	if !ok {
		return
	}

	png, err := h.s.QRCode(ctx, p, size)
	if err != nil {
		if errors.Is(err, entity.ErrNoPayload) {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Uplatnica nije kompletna")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Nije moguće napraviti QR kod")

		return
	}

	sendPNG(ctx, w, png)
}

type ShareSlipResponse struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	QRString  *string   `json:"qrString"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ShareSlip stores a payment slip and returns its public link
// @Summary Share slip
// @Description Stores the slip for 30 days; incomplete slips are stored without a payload
// @Tags slips
// @Accept json
// @Produce json
// @Param PaymentRecord body entity.PaymentRecord true "Payment slip"
// @Success 201 {object} ShareSlipResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 500 {object} ErrorResponse "Failed to share slip"
// @Router /v1/slips [post]
func (h *Handler) ShareSlip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := decodeRecord(w, r)
	if !ok {
		return
	}

	slip, link, err := h.s.ShareSlip(ctx, p)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Nije moguće podeliti uplatnicu")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, ShareSlipResponse{
		ID:        slip.ID,
		URL:       link,
		QRString:  slip.QRString,
		CreatedAt: slip.CreatedAt,
		ExpiresAt: slip.ExpiresAt,
	})
}

// SharedSlip returns a shared payment slip
// @Summary Get shared slip
// @Tags slips
// @Produce json
// @Param id path string true "Slip ID"
// @Success 200 {object} entity.SharedSlip
// @Failure 400 {object} ErrorResponse "Invalid slip id"
// @Failure 404 {object} ErrorResponse "Slip not found or expired"
// @Failure 500 {object} ErrorResponse "Failed to get slip"
// @Router /v1/slips/{id} [get]
func (h *Handler) SharedSlip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := slipID(w, r)
	if !ok {
		return
	}

	slip, err := h.s.SharedSlip(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Uplatnica nije pronađena ili je istekla")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Nije moguće učitati uplatnicu")

		return
	}

	SendJSON(ctx, w, http.StatusOK, slip)
}

// SharedSlipQRCode renders the QR code of a shared payment slip
// @Summary Shared slip QR code
// @Tags slips
// @Produce png
// @Param id path string true "Slip ID"
// @Param size query int false "Image size in pixels, 128..1024"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse "Invalid slip id or size"
// @Failure 404 {object} ErrorResponse "Slip not found, expired or without payload"
// @Failure 500 {object} ErrorResponse "Failed to render QR code"
// @Router /v1/slips/{id}/qr [get]
func (h *Handler) SharedSlipQRCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := slipID(w, r)
	if !ok {
		return
	}

	size, err := parseSize(r.URL.Query())
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Neispravna veličina slike")
		return
	}

	png, err := h.s.SharedSlipQRCode(ctx, id, size)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Uplatnica nije pronađena ili je istekla")
		case errors.Is(err, entity.ErrNoPayload):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Uplatnica nema QR kod")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Nije moguće napraviti QR kod")
		}

		return
	}

	sendPNG(ctx, w, png)
}

type SlipsResponse struct {
	Slips      []entity.SharedSlip `json:"slips"`
	TotalCount int                 `json:"totalCount"`
}

// Slips lists active shared slips
// @Summary Slip history
// @Tags slips
// @Produce json
// @Param page query int false "Page, starting at 1"
// @Param limit query int false "Page size, at most 100"
// @Param order query string false "Creation order" Enums(desc, asc)
// @Success 200 {object} SlipsResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Failed to list slips"
// @Router /v1/slips [get]
func (h *Handler) Slips(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slips, total, err := h.s.Slips(ctx, parseSlipFilter(r.URL.Query()))
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Neispravan filter")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Nije moguće učitati istoriju")

		return
	}

	if slips == nil {
		slips = []entity.SharedSlip{}
	}

	SendJSON(ctx, w, http.StatusOK, SlipsResponse{Slips: slips, TotalCount: total})
}

func parseSlipFilter(q url.Values) entity.SlipFilter {
	const (
		defaultLimit uint64 = 10
		maxLimit     uint64 = 100
		defaultPage  uint64 = 1
	)

	limit, err := strconv.ParseUint(q.Get("limit"), 10, 64)
	if err != nil || limit == 0 {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	page, err := strconv.ParseUint(q.Get("page"), 10, 64)
	if err != nil || page == 0 {
		page = defaultPage
	}

	return entity.SlipFilter{
		Page:    page,
		Limit:   limit,
		OrderBy: entity.OrderByCol(q.Get("order")),
	}
}

// Batch encodes every row of an xlsx workbook
// @Summary Batch encode
// @Description First sheet, header row with payment slip field names. The response repeats the rows with Payload and Error columns
// @Tags ips
// @Accept application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse "Not a workbook or required columns missing"
// @Failure 413 {object} ErrorResponse "Workbook too large"
// @Failure 422 {object} ErrorResponse "No payment rows"
// @Failure 500 {object} ErrorResponse "Failed to process workbook"
// @Router /v1/batch [post]
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBatchSize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			SendJSONErr(ctx, w, http.StatusRequestEntityTooLarge, err, "Fajl je prevelik")
			return
		}

		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Nije moguće pročitati fajl")

		return
	}

	out, err := h.s.ProcessBatch(ctx, body)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Neispravan fajl")
		case errors.Is(err, entity.ErrBatchEmpty):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Fajl nema uplatnica")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Nije moguće obraditi fajl")
		}

		return
	}

	w.Header().Set("Content-Type", xlsxMIME)
	w.Header().Set("Content-Disposition", `attachment; filename="uplatnice.xlsx"`)
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(out)
	if err != nil {
		slog.ErrorContext(ctx, "write response", "error", err)
	}
}

type PurgeSlipsResponse struct {
	Deleted int64 `json:"deleted"`
}

// PurgeSlips deletes expired shared slips
// @Summary Purge expired slips
// @Tags slips
// @Produce json
// @Success 200 {object} PurgeSlipsResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid API key"
// @Failure 500 {object} ErrorResponse "Failed to purge slips"
// @Router /private/v1/slips/purge [post]
// @Security ApiKeyAuth
func (h *Handler) PurgeSlips(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := h.s.PurgeExpiredSlips(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Nije moguće obrisati istekle uplatnice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, PurgeSlipsResponse{Deleted: n})
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Accept text/plain
// @Produce text/plain
// @Success 200 {string} string "Servis radi!"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Servis radi!\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Servis ne radi!")
		return
	}
}

func decodeRecord(w http.ResponseWriter, r *http.Request) (entity.PaymentRecord, bool) {
	p := entity.NewPaymentRecord()

	err := json.NewDecoder(r.Body).Decode(&p)
	if err != nil {
		SendJSONErr(r.Context(), w, http.StatusBadRequest, err, "Neispravan JSON")
		return entity.PaymentRecord{}, false
	}

	return p, true
}

func slipID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(r.Context(), w, http.StatusBadRequest, err, "Neispravan identifikator uplatnice")
		return uuid.Nil, false
	}

	return id, true
}

// parseSize returns 0 when size is not set.
func parseSize(q url.Values) (int, error) {
	s := q.Get("size")
	if s == "" {
		return 0, nil
	}

	size, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}

	if size <= 0 {
		return 0, errors.New("size must be positive")
	}

	return size, nil
}

func sendPNG(ctx context.Context, w http.ResponseWriter, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)

	_, err := w.Write(png)
	if err != nil {
		slog.ErrorContext(ctx, "write response", "error", err)
	}
}
