package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/ipsqr/internal/api"
	"github.com/samandr77/ipsqr/internal/entity"
	"github.com/samandr77/ipsqr/internal/mocks"
)

const testAPIKey = "dev"

type clientAPI struct {
	srv         *httptest.Server
	serviceMock *mocks.MockService
}

func newClientAPI(t *testing.T) clientAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockService(ctrl)

	h := api.NewHandler(serviceMock)
	mw := api.NewMiddleware(true, testAPIKey)

	srv := httptest.NewServer(api.NewRouter(h, mw))
	t.Cleanup(srv.Close)

	return clientAPI{srv: srv, serviceMock: serviceMock}
}

func (c clientAPI) do(t *testing.T, method, path, contentType string, body []byte, headers ...string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, c.srv.URL+path, bytes.NewReader(body))
	require.NoError(t, err)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))

	return v
}

func testRecordJSON(t *testing.T, p entity.PaymentRecord) []byte {
	t.Helper()

	b, err := json.Marshal(p)
	require.NoError(t, err)

	return b
}

func testRecord() entity.PaymentRecord {
	return entity.PaymentRecord{
		ReceiverName:    "JKP Infostan",
		ReceiverAccount: "160-0000000000123-45",
		Amount:          "1.234,50",
		PaymentCode:     "189",
		Currency:        "RSD",
		Purpose:         "Uplata",
	}
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	resp := c.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestHandler_Payload(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	payload := "K:PR|V:01|C:1"

	c.serviceMock.EXPECT().Payload(gomock.Any(), testRecord()).Return(entity.PayloadResult{
		Payload:        &payload,
		DisplayAmount:  "1.234,50",
		DisplayAccount: "160-0000000000123-45",
	})

	resp := c.do(t, http.MethodPost, "/api/v1/ips/payload", "application/json", testRecordJSON(t, testRecord()))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[api.PayloadResponse](t, resp)
	require.Equal(t, api.PayloadResponse{
		Payload: &payload,
		Valid:   true,
		Errors:  map[string]string{},
		Display: api.DisplayResponse{Amount: "1.234,50", Account: "160-0000000000123-45"},
	}, got)
}

func TestHandler_Payload_NullWhenIncomplete(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	want := entity.NewPaymentRecord()
	want.ReceiverName = "Infostan"

	c.serviceMock.EXPECT().Payload(gomock.Any(), want).Return(entity.PayloadResult{
		Errors:        entity.ValidationErrors{"amount": "Iznos je obavezan"},
		DisplayAmount: "0,00",
	})

	resp := c.do(t, http.MethodPost, "/api/v1/ips/payload", "application/json", []byte(`{"receiverName":"Infostan"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	require.Equal(t, "null", string(raw["payload"]))
	require.Equal(t, "false", string(raw["valid"]))
	require.JSONEq(t, `{"amount":"Iznos je obavezan"}`, string(raw["errors"]))
}

func TestHandler_Payload_InvalidJSON(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	resp := c.do(t, http.MethodPost, "/api/v1/ips/payload", "application/json", []byte(`{"amount":`))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	got := decode[api.ErrorResponse](t, resp)
	require.Equal(t, "Neispravan JSON", got.Message)
}

func TestHandler_QRCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		size     int
		png      []byte
		err      error
		wantCode int
	}{
		{name: "default size", png: []byte("png"), wantCode: http.StatusOK},
		{name: "explicit size", query: "?size=512", size: 512, png: []byte("png"), wantCode: http.StatusOK},
		{name: "incomplete", err: fmt.Errorf("%w: amount", entity.ErrNoPayload), wantCode: http.StatusUnprocessableEntity},
		{name: "render failure", err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newClientAPI(t)

			c.serviceMock.EXPECT().QRCode(gomock.Any(), testRecord(), tt.size).Return(tt.png, tt.err)

			resp := c.do(t, http.MethodPost, "/api/v1/ips/qr"+tt.query, "application/json", testRecordJSON(t, testRecord()))
			require.Equal(t, tt.wantCode, resp.StatusCode)

			if tt.wantCode == http.StatusOK {
				require.Equal(t, "image/png", resp.Header.Get("Content-Type"))

				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				require.Equal(t, tt.png, body)
			}
		})
	}
}

func TestHandler_QRCode_BadSize(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	resp := c.do(t, http.MethodPost, "/api/v1/ips/qr?size=big", "application/json", testRecordJSON(t, testRecord()))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_ShareSlip(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	now := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
	payload := "K:PR"
	slip := entity.SharedSlip{
		ID:        uuid.Must(uuid.NewV4()),
		Data:      testRecord(),
		QRString:  &payload,
		CreatedAt: now,
		ExpiresAt: now.Add(entity.DefaultSlipTTL),
	}
	link := "https://uplatnica.example/share/" + slip.ID.String()

	c.serviceMock.EXPECT().ShareSlip(gomock.Any(), testRecord()).Return(slip, link, nil)

	resp := c.do(t, http.MethodPost, "/api/v1/slips", "application/json", testRecordJSON(t, testRecord()))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	got := decode[api.ShareSlipResponse](t, resp)
	require.Equal(t, api.ShareSlipResponse{
		ID:        slip.ID,
		URL:       link,
		QRString:  &payload,
		CreatedAt: now,
		ExpiresAt: slip.ExpiresAt,
	}, got)
}

func TestHandler_SharedSlip(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	found := entity.SharedSlip{
		ID:        uuid.Must(uuid.NewV4()),
		Data:      testRecord(),
		CreatedAt: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
	missing := uuid.Must(uuid.NewV4())

	c.serviceMock.EXPECT().SharedSlip(gomock.Any(), found.ID).Return(found, nil)
	c.serviceMock.EXPECT().SharedSlip(gomock.Any(), missing).Return(entity.SharedSlip{}, entity.ErrNotFound)

	resp := c.do(t, http.MethodGet, "/api/v1/slips/"+found.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, found, decode[entity.SharedSlip](t, resp))

	resp = c.do(t, http.MethodGet, "/api/v1/slips/"+missing.String(), "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = c.do(t, http.MethodGet, "/api/v1/slips/not-a-uuid", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_SharedSlipQRCode(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	withQR := uuid.Must(uuid.NewV4())
	withoutQR := uuid.Must(uuid.NewV4())

	c.serviceMock.EXPECT().SharedSlipQRCode(gomock.Any(), withQR, 300).Return([]byte("png"), nil)
	c.serviceMock.EXPECT().SharedSlipQRCode(gomock.Any(), withoutQR, 0).Return(nil, entity.ErrNoPayload)

	resp := c.do(t, http.MethodGet, "/api/v1/slips/"+withQR.String()+"/qr?size=300", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	resp = c.do(t, http.MethodGet, "/api/v1/slips/"+withoutQR.String()+"/qr", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_Slips(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	slips := []entity.SharedSlip{{
		ID:        uuid.Must(uuid.NewV4()),
		Data:      testRecord(),
		CreatedAt: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
	}}

	c.serviceMock.EXPECT().Slips(gomock.Any(), entity.SlipFilter{Page: 2, Limit: 100, OrderBy: entity.ASC}).
		Return(slips, 101, nil)
	c.serviceMock.EXPECT().Slips(gomock.Any(), entity.SlipFilter{Page: 1, Limit: 10, OrderBy: "sideways"}).
		Return(nil, 0, entity.ErrInvalidArgument)

	resp := c.do(t, http.MethodGet, "/api/v1/slips?page=2&limit=500&order=asc", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, api.SlipsResponse{Slips: slips, TotalCount: 101}, decode[api.SlipsResponse](t, resp))

	resp = c.do(t, http.MethodGet, "/api/v1/slips?order=sideways", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Slips_PageOutOfRange(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	c.serviceMock.EXPECT().Slips(gomock.Any(), entity.SlipFilter{Page: math.MaxUint64, Limit: 10}).
		Return(nil, 0, fmt.Errorf("%w: page too large", entity.ErrInvalidArgument))

	resp := c.do(t, http.MethodGet, "/api/v1/slips?page=18446744073709551615", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Batch(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	in := []byte("xlsx in")

	c.serviceMock.EXPECT().ProcessBatch(gomock.Any(), in).Return([]byte("xlsx out"), nil)
	c.serviceMock.EXPECT().ProcessBatch(gomock.Any(), []byte("empty")).Return(nil, entity.ErrBatchEmpty)

	resp := c.do(t, http.MethodPost, "/api/v1/batch", "application/octet-stream", in)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "application/vnd.openxmlformats"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "xlsx out", string(body))

	resp = c.do(t, http.MethodPost, "/api/v1/batch", "application/octet-stream", []byte("empty"))
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandler_PurgeSlips(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	c.serviceMock.EXPECT().PurgeExpiredSlips(gomock.Any()).Return(int64(4), nil)

	resp := c.do(t, http.MethodPost, "/api/private/v1/slips/purge", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = c.do(t, http.MethodPost, "/api/private/v1/slips/purge", "", nil, "X-Api-Key", "wrong")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = c.do(t, http.MethodPost, "/api/private/v1/slips/purge", "", nil, "X-Api-Key", testAPIKey)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, api.PurgeSlipsResponse{Deleted: 4}, decode[api.PurgeSlipsResponse](t, resp))
}
