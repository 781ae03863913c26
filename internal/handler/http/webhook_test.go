package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rookgm/streammart/internal/handler/http/mocks"
	"github.com/rookgm/streammart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookHandler_Cryptomus(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		setup func(t *testing.T) *mocks.MockWebhookService
	}{
		{
			name: "paid_webhook_acked",
			body: `{"uuid":"abc-123","order_id":"","payment_status":"paid","status":"paid"}`,
			setup: func(t *testing.T) *mocks.MockWebhookService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockWebhookService(ctrl)
				svcMock.EXPECT().ApplyCryptomus(gomock.Any(), "", "abc-123", "paid", "paid").Return(nil).AnyTimes()
				return svcMock
			},
		},
		{
			// провайдер не должен получать 5xx и уходить в бесконечные ретраи
			name: "unresolvable_order_still_acked",
			body: `{"uuid":"does-not-exist","payment_status":"paid","status":"paid"}`,
			setup: func(t *testing.T) *mocks.MockWebhookService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockWebhookService(ctrl)
				svcMock.EXPECT().ApplyCryptomus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.ErrOrderNotFound).AnyTimes()
				return svcMock
			},
		},
		{
			name: "malformed_body_still_acked",
			body: `{not json`,
			setup: func(t *testing.T) *mocks.MockWebhookService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockWebhookService(ctrl)
				svcMock.EXPECT().ApplyCryptomus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
		},
		{
			name: "internal_error_still_acked",
			body: `{"order_id":"7b7ad3b2-7f39-4a3e-8f1e-000000000001","payment_status":"paid","status":"paid"}`,
			setup: func(t *testing.T) *mocks.MockWebhookService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockWebhookService(ctrl)
				svcMock.EXPECT().ApplyCryptomus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("db down")).AnyTimes()
				return svcMock
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/api/webhook/cryptomus", strings.NewReader(tt.body))
			require.NoError(t, err)

			w := httptest.NewRecorder()

			handler := NewWebhookHandler(tt.setup(t))
			h := handler.Cryptomus()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()

			assert.Equal(t, http.StatusOK, res.StatusCode)

			resBody, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"success":true}`, string(resBody))
		})
	}
}

func TestWebhookHandler_PayGate(t *testing.T) {
	tests := []struct {
		name   string
		target string
		setup  func(t *testing.T) *mocks.MockWebhookService
	}{
		{
			name:   "callback_applied",
			target: "/api/webhook/paygate?order_id=ord_1&value_coin=50&coin=USDT&txid_in=0xabc",
			setup: func(t *testing.T) *mocks.MockWebhookService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockWebhookService(ctrl)
				svcMock.EXPECT().ApplyPayGate(gomock.Any(), "ord_1", "50", "USDT", "0xabc").Return(nil).AnyTimes()
				return svcMock
			},
		},
		{
			// ответ "ok" обязателен при любом исходе
			name:   "reconcile_error_still_ok",
			target: "/api/webhook/paygate?order_id=unknown",
			setup: func(t *testing.T) *mocks.MockWebhookService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockWebhookService(ctrl)
				svcMock.EXPECT().ApplyPayGate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.ErrOrderNotFound).AnyTimes()
				return svcMock
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, tt.target, nil)
			require.NoError(t, err)

			w := httptest.NewRecorder()

			handler := NewWebhookHandler(tt.setup(t))
			h := handler.PayGate()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()

			assert.Equal(t, http.StatusOK, res.StatusCode)

			resBody, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			assert.Equal(t, "ok", string(resBody))
		})
	}
}
