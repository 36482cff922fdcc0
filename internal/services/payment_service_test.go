package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexs779/bot-flow-vercel/domain"
	"github.com/Alexs779/bot-flow-vercel/internal/mocks"
)

func TestPaymentServiceImpl_CreateInvoice(t *testing.T) {
	tests := []struct {
		name         string
		invoiceURL   string
		sessionToken string
		moveID       string
		expectedURL  string
		expectedErr  error
	}{
		{
			name:         "default stub url",
			sessionToken: "mock_session_token",
			moveID:       "move-1",
			expectedURL:  DefaultInvoiceURL,
		},
		{
			name:         "configured url",
			invoiceURL:   "https://t.me/invoice/custom",
			sessionToken: "mock_session_token",
			moveID:       "move-1",
			expectedURL:  "https://t.me/invoice/custom",
		},
		{
			name:        "missing session token",
			moveID:      "move-1",
			expectedErr: domain.ErrInvoiceRequestInvalid,
		},
		{
			name:         "missing move id",
			sessionToken: "mock_session_token",
			expectedErr:  domain.ErrInvoiceRequestInvalid,
		},
		{
			name:         "invalid session token",
			sessionToken: "forged",
			moveID:       "move-1",
			expectedErr:  domain.ErrSessionInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPaymentService(mocks.NewMockSessionIssuer(), tt.invoiceURL, nil)

			url, err := svc.CreateInvoice(context.Background(), tt.sessionToken, tt.moveID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, url)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedURL, url)
		})
	}
}
