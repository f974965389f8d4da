package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-levelup/internal/middlewares"
	"github.com/sbilibin2017/gw-levelup/internal/models"
	"github.com/sbilibin2017/gw-levelup/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanHandler(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name               string
		body               string
		setupMocks         func(m *MockPlanGenerator)
		expectedStatusCode int
		expectedLevel      int
		expectedLeveledUp  bool
	}{
		{
			name: "muscle gain",
			body: `{"goal":"muscle_gain"}`,
			setupMocks: func(m *MockPlanGenerator) {
				m.EXPECT().Generate(gomock.Any(), userID, "muscle_gain").Return(&models.PlanOutcome{
					Plan:  models.AIPlan{Goal: "muscle_gain"},
					Grant: &models.GrantResult{XPGained: 20, LeveledUp: true, Level: 3, TotalXP: 205},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedLevel:      3,
			expectedLeveledUp:  true,
		},
		{
			name: "empty body",
			body: "",
			setupMocks: func(m *MockPlanGenerator) {
				m.EXPECT().Generate(gomock.Any(), userID, "").Return(&models.PlanOutcome{
					Plan:  models.AIPlan{Goal: "weight_loss"},
					Grant: &models.GrantResult{XPGained: 20, Level: 1, TotalXP: 20},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedLevel:      1,
		},
		{
			name:               "malformed body",
			body:               `{"goal":`,
			setupMocks:         func(m *MockPlanGenerator) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "unknown user",
			body: `{"goal":"weight_loss"}`,
			setupMocks: func(m *MockPlanGenerator) {
				m.EXPECT().Generate(gomock.Any(), userID, "weight_loss").Return(nil, services.ErrNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockPlanGenerator(ctrl)
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/ai/generate-plan", strings.NewReader(tt.body))
			req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			rr := httptest.NewRecorder()

			NewPlanHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if tt.expectedStatusCode == http.StatusOK {
				var resp PlanResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.True(t, resp.Success)
				assert.Equal(t, int64(20), resp.XPGained)
				assert.Equal(t, tt.expectedLevel, resp.Level)
				assert.Equal(t, tt.expectedLeveledUp, resp.LeveledUp)
			}
		})
	}
}
