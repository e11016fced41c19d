package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/scripta/scripta-backend/internal/repos/testutil"
	"github.com/scripta/scripta-backend/internal/types"
)

type stubSwatchService struct {
	configs map[string]types.SwatchConfig
	err     error
}

func (s *stubSwatchService) ListConfigs(ctx context.Context) (*types.SwatchConfigResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	resp := &types.SwatchConfigResponse{Swatches: []types.SwatchConfig{}}
	for _, cfg := range s.configs {
		resp.Swatches = append(resp.Swatches, cfg)
	}
	return resp, nil
}

func (s *stubSwatchService) GetConfig(ctx context.Context, colorName string) (types.SwatchConfig, error) {
	if s.err != nil {
		return types.SwatchConfig{}, s.err
	}
	return s.configs[colorName], nil
}

func (s *stubSwatchService) CreateConfig(ctx context.Context, cfg types.SwatchConfig) error {
	return s.err
}

func (s *stubSwatchService) UpdateConfig(ctx context.Context, colorName string, cfg types.SwatchConfig) error {
	return s.err
}

func (s *stubSwatchService) DeleteConfig(ctx context.Context, colorName string) error { return s.err }

func newSwatchRouter(t *testing.T, svc *stubSwatchService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewSwatchHandler(testutil.Logger(t), svc)
	router := gin.New()
	router.GET("/get_swatch_config", h.GetSwatchConfig)
	return router
}

func TestGetSwatchConfigFilteredKeepsEnvelope(t *testing.T) {
	dieline := types.SwatchConfig{
		ColorName:   "DIELINE",
		ColorModel:  types.ColorModelSpot,
		ColorSpace:  types.ColorSpaceCMYK,
		ColorValues: []int{50, 50, 0, 0},
	}
	router := newSwatchRouter(t, &stubSwatchService{
		configs: map[string]types.SwatchConfig{"DIELINE": dieline},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get_swatch_config?colorName=DIELINE", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d body=%s", w.Code, w.Body.String())
	}
	var resp types.SwatchConfigResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Swatches) != 1 || resp.Swatches[0].ColorName != "DIELINE" {
		t.Fatalf("unexpected payload: %s", w.Body.String())
	}
}
