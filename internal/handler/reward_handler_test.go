package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presale/adminhub/internal/analytics"
	"presale/adminhub/internal/service"
)

type fakeRewardService struct {
	lastFilter analytics.Filter
	lastSort   analytics.SortKey
	lastPage   int

	disabled []string
}

func (f *fakeRewardService) CodeTable(_ context.Context, filter analytics.Filter, sort analytics.SortKey, page int) (*analytics.CodeTable, error) {
	f.lastFilter = filter
	f.lastSort = sort
	f.lastPage = page
	return &analytics.CodeTable{Rows: []analytics.CodeRow{}, Page: page, PageSize: 10}, nil
}

func (f *fakeRewardService) Leaderboards(context.Context) (*service.LeaderboardSet, error) {
	return &service.LeaderboardSet{
		TopClaimers:     []analytics.TopClaimer{},
		FastestClaimers: []analytics.FastestClaimer{},
	}, nil
}

func (f *fakeRewardService) CreateCode(context.Context, float64, *time.Time) (string, error) {
	return "NEWCODE123", nil
}

func (f *fakeRewardService) DisableCode(_ context.Context, code string) error {
	f.disabled = append(f.disabled, code)
	return nil
}

func (f *fakeRewardService) Refresh(context.Context) error { return nil }

func (f *fakeRewardService) StartRefreshing(context.Context) {}

func newRewardRouter(svc service.RewardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRewardHandler(svc)
	r.GET("/reward-codes", h.ListCodes)
	r.GET("/reward-codes/leaderboards", h.Leaderboards)
	r.POST("/reward-codes", h.CreateCode)
	r.POST("/reward-codes/:code/disable", h.DisableCode)
	return r
}

func TestListCodesParsesQuery(t *testing.T) {
	svc := &fakeRewardService{}
	router := newRewardRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/reward-codes?search=abc&status=active&date_from=2024-03-01&date_to=2024-03-31&sort=most-claimed&page=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", svc.lastFilter.Search)
	assert.Equal(t, analytics.StatusActive, svc.lastFilter.Status)
	assert.Equal(t, "2024-03-01", svc.lastFilter.DateFrom)
	assert.Equal(t, "2024-03-31", svc.lastFilter.DateTo)
	assert.Equal(t, analytics.SortMostClaimed, svc.lastSort)
	assert.Equal(t, 3, svc.lastPage)
}

func TestListCodesDefaults(t *testing.T) {
	svc := &fakeRewardService{}
	router := newRewardRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/reward-codes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, analytics.SortLatest, svc.lastSort)
	assert.Equal(t, 1, svc.lastPage)
}

func TestListCodesRejectsUnknownSort(t *testing.T) {
	router := newRewardRouter(&fakeRewardService{})

	req := httptest.NewRequest(http.MethodGet, "/reward-codes?sort=by-vibes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCodesRejectsUnknownStatus(t *testing.T) {
	router := newRewardRouter(&fakeRewardService{})

	req := httptest.NewRequest(http.MethodGet, "/reward-codes?status=haunted", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCodeValidatesBody(t *testing.T) {
	router := newRewardRouter(&fakeRewardService{})

	req := httptest.NewRequest(http.MethodPost, "/reward-codes", strings.NewReader(`{"pool": -5}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCodeReturnsCode(t *testing.T) {
	router := newRewardRouter(&fakeRewardService{})

	req := httptest.NewRequest(http.MethodPost, "/reward-codes", strings.NewReader(`{"pool": 500}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Code int `json:"code"`
		Data struct {
			Code string `json:"code"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Code)
	assert.Equal(t, "NEWCODE123", body.Data.Code)
}

func TestDisableCodePassesRawParam(t *testing.T) {
	svc := &fakeRewardService{}
	router := newRewardRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/reward-codes/abc123/disable", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"abc123"}, svc.disabled)
}
