package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/de-tools/churn-atlas/pkg/adapters"
	"github.com/de-tools/churn-atlas/pkg/models/api"
	"github.com/de-tools/churn-atlas/pkg/models/domain"
	"github.com/de-tools/churn-atlas/pkg/services/metrics"
	"github.com/de-tools/churn-atlas/pkg/services/report"
	"github.com/de-tools/churn-atlas/pkg/services/risk"
	"github.com/de-tools/churn-atlas/pkg/services/segmentation"
	"github.com/de-tools/churn-atlas/pkg/services/trends"
	"github.com/rs/zerolog"
)

// Prediction request defaults, applied when optional attributes are absent.
const (
	defaultMonthlyCharges  = 50.0
	defaultInternetService = "Fiber optic"
	defaultServiceFlag     = "No"
)

// DatasetStore provides the cached customer collection.
type DatasetStore interface {
	Records(ctx context.Context) ([]domain.CustomerRecord, error)
}

type Handler struct {
	dataset      DatasetStore
	metrics      *metrics.Engine
	segmentation *segmentation.Engine
	trends       *trends.Aggregator
	scorer       *risk.Scorer
	assembler    *report.Assembler
}

func NewHandler(dataset DatasetStore) *Handler {
	return &Handler{
		dataset:      dataset,
		metrics:      metrics.NewEngine(),
		segmentation: segmentation.NewEngine(),
		trends:       trends.NewAggregator(),
		scorer:       risk.NewScorer(),
		assembler:    report.NewAssembler(),
	}
}

func (h *Handler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}

	kpis, err := h.metrics.KPIs(records)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapKPISetDomainToApi(*kpis))
}

func (h *Handler) GetChurnTrends(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}

	points, err := h.trends.ChurnByTenure(records)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, api.TrendsResponse{Trends: adapters.MapTrendPointsDomainToApi(points)})
}

func (h *Handler) GetChurnReasons(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}

	reasons, err := h.trends.ChurnReasons(records)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, api.ChurnReasonsResponse{Reasons: adapters.MapChurnReasonsDomainToApi(reasons)})
}

func (h *Handler) GetRevenueBySegment(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}

	points, err := h.trends.RevenueBySegment(records)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, api.RevenueResponse{Revenue: adapters.MapRevenuePointsDomainToApi(points)})
}

func (h *Handler) GetRetentionByOffer(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}

	points, err := h.trends.RetentionByOffer(records)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, api.RetentionResponse{Retention: adapters.MapRetentionPointsDomainToApi(points)})
}

func (h *Handler) ListSegments(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}

	segments, err := h.segmentation.Segments(records)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]api.SegmentInfo, 0, len(segments))
	for _, s := range segments {
		response = append(response, adapters.MapSegmentDomainToApi(s))
	}
	writeJSON(w, r, response)
}

func (h *Handler) PredictChurn(w http.ResponseWriter, r *http.Request) {
	var request api.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, domain.ErrInvalidInput)
		return
	}
	if request.Tenure == nil || request.Complaints == nil || request.ContractType == "" {
		writeError(w, r, domain.ErrInvalidInput)
		return
	}

	assessment, err := h.scorer.Score(predictionInput(request))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapAssessmentDomainToApi(*assessment))
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}

	overview, err := h.metrics.Overview(records, domain.OverviewFilter{
		CustomerType: r.URL.Query().Get("customer_type"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapOverviewDomainToApi(*overview))
}

func (h *Handler) GetMonthlyTrends(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}

	points, err := h.trends.MonthlyTrends(records)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, api.MonthlyTrendsResponse{Trends: adapters.MapMonthlyTrendsDomainToApi(points)})
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}

	kpis, err := h.metrics.KPIs(records)
	if err != nil {
		writeError(w, r, err)
		return
	}

	byContract := make(map[domain.ContractType]int)
	for _, record := range records {
		byContract[record.Contract]++
	}
	distribution := make([]domain.SeriesPoint, 0, len(domain.ContractTypes))
	for _, ct := range domain.ContractTypes {
		distribution = append(distribution, domain.SeriesPoint{
			Label: string(ct),
			Value: float64(byContract[ct]),
		})
	}

	doc := h.assembler.Assemble(report.Input{
		Title:                r.URL.Query().Get("title"),
		GeneratedAt:          time.Now().UTC(),
		KPIs:                 *kpis,
		ContractDistribution: distribution,
	})
	writeJSON(w, r, adapters.MapReportDomainToApi(doc))
}

func (h *Handler) records(w http.ResponseWriter, r *http.Request) ([]domain.CustomerRecord, bool) {
	records, err := h.dataset.Records(r.Context())
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	return records, true
}

func predictionInput(request api.PredictionRequest) domain.PredictionInput {
	in := domain.PredictionInput{
		Tenure:          *request.Tenure,
		VoiceUsage:      request.VoiceUsage,
		DataUsage:       request.DataUsage,
		Complaints:      *request.Complaints,
		ContractType:    request.ContractType,
		MonthlyCharges:  request.MonthlyCharges,
		InternetService: domain.InternetService(request.InternetService),
		OnlineSecurity:  request.OnlineSecurity,
		TechSupport:     request.TechSupport,
		StreamingTV:     request.StreamingTV,
	}
	if in.MonthlyCharges == 0 {
		in.MonthlyCharges = defaultMonthlyCharges
	}
	if in.InternetService == "" {
		in.InternetService = defaultInternetService
	}
	if in.OnlineSecurity == "" {
		in.OnlineSecurity = defaultServiceFlag
	}
	if in.TechSupport == "" {
		in.TechSupport = defaultServiceFlag
	}
	return in
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrEmptyDataset):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDataUnavailable):
		status = http.StatusServiceUnavailable
	}

	zerolog.Ctx(r.Context()).Error().Err(err).Int("status", status).Msg("request failed")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: err.Error()})
}
