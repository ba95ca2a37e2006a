package http

import (
	"net/http"

	"spesegen/internal/services"
)

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		BadRequestError(r, err.Error()).Write(w)
		return
	}

	month := sanitizeInput(req.Month)
	if month == "" {
		month = services.DefaultMonth
	}
	count := req.Count
	if count == 0 {
		count = services.DefaultBatchSize
	}

	res, err := s.dashboard.Generate(r.Context(), month, services.ClampBatchSize(count))
	if err != nil {
		ErrorResponse(r, err).Write(w)
		return
	}
	NewJSONResponse().Status(http.StatusCreated).Body(res).Write(w)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	t, err := s.dashboard.ViewAll(r.Context())
	if err != nil {
		ErrorResponse(r, err).Write(w)
		return
	}
	NewJSONResponse().Body(t).Write(w)
}

func (s *Server) handleCategoryInsights(w http.ResponseWriter, r *http.Request) {
	ins, err := s.dashboard.CategoryInsights(r.Context())
	if err != nil {
		ErrorResponse(r, err).Write(w)
		return
	}
	NewJSONResponse().Body(ins).Write(w)
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := decodeJSON(r, &req); err != nil {
		BadRequestError(r, err.Error()).Write(w)
		return
	}

	t, err := s.dashboard.AdHocQuery(r.Context(), req.SQL)
	if err != nil {
		ErrorResponse(r, err).Write(w)
		return
	}
	NewJSONResponse().Body(t).Write(w)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Body(map[string][]string{"reports": s.dashboard.ReportNames()}).Write(w)
}

func (s *Server) handleRunReport(w http.ResponseWriter, r *http.Request) {
	res, err := s.dashboard.RunReport(r.Context(), reportName(r))
	if err != nil {
		ErrorResponse(r, err).Write(w)
		return
	}
	NewJSONResponse().Body(res).Write(w)
}

func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	res, err := s.dashboard.ExportReport(r.Context(), reportName(r))
	if err != nil {
		ErrorResponse(r, err).Write(w)
		return
	}
	NewJSONResponse().Body(res).Write(w)
}
