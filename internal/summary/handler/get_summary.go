package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"fxsummary/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type DayRateResponse struct {
	Date string  `json:"date" example:"2025-01-02"`
	Rate float64 `json:"rate" example:"1.0321"`
	// PctChange is null for the first date of the range.
	PctChange *float64 `json:"pct_change" example:"0.1943"`
}

type TotalsResponse struct {
	StartRate      float64 `json:"start_rate" example:"1.0321"`
	EndRate        float64 `json:"end_rate" example:"1.0456"`
	TotalPctChange float64 `json:"total_pct_change" example:"1.308"`
	MeanRate       float64 `json:"mean_rate" example:"1.0388"`
}

type GetSummaryResponse struct {
	Breakdown []DayRateResponse `json:"breakdown,omitempty"`
	Totals    TotalsResponse    `json:"totals"`
	Source    string            `json:"source" example:"api"`
}

// GetSummary godoc
// @Summary EUR to USD rate summary
// @Description Daily EUR→USD rates for a date range with day-over-day and total percentage changes. Served from the bundled snapshot when the remote provider is unreachable.
// @Tags FX
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Param breakdown query string false "'day' for per-day rows, 'none' for totals only" Enums(day, none) default(day)
// @Success 200 {object} GetSummaryResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /fx/summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q, err := h.validator.ValidateQuery(params.Get("start"), params.Get("end"), params.Get("breakdown"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	execID := uuid.NewString()
	logrus.WithFields(logrus.Fields{
		"exec_id": execID,
		"start":   params.Get("start"),
		"end":     params.Get("end"),
	}).Debug("Handling summary request")

	result, err := h.service.GetSummary(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			writeError(w, http.StatusBadRequest, domain.ErrInvalidRange.Error())
			return
		}
		if errors.Is(err, domain.ErrNoData) {
			writeError(w, http.StatusNotFound, domain.ErrNoData.Error())
			return
		}
		msg := "ups, couldn't build the fx summary this time"
		logrus.WithError(err).WithFields(logrus.Fields{
			"handler": "GetSummary",
			"exec_id": execID,
			"start":   params.Get("start"),
			"end":     params.Get("end"),
		}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := GetSummaryResponse{
		Totals: TotalsResponse{
			StartRate:      result.Totals.StartRate,
			EndRate:        result.Totals.EndRate,
			TotalPctChange: result.Totals.TotalPctChange,
			MeanRate:       result.Totals.MeanRate,
		},
		Source: string(result.Source),
	}
	if result.Breakdown != nil {
		res.Breakdown = make([]DayRateResponse, 0, len(result.Breakdown))
		for _, day := range result.Breakdown {
			res.Breakdown = append(res.Breakdown, DayRateResponse{
				Date:      day.Date,
				Rate:      day.Rate,
				PctChange: day.PctChange,
			})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(res)
}
