package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/xuri/excelize/v2"

	"binaa-admin/internal/application/query"
	"binaa-admin/internal/domain/entity"
	"binaa-admin/internal/domain/repository"
	"binaa-admin/pkg/format"
	"binaa-admin/pkg/middleware"
	"binaa-admin/pkg/response"

	apperrors "binaa-admin/pkg/errors"
)

// HTTPBIController handles HTTP requests for the BI page: the stats payload,
// the rendered chart page and the spreadsheet export
type HTTPBIController struct {
	statsHandler *query.BIStatsHandler
	directory    repository.Directory
}

// NewHTTPBIController creates a new HTTP BI controller
func NewHTTPBIController(statsHandler *query.BIStatsHandler, directory repository.Directory) *HTTPBIController {
	return &HTTPBIController{
		statsHandler: statsHandler,
		directory:    directory,
	}
}

// GetStats handles GET /bi
// Query parameters: from, to (format: 2006-01-02 or RFC3339). Defaults to the
// last 30 days.
func (c *HTTPBIController) GetStats(w http.ResponseWriter, r *http.Request) {
	from, to, err := c.parseRange(r)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	result, err := c.statsHandler.Handle(r.Context(), query.GetBIStats{From: from, To: to})
	if err != nil {
		middleware.HandleError(w, r, apperrors.NewInternalError(fmt.Sprintf("failed to get BI stats: %v", err)))
		return
	}

	response.SendSuccess(w, r, result)
}

// GetCharts handles GET /bi/charts, rendering a standalone HTML page with a
// requests-per-day line chart and a revenue-per-day bar chart.
func (c *HTTPBIController) GetCharts(w http.ResponseWriter, r *http.Request) {
	from, to, err := c.parseRange(r)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	dr := query.NewDateRange(from, to)
	labels := dayLabels(dr)

	requests, err := c.directory.ListRequests(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	requestCounts := make(map[string]int)
	for _, req := range requests {
		if day, ok := dayKey(dr, req.CreatedAt); ok {
			requestCounts[day]++
		}
	}

	invoices, err := c.directory.ListInvoices(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	revenue := make(map[string]float64)
	for _, inv := range invoices {
		if inv.Status != entity.InvoicePaid {
			continue
		}
		if day, ok := dayKey(dr, inv.CreatedAt); ok {
			revenue[day] += inv.TotalAmount
		}
	}

	lineData := make([]opts.LineData, len(labels))
	barData := make([]opts.BarData, len(labels))
	for i, label := range labels {
		lineData[i] = opts.LineData{Value: requestCounts[label]}
		barData[i] = opts.BarData{Value: revenue[label]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Service Requests", Subtitle: "per day"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(labels)
	line.AddSeries("Requests", lineData)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Revenue (SAR)", Subtitle: "paid invoices per day"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("Revenue", barData)

	page := components.NewPage()
	page.AddCharts(line, bar)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		middleware.HandleError(w, r, apperrors.NewInternalError(fmt.Sprintf("failed to render charts: %v", err)))
	}
}

// Export handles GET /bi/export, producing an xlsx report of the stats.
func (c *HTTPBIController) Export(w http.ResponseWriter, r *http.Request) {
	from, to, err := c.parseRange(r)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	result, err := c.statsHandler.Handle(r.Context(), query.GetBIStats{From: from, To: to})
	if err != nil {
		middleware.HandleError(w, r, apperrors.NewInternalError(fmt.Sprintf("failed to get BI stats: %v", err)))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "BI Report"
	f.SetSheetName("Sheet1", sheet)

	rows := [][]interface{}{
		{"Report Period", fmt.Sprintf("%s to %s", result.FromDate, result.ToDate)},
		{},
		{"Metric", "Value"},
		{"Total Requests", result.Requests.Total},
		{"Pending Requests", result.Requests.Pending},
		{"Completed Requests", result.Requests.Completed},
		{"Cancelled Requests", result.Requests.Cancelled},
		{"Quick Orders", result.QuickOrders.Total},
		{"Quotations", result.Quotations.Total},
		{"Accepted Quotations", result.Quotations.Accepted},
		{"Contracts", result.Contracts},
		{"Active Projects", result.Projects.Active},
		{"Invoices", result.Invoices.Total},
		{"Paid Invoices", result.Invoices.Paid},
		{"Revenue", format.FormatSAR(result.Invoices.Revenue)},
		{"Payments", result.Payments.Total},
		{"Successful Payments", result.Payments.Success},
		{"Payment Volume", format.FormatSAR(result.Payments.SuccessVolume)},
		{"Refunded Payments", result.Payments.Refunded},
		{"Milestones Due", result.Milestones.Due},
		{"Milestones Paid", result.Milestones.Paid},
		{"Milestone Amount Paid", format.FormatSAR(result.Milestones.PaidAmount)},
		{"Open Complaints", result.Complaints.Open},
		{"Open Tickets", result.Tickets.Open},
		{"Active Chats", result.ActiveChats},
	}

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				middleware.HandleError(w, r, apperrors.NewInternalError(fmt.Sprintf("failed to build report: %v", err)))
				return
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				middleware.HandleError(w, r, apperrors.NewInternalError(fmt.Sprintf("failed to build report: %v", err)))
				return
			}
		}
	}
	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "B", 24)

	filename := fmt.Sprintf("bi-report-%s-%s.xlsx", result.FromDate, result.ToDate)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(w); err != nil {
		middleware.HandleError(w, r, apperrors.NewInternalError(fmt.Sprintf("failed to write report: %v", err)))
	}
}

func (c *HTTPBIController) parseRange(r *http.Request) (time.Time, time.Time, error) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")

	from := time.Now().AddDate(0, 0, -30)
	to := time.Now()

	var err error
	if fromStr != "" {
		from, err = format.ParseFlexible(fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.NewValidationError(fmt.Sprintf("invalid from date: %v", err))
		}
	}
	if toStr != "" {
		to, err = format.ParseFlexible(toStr)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.NewValidationError(fmt.Sprintf("invalid to date: %v", err))
		}
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("from must be before to")
	}
	return from, to, nil
}

// dayLabels enumerates the days in the range as dd-mm-yyyy labels.
func dayLabels(dr query.DateRange) []string {
	var labels []string
	for d := dr.From; !d.After(dr.To); d = d.AddDate(0, 0, 1) {
		labels = append(labels, d.Format("02-01-2006"))
	}
	return labels
}

// dayKey buckets a raw date string into its day label, excluding values
// outside the range or unparsable.
func dayKey(dr query.DateRange, raw string) (string, bool) {
	t, err := format.ParseFlexible(raw)
	if err != nil {
		return "", false
	}
	if !dr.Contains(t) {
		return "", false
	}
	return t.Format("02-01-2006"), true
}
