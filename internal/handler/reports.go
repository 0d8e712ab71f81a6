package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"revup/internal/apierror"
	"revup/internal/dto"
	"revup/internal/infra"
	"revup/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) TotalRevenue(c *gin.Context) {
	total, err := h.svc.TotalRevenue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RevenueResponse{Revenue: total})
}

func (h *ReportsHandler) Monthly(c *gin.Context) {
	var filter dto.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	year, err := service.ParseYear(filter.Year)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := h.svc.MonthlySummary(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) Annual(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid year."))
		return
	}
	total, err := h.svc.AnnualRevenue(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RevenueResponse{Year: &year, Revenue: total})
}

func (h *ReportsHandler) Years(c *gin.Context) {
	years, err := h.svc.Years(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.YearsResponse{Years: years})
}

func (h *ReportsHandler) MonthSales(c *gin.Context) {
	resp, err := h.svc.IndividualSales(c.Request.Context(), c.Param("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Export streams the monthly summary as an attachment. The body is rendered
// into memory first so a storage failure still yields a JSON error.
func (h *ReportsHandler) Export(c *gin.Context) {
	var filter dto.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	year, err := service.ParseYear(filter.Year)
	if err != nil {
		respondError(c, err)
		return
	}
	format := strings.ToLower(filter.Format)
	if err := service.ValidateFormat(format); err != nil {
		respondError(c, err)
		return
	}

	var (
		buf         bytes.Buffer
		contentType string
		fileName    string
	)
	if format == "pdf" {
		err = h.svc.ExportPDF(c.Request.Context(), &buf, year)
		contentType, fileName = "application/pdf", infra.DefaultPDFName
	} else {
		err = h.svc.ExportCSV(c.Request.Context(), &buf, year)
		contentType, fileName = "text/csv; charset=utf-8", infra.DefaultCSVName
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
