package entity

import (
	"strings"

	"github.com/jhoicas/rrhh-console/internal/domain"
)

// ReportFormat enumera los formatos de exportación de informes.
type ReportFormat string

const (
	ReportPDF   ReportFormat = "PDF"
	ReportExcel ReportFormat = "Excel"
	ReportCSV   ReportFormat = "CSV"
)

var reportFormats = []ReportFormat{ReportPDF, ReportExcel, ReportCSV}

// ParseReportFormat resuelve el texto al formato canónico, sin distinguir
// mayúsculas. Fuera del conjunto → ValidationError.
func ParseReportFormat(s string) (ReportFormat, error) {
	in := strings.TrimSpace(s)
	for _, f := range reportFormats {
		if strings.EqualFold(in, string(f)) {
			return f, nil
		}
	}
	return "", domain.NewValidationError("formato de informe inválido %q: usa PDF / Excel / CSV", s)
}

// Report describe un informe solicitado: qué formato tendrá la salida.
type Report struct {
	Format ReportFormat
}
