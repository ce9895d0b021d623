// Package report genera la nómina de empleados en PDF, Excel o CSV para
// entregar por consola como archivo descargado en disco.
package report

import (
	"fmt"

	"github.com/jhoicas/rrhh-console/internal/domain/entity"
)

// Exporter despacha la generación del informe según el formato pedido.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// Export genera el informe de empleados en el formato indicado y devuelve
// los bytes del documento junto con la extensión de archivo sugerida.
func (e *Exporter) Export(format entity.ReportFormat, employees []entity.Employee) ([]byte, string, error) {
	switch format {
	case entity.ReportPDF:
		b, err := buildPDF(employees)
		return b, "pdf", err
	case entity.ReportExcel:
		b, err := buildExcel(employees)
		return b, "xlsx", err
	case entity.ReportCSV:
		b, err := buildCSV(employees)
		return b, "csv", err
	default:
		return nil, "", fmt.Errorf("report: formato no soportado: %s", format)
	}
}
