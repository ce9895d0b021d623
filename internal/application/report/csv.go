package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jhoicas/rrhh-console/internal/domain/entity"
)

// buildCSV genera la nómina de empleados como CSV UTF-8 con cabecera.
func buildCSV(employees []entity.Employee) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "nombre", "direccion", "telefono", "correo", "ingreso", "salario", "usuario", "tipo"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("report: escribir cabecera csv: %w", err)
	}
	for _, e := range employees {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Name,
			e.Address,
			e.Phone,
			e.Email,
			e.ContractStart.Format("2006-01-02"),
			e.Salary.StringFixed(2),
			e.Username,
			string(e.Type),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("report: escribir fila csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("report: volcar csv: %w", err)
	}
	return buf.Bytes(), nil
}
