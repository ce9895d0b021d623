package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/rrhh-console/internal/domain/entity"
)

const sheetName = "Empleados"

// buildExcel genera la nómina de empleados como libro XLSX con excelize.
func buildExcel(employees []entity.Employee) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center", Vertical: "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("report: estilo de cabecera: %w", err)
	}

	headers := []string{"ID", "Nombre", "Dirección", "Teléfono", "Correo", "Ingreso", "Salario", "Usuario", "Tipo"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("report: cabecera %q: %w", h, err)
		}
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheetName, "A1", endHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("report: aplicar estilo: %w", err)
	}

	for i, e := range employees {
		rowIdx := i + 2
		values := []interface{}{
			e.ID,
			e.Name,
			e.Address,
			e.Phone,
			e.Email,
			e.ContractStart.Format("2006-01-02"),
			e.Salary.InexactFloat64(),
			e.Username,
			string(e.Type),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowIdx)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("report: fila %d: %w", rowIdx, err)
			}
		}
	}

	widths := []float64{6, 28, 30, 14, 28, 12, 14, 16, 16}
	for i, w := range widths {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, colName, colName, w); err != nil {
			return nil, fmt.Errorf("report: ancho de columna %s: %w", colName, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("report: escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
