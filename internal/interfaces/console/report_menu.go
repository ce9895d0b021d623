package console

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/rrhh-console/internal/domain/entity"
)

func (c *Console) reportMenu(ctx context.Context) error {
	for {
		c.printf("\n--- Informes ---\n")
		c.printf("1. Nómina de empleados\n0. Volver\n")
		opt, err := c.prompt("Opción: ")
		if err != nil {
			return err
		}
		switch opt {
		case "1":
			formatStr, err := c.prompt("Formato (pdf/excel/csv): ")
			if err != nil {
				return err
			}
			format, err := entity.ParseReportFormat(formatStr)
			if err != nil {
				c.reportError("report.format", err)
				continue
			}
			employees, err := c.employees.List(ctx)
			if err != nil {
				c.reportError("report.employees", err)
				continue
			}
			data, ext, err := c.exporter.Export(format, employees)
			if err != nil {
				c.reportError("report.export", err)
				continue
			}
			name := fmt.Sprintf("nomina_%s.%s", time.Now().Format("20060102_150405"), ext)
			if err := os.WriteFile(name, data, 0o644); err != nil {
				c.reportError("report.write", err)
				continue
			}
			c.log.Info().Str("file", name).Int("bytes", len(data)).Msg("informe generado")
			c.printf("Informe generado: %s (%d bytes)\n", name, len(data))
		case "0":
			return nil
		default:
			c.printf("Opción inválida.\n")
		}
	}
}
