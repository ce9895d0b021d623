package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rrhh-console/internal/domain"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
)

func TestParseEmployeeType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    entity.EmployeeType
		wantErr bool
	}{
		{"Empleado", entity.EmployeeStandard, false},
		{"empleado", entity.EmployeeStandard, false},
		{"GERENTE", entity.EmployeeManager, false},
		{"  administrativo  ", entity.EmployeeAdministrative, false},
		{"becario", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		got, err := entity.ParseEmployeeType(tc.input)
		if tc.wantErr {
			assert.ErrorIs(t, err, domain.ErrValidation, "entrada %q", tc.input)
			continue
		}
		require.NoError(t, err, "entrada %q", tc.input)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseDepartmentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    entity.DepartmentType
		wantErr bool
	}{
		{"Ventas", entity.DeptSales, false},
		{"ventas", entity.DeptSales, false},
		{"desarrollo sostenible", entity.DeptSustainableDev, false},
		{"RECURSOS HUMANOS", entity.DeptHumanResources, false},
		{"Investigacion", entity.DeptResearch, false},
		{"Marketing", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		got, err := entity.ParseDepartmentType(tc.input)
		if tc.wantErr {
			assert.ErrorIs(t, err, domain.ErrValidation, "entrada %q", tc.input)
			continue
		}
		require.NoError(t, err, "entrada %q", tc.input)
		assert.Equal(t, tc.want, got)
	}
}

func TestDepartmentTypeValues(t *testing.T) {
	t.Parallel()

	got := entity.DepartmentTypeValues()
	assert.Equal(t, []string{
		"Desarrollo Sostenible", "Investigacion", "Desarrollo", "Ventas", "Recursos Humanos",
	}, got)
}

func TestProjectAssignUnassign(t *testing.T) {
	t.Parallel()

	p := &entity.Project{ID: 1, Name: "Migración"}
	ana := entity.Employee{ID: 10, Name: "Ana Díaz"}
	juan := entity.Employee{ID: 20, Name: "Juan Pérez"}

	assert.True(t, p.Assign(ana))
	assert.True(t, p.Assign(juan))
	// asignación repetida es no-op
	assert.False(t, p.Assign(ana))
	assert.Len(t, p.Assigned, 2)
	assert.True(t, p.IsAssigned(10))

	assert.True(t, p.Unassign(10))
	assert.False(t, p.Unassign(10))
	assert.False(t, p.IsAssigned(10))
	assert.Len(t, p.Assigned, 1)
}

func TestParseReportFormat(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]entity.ReportFormat{
		"pdf":   entity.ReportPDF,
		"PDF":   entity.ReportPDF,
		"excel": entity.ReportExcel,
		"csv":   entity.ReportCSV,
	} {
		got, err := entity.ParseReportFormat(input)
		require.NoError(t, err, "entrada %q", input)
		assert.Equal(t, want, got)
	}

	_, err := entity.ParseReportFormat("word")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserIsAdmin(t *testing.T) {
	t.Parallel()

	assert.True(t, entity.User{Role: entity.RoleAdmin}.IsAdmin())
	assert.False(t, entity.User{Role: entity.RoleUsuario}.IsAdmin())
}
