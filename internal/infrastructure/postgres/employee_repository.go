package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rrhh-console/internal/domain"
	"github.com/jhoicas/rrhh-console/internal/domain/entity"
	"github.com/jhoicas/rrhh-console/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	db Database
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db Database) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

const employeeColumns = `id, name, address, phone, email, contract_start, salary, username, employee_type`

// Create persiste un nuevo empleado y asigna la PK generada sobre la entidad.
func (r *EmployeeRepo) Create(ctx context.Context, emp *entity.Employee) (int64, error) {
	query := `
		INSERT INTO employee (name, address, phone, email, contract_start, salary, username, employee_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	id, err := insertInTx(ctx, r.db, "insertar empleado", query,
		emp.Name, emp.Address, emp.Phone, emp.Email, emp.ContractStart,
		emp.Salary, emp.Username, string(emp.Type),
	)
	if err != nil {
		return 0, err
	}
	emp.ID = id
	return id, nil
}

// GetByID obtiene un empleado por ID. Sin fila → NotFoundError.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employee WHERE id = $1`
	emp, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "empleado"}
		}
		return nil, &domain.PersistenceError{Op: "obtener empleado por id", Err: err}
	}
	return &emp, nil
}

// List devuelve todos los empleados ordenados por nombre.
func (r *EmployeeRepo) List(ctx context.Context) ([]entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employee ORDER BY name`
	return r.queryMany(ctx, "listar empleados", query)
}

// SearchByName busca empleados cuyo nombre contenga el texto dado,
// sin distinguir mayúsculas. Cero coincidencias → lista vacía.
func (r *EmployeeRepo) SearchByName(ctx context.Context, name string) ([]entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employee WHERE name ILIKE $1 ORDER BY name`
	return r.queryMany(ctx, "buscar empleados por nombre", query, "%"+name+"%")
}

// Update actualiza todos los campos de un empleado existente.
// Devuelve filas afectadas (0 si el ID no existe).
func (r *EmployeeRepo) Update(ctx context.Context, emp *entity.Employee) (int64, error) {
	query := `
		UPDATE employee
		SET name = $2, address = $3, phone = $4, email = $5, contract_start = $6,
		    salary = $7, username = $8, employee_type = $9
		WHERE id = $1`
	return execInTx(ctx, r.db, "actualizar empleado", query,
		emp.ID, emp.Name, emp.Address, emp.Phone, emp.Email, emp.ContractStart,
		emp.Salary, emp.Username, string(emp.Type),
	)
}

// Delete elimina físicamente un empleado por ID. Devuelve filas afectadas.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return execInTx(ctx, r.db, "eliminar empleado", `DELETE FROM employee WHERE id = $1`, id)
}

func (r *EmployeeRepo) queryMany(ctx context.Context, op, query string, args ...any) ([]entity.Employee, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, &domain.PersistenceError{Op: op, Err: err}
	}
	defer rows.Close()

	list := make([]entity.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, &domain.PersistenceError{Op: op, Err: err}
		}
		list = append(list, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: op, Err: err}
	}
	return list, nil
}

func scanEmployee(s interface{ Scan(dest ...any) error }) (entity.Employee, error) {
	var emp entity.Employee
	var typ string
	err := s.Scan(&emp.ID, &emp.Name, &emp.Address, &emp.Phone, &emp.Email,
		&emp.ContractStart, &emp.Salary, &emp.Username, &typ)
	if err != nil {
		return entity.Employee{}, err
	}
	emp.Type = entity.EmployeeType(typ)
	return emp, nil
}
