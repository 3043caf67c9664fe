package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"edu-perfil/internal/domain"
	"edu-perfil/internal/repository/models"
)

type sqlxStudentRepository struct {
	db DBTX
}

// NewStudentRepository returns a domain.StudentRepository backed by estudiantes.
func NewStudentRepository(db DBTX) domain.StudentRepository {
	return &sqlxStudentRepository{db: db}
}

// GetByIDForUpdate reads the student and row-locks it until the surrounding
// transaction ends.
func (r *sqlxStudentRepository) GetByIDForUpdate(ctx context.Context, studentID string) (*domain.Student, error) {
	var m models.Student
	query := `SELECT estudiante_id, nombre, apellido, grado, edad, fecha_registro
	          FROM estudiantes WHERE estudiante_id = $1
	          FOR UPDATE`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student %s: %w", studentID, err)
	}
	return toDomainStudent(&m), nil
}

// Create inserts the student; an existing row with the same id is left untouched.
func (r *sqlxStudentRepository) Create(ctx context.Context, student *domain.Student) error {
	if student.FechaRegistro.IsZero() {
		student.FechaRegistro = time.Now()
	}
	query := `INSERT INTO estudiantes (estudiante_id, nombre, apellido, grado, edad, fecha_registro)
	          VALUES (:estudiante_id, :nombre, :apellido, :grado, :edad, :fecha_registro)
	          ON CONFLICT (estudiante_id) DO NOTHING`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainStudent(student)); err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func toDomainStudent(m *models.Student) *domain.Student {
	if m == nil {
		return nil
	}
	s := &domain.Student{
		EstudianteID:  m.EstudianteID,
		Nombre:        m.Nombre,
		Apellido:      m.Apellido,
		Grado:         domain.Grade(m.Grado),
		FechaRegistro: m.FechaRegistro,
	}
	if m.Edad.Valid {
		edad := int(m.Edad.Int64)
		s.Edad = &edad
	}
	return s
}

func fromDomainStudent(s *domain.Student) *models.Student {
	if s == nil {
		return nil
	}
	m := &models.Student{
		EstudianteID:  s.EstudianteID,
		Nombre:        s.Nombre,
		Apellido:      s.Apellido,
		Grado:         string(s.Grado),
		FechaRegistro: s.FechaRegistro,
	}
	if s.Edad != nil {
		m.Edad = sql.NullInt64{Int64: int64(*s.Edad), Valid: true}
	}
	return m
}
