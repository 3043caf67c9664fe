package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"edu-perfil/internal/domain"
	"edu-perfil/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentConverters(t *testing.T) {
	edad := 9
	now := time.Now().Truncate(time.Second)
	s := &domain.Student{EstudianteID: "EST001", Nombre: "Ana", Apellido: "Pérez", Grado: domain.Grade34, Edad: &edad, FechaRegistro: now}

	m := fromDomainStudent(s)
	assert.True(t, m.Edad.Valid)
	assert.Equal(t, int64(9), m.Edad.Int64)
	assert.Equal(t, "3-4", m.Grado)
	assert.Equal(t, s, toDomainStudent(m))

	s.Edad = nil
	assert.False(t, fromDomainStudent(s).Edad.Valid)
	assert.Nil(t, toDomainStudent(&models.Student{}).Edad)

	assert.Nil(t, toDomainStudent(nil))
	assert.Nil(t, fromDomainStudent(nil))
}

func TestStudentRepository_GetByIDForUpdate(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewStudentRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"estudiante_id", "nombre", "apellido", "grado", "edad", "fecha_registro"}).
		AddRow("EST001", "Ana", "Pérez", "3-4", 9, now)
	mock.ExpectQuery(`SELECT .+ FROM estudiantes WHERE estudiante_id = \$1\s+FOR UPDATE`).
		WithArgs("EST001").
		WillReturnRows(rows)

	student, err := repo.GetByIDForUpdate(context.Background(), "EST001")
	require.NoError(t, err)
	require.NotNil(t, student)
	assert.Equal(t, "Ana", student.Nombre)
	assert.Equal(t, domain.Grade34, student.Grado)
	require.NotNil(t, student.Edad)
	assert.Equal(t, 9, *student.Edad)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepository_GetByIDForUpdate_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`FROM estudiantes`).WithArgs("NOPE").WillReturnError(sql.ErrNoRows)

	student, err := repo.GetByIDForUpdate(context.Background(), "NOPE")
	assert.NoError(t, err)
	assert.Nil(t, student)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepository_Create(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectExec(`INSERT INTO estudiantes .+ ON CONFLICT \(estudiante_id\) DO NOTHING`).
		WithArgs("EST001", "Ana", "Pérez", "3-4", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	student := &domain.Student{EstudianteID: "EST001", Nombre: "Ana", Apellido: "Pérez", Grado: domain.Grade34}
	require.NoError(t, repo.Create(context.Background(), student))
	assert.False(t, student.FechaRegistro.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepository_Create_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectExec(`INSERT INTO estudiantes`).WillReturnError(sql.ErrConnDone)

	err := repo.Create(context.Background(), &domain.Student{EstudianteID: "EST001"})
	assert.ErrorIs(t, err, sql.ErrConnDone)
}
