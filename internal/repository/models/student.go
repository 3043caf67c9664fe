package models

import (
	"database/sql"
	"time"
)

// Student is a row of estudiantes.
type Student struct {
	EstudianteID  string        `db:"estudiante_id"`
	Nombre        string        `db:"nombre"`
	Apellido      string        `db:"apellido"`
	Grado         string        `db:"grado"`
	Edad          sql.NullInt64 `db:"edad"`
	FechaRegistro time.Time     `db:"fecha_registro"`
}
