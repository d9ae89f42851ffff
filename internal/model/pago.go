package model

import "time"

// Pago is a dated payment owned by exactly one Alumno — table pagos.
// Pagos are append-only: never updated or deleted.
type Pago struct {
	ID       uint      `gorm:"primaryKey"                      json:"id"`
	AlumnoID uint      `gorm:"not null;index"                  json:"alumno_id"`
	Fecha    time.Time `gorm:"type:date;not null"              json:"fecha"`
	Monto    float64   `gorm:"not null"                        json:"monto"`
	Concepto string    `gorm:"type:varchar(100);not null"      json:"concepto"`

	Alumno *Alumno `gorm:"foreignKey:AlumnoID" json:"alumno,omitempty"`
}

// TableName pins the table name.
func (Pago) TableName() string { return "pagos" }
