package model

import "time"

// Alumno is an enrolled club member — table alumnos.
type Alumno struct {
	ID            uint      `gorm:"primaryKey"                         json:"id"`
	APaterno      string    `gorm:"column:apaterno;type:varchar(50);not null"  json:"apaterno"`
	AMaterno      string    `gorm:"column:apmaterno;type:varchar(50);not null" json:"apmaterno"`
	Nombre        string    `gorm:"type:varchar(50);not null"          json:"nombre"`
	FBday         time.Time `gorm:"column:fbday;type:date;not null"    json:"fbday"`
	CURP          string    `gorm:"column:curp;type:varchar(18);uniqueIndex;not null" json:"curp"`
	Calle         string    `gorm:"type:varchar(100);not null"         json:"calle"`
	Numero        string    `gorm:"type:varchar(10);not null"          json:"numero"`
	Colonia       string    `gorm:"type:varchar(100);not null"         json:"colonia"`
	Email         string    `gorm:"type:varchar(100);not null"         json:"email"`
	Telefono      string    `gorm:"type:varchar(15);not null"          json:"telefono"`
	NumAfiliacion *string   `gorm:"column:numafiliacion;type:varchar(20);uniqueIndex" json:"numafiliacion,omitempty"`
	Estatus       string    `gorm:"type:varchar(10);not null"          json:"estatus"`

	Pagos []Pago `gorm:"foreignKey:AlumnoID" json:"pagos,omitempty"`
}

// TableName pins the table name.
func (Alumno) TableName() string { return "alumnos" }

// Member status values as stored in the estatus column.
const (
	EstatusActivo   = "activo"
	EstatusInactivo = "inactivo"
)
