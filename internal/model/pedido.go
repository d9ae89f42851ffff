package model

import "time"

// Pedido is a merchandise order — table pedidos. It has no link to an
// Alumno; the requester is captured by name only.
type Pedido struct {
	ID           uint        `gorm:"primaryKey"                     json:"id"`
	Fecha        time.Time   `gorm:"type:date;not null"             json:"fecha"`
	Solicitante  string      `gorm:"type:varchar(100);not null"     json:"solicitante"`
	TipoProducto string      `gorm:"type:varchar(30);not null"      json:"tipo_producto"`
	Tallas       StringArray `gorm:"type:text[];not null"           json:"tallas"`
	Color        *string     `gorm:"type:varchar(30)"               json:"color,omitempty"`
	Cantidad     int         `gorm:"not null"                       json:"cantidad"`
	CostoTotal   float64     `gorm:"column:costo_total;not null"    json:"costo_total"`
}

// TableName pins the table name.
func (Pedido) TableName() string { return "pedidos" }
