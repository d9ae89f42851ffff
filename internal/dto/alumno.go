package dto

// AlumnoRequest carries every Alumno field for registration and for
// full-replacement edits (partial updates are not supported).
// Fields arrive form-encoded from the club's web front end; JSON
// bodies are accepted too.
type AlumnoRequest struct {
	APaterno      string `form:"apaterno"      json:"apaterno"      binding:"required,max=50"`
	AMaterno      string `form:"apmaterno"     json:"apmaterno"     binding:"required,max=50"`
	Nombre        string `form:"nombre"        json:"nombre"        binding:"required,max=50"`
	FBday         string `form:"fbday"         json:"fbday"         binding:"required"`
	CURP          string `form:"curp"          json:"curp"          binding:"required,max=18"`
	Calle         string `form:"calle"         json:"calle"         binding:"required,max=100"`
	Numero        string `form:"numero"        json:"numero"        binding:"required,max=10"`
	Colonia       string `form:"colonia"       json:"colonia"       binding:"required,max=100"`
	Email         string `form:"email"         json:"email"         binding:"required,email,max=100"`
	Telefono      string `form:"telefono"      json:"telefono"      binding:"required,max=15"`
	NumAfiliacion string `form:"numafiliacion" json:"numafiliacion" binding:"omitempty,max=20"`
	Estatus       string `form:"estatus"       json:"estatus"       binding:"required,max=10"`
}

// AlumnoResponse is the read shape of an Alumno.
type AlumnoResponse struct {
	ID            uint   `json:"id"`
	APaterno      string `json:"apaterno"`
	AMaterno      string `json:"apmaterno"`
	Nombre        string `json:"nombre"`
	FBday         string `json:"fbday"`
	CURP          string `json:"curp"`
	Calle         string `json:"calle"`
	Numero        string `json:"numero"`
	Colonia       string `json:"colonia"`
	Email         string `json:"email"`
	Telefono      string `json:"telefono"`
	NumAfiliacion string `json:"numafiliacion,omitempty"`
	Estatus       string `json:"estatus"`
}
