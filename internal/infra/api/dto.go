package api

import (
	"strings"

	"clinica/internal/domain/entity"
	"clinica/internal/domain/repository"
)

// Wire shapes of the hospital backend. Field names follow its contract
// exactly; mapping to domain entities happens here and nowhere else.

type tipoSeguroDTO struct {
	IDTipoSeguro  int    `json:"idTipoSeguro"`
	NombreSeguro  string `json:"nombreSeguro"`
	TipoCobertura string `json:"tipoCobertura"`
	CoPago        string `json:"coPago"`
}

type historialClinicoDTO struct {
	IDHistorialClinico   int    `json:"idHistorialClinico"`
	CodigoHistoria       string `json:"codigoHistoria"`
	FechaApertura        string `json:"fechaApertura"`
	GrupoSanguineo       string `json:"grupoSanguineo"`
	AlergiasPrincipales  string `json:"alergiasPrincipales"`
	EnfermedadesCronicas string `json:"enfermedadesCronicas"`
	EstadoPacienteActual string `json:"estadoPacienteActual"`
}

type pacienteDTO struct {
	IDPaciente      int                  `json:"idPaciente"`
	DNI             string               `json:"dni"`
	CodigoPaciente  string               `json:"codigoPaciente"`
	Nombres         string               `json:"nombres"`
	Apellidos       string               `json:"apellidos"`
	Edad            int                  `json:"edad"`
	Sexo            string               `json:"sexo"`
	FechaNacimiento string               `json:"fechaNacimiento"`
	Direccion       string               `json:"direccion"`
	Telefono        string               `json:"telefono"`
	Email           string               `json:"email"`
	Seguro          *tipoSeguroDTO       `json:"seguro,omitempty"`
	Historial       *historialClinicoDTO `json:"historial,omitempty"`
}

type pacienteCrearDTO struct {
	DNI             string `json:"dni"`
	Nombres         string `json:"nombres"`
	Apellidos       string `json:"apellidos"`
	Sexo            string `json:"sexo"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Edad            int    `json:"edad"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	IDTipoSeguro    int    `json:"idTipoSeguro"`
	UsuarioRegistro string `json:"usuarioRegistro"`
}

type pacienteActualizarDTO struct {
	IDPaciente          int    `json:"idPaciente"`
	DNI                 string `json:"dni"`
	Nombres             string `json:"nombres"`
	Apellidos           string `json:"apellidos"`
	Sexo                string `json:"sexo"`
	FechaNacimiento     string `json:"fechaNacimiento"`
	Edad                int    `json:"edad"`
	Direccion           string `json:"direccion"`
	Telefono            string `json:"telefono"`
	Email               string `json:"email"`
	IDTipoSeguro        int    `json:"idTipoSeguro"`
	UsuarioModificacion string `json:"usuarioModificacion"`
	MotivoModificacion  string `json:"motivoModificacion"`
}

type pacienteEliminarDTO struct {
	UsuarioEliminacion string `json:"usuarioEliminacion"`
	MotivoEliminacion  string `json:"motivoEliminacion"`
}

type loginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerDTO struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponseDTO struct {
	Token          string `json:"token"`
	Email          string `json:"email"`
	NombreCompleto string `json:"nombreCompleto"`
	Rol            string `json:"rol"`
	Expiracion     string `json:"expiracion"`
}

type forgotPasswordDTO struct {
	Email string `json:"email"`
}

type forgotPasswordResponseDTO struct {
	// Development-mode convenience: the backend hands back the reset token
	// it would otherwise deliver by mail.
	Token string `json:"token"`
}

type resetPasswordDTO struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// dateOnly strips the time portion the backend serializer appends to dates.
func dateOnly(s string) string {
	if idx := strings.IndexByte(s, 'T'); idx >= 0 {
		return s[:idx]
	}

	return s
}

func (d *tipoSeguroDTO) toEntity() *entity.InsuranceType {
	return &entity.InsuranceType{
		ID:           d.IDTipoSeguro,
		Name:         d.NombreSeguro,
		CoverageType: d.TipoCobertura,
		CoPayment:    d.CoPago,
	}
}

func (d *historialClinicoDTO) toEntity() *entity.ClinicalRecord {
	return &entity.ClinicalRecord{
		ID:              d.IDHistorialClinico,
		Code:            d.CodigoHistoria,
		OpenedAt:        dateOnly(d.FechaApertura),
		BloodGroup:      d.GrupoSanguineo,
		MainAllergies:   d.AlergiasPrincipales,
		ChronicDiseases: d.EnfermedadesCronicas,
		CurrentStatus:   d.EstadoPacienteActual,
	}
}

func (d *pacienteDTO) toEntity() *entity.Patient {
	patient := &entity.Patient{
		ID:         d.IDPaciente,
		DNI:        d.DNI,
		Code:       d.CodigoPaciente,
		FirstNames: d.Nombres,
		LastNames:  d.Apellidos,
		Age:        d.Edad,
		Sex:        d.Sexo,
		BirthDate:  dateOnly(d.FechaNacimiento),
		Address:    d.Direccion,
		Phone:      d.Telefono,
		Email:      d.Email,
	}

	if d.Seguro != nil {
		patient.Insurance = d.Seguro.toEntity()
	}
	if d.Historial != nil {
		patient.ClinicalRecord = d.Historial.toEntity()
	}

	return patient
}

func newPacienteCrearDTO(data *repository.PatientWrite, registeredBy string) *pacienteCrearDTO {
	return &pacienteCrearDTO{
		DNI:             data.DNI,
		Nombres:         data.FirstNames,
		Apellidos:       data.LastNames,
		Sexo:            data.Sex,
		FechaNacimiento: data.BirthDate,
		Edad:            data.Age,
		Direccion:       data.Address,
		Telefono:        data.Phone,
		Email:           data.Email,
		IDTipoSeguro:    data.InsuranceTypeID,
		UsuarioRegistro: registeredBy,
	}
}

func newPacienteActualizarDTO(id int, data *repository.PatientWrite, audit repository.PatientAudit) *pacienteActualizarDTO {
	return &pacienteActualizarDTO{
		IDPaciente:          id,
		DNI:                 data.DNI,
		Nombres:             data.FirstNames,
		Apellidos:           data.LastNames,
		Sexo:                data.Sex,
		FechaNacimiento:     data.BirthDate,
		Edad:                data.Age,
		Direccion:           data.Address,
		Telefono:            data.Phone,
		Email:               data.Email,
		IDTipoSeguro:        data.InsuranceTypeID,
		UsuarioModificacion: audit.User,
		MotivoModificacion:  audit.Reason,
	}
}
