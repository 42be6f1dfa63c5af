package models

// User represents a dashboard operator account managed by the backend
type User struct {
	IDUsuario     int    `json:"id_usuario,omitempty"`
	NombreUsuario string `json:"nombre_usuario"`
	Email         string `json:"email"`
	Rol           string `json:"rol"` // ADMINISTRADOR, VENDEDOR
}
