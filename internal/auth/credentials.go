package auth

// CredentialChecker valida un par usuario/contraseña y devuelve el rol
// asociado. Es una interfaz para poder cambiar la tabla fija por un
// padrón real de usuarios sin tocar el middleware ni el login.
type CredentialChecker interface {
	Verificar(username, password string) (role string, ok bool)
}

// FixedCredentials es la tabla fija de dos cuentas del proyecto
// escolar. No es un modelo de seguridad: es un placeholder hasta tener
// un almacén de usuarios de verdad.
type FixedCredentials struct{}

func (FixedCredentials) Verificar(username, password string) (string, bool) {
	switch {
	case username == "admin" && password == "teclag":
		return "admin", true
	case username == "usuario" && password == "teclag":
		return "user", true
	}
	return "", false
}
