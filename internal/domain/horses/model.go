package horses

// Horse es el perfil estático del paciente. No se modifica durante la sesión.
type Horse struct {
	ID             string
	Name           string
	Age            int
	Discipline     string
	StableLocation string
}
