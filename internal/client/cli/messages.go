package cli

// User-facing strings. The backend and its web client speak Spanish; the CLI
// keeps the same voice so both frontends feel like one product.
const (
	msgWelcome        = "Superhéroes App (escribe 'help' para ver los comandos)"
	msgRegisterOK     = "Cuenta creada. Inicia sesión con 'login'."
	msgRegisterFailed = "Error al crear la cuenta. Intenta nuevamente."
	msgLoginFailed    = "No se pudo iniciar sesión. Intenta nuevamente."
	msgLogoutOK       = "Sesión cerrada."
	msgLogoutFailed   = "No se pudo cerrar la sesión. Intenta nuevamente."
	msgPleaseLogin    = "Necesitas iniciar sesión para ver esta sección."
	msgSessionExpired = "Tu sesión expiró. Inicia sesión de nuevo."
	msgGalleryTitle   = "Galería de Superhéroes"
	msgGalleryFailed  = "No se pudieron cargar los superheroes"
	msgGalleryEmpty   = "No hay superhéroes para mostrar."
	msgReloadHint     = "Escribe 'reload' para recargar."
	msgGoodbye        = "¡Hasta luego!"
)
