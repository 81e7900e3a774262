package ports

// Session define el puerto de salida hacia el almacenamiento de sesión del actor.
// *session.Session de fiber cumple este contrato; en tests basta un map.
// Solo lo usan la caché de borradores y la cola de mensajes flash.
type Session interface {
	Get(key string) interface{}
	Set(key string, val interface{})
	Delete(key string)
}
