package mocks

// MapSession implementación en memoria de ports.Session para tests.
type MapSession struct {
	Values map[string]interface{}
}

func NewMapSession() *MapSession {
	return &MapSession{Values: make(map[string]interface{})}
}

func (s *MapSession) Get(key string) interface{} {
	return s.Values[key]
}

func (s *MapSession) Set(key string, val interface{}) {
	s.Values[key] = val
}

func (s *MapSession) Delete(key string) {
	delete(s.Values, key)
}
