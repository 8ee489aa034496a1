package ports

// Logger define a interface de logging estruturado usada pelos serviços e
// pela camada de persistência
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	With(args ...any) Logger
}
