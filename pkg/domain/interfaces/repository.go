package interfaces

// Repository defines the interface for session state storage
type Repository interface {
	Session() SessionRepository
	Close() error
}
