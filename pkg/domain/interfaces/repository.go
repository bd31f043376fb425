package interfaces

// Repository aggregates the per-entity repositories
type Repository interface {
	Knowledge() KnowledgeRepository
	Session() SessionRepository
	Close() error
}
