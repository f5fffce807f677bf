package repository

import "context"

// RepositoryFactory creates repositories bound to a single transaction.
type RepositoryFactory interface {
	NewDocumentRepository() DocumentRepository
}

// TransactionManager runs a unit of work atomically.
type TransactionManager interface {
	// Execute runs fn in one transaction; it commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
