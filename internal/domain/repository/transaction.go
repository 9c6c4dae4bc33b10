// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// RepositoryFactory creates repositories bound to a single transaction.
type RepositoryFactory interface {
	NewMessageRepository() MessageRepository
	NewConversationRepository() ConversationRepository
}

// TransactionManager runs application logic inside one database transaction.
// The core only needs it for message send, where the message row and the
// conversation's communication-log mirror must commit together.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
