package graphql

import (
	"context"
	"sync"

	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/dto"
	apierrors "github.com/dsc-protocol/dsc-indexer/internal/api/shared/errors"
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/executor"
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/types"
)

// Resolver is the root resolver that holds executor
type Resolver struct {
	executor executor.Executor
}

// NewResolver creates a new root resolver with executor
func NewResolver(exec executor.Executor) *Resolver {
	return &Resolver{
		executor: exec,
	}
}

type userLoaderKey struct{}

// userLoader loads each user at most once per operation.
// Interactions of the same user share the lookup
type userLoader struct {
	exec executor.Executor

	mu    sync.Mutex
	users map[string]*userEntry
}

type userEntry struct {
	once sync.Once
	user *dto.UserResponse
	err  error
}

// withUserLoader attaches a fresh user loader to an operation context
func (r *Resolver) withUserLoader(ctx context.Context) context.Context {
	return context.WithValue(ctx, userLoaderKey{}, &userLoader{
		exec:  r.executor,
		users: make(map[string]*userEntry),
	})
}

func (l *userLoader) entry(address string) *userEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.users[address]
	if !ok {
		e = &userEntry{}
		l.users[address] = e
	}
	return e
}

func (l *userLoader) load(ctx context.Context, address string) (*dto.UserResponse, error) {
	e := l.entry(address)
	e.once.Do(func() {
		e.user, e.err = l.exec.GetUser(ctx, address)
	})
	return e.user, e.err
}

// prime records a user already fetched by a list query
func (l *userLoader) prime(user *dto.UserResponse) {
	e := l.entry(user.ID)
	e.once.Do(func() {
		e.user = user
	})
}

func (r *Resolver) loadUser(ctx context.Context, address string) (*dto.UserResponse, error) {
	if l, ok := ctx.Value(userLoaderKey{}).(*userLoader); ok {
		return l.load(ctx, address)
	}
	return r.executor.GetUser(ctx, address)
}

func (r *Resolver) primeUsers(ctx context.Context, users []*dto.UserResponse) {
	l, ok := ctx.Value(userLoaderKey{}).(*userLoader)
	if !ok {
		return
	}
	for _, u := range users {
		l.prime(u)
	}
}

// interactionUser resolves the owner of an interaction, which always exists once the interaction is stored
func (r *Resolver) interactionUser(ctx context.Context, obj *dto.InteractionResponse) (*dto.UserResponse, error) {
	user, err := r.loadUser(ctx, obj.User)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierrors.NewNotFoundError("User not found", obj.User)
	}
	return user, nil
}

func (r *Resolver) interactions(ctx context.Context, kind types.InteractionKind, q dto.InteractionQuery) ([]*dto.InteractionResponse, error) {
	list, err := r.executor.ListInteractions(ctx, kind, q)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InteractionResponse, len(list.Interactions))
	for i := range list.Interactions {
		out[i] = &list.Interactions[i]
	}
	return out, nil
}

// queryInteractions serves the four top level interaction collections
func (r *Resolver) queryInteractions(ctx context.Context, kind types.InteractionKind, first, skip *int, orderBy *InteractionOrderBy, orderDirection *OrderDirection, where *InteractionFilter) ([]*dto.InteractionResponse, error) {
	q, err := interactionQuery(first, skip, orderBy, orderDirection, where)
	if err != nil {
		return nil, err
	}
	return r.interactions(ctx, kind, q)
}

// userInteractions serves the derived collections of a user
func (r *Resolver) userInteractions(ctx context.Context, kind types.InteractionKind, user *dto.UserResponse, first, skip *int, orderBy *InteractionOrderBy, orderDirection *OrderDirection) ([]*dto.InteractionResponse, error) {
	q, err := interactionQuery(first, skip, orderBy, orderDirection, nil)
	if err != nil {
		return nil, err
	}
	address := user.ID
	q.User = &address
	return r.interactions(ctx, kind, q)
}
