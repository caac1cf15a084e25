package graphql

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"go.uber.org/zap"

	"github.com/dsc-protocol/dsc-indexer/internal/api/middleware"
	apierrors "github.com/dsc-protocol/dsc-indexer/internal/api/shared/errors"
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/executor"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
)

// Handler defines the interface for GraphQL API handlers
type Handler interface {
	// HandleGraphQL handles GraphQL requests
	HandleGraphQL(c *gin.Context)

	// HandlePlayground serves the GraphQL Playground
	HandlePlayground(c *gin.Context)
}

type ginContextKey struct{}

// gqlHandler implements the Handler interface using gqlgen
type gqlHandler struct {
	server   *handler.Server
	resolver *Resolver
	auth     *middleware.Authenticator
}

// NewHandler creates a new GraphQL handler with gqlgen.
// Queries are public, mutations need a JWT or an API key
func NewHandler(exec executor.Executor, auth *middleware.Authenticator) (Handler, error) {
	// Create resolver with executor
	resolver := NewResolver(exec)

	// Create executable schema
	config := Config{Resolvers: resolver}
	schema := NewExecutableSchema(config)

	// Create gqlgen server with custom error presenter
	srv := handler.NewDefaultServer(schema)
	srv.SetErrorPresenter(ErrorPresenter)
	srv.SetRecoverFunc(RecoverFunc)

	h := &gqlHandler{
		server:   srv,
		resolver: resolver,
		auth:     auth,
	}

	// Authentication for mutations, then a user loader per operation
	srv.AroundOperations(h.authMiddleware)
	srv.AroundOperations(h.loaderMiddleware)
	srv.AroundResponses(h.cacheMiddleware)

	return h, nil
}

// authMiddleware authenticates GraphQL mutations using the shared authentication logic
func (h *gqlHandler) authMiddleware(ctx context.Context, next graphql.OperationHandler) graphql.ResponseHandler {
	opctx := graphql.GetOperationContext(ctx)
	if opctx.Operation == nil || opctx.Operation.Operation != ast.Mutation {
		return next(ctx)
	}

	mutationName := ""
	for _, selection := range opctx.Operation.SelectionSet {
		if field, ok := selection.(*ast.Field); ok {
			mutationName = field.Name
			break
		}
	}

	if h.auth == nil {
		logger.WarnCtx(ctx, "GraphQL mutation rejected, authentication is not configured",
			zap.String("operation", mutationName),
		)
		return unauthorized
	}

	// Get Authorization header from the HTTP request
	authHeader := ""
	if opctx.Headers != nil {
		authHeader = opctx.Headers.Get("Authorization")
	}

	result := h.auth.Authenticate(authHeader)
	if !result.Success {
		logger.WarnCtx(ctx, "GraphQL mutation authentication failed",
			zap.Error(result.Error),
			zap.String("operation", mutationName),
		)
		return unauthorized
	}

	// Store authentication info in context for resolvers to access
	ctx = context.WithValue(ctx, middleware.AUTH_TYPE_KEY, result.AuthType)
	if result.Claims != nil {
		ctx = context.WithValue(ctx, middleware.JWT_CLAIMS_KEY, result.Claims)
	}
	if result.AuthSubject != "" {
		ctx = context.WithValue(ctx, middleware.AUTH_SUBJECT_KEY, result.AuthSubject)
	}

	logger.DebugCtx(ctx, "GraphQL mutation authentication successful",
		zap.String("operation", mutationName),
		zap.String("auth_type", result.AuthType),
	)

	return next(ctx)
}

// unauthorized answers a rejected mutation with data null and an UNAUTHORIZED error
func unauthorized(ctx context.Context) *graphql.Response {
	return &graphql.Response{
		Errors: gqlerror.List{ErrorPresenter(ctx, apierrors.NewUnauthorizedError("Authentication required for this mutation"))},
	}
}

func (h *gqlHandler) loaderMiddleware(ctx context.Context, next graphql.OperationHandler) graphql.ResponseHandler {
	return next(h.resolver.withUserLoader(ctx))
}

// cacheMiddleware keeps mutations and partial failures out of the response cache
func (h *gqlHandler) cacheMiddleware(ctx context.Context, next graphql.ResponseHandler) *graphql.Response {
	resp := next(ctx)

	c, ok := ctx.Value(ginContextKey{}).(*gin.Context)
	if !ok {
		return resp
	}

	opctx := graphql.GetOperationContext(ctx)
	if opctx.Operation != nil && opctx.Operation.Operation == ast.Mutation {
		middleware.SkipCache(c)
	}
	if resp != nil && len(resp.Errors) > 0 {
		middleware.SkipCache(c)
	}
	return resp
}

// HandleGraphQL processes GraphQL queries and mutations
func (h *gqlHandler) HandleGraphQL(c *gin.Context) {
	ctx := context.WithValue(c.Request.Context(), ginContextKey{}, c)
	h.server.ServeHTTP(c.Writer, c.Request.WithContext(ctx))
}

// HandlePlayground serves the GraphQL Playground interface
func (h *gqlHandler) HandlePlayground(c *gin.Context) {
	playground.Handler("DSC Indexer GraphQL Playground", "/graphql").ServeHTTP(c.Writer, c.Request)
}

// SetupRoutes configures GraphQL API routes
func SetupRoutes(router gin.IRouter, handler Handler) {
	// GraphQL endpoint (POST for queries/mutations)
	router.POST("/graphql", handler.HandleGraphQL)

	// GraphQL Playground (GET for interactive IDE)
	router.GET("/graphql/playground", handler.HandlePlayground)
}
