package graphql_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsc-protocol/dsc-indexer/internal/api/graphql"
	"github.com/dsc-protocol/dsc-indexer/internal/api/middleware"
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/dto"
	apierrors "github.com/dsc-protocol/dsc-indexer/internal/api/shared/errors"
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/types"
	"github.com/dsc-protocol/dsc-indexer/internal/mocks"
)

const alice = "0x00000000000000000000000000000000000a11ce"

func init() {
	gin.SetMode(gin.TestMode)
}

type gqlError struct {
	Message    string                 `json:"message"`
	Path       []interface{}          `json:"path"`
	Locations  []map[string]int       `json:"locations"`
	Extensions map[string]interface{} `json:"extensions"`
}

type gqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

func newRouter(t *testing.T, exec *mocks.MockAPIExecutor) *gin.Engine {
	t.Helper()
	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{APIKeys: []string{"secret"}})
	require.NoError(t, err)

	h, err := graphql.NewHandler(exec, auth)
	require.NoError(t, err)

	r := gin.New()
	graphql.SetupRoutes(r, h)
	return r
}

func post(t *testing.T, r http.Handler, params gqlRequest, header ...string) (*httptest.ResponseRecorder, gqlResponse) {
	t.Helper()
	body, err := json.Marshal(params)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if len(header) == 2 {
		req.Header.Set(header[0], header[1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp gqlResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func aliceUser() *dto.UserResponse {
	return &dto.UserResponse{
		ID:                        alice,
		TotalDeposited:            "3000",
		TotalMinted:               "1500",
		TotalBurned:               "0",
		FirstInteractionTimestamp: "1719792000",
		LastInteractionTimestamp:  "1719800000",
	}
}

func TestDashboardQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	exec := mocks.NewMockAPIExecutor(ctrl)

	exec.EXPECT().GetProtocolStats(gomock.Any(), "1").Return(&dto.ProtocolStatsResponse{
		ID:                   "1",
		TotalMintVolume:      "1500",
		TotalBurnVolume:      "500",
		TotalNetMinted:       "1000",
		TotalCollateral:      "3000",
		TotalUsers:           "2",
		LastUpdatedTimestamp: "1719800000",
	}, nil)
	exec.EXPECT().GetMonthlyStats(gomock.Any(), "2024-07").Return(&dto.MonthlyStatsResponse{
		ID:         "2024-07",
		Year:       2024,
		Month:      7,
		MintVolume: "1500",
		NewUsers:   "2",
	}, nil)
	exec.EXPECT().GetMonthlyStats(gomock.Any(), "2024-06").Return(nil, nil)

	w, resp := post(t, newRouter(t, exec), gqlRequest{Query: `
		query Dashboard {
			protocolStats(id: "1") { id totalNetMinted totalUsers }
			month0: monthlyStats(id: "2024-07") { ...Month }
			month1: monthlyStats(id: "2024-06") { ...Month }
		}
		fragment Month on MonthlyStats { id year month mintVolume newUsers __typename }
	`})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Errors)
	assert.JSONEq(t, `{
		"protocolStats": {"id": "1", "totalNetMinted": "1000", "totalUsers": "2"},
		"month0": {"id": "2024-07", "year": 2024, "month": 7, "mintVolume": "1500", "newUsers": "2", "__typename": "MonthlyStats"},
		"month1": null
	}`, string(resp.Data))
}

func TestInteractionsWithVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	exec := mocks.NewMockAPIExecutor(ctrl)

	weth := "0x00000000000000000000000000000000000000e7"
	exec.EXPECT().ListInteractions(gomock.Any(), types.InteractionDeposit, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ types.InteractionKind, q dto.InteractionQuery) (*dto.InteractionListResponse, error) {
			require.NotNil(t, q.Limit)
			assert.Equal(t, 2, *q.Limit)
			assert.Nil(t, q.Offset)
			require.NotNil(t, q.OrderDirection)
			assert.Equal(t, types.OrderDesc, *q.OrderDirection)
			require.NotNil(t, q.User)
			assert.Equal(t, alice, *q.User)
			require.NotNil(t, q.TimestampGte)
			assert.Equal(t, int64(100), *q.TimestampGte)
			assert.Nil(t, q.TimestampLte)

			return &dto.InteractionListResponse{Interactions: []dto.InteractionResponse{
				{ID: "0xaa-1", User: alice, Token: &weth, Amount: "2000", Timestamp: "1719800000", BlockNumber: "12", TransactionHash: "0xaa"},
				{ID: "0xbb-0", User: alice, Token: &weth, Amount: "1000", Timestamp: "1719792000", BlockNumber: "10", TransactionHash: "0xbb"},
			}}, nil
		})
	// both deposits share one user lookup
	exec.EXPECT().GetUser(gomock.Any(), alice).Return(aliceUser(), nil).Times(1)

	_, resp := post(t, newRouter(t, exec), gqlRequest{
		Query: `query Deposits($first: Int, $where: Interaction_filter) {
			collateralDeposits(first: $first, orderDirection: desc, where: $where) {
				id token amount blockNumber
				user { id totalDeposited }
			}
		}`,
		Variables: map[string]interface{}{
			"first": 2,
			"where": map[string]interface{}{"user": alice, "timestamp_gte": "100"},
		},
	})

	assert.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"collateralDeposits": [
		{"id": "0xaa-1", "token": "`+weth+`", "amount": "2000", "blockNumber": "12", "user": {"id": "`+alice+`", "totalDeposited": "3000"}},
		{"id": "0xbb-0", "token": "`+weth+`", "amount": "1000", "blockNumber": "10", "user": {"id": "`+alice+`", "totalDeposited": "3000"}}
	]}`, string(resp.Data))
}

func TestUserDerivedCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	exec := mocks.NewMockAPIExecutor(ctrl)

	exec.EXPECT().GetUser(gomock.Any(), alice).Return(aliceUser(), nil)
	exec.EXPECT().ListInteractions(gomock.Any(), types.InteractionMint, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ types.InteractionKind, q dto.InteractionQuery) (*dto.InteractionListResponse, error) {
			require.NotNil(t, q.User)
			assert.Equal(t, alice, *q.User)
			require.NotNil(t, q.Limit)
			assert.Equal(t, 1, *q.Limit)
			require.NotNil(t, q.OrderBy)
			assert.Equal(t, types.InteractionOrderByAmount, *q.OrderBy)
			return &dto.InteractionListResponse{Interactions: []dto.InteractionResponse{
				{ID: "0xcc-0", User: alice, Amount: "1500", Timestamp: "1719792000", BlockNumber: "10", TransactionHash: "0xcc"},
			}}, nil
		})

	_, resp := post(t, newRouter(t, exec), gqlRequest{Query: `{
		user(id: "` + alice + `") {
			id totalMinted
			mints(first: 1, orderBy: amount) { amount user { id } }
			burns @skip(if: true) { id }
		}
	}`})

	assert.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"user": {
		"id": "`+alice+`",
		"totalMinted": "1500",
		"mints": [{"amount": "1500", "user": {"id": "`+alice+`"}}]
	}}`, string(resp.Data))
}

func TestSkipAndIncludeVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	exec := mocks.NewMockAPIExecutor(ctrl)

	exec.EXPECT().GetProtocolStats(gomock.Any(), "1").Return(&dto.ProtocolStatsResponse{ID: "1", TotalUsers: "7"}, nil)

	_, resp := post(t, newRouter(t, exec), gqlRequest{
		Query: `query($withStats: Boolean!, $withUsers: Boolean!) {
			protocolStats(id: "1") @include(if: $withStats) { totalUsers }
			users @include(if: $withUsers) { id }
		}`,
		Variables: map[string]interface{}{"withStats": true, "withUsers": false},
	})

	assert.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"protocolStats": {"totalUsers": "7"}}`, string(resp.Data))
}

func TestFieldErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	exec := mocks.NewMockAPIExecutor(ctrl)

	exec.EXPECT().GetMonthlyStats(gomock.Any(), "2024-13").Return(nil, apierrors.NewValidationError("invalid month id"))
	exec.EXPECT().GetProtocolStats(gomock.Any(), "1").Return(nil, apierrors.NewDatabaseError("Failed to get protocol stats", "connection refused"))
	exec.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Return(nil, apierrors.NewValidationError("limit must be between 0 and 1000"))

	t.Run("nullable fields report their own error", func(t *testing.T) {
		_, resp := post(t, newRouter(t, exec), gqlRequest{Query: `{
			bad: monthlyStats(id: "2024-13") { id }
			protocolStats(id: "1") { id }
		}`})

		assert.JSONEq(t, `{"bad": null, "protocolStats": null}`, string(resp.Data))
		require.Len(t, resp.Errors, 2)

		byPath := map[string]gqlError{}
		for _, e := range resp.Errors {
			require.Len(t, e.Path, 1)
			byPath[e.Path[0].(string)] = e
		}

		bad, ok := byPath["bad"]
		require.True(t, ok)
		assert.Equal(t, string(apierrors.ErrCodeValidationFailed), bad.Extensions["code"])
		assert.Equal(t, "Validation failed: invalid month id", bad.Message)
		assert.NotEmpty(t, bad.Locations)

		// server side failures are masked
		stats, ok := byPath["protocolStats"]
		require.True(t, ok)
		assert.Equal(t, string(apierrors.ErrCodeInternalError), stats.Extensions["code"])
		assert.NotContains(t, stats.Message, "connection refused")
	})

	t.Run("non-null list nulls the data", func(t *testing.T) {
		_, resp := post(t, newRouter(t, exec), gqlRequest{Query: `{ users(first: 5000) { id } }`})

		assert.JSONEq(t, `null`, string(resp.Data))
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, []interface{}{"users"}, resp.Errors[0].Path)
		assert.Equal(t, string(apierrors.ErrCodeValidationFailed), resp.Errors[0].Extensions["code"])
	})
}

func TestInvalidDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := newRouter(t, mocks.NewMockAPIExecutor(ctrl))

	tests := []struct {
		name   string
		params gqlRequest
	}{
		{name: "syntax error", params: gqlRequest{Query: `{ protocolStats(id: "1") { id }`}},
		{name: "unknown field", params: gqlRequest{Query: `{ tokens { id } }`}},
		{name: "missing argument", params: gqlRequest{Query: `{ protocolStats { id } }`}},
		{name: "bad variable", params: gqlRequest{
			Query:     `query($first: Int) { users(first: $first) { id } }`,
			Variables: map[string]interface{}{"first": "many"},
		}},
		{name: "unknown operation", params: gqlRequest{Query: `query A { users { id } }`, OperationName: "B"}},
		{name: "empty", params: gqlRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := post(t, r, tt.params)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.NotEmpty(t, resp.Errors)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	exec := mocks.NewMockAPIExecutor(ctrl)
	r := newRouter(t, exec)

	backfill := `mutation { triggerBackfill(fromBlock: "100", chunkSize: 50) { workflowId runId } }`

	t.Run("requires authentication", func(t *testing.T) {
		_, resp := post(t, r, gqlRequest{Query: backfill})
		assert.JSONEq(t, `null`, string(resp.Data))
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, string(apierrors.ErrCodeUnauthorized), resp.Errors[0].Extensions["code"])
	})

	t.Run("rejects a wrong key", func(t *testing.T) {
		_, resp := post(t, r, gqlRequest{Query: backfill}, "Authorization", "ApiKey wrong")
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, string(apierrors.ErrCodeUnauthorized), resp.Errors[0].Extensions["code"])
	})

	t.Run("backfill", func(t *testing.T) {
		exec.EXPECT().TriggerBackfill(gomock.Any(), dto.TriggerBackfillRequest{FromBlock: 100, ChunkSize: 50}).
			Return(&dto.WorkflowRunResponse{WorkflowID: "backfill-1", RunID: "run-1"}, nil)

		_, resp := post(t, r, gqlRequest{Query: backfill}, "Authorization", "ApiKey secret")
		assert.Empty(t, resp.Errors)
		assert.JSONEq(t, `{"triggerBackfill": {"workflowId": "backfill-1", "runId": "run-1"}}`, string(resp.Data))
	})

	t.Run("audit", func(t *testing.T) {
		exec.EXPECT().TriggerAudit(gomock.Any()).Return(&dto.WorkflowRunResponse{WorkflowID: "audit-1", RunID: "run-2"}, nil)

		_, resp := post(t, r, gqlRequest{Query: `mutation { triggerAudit { workflowId } }`}, "Authorization", "ApiKey secret")
		assert.Empty(t, resp.Errors)
		assert.JSONEq(t, `{"triggerAudit": {"workflowId": "audit-1"}}`, string(resp.Data))
	})

	t.Run("negative block", func(t *testing.T) {
		_, resp := post(t, r, gqlRequest{Query: `mutation { triggerBackfill(fromBlock: "-1") { runId } }`}, "Authorization", "ApiKey secret")
		assert.JSONEq(t, `null`, string(resp.Data))
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, string(apierrors.ErrCodeValidationFailed), resp.Errors[0].Extensions["code"])
	})
}

func TestCacheSkipping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	exec := mocks.NewMockAPIExecutor(ctrl)

	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{APIKeys: []string{"secret"}})
	require.NoError(t, err)
	h, err := graphql.NewHandler(exec, auth)
	require.NoError(t, err)

	var skipped bool
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Next()
		skipped = c.GetBool(middleware.SKIP_CACHE_KEY)
	})
	graphql.SetupRoutes(r, h)

	t.Run("successful query is cacheable", func(t *testing.T) {
		exec.EXPECT().GetProtocolStats(gomock.Any(), "1").Return(&dto.ProtocolStatsResponse{ID: "1"}, nil)

		_, resp := post(t, r, gqlRequest{Query: `{ protocolStats(id: "1") { id } }`})
		assert.Empty(t, resp.Errors)
		assert.False(t, skipped)
	})

	t.Run("partial failure is not cached", func(t *testing.T) {
		exec.EXPECT().GetMonthlyStats(gomock.Any(), "2024-13").Return(nil, apierrors.NewValidationError("invalid month id"))

		_, resp := post(t, r, gqlRequest{Query: `{ monthlyStats(id: "2024-13") { id } }`})
		assert.NotEmpty(t, resp.Errors)
		assert.True(t, skipped)
	})

	t.Run("mutation is not cached", func(t *testing.T) {
		exec.EXPECT().TriggerAudit(gomock.Any()).Return(&dto.WorkflowRunResponse{WorkflowID: "audit-1"}, nil)

		_, resp := post(t, r, gqlRequest{Query: `mutation { triggerAudit { workflowId } }`}, "Authorization", "ApiKey secret")
		assert.Empty(t, resp.Errors)
		assert.True(t, skipped)
	})
}

func TestIntrospection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := newRouter(t, mocks.NewMockAPIExecutor(ctrl))

	t.Run("schema roots", func(t *testing.T) {
		_, resp := post(t, r, gqlRequest{Query: `{ __schema { queryType { name } mutationType { name } subscriptionType { name } } }`})
		assert.Empty(t, resp.Errors)
		assert.JSONEq(t, `{"__schema": {
			"queryType": {"name": "Query"},
			"mutationType": {"name": "Mutation"},
			"subscriptionType": null
		}}`, string(resp.Data))
	})

	t.Run("type fields", func(t *testing.T) {
		_, resp := post(t, r, gqlRequest{Query: `{
			__type(name: "CollateralRedemption") {
				kind
				name
				fields { name type { kind name ofType { kind name } } }
			}
		}`})
		assert.Empty(t, resp.Errors)

		var data struct {
			Type struct {
				Kind   string `json:"kind"`
				Name   string `json:"name"`
				Fields []struct {
					Name string `json:"name"`
					Type struct {
						Kind   string  `json:"kind"`
						Name   *string `json:"name"`
						OfType *struct {
							Kind string `json:"kind"`
							Name string `json:"name"`
						} `json:"ofType"`
					} `json:"type"`
				} `json:"fields"`
			} `json:"__type"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))

		assert.Equal(t, "OBJECT", data.Type.Kind)
		assert.Equal(t, "CollateralRedemption", data.Type.Name)
		require.NotEmpty(t, data.Type.Fields)

		byName := map[string]int{}
		for i, f := range data.Type.Fields {
			byName[f.Name] = i
		}

		id := data.Type.Fields[byName["id"]]
		assert.Equal(t, "NON_NULL", id.Type.Kind)
		assert.Nil(t, id.Type.Name)
		require.NotNil(t, id.Type.OfType)
		assert.Equal(t, "SCALAR", id.Type.OfType.Kind)
		assert.Equal(t, "ID", id.Type.OfType.Name)

		recipient := data.Type.Fields[byName["recipient"]]
		assert.Equal(t, "SCALAR", recipient.Type.Kind)
		require.NotNil(t, recipient.Type.Name)
		assert.Equal(t, "String", *recipient.Type.Name)
		assert.Nil(t, recipient.Type.OfType)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, resp := post(t, r, gqlRequest{Query: `{ __type(name: "Token") { name } }`})
		assert.Empty(t, resp.Errors)
		assert.JSONEq(t, `{"__type": null}`, string(resp.Data))
	})

	t.Run("enum values", func(t *testing.T) {
		_, resp := post(t, r, gqlRequest{Query: `{ __type(name: "OrderDirection") { enumValues { name } } }`})
		assert.Empty(t, resp.Errors)
		assert.JSONEq(t, `{"__type": {"enumValues": [{"name": "asc"}, {"name": "desc"}]}}`, string(resp.Data))
	})
}

func TestPlayground(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := newRouter(t, mocks.NewMockAPIExecutor(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/graphql/playground", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "DSC Indexer GraphQL Playground")
}
