package graphql

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/dto"
	apierrors "github.com/dsc-protocol/dsc-indexer/internal/api/shared/errors"
)

func TestUnmarshalBigInt(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr bool
	}{
		{name: "decimal string", input: "340282366920938463463374607431768211456", want: "340282366920938463463374607431768211456"},
		{name: "leading zeros", input: "007", want: "7"},
		{name: "negative", input: "-5", want: "-5"},
		{name: "json number", input: json.Number("42"), want: "42"},
		{name: "int", input: 3, want: "3"},
		{name: "int64", input: int64(9), want: "9"},
		{name: "integral float", input: float64(100), want: "100"},
		{name: "fractional float", input: 1.5, wantErr: true},
		{name: "hex string", input: "0x10", wantErr: true},
		{name: "bool", input: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalBigInt(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var apiErr *apierrors.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarshalBigInt(t *testing.T) {
	var buf bytes.Buffer
	MarshalBigInt("1000000000000000000000").MarshalGQL(&buf)
	assert.Equal(t, `"1000000000000000000000"`, buf.String())
}

func TestBackfillRequest(t *testing.T) {
	to := "200"
	chunk := 25

	req, err := backfillRequest("100", &to, &chunk)
	require.NoError(t, err)
	assert.Equal(t, dto.TriggerBackfillRequest{FromBlock: 100, ToBlock: 200, ChunkSize: 25}, req)

	req, err = backfillRequest("100", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, dto.TriggerBackfillRequest{FromBlock: 100}, req)

	_, err = backfillRequest("-1", nil, nil)
	assert.Error(t, err)

	negative := -1
	_, err = backfillRequest("1", nil, &negative)
	assert.Error(t, err)
}

func TestInteractionQueryFilter(t *testing.T) {
	gte := "100"
	lte := "99999999999999999999"

	q, err := interactionQuery(nil, nil, nil, nil, &InteractionFilter{TimestampGte: &gte})
	require.NoError(t, err)
	require.NotNil(t, q.TimestampGte)
	assert.Equal(t, int64(100), *q.TimestampGte)
	assert.Nil(t, q.TimestampLte)

	_, err = interactionQuery(nil, nil, nil, nil, &InteractionFilter{TimestampLte: &lte})
	assert.Error(t, err)
}
