package graphql

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/99designs/gqlgen/graphql"

	apierrors "github.com/dsc-protocol/dsc-indexer/internal/api/shared/errors"
)

// MarshalBigInt writes an arbitrary precision integer carried as its decimal string.
// Always a JSON string so clients keep full precision
func MarshalBigInt(s string) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		_, _ = io.WriteString(w, strconv.Quote(s))
	})
}

// UnmarshalBigInt accepts a decimal string or an integral number and normalizes it
func UnmarshalBigInt(v any) (string, error) {
	var s string
	switch v := v.(type) {
	case string:
		s = v
	case json.Number:
		s = v.String()
	case int64:
		s = strconv.FormatInt(v, 10)
	case int:
		s = strconv.Itoa(v)
	case float64:
		if v != float64(int64(v)) {
			return "", apierrors.NewValidationError(fmt.Sprintf("BigInt must be an integer, got %v", v))
		}
		s = strconv.FormatInt(int64(v), 10)
	default:
		return "", apierrors.NewValidationError(fmt.Sprintf("cannot unmarshal %T to BigInt", v))
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return "", apierrors.NewValidationError(fmt.Sprintf("cannot parse %q as BigInt", s))
	}
	return n.String(), nil
}

// bigIntToInt64 narrows a BigInt argument that addresses a timestamp
func bigIntToInt64(name, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, apierrors.NewValidationError(fmt.Sprintf("%s %s out of range", name, s))
	}
	return n, nil
}

// bigIntToUint64 narrows a BigInt argument to an unsigned block number
func bigIntToUint64(name, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, apierrors.NewValidationError(fmt.Sprintf("%s %s out of range", name, s))
	}
	return n, nil
}
