// SPDX-License-Identifier: ice License 1.0

package testing

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/goccy/go-reflect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSymmetricMarshallingUnmarshalling checks that a value marshals to the
// expected JSON, that the JSON unmarshals back into the same value, and that
// the zero value of the wrapper round-trips through emptyMarshalling.
func AssertSymmetricMarshallingUnmarshalling[OBJ any](tb testing.TB, expectedUnmarshalling *OBJ, expectedMarshalling, emptyMarshalling string) {
	tb.Helper()
	expectedCompacted := new(bytes.Buffer)
	require.NoError(tb, json.Compact(expectedCompacted, []byte(expectedMarshalling)))
	emptyCompacted := new(bytes.Buffer)
	require.NoError(tb, json.Compact(emptyCompacted, []byte(emptyMarshalling)))
	assert.Equal(tb, emptyCompacted.String(), MustMarshal(tb, new(OBJ)))
	assert.Equal(tb, expectedCompacted.String(), MustMarshal(tb, expectedUnmarshalling))
	assert.EqualValues(tb, new(OBJ), MustUnmarshal[OBJ](tb, emptyMarshalling))
	zeroValueIgnoredFields(expectedUnmarshalling)
	assert.EqualValues(tb, expectedUnmarshalling, MustUnmarshal[OBJ](tb, expectedMarshalling))
}

func MustMarshal(tb testing.TB, val any) string {
	tb.Helper()
	valueBytes, err := json.MarshalContext(context.Background(), val)
	require.NoError(tb, err)

	return string(valueBytes)
}

func MustUnmarshal[T any](tb testing.TB, val string) *T {
	tb.Helper()
	res := new(T)
	require.NoError(tb, json.UnmarshalContext(context.Background(), []byte(val), res))

	return res
}

func zeroValueIgnoredFields(val any) {
	vType := reflect.TypeOf(val).Elem()
	if vType.Kind() != reflect.Struct {
		return
	}
	vValue := reflect.ValueOf(val).Elem()
	for ix := 0; ix < vType.NumField(); ix++ {
		if vType.Field(ix).PkgPath != "" {
			continue
		}
		if jsonTag := vType.Field(ix).Tag.Get("json"); jsonTag == "-" {
			vValue.Field(ix).Set(reflect.Zero(vType.Field(ix).Type))
		}
	}
}
