package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsValid(t *testing.T) {
	r := New(7, "aaa", "ddd")

	assert.True(t, r.Valid())
	assert.Equal(t, ID(7), r.ID())
	assert.Equal(t, "aaa", r.FieldA())
	assert.Equal(t, "ddd", r.FieldB())
}

func TestNew_AcceptsEmptyFields(t *testing.T) {
	r := New(1, "", "")

	assert.True(t, r.Valid())
	assert.Equal(t, "1  ", r.String())
}

func TestSentinel_IsZeroValue(t *testing.T) {
	var zero Record

	assert.Equal(t, zero, Sentinel())
	assert.False(t, Sentinel().Valid())
	assert.Equal(t, ID(0), Sentinel().ID())
	assert.Empty(t, Sentinel().FieldA())
	assert.Empty(t, Sentinel().FieldB())
}

func TestFromFields_HasNoID(t *testing.T) {
	r := FromFields("Col 1", "Cooolllll 22222")

	assert.True(t, r.Valid())
	assert.Equal(t, ID(0), r.ID())
}

func TestWithID_ReturnsCopy(t *testing.T) {
	orig := FromFields("x", "y")
	stamped := orig.WithID(42)

	assert.Equal(t, ID(0), orig.ID(), "original must not change")
	assert.Equal(t, ID(42), stamped.ID())
	assert.Equal(t, "x", stamped.FieldA())
	assert.True(t, stamped.Valid())
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{"valid", New(2, "ccc", "###"), "2 ccc ###"},
		{"spaces in fields", New(8, "Col 1", "Cooolllll 22222"), "8 Col 1 Cooolllll 22222"},
		{"sentinel", Sentinel(), ""},
		{"max id", New(MaxID, "a", "b"), "4294967295 a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.String())
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(New(3, "asd", "dsaasd"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"field_a":"asd","field_b":"dsaasd"}`, string(data))

	data, err = json.Marshal(Sentinel())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
