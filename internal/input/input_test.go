package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	in, err := Parse(`{"poaName":"alpha","proposalStorageKey":"slot1"}`, FieldPoaName, FieldProposalStorageKey)
	require.NoError(t, err)
	assert.Equal(t, "alpha", in.PoaName)
	assert.Equal(t, "slot1", in.ProposalStorageKey)
	assert.Empty(t, in.ExecutorPDA)

	// 未声明为必填的字段可以缺失
	in, err = Parse(`{"executorPDA":"DnXet6kPAWkk2bjC55wvqKkRKkLcMAvdGxeAniNyM2GY"}`, FieldExecutorPDA)
	require.NoError(t, err)
	assert.Equal(t, "DnXet6kPAWkk2bjC55wvqKkRKkLcMAvdGxeAniNyM2GY", in.ExecutorPDA)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		field string
	}{
		{name: "empty", raw: "", field: "input"},
		{name: "blank", raw: "  \n", field: "input"},
		{name: "not json", raw: "poaName=alpha", field: "input"},
		{name: "array", raw: `["alpha"]`, field: "input"},
		{name: "trailing garbage", raw: `{"poaName":"alpha","proposalStorageKey":"slot1"} garbage`, field: "input"},
		{name: "two objects", raw: `{"poaName":"alpha","proposalStorageKey":"slot1"}{"x":1}`, field: "input"},
		{name: "truncated", raw: `{"poaName":"alpha"`, field: "input"},
		{name: "missing poaName", raw: `{"proposalStorageKey":"slot1"}`, field: FieldPoaName},
		{name: "missing key", raw: `{"poaName":"alpha"}`, field: FieldProposalStorageKey},
		{name: "null poaName", raw: `{"poaName":null,"proposalStorageKey":"slot1"}`, field: FieldPoaName},
		{name: "wrong type", raw: `{"poaName":5,"proposalStorageKey":"slot1"}`, field: FieldPoaName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.raw, FieldPoaName, FieldProposalStorageKey)
			var inErr *InputError
			require.ErrorAs(t, err, &inErr)
			assert.Equal(t, tc.field, inErr.Field)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestParse_IgnoresUnknownFields(t *testing.T) {
	in, err := Parse(`{"poaName":"alpha","proposalStorageKey":"slot1","zeta":1,"extra":"x"}`, FieldPoaName, FieldProposalStorageKey)
	require.NoError(t, err)
	assert.Equal(t, "alpha", in.PoaName)

	assert.Equal(t, []string{"extra", "zeta"}, unknownFields(map[string]any{
		FieldPoaName: "alpha",
		"zeta":       1,
		"extra":      "x",
	}))
	assert.Empty(t, unknownFields(map[string]any{FieldPoaName: "alpha"}))
}

func TestParse_UnknownRequiredField(t *testing.T) {
	_, err := Parse(`{"poaName":"alpha"}`, "somethingElse")
	var inErr *InputError
	require.ErrorAs(t, err, &inErr)
	assert.Equal(t, "somethingElse", inErr.Field)
}

func TestFromEnv(t *testing.T) {
	const env = "TEST_CAMB_INPUT"

	t.Setenv(env, `{"poaName":"alpha","proposalStorageKey":"slot1"}`)
	in, err := FromEnv(env, FieldPoaName, FieldProposalStorageKey)
	require.NoError(t, err)
	assert.Equal(t, "alpha", in.PoaName)

	t.Setenv(env, "")
	_, err = FromEnv(env, FieldPoaName)
	var inErr *InputError
	require.ErrorAs(t, err, &inErr)
	assert.Equal(t, env, inErr.Field)

	t.Setenv(env, `{"poaName":"alpha","proposalStorageKey":"slot1"} trailing`)
	_, err = FromEnv(env, FieldPoaName, FieldProposalStorageKey)
	require.ErrorAs(t, err, &inErr)
	assert.Equal(t, env, inErr.Field)
	assert.Contains(t, inErr.Reason, "malformed JSON")
}
