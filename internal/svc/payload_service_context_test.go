package svc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oracle-payload-sol/internal/config"
	"oracle-payload-sol/internal/consts"
	"oracle-payload-sol/internal/input"
	"oracle-payload-sol/internal/logic/domain"
	"oracle-payload-sol/internal/logic/payload"
	"oracle-payload-sol/internal/logic/payload/common"
)

const testEnv = "TEST_PAYLOAD_INPUT"

func testConfig(name string) config.PayloadConfig {
	return config.PayloadConfig{Payload: name, InputEnv: testEnv}
}

func TestRun_CheckOracle(t *testing.T) {
	t.Setenv(testEnv, `{"poaName":"alpha","proposalStorageKey":"slot1"}`)

	s, err := NewPayloadServiceContext(testConfig(consts.PayloadCheckOracle), nil)
	require.NoError(t, err)

	resp, err := s.Run()
	require.NoError(t, err)
	require.Len(t, resp.Instructions, 1)
	assert.Equal(t, []byte("alpha"), resp.Instructions[0].Data)
}

func TestRun_TimestampOracle(t *testing.T) {
	t.Setenv(testEnv, `{"poaName":"alpha","proposalStorageKey":"slot1"}`)

	now := func() time.Time { return time.UnixMilli(42) }
	s, err := NewPayloadServiceContext(testConfig(consts.PayloadTimestampOracle), now)
	require.NoError(t, err)

	resp, err := s.Run()
	require.NoError(t, err)
	require.NotNil(t, resp.StoragePayload)
	assert.Equal(t, "42", resp.StoragePayload.Data)
}

func TestRun_InputErrorBeforeBuild(t *testing.T) {
	cases := []string{"", "not json", `{"poaName":"alpha"}`}

	for _, raw := range cases {
		t.Setenv(testEnv, raw)

		built := false
		s := &PayloadServiceContext{
			Config: testConfig(consts.PayloadCheckOracle),
			Handler: common.Handler{
				Required: []string{input.FieldPoaName, input.FieldProposalStorageKey},
				Build: func(*common.Context, *domain.Input) (*domain.Response, error) {
					built = true
					return nil, nil
				},
			},
			Ctx: common.NewContext(nil),
		}

		_, err := s.Run()
		var inErr *input.InputError
		assert.ErrorAs(t, err, &inErr, raw)
		assert.False(t, built, raw)
	}
}

func TestNewPayloadServiceContext_Unknown(t *testing.T) {
	_, err := NewPayloadServiceContext(testConfig("nope"), nil)
	var unknown *payload.UnknownPayloadError
	assert.ErrorAs(t, err, &unknown)
}
