package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
		wantErr bool
	}{
		{name: "empty", payload: "", want: DefaultImportSource},
		{name: "whitespace", payload: "  \n", want: DefaultImportSource},
		{name: "empty object", payload: "{}", want: DefaultImportSource},
		{name: "import source", payload: `{"importSource":"custom-ui"}`, want: "custom-ui"},
		{name: "explicit empty import source", payload: `{"importSource":""}`, want: ""},
		{name: "null import source", payload: `{"importSource":null}`, want: DefaultImportSource},
		{name: "unknown members", payload: `{"importSource":"custom-ui","jsx":true}`, want: "custom-ui"},
		{name: "invalid json", payload: `{"importSource":`, want: DefaultImportSource, wantErr: true},
		{name: "wrong type", payload: `{"importSource":42}`, want: DefaultImportSource, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := DecodeConfig([]byte(tt.payload))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "decode config")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, cfg.ImportSourceOrDefault())
		})
	}
}

func TestParseConfigFallsBack(t *testing.T) {
	assert.Equal(t, DefaultConfig(), ParseConfig([]byte("not json")))
	assert.Equal(t, DefaultConfig(), ParseConfig(nil))
	assert.Equal(t, NewConfig("x"), ParseConfig([]byte(`{"importSource":"x"}`)))
}

func TestCompilerSource(t *testing.T) {
	assert.Equal(t, "rask-ui/compiler", Config{}.CompilerSource())
	assert.Equal(t, "custom-ui/compiler", NewConfig("custom-ui").CompilerSource())
	assert.Equal(t, "/compiler", ParseConfig([]byte(`{"importSource":""}`)).CompilerSource())
}
