package envstruct_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vheikkine/franchiselab/internal/envstruct"
)

func TestPopulate(t *testing.T) {
	type args struct {
		v         any
		lookupEnv func(string) (string, bool)
	}
	tests := []struct {
		name    string
		args    args
		want    any
		wantErr error
	}{
		{
			name: "nil",
			args: args{
				v:         nil,
				lookupEnv: func(_ string) (string, bool) { return "", false },
			},
			want:    nil,
			wantErr: envstruct.ErrInvalidValue,
		},
		{
			name: "not pointer",
			args: args{
				v:         struct{}{},
				lookupEnv: func(_ string) (string, bool) { return "", false },
			},
			want:    nil,
			wantErr: envstruct.ErrInvalidValue,
		},
		{
			name: "empty struct",
			args: args{
				v:         &struct{}{},
				lookupEnv: func(_ string) (string, bool) { return "", false },
			},
			want:    &struct{}{},
			wantErr: nil,
		},
		{
			name: "empty env",
			args: args{
				v: &struct { //nolint:exhaustruct // populated later
					EnvVar string `env:"ENV_VAR"`
				}{},
				lookupEnv: func(_ string) (string, bool) { return "", false },
			},
			want:    nil,
			wantErr: envstruct.ErrEnvNotSet,
		},
		{
			name: "env is set",
			args: args{
				v: &struct { //nolint:exhaustruct // populated later
					EnvVar string `env:"ENV_VAR"`
				}{},
				lookupEnv: func(_ string) (string, bool) { return "env_var", true },
			},
			want:    &struct{ EnvVar string }{EnvVar: "env_var"},
			wantErr: nil,
		},
		{
			name: "picks correct env variable",
			args: args{
				v: &struct { //nolint:exhaustruct // populated later
					EnvVar      string `env:"ENV_VAR"`
					EnvVar2     string `env:"ENV_VAR2"`
					OtherValue  string
					OtherValue2 int
				}{},
				lookupEnv: func(s string) (string, bool) { return strings.ToLower(s), true },
			},
			want: &struct {
				EnvVar      string
				EnvVar2     string
				OtherValue  string
				OtherValue2 int
			}{EnvVar: "env_var", EnvVar2: "env_var2", OtherValue: "", OtherValue2: 0},
			wantErr: nil,
		},
		{
			name: "handles default value",
			args: args{
				v: &struct { //nolint:exhaustruct // populated later
					EnvVarDefault string `env:"ENV_VAR_DEFAULT" envDefault:"default"`
				}{},
				lookupEnv: func(_ string) (string, bool) { return "", false },
			},
			want: &struct {
				EnvVarDefault string
			}{EnvVarDefault: "default"},
			wantErr: nil,
		},
		{
			name: "integer field",
			args: args{
				v: &struct { //nolint:exhaustruct // populated later
					Retries int `env:"RETRIES" envDefault:"3"`
				}{},
				lookupEnv: func(_ string) (string, bool) { return "", false },
			},
			want: &struct {
				Retries int
			}{Retries: 3},
			wantErr: nil,
		},
		{
			name: "invalid integer",
			args: args{
				v: &struct { //nolint:exhaustruct // populated later
					Retries int `env:"RETRIES"`
				}{},
				lookupEnv: func(_ string) (string, bool) { return "three", true },
			},
			want:    nil,
			wantErr: nil, // strconv error, asserted separately below
		},
		{
			name: "duration field",
			args: args{
				v: &struct { //nolint:exhaustruct // populated later
					Backoff time.Duration `env:"BACKOFF" envDefault:"1s"`
				}{},
				lookupEnv: func(_ string) (string, bool) { return "250ms", true },
			},
			want: &struct {
				Backoff time.Duration
			}{Backoff: 250 * time.Millisecond},
			wantErr: nil,
		},
		{
			name: "unsupported field type",
			args: args{
				v: &struct { //nolint:exhaustruct // populated later
					Toggle bool `env:"TOGGLE"`
				}{},
				lookupEnv: func(_ string) (string, bool) { return "true", true },
			},
			want:    nil,
			wantErr: envstruct.ErrInvalidValue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := envstruct.Populate(tt.args.v, tt.args.lookupEnv)
			if tt.name == "invalid integer" {
				require.Error(t, err)
				return
			}
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.want != nil {
				require.EqualValues(t, tt.want, tt.args.v)
			}
		})
	}
}
