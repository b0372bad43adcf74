package main

import (
	"errors"
	"testing"
)

func TestResolveCredential(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		passfile string
		want     string
		wantErr  bool
	}{
		{
			name: "no passphrase",
			want: "",
		},
		{
			name: "inline passphrase",
			opts: Options{KeyPass: "testPassword"},
			want: "testPassword",
		},
		{
			name:     "passphrase file with trailing newline",
			opts:     Options{PassFile: "/home/alice/.gar/pass"},
			passfile: "  secret with spaces \n\n",
			want:     "  secret with spaces",
		},
		{
			name:     "inline passphrase takes priority",
			opts:     Options{KeyPass: "inline", PassFile: "/home/alice/.gar/pass"},
			passfile: "from file\n",
			want:     "inline",
		},
		{
			name:    "missing passphrase file",
			opts:    Options{PassFile: "/home/alice/.gar/missing"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testEnv()
			if tt.passfile != "" {
				writeFile(t, env, "/home/alice/.gar/pass", tt.passfile)
			}

			got, err := resolveCredential(env.Fs, &tt.opts, discardLogger())

			if tt.wantErr {
				var notFound *CredentialFileNotFoundError
				if !errors.As(err, &notFound) {
					t.Fatalf("resolveCredential() error = %v, want *CredentialFileNotFoundError", err)
				}
				if notFound.Path != tt.opts.PassFile {
					t.Errorf("Path = %q, want %q", notFound.Path, tt.opts.PassFile)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveCredential() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveCredential() = %q, want %q", got, tt.want)
			}
		})
	}
}
