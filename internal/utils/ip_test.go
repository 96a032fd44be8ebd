package utils

import (
	"net/http"
	"testing"
)

func TestClientIdentity(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "x-forwarded-for single",
			headers: map[string]string{"X-Forwarded-For": "192.168.1.1"},
			want:    "192.168.1.1",
		},
		{
			name:    "x-forwarded-for takes first entry",
			headers: map[string]string{"X-Forwarded-For": "192.168.1.1, 10.0.0.1"},
			want:    "192.168.1.1",
		},
		{
			name:    "x-forwarded-for trims whitespace",
			headers: map[string]string{"X-Forwarded-For": "  192.168.1.1 , 10.0.0.1"},
			want:    "192.168.1.1",
		},
		{
			name: "x-forwarded-for wins over other headers",
			headers: map[string]string{
				"X-Forwarded-For":        "1.1.1.1",
				"X-Real-IP":              "2.2.2.2",
				"X-Vercel-Forwarded-For": "3.3.3.3",
			},
			want: "1.1.1.1",
		},
		{
			name: "x-real-ip wins over vercel header",
			headers: map[string]string{
				"X-Real-IP":              "2.2.2.2",
				"X-Vercel-Forwarded-For": "3.3.3.3",
			},
			want: "2.2.2.2",
		},
		{
			name:    "vercel header used last",
			headers: map[string]string{"X-Vercel-Forwarded-For": "3.3.3.3, 4.4.4.4"},
			want:    "3.3.3.3",
		},
		{
			name:    "no headers",
			headers: map[string]string{},
			want:    UnknownClient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for k, v := range tt.headers {
				h.Set(k, v)
			}
			if got := ClientIdentity(h); got != tt.want {
				t.Errorf("ClientIdentity() = %q, want %q", got, tt.want)
			}
		})
	}
}
