package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tg_ledger/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Bearer token header",
			input:  []byte("GET /market/alerts HTTP/1.1\r\nAuthorization: Bearer abc.def.ghi\r\nAccept: application/json\r\n"),
			output: []byte("GET /market/alerts HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\nAccept: application/json\r\n"),
		},
		{
			name:   "Session cookie header",
			input:  []byte("GET / HTTP/1.1\r\nCookie: xf_user=1234%2Cdeadbeef\r\nConnection: keep-alive\r\n"),
			output: []byte("GET / HTTP/1.1\r\nCookie: [MASKED]\r\nConnection: keep-alive\r\n"),
		},
		{
			name:   "Token JSON field",
			input:  []byte(`{"hello":"world","token":"abc123"}`),
			output: []byte(`{"hello":"world","token":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "Cookies JSON field",
			input:  []byte(`{"cookies":"xf_session=ff00ff","ok":true}`),
			output: []byte(`{"cookies":"[MASKED]","ok":true}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
