package tinyfmt_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bjaus/tinyfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type conformanceCase struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"`
	Args   []any  `yaml:"args"`
	Cap    int    `yaml:"cap"`  // 0 means a roomy default
	Want   string `yaml:"want"` // expected buffer content
	Len    int    `yaml:"len"`  // expected logical length; 0 means len(want)
}

// TestConformanceCorpus runs the fixed case corpus in testdata. YAML's
// plain scalars decode to int, float64, and string, which map onto the
// engine's argument coercion directly.
func TestConformanceCorpus(t *testing.T) {
	t.Parallel()

	raw, err := os.ReadFile(filepath.Join("testdata", "conformance.yaml"))
	require.NoError(t, err)

	var cases []conformanceCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			capacity := tc.Cap
			if capacity == 0 {
				capacity = 128
			}
			wantLen := tc.Len
			if wantLen == 0 {
				wantLen = len(tc.Want)
			}

			buf := make([]byte, capacity)
			n := tinyfmt.Snprintf(buf, tc.Format, tc.Args...)
			idx := bytes.IndexByte(buf, 0)
			require.GreaterOrEqual(t, idx, 0, "missing NUL terminator")

			assert.Equal(t, tc.Want, string(buf[:idx]))
			assert.Equal(t, wantLen, n, "logical length")
		})
	}
}
