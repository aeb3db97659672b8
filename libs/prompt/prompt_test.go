package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBool(t *testing.T) {
	var out bytes.Buffer
	actual, err := Bool(strings.NewReader("maybe\ny\n"), &out)
	require.NoError(t, err)
	assert.True(t, actual)
	assert.Contains(t, out.String(), `Input must be "y" or "n"`)
}

func TestForm_Value(t *testing.T) {
	var out bytes.Buffer
	form := NewForm(strings.NewReader(" Maria Silva \r\nCACC\n"), &out,
		Field{Name: "payerName", Label: "Payer name"},
		Field{Name: "payerAccountType", Label: "Payer account type", Hint: "CACC, SVGS"},
	)

	assert.Equal(t, " Maria Silva ", form.Value("payerName"))
	assert.Equal(t, "CACC", form.Value("payerAccountType"))
	// answers are remembered, no new prompt is issued
	assert.Equal(t, " Maria Silva ", form.Value("payerName"))
	assert.Equal(t, "", form.Value("unknown"))

	assert.Equal(t, "Payer name: Payer account type [CACC, SVGS]: ", out.String())
}

func TestForm_Value_EOF(t *testing.T) {
	form := NewForm(strings.NewReader("150.50"), &bytes.Buffer{},
		Field{Name: "amount"},
		Field{Name: "description"},
	)

	assert.Equal(t, "150.50", form.Value("amount"))
	assert.Equal(t, "", form.Value("description"))
}
