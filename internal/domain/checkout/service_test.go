package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayPriceToCents(t *testing.T) {
	tests := []struct {
		price string
		want  int64
	}{
		{"$25.00", 2500},
		{"$0.99", 99},
		{"€12.5", 1250},
		{"1299.99", 129999},
		{" $ 3.50 ", 350},
		{"$0", 0},
		{"$25.005", 2501}, // rounds to the nearest cent
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			got, err := DisplayPriceToCents(tt.price)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayPriceToCentsRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "$", "gratis", "25,00", "$-5.00"} {
		_, err := DisplayPriceToCents(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}
}
