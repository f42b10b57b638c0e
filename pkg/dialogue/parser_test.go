package dialogue

import (
	"testing"

	"storefront-bot/internal/constant"
	"storefront-bot/pkg/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearch(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       SearchQuery
		wantReason string
	}{
		{name: "empty", input: "   ", wantReason: constant.TipEnterProductName},
		{name: "keyword only", input: " makita ", want: SearchQuery{Keyword: "makita"}},
		{name: "keyword and range", input: "makita 800 2000", want: SearchQuery{Keyword: "makita", Price: &query.PriceRange{Min: 800, Max: 2000}}},
		{name: "extra tokens ignored", input: "makita 800 2000 cheap", want: SearchQuery{Keyword: "makita", Price: &query.PriceRange{Min: 800, Max: 2000}}},
		{name: "equal bounds", input: "makita 800 800", want: SearchQuery{Keyword: "makita", Price: &query.PriceRange{Min: 800, Max: 800}}},
		{name: "missing max", input: "makita 800", wantReason: constant.TipMissingPrice},
		{name: "invalid min", input: "makita abc 2000", wantReason: constant.TipInvalidMinPrice},
		{name: "negative min", input: "makita -1 2000", wantReason: constant.TipInvalidMinPrice},
		{name: "decimal min", input: "makita 8.5 2000", wantReason: constant.TipInvalidMinPrice},
		{name: "invalid max", input: "makita 800 lots", wantReason: constant.TipInvalidMaxPrice},
		{name: "negative max", input: "makita 800 -2", wantReason: constant.TipInvalidMaxPrice},
		{name: "min checked before max", input: "makita x y", wantReason: constant.TipInvalidMinPrice},
		{name: "max below min", input: "makita 2000 800", wantReason: constant.TipMaxBelowMin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSearch(tt.input)
			if tt.wantReason != "" {
				inputErr, ok := isInputError(err)
				require.True(t, ok, "expected an input error, got %v", err)
				assert.Equal(t, tt.wantReason, inputErr.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuestion(t *testing.T) {
	keyword, err := ParseQuestion("  warranty period ")
	require.NoError(t, err)
	assert.Equal(t, "warranty period", keyword)

	_, err = ParseQuestion(" ")
	inputErr, ok := isInputError(err)
	require.True(t, ok)
	assert.Equal(t, constant.TipEnterQuestionKeyword, inputErr.Reason)
}

func TestQuestionCommandKeyword(t *testing.T) {
	tests := map[string]string{
		"warranty":            "warranty",
		"  warranty period  ": "warranty",
		"":                    "",
		" \t ":                "",
	}
	for args, want := range tests {
		assert.Equal(t, want, QuestionCommandKeyword(args), "args %q", args)
	}
}

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		min, max string
		want     query.PriceRange
		reason   string
	}{
		{min: "0", max: "0", want: query.PriceRange{Min: 0, Max: 0}},
		{min: "800", max: "2000", want: query.PriceRange{Min: 800, Max: 2000}},
		{min: "abc", max: "-1", reason: constant.TipInvalidMinPrice},
		{min: "10", max: "1.5", reason: constant.TipInvalidMaxPrice},
		{min: "10", max: "9", reason: constant.TipMaxBelowMin},
		{min: "0", max: "3000000000", want: query.PriceRange{Min: 0, Max: 3000000000}},
		{min: "3000000000", max: "10", reason: constant.TipMaxBelowMin},
	}
	for _, tt := range tests {
		t.Run(tt.min+"-"+tt.max, func(t *testing.T) {
			got, err := ParsePriceRange(tt.min, tt.max)
			if tt.reason == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.reason, inputErr.Reason)
		})
	}
}
