package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"ar", Arabic},
		{"AR", Arabic},
		{"ar-YE", Arabic},
		{"Arabic", Arabic},
		{"عربي", Arabic},
		{"en", English},
		{"en-GB", English},
		{" english ", English},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Unsupported(t *testing.T) {
	_, err := Parse("fr")
	assert.Error(t, err)

	_, err = Parse("not a language!!")
	assert.Error(t, err)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, RightToLeft, Arabic.Direction())
	assert.True(t, Arabic.IsRTL())
	assert.Equal(t, LeftToRight, English.Direction())
	assert.False(t, English.IsRTL())
}

func TestToggle(t *testing.T) {
	assert.Equal(t, English, Arabic.Toggle())
	assert.Equal(t, Arabic, English.Toggle())
}

func TestGeneralItems(t *testing.T) {
	assert.Equal(t, "General Items", English.GeneralItems())
	assert.NotEqual(t, English.GeneralItems(), Arabic.GeneralItems())
}

func TestDefaultCategories(t *testing.T) {
	assert.Equal(t, []string{"Staff", "Procurement", "Transport", "Activities", "Management"}, English.DefaultCategories())
	assert.Len(t, Arabic.DefaultCategories(), 5)
}

func TestSpreadsheetHeader_English(t *testing.T) {
	want := [10]string{"Budget Code", "Item", "Monthly Cost", "Allocation", "Qty", "Unit", "Freq", "Freq Unit", "Total", "Narrative"}
	assert.Equal(t, want, English.Labels().SpreadsheetHeader)
}

func TestLabels_EveryLanguageHasSetupSteps(t *testing.T) {
	for _, l := range []Language{Arabic, English} {
		labels := l.Labels()
		assert.NotEmpty(t, labels.SetupRequired, l)
		assert.Len(t, labels.SetupSteps, 4, l)
		for _, h := range labels.SpreadsheetHeader {
			assert.NotEmpty(t, h, l)
		}
	}
}

func TestFormatAmount_GroupsDigits(t *testing.T) {
	assert.Contains(t, English.FormatAmount(1234567), "1,234,567")
}
