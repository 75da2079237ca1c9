package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Ada Obi", NormalizeName("  Ada Obi \t"))
	assert.Equal(t, "", NormalizeName("   "))
	assert.Equal(t, "ada  obi", NormalizeName("ada  obi"), "inner whitespace is kept")
}

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"female", "Female"},
		{"FEMALE", "Female"},
		{" Male ", "Male"},
		{"mALE", "Male"},
		{"x", "X"},
		{"non binary", "Non binary"},
		{"", ""},
		{"   ", ""},
		{"élodie", "Élodie"},
		{"ǆenan", "ǅenan"},
		{"ǄENAN", "ǅenan"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeGender(tt.in))
		})
	}
}

func TestNormalizeState(t *testing.T) {
	assert.Equal(t, "OSUN", NormalizeState(" osun "))
	assert.Equal(t, "AKWA IBOM", NormalizeState("Akwa Ibom"))
	assert.Equal(t, "OSUNN", NormalizeState("osunn"), "spelling is not corrected")
	assert.Equal(t, "", NormalizeState(""))
}

func TestDraftNormalized(t *testing.T) {
	d := Draft{
		Name:        " Ada Obi ",
		Gender:      "female",
		State:       " osun ",
		WellDressed: true,
		WellBehaved: false,
	}

	got := d.Normalized()
	assert.Equal(t, Draft{
		Name:        "Ada Obi",
		Gender:      "Female",
		State:       "OSUN",
		WellDressed: true,
		WellBehaved: false,
	}, got)

	// Normalizing twice changes nothing.
	assert.Equal(t, got, got.Normalized())
}

func TestDraftMissing(t *testing.T) {
	assert.Empty(t, Draft{Name: "a", Gender: "b", State: "c"}.Missing())
	assert.Equal(t, []string{"Name", "Gender", "State"}, Draft{Name: " ", Gender: "\t"}.Missing())
	assert.Equal(t, []string{"State"}, Draft{Name: "Ada", Gender: "female"}.Missing())
}

func TestFlag(t *testing.T) {
	assert.Equal(t, 1, Flag(true))
	assert.Equal(t, 0, Flag(false))
}
