package validation

import "testing"

type yearField struct {
	Value string `validate:"year"`
}

type monthField struct {
	Value string `validate:"monthdate"`
}

type folderField struct {
	Value string `validate:"imagefolder"`
}

func TestYearValidator(t *testing.T) {
	v := New()
	cases := map[string]bool{
		"2023":   true,
		"1999":   true,
		"23":     false,
		"20235":  false,
		"twenty": false,
		"":       false,
	}
	for in, want := range cases {
		err := v.Struct(yearField{Value: in})
		if (err == nil) != want {
			t.Fatalf("year(%q): got err=%v, want valid=%v", in, err, want)
		}
	}
}

func TestMonthDateValidator(t *testing.T) {
	v := New()
	cases := map[string]bool{
		"2023-06":    true,
		"2023-13":    false,
		"2023-6":     false,
		"06-2023":    false,
		"2023-06-01": false,
	}
	for in, want := range cases {
		err := v.Struct(monthField{Value: in})
		if (err == nil) != want {
			t.Fatalf("monthdate(%q): got err=%v, want valid=%v", in, err, want)
		}
	}
}

func TestImageFolderValidator(t *testing.T) {
	v := New()
	cases := map[string]bool{
		"projects": true,
		"profile":  true,
		"header":   true,
		"Projects": false,
		"other":    false,
		"":         false,
	}
	for in, want := range cases {
		err := v.Struct(folderField{Value: in})
		if (err == nil) != want {
			t.Fatalf("imagefolder(%q): got err=%v, want valid=%v", in, err, want)
		}
	}
}
