package adaptable_test

import (
	"fmt"
	"testing"

	"impractical.co/adaptable"
)

func TestBuildFontQuery(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		name, weight, subset, defaultWeight string
		want                                string
		ok                                  bool
	}{
		"empty name":         {name: "", defaultWeight: "400"},
		"default name":       {name: "default", weight: "700", subset: "greek", defaultWeight: "400"},
		"default weight":     {name: "Open Sans", defaultWeight: "400", want: "Open+Sans:400,400i", ok: true},
		"title weight":       {name: "Open Sans", defaultWeight: "700", want: "Open+Sans:700,700i", ok: true},
		"explicit weight":    {name: "Roboto", weight: "300", defaultWeight: "400", want: "Roboto:300,300i", ok: true},
		"subset":             {name: "Roboto", subset: "cyrillic", defaultWeight: "400", want: "Roboto:400,400i&subset=latin,cyrillic", ok: true},
		"multi-space family": {name: "Source Sans Pro", weight: "600", defaultWeight: "400", want: "Source+Sans+Pro:600,600i", ok: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := adaptable.BuildFontQuery(tc.name, tc.weight, tc.subset, tc.defaultWeight)
			if ok != tc.ok {
				t.Fatalf("Expected ok=%v, got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func ExampleBuildFontQuery() {
	query, ok := adaptable.BuildFontQuery("Open Sans", "", "", adaptable.DefaultFontWeight)
	fmt.Println(query, ok)

	query, ok = adaptable.BuildFontQuery("Roboto Slab", "", "cyrillic", adaptable.DefaultTitleFontWeight)
	fmt.Println(query, ok)

	_, ok = adaptable.BuildFontQuery("default", "700", "", adaptable.DefaultFontWeight)
	fmt.Println(ok)

	//Output:
	// Open+Sans:400,400i true
	// Roboto+Slab:700,700i&subset=latin,cyrillic true
	// false
}
