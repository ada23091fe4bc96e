package types

import "testing"

func TestExactStructuralEquality(t *testing.T) {
	cases := []struct {
		name string
		a, b Type
		want bool
	}{
		{"int-int", Int, Int, true},
		{"int-float", Int, Float, false},
		{"float-int", Float, Int, false},
		{"unit-unit", Unit, Unit, true},
		{"bool-string", Bool, String, false},
		{"custom-same-name", Custom{TypeName: "Vec2"}, Custom{TypeName: "Vec2"}, true},
		{"custom-different-name", Custom{TypeName: "Vec2"}, Custom{TypeName: "Vec3"}, false},
		{"custom-vs-primitive", Custom{TypeName: "Int"}, Int, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b); got != tc.want {
				t.Fatalf("Equal(%s, %s) = %t, want %t", tc.a.Name(), tc.b.Name(), got, tc.want)
			}
		})
	}
}

func TestTypeNames(t *testing.T) {
	if Int.Name() != "Int" || Unit.Name() != "Unit" {
		t.Fatalf("unexpected primitive names: %s, %s", Int.Name(), Unit.Name())
	}
	c := Custom{TypeName: "Color"}
	if c.Name() != "Custom:Color" {
		t.Fatalf("unexpected custom name: %s", c.Name())
	}
}
