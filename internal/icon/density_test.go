package icon

import "testing"

func TestDensities(t *testing.T) {
	want := []struct {
		name string
		size int
		dir  string
	}{
		{"mdpi", 48, "mipmap-mdpi"},
		{"hdpi", 72, "mipmap-hdpi"},
		{"xhdpi", 96, "mipmap-xhdpi"},
		{"xxhdpi", 144, "mipmap-xxhdpi"},
		{"xxxhdpi", 192, "mipmap-xxxhdpi"},
	}

	if len(Densities) != len(want) {
		t.Fatalf("len(Densities) = %d, want %d", len(Densities), len(want))
	}
	for i, w := range want {
		d := Densities[i]
		if d.Name != w.name || d.Size != w.size || d.Dir() != w.dir {
			t.Errorf("Densities[%d] = {%s %d %s}, want {%s %d %s}", i, d.Name, d.Size, d.Dir(), w.name, w.size, w.dir)
		}
	}
}
