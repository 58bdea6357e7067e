package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(12, 10); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{HUD, Debug} {
		if face := name.Get(); face == nil {
			t.Errorf("%s face is nil", name)
		}
	}
	if h := HUD.Get().Metrics().Height; h <= 0 {
		t.Errorf("HUD line height = %v", h)
	}
}

func TestLoadFontWithSizeRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("bad", []byte("not a font"), 10); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestGetUnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	FontName("missing").Get()
}
