package translit

import "testing"

func TestIsLogograph(t *testing.T) {
	for _, r := range []rune("我你好世界") {
		if !IsLogograph(r) {
			t.Fatalf("expected %q to be logographic", r)
		}
	}
	for _, r := range []rune("a ，。!1") {
		if IsLogograph(r) {
			t.Fatalf("expected %q to be non-logographic", r)
		}
	}
}

func TestContainsLogograph(t *testing.T) {
	if !ContainsLogograph("wo爱") {
		t.Fatalf("expected logograph to be detected")
	}
	if ContainsLogograph("wo ai ni") {
		t.Fatalf("expected plain text to have no logograph")
	}
}

func TestPinyinToneFree(t *testing.T) {
	p := NewPinyin()
	cases := map[rune]string{
		'我': "wo",
		'你': "ni",
		'好': "hao",
		'中': "zhong",
		'女': "nv",
	}
	for r, want := range cases {
		got, err := p.Transliterate(r)
		if err != nil {
			t.Fatalf("transliterate %q: %v", r, err)
		}
		if got != want {
			t.Fatalf("transliterate %q: expected %q, got %q", r, want, got)
		}
	}
}

func TestPinyinRejectsNonLogograph(t *testing.T) {
	p := NewPinyin()
	if _, err := p.Transliterate('a'); err == nil {
		t.Fatalf("expected error for non-logographic rune")
	}
}
